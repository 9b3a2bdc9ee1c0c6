package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/midbel/minish"
	"github.com/midbel/minish/internal/archive"
)

var (
	useArchive   bool
	limit        int
	prefixSearch bool
	reverse      bool
	start        int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the persisted history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the records of the history file or of the archive",
	Args:  cobra.NoArgs,
	RunE:  listHistory,
}

var historySearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the history file",
	Long: `Searches the history file for a record containing term, or starting with
term when --prefix is given. The search starts at --start and moves toward
the newest record, or toward the oldest one with --reverse.

Prints the index of the record, the position of the match and the record.`,
	Args: cobra.ExactArgs(1),
	RunE: searchHistory,
}

func init() {
	historyListCmd.Flags().BoolVar(&useArchive, "archive", false, "read records from the archive")
	historyListCmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of archived records to show")

	historySearchCmd.Flags().BoolVar(&prefixSearch, "prefix", false, "match records starting with term")
	historySearchCmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "search toward the oldest record")
	historySearchCmd.Flags().IntVar(&start, "start", -1, "index where the search starts")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
}

func loadHistory() (*minish.History, error) {
	if cfg.History.File == "" {
		return nil, errors.New("no history file configured")
	}
	h := minish.NewHistoryWithCapacity(cfg.History.Capacity)
	if err := h.Load(cfg.History.File); err != nil {
		return nil, err
	}
	logger.Debug("history loaded", zap.String("file", cfg.History.File), zap.Int("records", h.Len()))
	return h, nil
}

func listHistory(cmd *cobra.Command, args []string) error {
	if useArchive {
		return listArchive(cmd)
	}
	h, err := loadHistory()
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"#", "Command"})
	table.SetAutoWrapText(false)
	for i, line := range h.All() {
		table.Append([]string{strconv.Itoa(i + 1), line})
	}
	table.Render()
	return nil
}

func listArchive(cmd *cobra.Command) error {
	if cfg.History.Archive == "" {
		return errors.New("no archive configured")
	}
	a, err := archive.Open(cfg.History.Archive)
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"#", "Session", "When", "Command"})
	table.SetAutoWrapText(false)
	for _, r := range list {
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			r.Session,
			r.When.Format("2006-01-02 15:04:05"),
			r.Line,
		})
	}
	table.Render()
	return nil
}

func searchHistory(cmd *cobra.Command, args []string) error {
	h, err := loadHistory()
	if err != nil {
		return err
	}
	dir := minish.Forward
	if reverse {
		dir = minish.Reverse
	}
	from := start
	if from < 0 {
		from = 0
		if dir == minish.Reverse {
			from = h.Len() - 1
		}
	}
	search := h.Search
	if prefixSearch {
		search = h.StartsWith
	}
	m, ok := search(args[0], from, dir)
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "no match")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %d %s\n", m.Index, m.Pos, m.Text)
	return nil
}
