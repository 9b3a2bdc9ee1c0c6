package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/midbel/minish"
	"github.com/midbel/minish/internal/config"
	"github.com/midbel/minish/internal/logging"
)

var (
	// Global flags
	configFile  string
	historyFile string
	capacity    int
	verbose     bool
	strictExit  bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "minish",
	Short: "minish - a minimal interactive shell",
	Long: `minish reads command lines, runs them as builtins (echo, exit, pwd, cd,
history, type) or as programs found on the search path, and keeps a bounded
history of the commands that succeeded.

Run without arguments to start an interactive session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("history-file") {
			cfg.History.File = historyFile
		}
		if flags.Changed("capacity") {
			cfg.History.Capacity = capacity
		}
		if flags.Changed("strict-exit") {
			cfg.Shell.StrictExit = strictExit
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

var runCmd = &cobra.Command{
	Use:   "run <command> [arg...]",
	Short: "Execute a single command line",
	Long: `Executes one command line the way the interactive session would and exits.

Example:
  minish run type ls
  minish run echo hello world`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLine,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", defaultConfigFile(), "configuration file")
	flags.StringVar(&historyFile, "history-file", "", "history file loaded at start and written at exit")
	flags.IntVar(&capacity, "capacity", config.DefaultCapacity, "maximum number of history records")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&strictExit, "strict-exit", false, "report programs exiting with a non zero status as errors")

	// words after the command name belong to the command line
	runCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "minish", "config.yaml")
}

func shellOptions(extra ...minish.ShellOption) []minish.ShellOption {
	options := []minish.ShellOption{
		minish.WithCapacity(cfg.History.Capacity),
		minish.WithStrictExit(cfg.Shell.StrictExit),
		minish.WithStdin(os.Stdin),
	}
	if len(cfg.Shell.Path) > 0 {
		options = append(options, minish.WithPath(cfg.Shell.Path...))
	}
	return append(options, extra...)
}

func runLine(cmd *cobra.Command, args []string) error {
	sh, err := minish.NewShell(shellOptions(minish.WithLogger(logger))...)
	if err != nil {
		return err
	}
	line := strings.Join(args, " ")
	logger.Debug("executing command line", zap.String("line", line))
	return sh.Execute(line)
}
