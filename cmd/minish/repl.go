package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/midbel/minish"
	"github.com/midbel/minish/internal/archive"
)

type session struct {
	id      string
	history *minish.History
	archive *archive.Archive
	logger  *zap.Logger
}

func newSession() (*session, error) {
	s := session{
		id:      uuid.NewString(),
		history: minish.NewHistoryWithCapacity(cfg.History.Capacity),
	}
	s.logger = logger.With(zap.String("session", s.id))
	if file := cfg.History.File; file != "" {
		err := s.history.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("fail to load history", zap.String("file", file), zap.Error(err))
		}
	}
	if file := cfg.History.Archive; file != "" {
		a, err := archive.Open(file)
		if err != nil {
			return nil, err
		}
		s.archive = a
	}
	return &s, nil
}

func (s *session) Record(line string) error {
	if s.archive == nil {
		return nil
	}
	return s.archive.Record(context.Background(), s.id, line)
}

// Close writes the history back to its file and releases the archive.
func (s *session) Close() error {
	var err error
	if file := cfg.History.File; file != "" {
		if cfg.History.Append {
			err = s.history.Append(file)
		} else {
			err = s.history.Save(file)
		}
	}
	if s.archive != nil {
		err = errors.Join(err, s.archive.Close())
	}
	return err
}

func runInteractive(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	var rl *readline.Instance

	exit := func(code int) {
		if err := sess.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		if rl != nil {
			rl.Close()
		}
		_ = logger.Sync()
		os.Exit(code)
	}
	sh, err := minish.NewShell(shellOptions(
		minish.WithHistory(sess.history),
		minish.WithLogger(sess.logger),
		minish.WithRecorder(sess),
		minish.WithExit(exit),
	)...)
	if err != nil {
		sess.Close()
		return err
	}

	size := cfg.History.Capacity
	if size == 0 {
		size = -1
	}
	rl, err = readline.NewEx(&readline.Config{
		Prompt:                 prompt(),
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		HistoryLimit:           size,
		DisableAutoSaveHistory: true,
		AutoComplete:           completer(sh),
	})
	if err != nil {
		sess.Close()
		return fmt.Errorf("error initializing readline: %w", err)
	}
	for _, line := range sess.history.All() {
		rl.SaveHistory(line)
	}
	sess.logger.Debug("session started", zap.Int("history", sess.history.Len()))

	for {
		rl.SetPrompt(prompt())
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := sh.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			continue
		}
		rl.SaveHistory(line)
	}
	rl.Close()
	return sess.Close()
}

func prompt() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}
	return strings.ReplaceAll(cfg.Shell.Prompt, "{cwd}", cwd)
}

func completer(sh *minish.Shell) readline.AutoCompleter {
	var items []readline.PrefixCompleterInterface
	for _, b := range sh.Builtins() {
		items = append(items, readline.PcItem(b.Name()))
	}
	return readline.NewPrefixCompleter(items...)
}
