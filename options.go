package minish

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

type ShellOption func(*Shell) error

func WithStdin(r io.Reader) ShellOption {
	return func(s *Shell) error {
		s.Stdin = r
		return nil
	}
}

func WithStdout(w io.Writer) ShellOption {
	return func(s *Shell) error {
		s.Stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) ShellOption {
	return func(s *Shell) error {
		s.Stderr = w
		return nil
	}
}

func WithLogger(logger *zap.Logger) ShellOption {
	return func(s *Shell) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		s.logger = logger
		return nil
	}
}

func WithHistory(h *History) ShellOption {
	return func(s *Shell) error {
		if h == nil {
			return errors.New("history must not be nil")
		}
		s.history = h
		return nil
	}
}

func WithCapacity(capacity int) ShellOption {
	return func(s *Shell) error {
		if capacity < 0 {
			return errors.New("history capacity must not be negative")
		}
		s.history.SetCapacity(capacity)
		return nil
	}
}

// WithRecorder registers r to receive every line added to the history.
func WithRecorder(r Recorder) ShellOption {
	return func(s *Shell) error {
		s.recorder = r
		return nil
	}
}

// WithExit replaces the function called by the exit builtin. The function
// is expected to terminate the process.
func WithExit(exit func(int)) ShellOption {
	return func(s *Shell) error {
		if exit == nil {
			return errors.New("exit function must not be nil")
		}
		s.exit = exit
		return nil
	}
}

// WithPath replaces the search path read from the environment.
func WithPath(dirs ...string) ShellOption {
	return func(s *Shell) error {
		s.finder = NewFinder(dirs)
		return nil
	}
}

// WithStrictExit makes programs terminating with a non zero status fail with
// ErrExternalFailed.
func WithStrictExit(strict bool) ShellOption {
	return func(s *Shell) error {
		s.strict = strict
		return nil
	}
}
