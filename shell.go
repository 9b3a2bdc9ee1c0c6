package minish

import (
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type CommandType int8

const (
	TypeUnknown CommandType = iota
	TypeBuiltin
	TypeExternal
)

func (c CommandType) String() string {
	switch c {
	case TypeBuiltin:
		return "BUILTIN"
	case TypeExternal:
		return "EXTERNAL"
	default:
		return "UNKNOWN COMMAND"
	}
}

// Recorder receives every line added to the history of a shell.
type Recorder interface {
	Record(line string) error
}

type RecorderFunc func(string) error

func (f RecorderFunc) Record(line string) error {
	return f(line)
}

// Shell resolves command lines to builtins or external programs, runs them
// and records the lines that succeeded in its history.
//
// A Shell runs one command at a time and must not be shared between
// goroutines.
type Shell struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	builtins Registry
	finder   Finder
	history  *History
	recorder Recorder
	logger   *zap.Logger

	exit   func(int)
	strict bool
}

func NewShell(options ...ShellOption) (*Shell, error) {
	s := Shell{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		builtins: DefaultRegistry(),
		finder:   PathFinder(),
		history:  NewHistory(),
		logger:   zap.NewNop(),
		exit:     os.Exit,
	}
	for _, o := range options {
		if err := o(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (s *Shell) History() *History {
	return s.history
}

// Split breaks a command line into the command name and its arguments.
func Split(line string) (string, []string) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return "", nil
	}
	return words[0], words[1:]
}

// Lookup reports how name would be run. Builtins take precedence over
// programs found on the search path.
func (s *Shell) Lookup(name string) CommandType {
	if s.IsBuiltin(name) {
		return TypeBuiltin
	}
	if s.finder.Exists(name) {
		return TypeExternal
	}
	return TypeUnknown
}

// Execute runs a single command line. The line is recorded in the history
// only when the command succeeds.
func (s *Shell) Execute(line string) error {
	line = strings.TrimSpace(line)
	name, args := Split(line)
	if name == "" {
		return failure("", ErrCommandNotFound, nil)
	}
	var err error
	if s.IsBuiltin(name) {
		s.logger.Debug("dispatch builtin", zap.String("command", name), zap.Strings("args", args))
		err = s.Dispatch(name, args)
	} else {
		err = s.runExternal(name, args)
	}
	if err != nil {
		s.logger.Debug("command failed", zap.String("command", name), zap.Error(err))
		return err
	}
	s.record(line)
	return nil
}

func (s *Shell) runExternal(name string, args []string) error {
	path, ok := s.finder.Lookup(name)
	if !ok {
		return failure(name, ErrCommandNotFound, nil)
	}
	s.logger.Debug("run external", zap.String("command", name), zap.String("path", path), zap.Strings("args", args))
	e := External{
		Name:   name,
		Path:   path,
		Args:   args,
		Stdin:  s.Stdin,
		Stdout: s.Stdout,
		Stderr: s.Stderr,
	}
	code, err := e.Run()
	if err != nil {
		return err
	}
	if code != 0 {
		s.logger.Debug("external exited with non zero status", zap.String("command", name), zap.Int("code", code))
		if s.strict {
			return failure(name, ErrExternalFailed, exitStatus(code))
		}
	}
	return nil
}

func (s *Shell) record(line string) {
	if s.history.Push(line) {
		s.logger.Debug("history full, oldest record evicted", zap.Int("capacity", s.history.Capacity()))
	}
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(line); err != nil {
		s.logger.Warn("fail to record command", zap.String("line", line), zap.Error(err))
	}
}

type exitStatus int

func (e exitStatus) Error() string {
	return "exit status " + strconv.Itoa(int(e))
}
