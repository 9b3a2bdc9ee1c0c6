package minish

import (
	"maps"
	"slices"
	"strings"
)

var builtins = map[string]Builtin{
	"echo": {
		Usage: "echo [arg...]",
		Short: "echo the string(s) to standard output",
		Call:  runEcho,
	},
	"exit": {
		Usage: "exit",
		Short: "exit the shell",
		Call:  runExit,
	},
	"pwd": {
		Usage: "pwd",
		Short: "print the name of the current working directory",
		Call:  runPwd,
	},
	"cd": {
		Usage: "cd [dir]",
		Short: "change the working directory",
		Call:  runCd,
	},
	"history": {
		Usage: "history",
		Short: "display the list of executed commands",
		Call:  runHistory,
	},
	"type": {
		Usage: "type <name>",
		Short: "display information about command type",
		Call:  runType,
	},
}

type Builtin struct {
	Usage string
	Short string
	Call  func(*Builtin) error

	*Shell
	Args []string
}

func (b *Builtin) Name() string {
	i := strings.Index(b.Usage, " ")
	if i <= 0 {
		return b.Usage
	}
	return b.Usage[:i]
}

// Registry maps command names to builtins.
type Registry map[string]Builtin

func DefaultRegistry() Registry {
	return maps.Clone(builtins)
}

func (r Registry) Exists(name string) bool {
	_, ok := r[name]
	return ok
}

func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Builtins returns the builtins known by the shell sorted by name.
func (s *Shell) Builtins() []Builtin {
	var list []Builtin
	for _, n := range s.builtins.Names() {
		list = append(list, s.builtins[n])
	}
	return list
}

func (s *Shell) IsBuiltin(name string) bool {
	return s.builtins.Exists(name)
}

// Dispatch runs the builtin registered under name with the given arguments.
func (s *Shell) Dispatch(name string, args []string) error {
	b, ok := s.builtins[name]
	if !ok || b.Call == nil {
		return failure(name, ErrUnknownBuiltin, nil)
	}
	b.Shell = s
	b.Args = slices.Clone(args)
	return b.Call(&b)
}
