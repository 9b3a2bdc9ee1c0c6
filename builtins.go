package minish

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

func runEcho(b *Builtin) error {
	fmt.Fprintln(b.Stdout, strings.Join(b.Args, " "))
	return nil
}

func runExit(b *Builtin) error {
	b.logger.Debug("exiting shell")
	b.exit(0)
	return nil
}

func runPwd(b *Builtin) error {
	cwd, err := os.Getwd()
	if err != nil {
		return failure(b.Name(), ErrIO, err)
	}
	fmt.Fprintln(b.Stdout, cwd)
	return nil
}

func runCd(b *Builtin) error {
	var dir string
	switch len(b.Args) {
	case 0:
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return failure(b.Name(), ErrNoHomeDirectory, err)
		}
		dir = home
	case 1:
		dir = b.Args[0]
	default:
		return failure(b.Name(), ErrInvalidArguments, errors.New("cd takes at most one path"))
	}
	if err := os.Chdir(dir); err != nil {
		return failure(b.Name(), ErrIO, err)
	}
	return nil
}

func runHistory(b *Builtin) error {
	for i, line := range b.history.All() {
		fmt.Fprintf(b.Stdout, "%d %s\n", i+1, line)
	}
	return nil
}

func runType(b *Builtin) error {
	if len(b.Args) == 0 || strings.TrimSpace(b.Args[0]) == "" {
		fmt.Fprintln(b.Stdout)
		return nil
	}
	name := b.Args[0]
	fmt.Fprintf(b.Stdout, "%s : %s\n", name, b.Lookup(name))
	return nil
}
