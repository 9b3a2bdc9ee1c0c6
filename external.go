package minish

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/midbel/minish/internal/stdio"
)

// Finder locates programs on a search path. The zero value reads the PATH
// environment variable on every lookup.
type Finder struct {
	dirs  []string
	fixed bool
}

func PathFinder() Finder {
	return Finder{}
}

func NewFinder(dirs []string) Finder {
	return Finder{
		dirs:  append([]string(nil), dirs...),
		fixed: true,
	}
}

func (f Finder) Dirs() []string {
	if f.fixed {
		return f.dirs
	}
	return filepath.SplitList(os.Getenv("PATH"))
}

// Lookup returns the path used to run name. A name containing a path
// separator is taken as is; otherwise the directories are scanned in order
// and the first regular file named name wins.
func (f Finder) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		_, err := os.Stat(name)
		return name, err == nil
	}
	isFile := func(path string) bool {
		i, err := os.Stat(path)
		return err == nil && i.Mode().IsRegular()
	}
	for _, d := range f.Dirs() {
		if d == "" {
			d = "."
		}
		p := filepath.Join(d, name)
		if !isFile(p) {
			continue
		}
		if !strings.ContainsRune(p, filepath.Separator) {
			p = "." + string(filepath.Separator) + p
		}
		return p, true
	}
	return "", false
}

func (f Finder) Exists(name string) bool {
	_, ok := f.Lookup(name)
	return ok
}

// External runs a program as a child process. The standard output of the
// child is captured and written to Stdout once the child has terminated.
type External struct {
	Name string
	Path string
	Args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the program and waits for it. It returns the exit code of the
// child; a non zero code is not an error.
func (e *External) Run() (int, error) {
	cmd := exec.Command(e.Path, e.Args...)
	if e.Name != "" {
		cmd.Args[0] = e.Name
	}
	cmd.Stdin = e.Stdin

	var (
		grp errgroup.Group
		out bytes.Buffer
	)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, failure(e.Name, ErrIO, err)
	}
	var stderr io.Reader
	if f, ok := stdio.File(e.Stderr); ok {
		cmd.Stderr = f
	} else if e.Stderr != nil {
		if stderr, err = cmd.StderrPipe(); err != nil {
			return 0, failure(e.Name, ErrIO, err)
		}
	}
	if err := cmd.Start(); err != nil {
		return 0, failure(e.Name, ErrCommandNotFound, err)
	}
	grp.Go(func() error {
		_, err := io.Copy(&out, stdout)
		return err
	})
	if stderr != nil {
		grp.Go(func() error {
			_, err := io.Copy(e.Stderr, stderr)
			if err != nil {
				io.Copy(io.Discard, stderr)
			}
			return err
		})
	}
	errcp := grp.Wait()
	err = cmd.Wait()

	var exit *exec.ExitError
	if err != nil && !errors.As(err, &exit) {
		return 0, failure(e.Name, ErrIO, err)
	}
	if errcp != nil {
		return 0, failure(e.Name, ErrIO, errcp)
	}
	if err := stdio.WriteLossy(e.Stdout, out.Bytes()); err != nil {
		return 0, failure(e.Name, ErrIO, err)
	}
	return cmd.ProcessState.ExitCode(), nil
}
