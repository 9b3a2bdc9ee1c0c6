package minish

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBuiltin   = errors.New("unknown builtin")
	ErrCommandNotFound  = errors.New("command not found")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrNoHomeDirectory  = errors.New("home directory not found")
	ErrIO               = errors.New("i/o error")
	ErrExternalFailed   = errors.New("command failed")
)

// CommandError reports the failure of a single command. Kind is one of the
// sentinel errors of this package and Err, when set, the underlying cause.
type CommandError struct {
	Name string
	Kind error
	Err  error
}

func (e *CommandError) Error() string {
	msg := e.Kind.Error()
	if e.Err != nil {
		msg = e.Err.Error()
		if e.Kind == ErrIO {
			msg = fmt.Sprintf("%s: %s", e.Kind, e.Err)
		}
	}
	if e.Name == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Name, msg)
}

func (e *CommandError) Unwrap() []error {
	list := []error{e.Kind}
	if e.Err != nil {
		list = append(list, e.Err)
	}
	return list
}

func failure(name string, kind, err error) error {
	return &CommandError{
		Name: name,
		Kind: kind,
		Err:  err,
	}
}
