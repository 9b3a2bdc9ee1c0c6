package stdio

import (
	"bytes"
	"io"
	"os"

	"github.com/midbel/rw"
)

var replacement = []byte("\uFFFD")

// File returns the *os.File behind w, looking through writers that can be
// unwrapped.
func File(w io.Writer) (*os.File, bool) {
	if f, ok := w.(*os.File); ok {
		return f, true
	}
	u, ok := w.(rw.UnwrapWriter)
	if !ok {
		return nil, ok
	}
	f, ok := u.Unwrap().(*os.File)
	return f, ok
}

// WriteLossy writes buf to w with every invalid UTF-8 sequence replaced by
// the unicode replacement character.
func WriteLossy(w io.Writer, buf []byte) error {
	if w == nil || len(buf) == 0 {
		return nil
	}
	_, err := w.Write(bytes.ToValidUTF8(buf, replacement))
	return err
}
