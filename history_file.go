package minish

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Save writes every record to file, one per line, replacing its content.
func (h *History) Save(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return h.flush(f)
}

// Append writes every record after the current content of file, creating it
// if needed. Records already present in the file are written again.
func (h *History) Append(file string) error {
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return h.flush(f)
}

// Load reads file line by line and adds every line to the history. Empty
// lines are skipped and capacity applies as for interactive input.
func (h *History) Load(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	if _, err := h.ReadFrom(f); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func (h *History) WriteTo(w io.Writer) (int64, error) {
	var (
		wb    = bufio.NewWriter(w)
		total int64
	)
	for _, line := range h.All() {
		n, err := wb.WriteString(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if err := wb.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}
	return total, wb.Flush()
}

// ReadFrom adds one record per line of r. Invalid UTF-8 sequences are
// replaced rather than rejected.
func (h *History) ReadFrom(r io.Reader) (int64, error) {
	var (
		rb    = bufio.NewReader(r)
		total int64
	)
	for {
		line, err := rb.ReadString('\n')
		total += int64(len(line))
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			h.Add(strings.ToValidUTF8(line, "\uFFFD"))
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

func (h *History) flush(f *os.File) error {
	_, err := h.WriteTo(f)
	if e := f.Close(); err == nil {
		err = e
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
