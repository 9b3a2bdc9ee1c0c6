package minish

import (
	"iter"
	"strings"

	"github.com/midbel/minish/internal/ring"
)

const DefaultCapacity = 1000

type Direction int8

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// Match is the result of a history search. Pos is the byte offset in Text
// where the search term was found, or the length of the term for prefix
// searches.
type Match struct {
	Index int
	Text  string
	Pos   int
}

// History is a bounded log of executed command lines, oldest first.
//
// A History is owned by a single session and is not safe for concurrent use.
type History struct {
	list ring.Ring[string]
}

func NewHistory() *History {
	return NewHistoryWithCapacity(DefaultCapacity)
}

func NewHistoryWithCapacity(capacity int) *History {
	return &History{
		list: ring.New[string](capacity),
	}
}

// Push appends line and reports whether the oldest record was evicted to
// make room for it.
func (h *History) Push(line string) bool {
	return h.list.Push(line)
}

// Add behaves like Push but refuses empty lines.
func (h *History) Add(line string) bool {
	if line == "" {
		return false
	}
	h.list.Push(line)
	return true
}

func (h *History) Len() int {
	return h.list.Len()
}

func (h *History) IsEmpty() bool {
	return h.list.Len() == 0
}

func (h *History) Capacity() int {
	return h.list.Cap()
}

// SetCapacity changes the bound of the history. Records are evicted from
// the front until the history fits and the number of evicted records is
// returned.
func (h *History) SetCapacity(capacity int) int {
	return h.list.Resize(capacity)
}

func (h *History) Clear() {
	h.list.Clear()
}

func (h *History) Get(index int) (string, bool) {
	return h.list.At(index)
}

// All yields every record with its zero-based index, oldest first.
func (h *History) All() iter.Seq2[int, string] {
	return h.list.All()
}

func (h *History) Lines() []string {
	list := make([]string, 0, h.Len())
	for _, line := range h.All() {
		list = append(list, line)
	}
	return list
}

// Search looks for the first record containing term, starting at index start
// and moving in the given direction.
func (h *History) Search(term string, start int, dir Direction) (Match, bool) {
	return h.search(term, start, dir, func(line string) (int, bool) {
		pos := strings.Index(line, term)
		return pos, pos >= 0
	})
}

// StartsWith looks for the first record beginning with term, starting at
// index start and moving in the given direction.
func (h *History) StartsWith(term string, start int, dir Direction) (Match, bool) {
	return h.search(term, start, dir, func(line string) (int, bool) {
		return len(term), strings.HasPrefix(line, term)
	})
}

func (h *History) search(term string, start int, dir Direction, match func(string) (int, bool)) (Match, bool) {
	if term == "" || start < 0 || start >= h.Len() {
		return Match{}, false
	}
	var step int
	switch dir {
	case Forward:
		step = 1
	case Reverse:
		step = -1
	default:
		return Match{}, false
	}
	for i := start; i >= 0 && i < h.Len(); i += step {
		line, _ := h.list.At(i)
		if pos, ok := match(line); ok {
			m := Match{
				Index: i,
				Text:  line,
				Pos:   pos,
			}
			return m, true
		}
	}
	return Match{}, false
}
