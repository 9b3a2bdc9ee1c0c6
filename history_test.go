package minish_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/minish"
)

func makeHistory(lines ...string) *minish.History {
	h := minish.NewHistory()
	for _, l := range lines {
		h.Push(l)
	}
	return h
}

func TestHistoryNew(t *testing.T) {
	h := minish.NewHistory()
	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Len())
	assert.Equal(t, minish.DefaultCapacity, h.Capacity())
}

func TestHistoryPush(t *testing.T) {
	h := minish.NewHistory()
	h.Push("echo hello")
	assert.Equal(t, 1, h.Len())
	assert.False(t, h.IsEmpty())

	h.Push("ls -la")
	assert.Equal(t, 2, h.Len())

	h.Push("")
	assert.Equal(t, 3, h.Len(), "push must keep empty lines")
}

func TestHistoryAdd(t *testing.T) {
	h := minish.NewHistory()
	assert.True(t, h.Add("test"))
	assert.Equal(t, 1, h.Len())

	assert.False(t, h.Add(""))
	assert.Equal(t, 1, h.Len())
}

func TestHistoryCapacityInvariant(t *testing.T) {
	for _, capacity := range []int{0, 1, 3, 7} {
		for total := 0; total <= 20; total += 3 {
			t.Run(fmt.Sprintf("%d-%d", capacity, total), func(t *testing.T) {
				var (
					h    = minish.NewHistoryWithCapacity(capacity)
					want []string
				)
				for i := 0; i < total; i++ {
					line := fmt.Sprintf("cmd %d", i)
					h.Push(line)
					want = append(want, line)
				}
				if n := len(want); n > capacity {
					want = want[n-capacity:]
				}
				require.Equal(t, min(total, capacity), h.Len())
				if diff := cmp.Diff(want, h.Lines(), cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("records mismatched (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestHistoryEviction(t *testing.T) {
	h := minish.NewHistory()
	for i := 0; i < minish.DefaultCapacity; i++ {
		require.False(t, h.Push(fmt.Sprintf("cmd %d", i)))
	}
	require.Equal(t, minish.DefaultCapacity, h.Len())

	assert.True(t, h.Push("newest"))
	require.Equal(t, minish.DefaultCapacity, h.Len())
	for _, line := range h.All() {
		assert.NotEqual(t, "cmd 0", line)
	}
	first, ok := h.Get(0)
	require.True(t, ok)
	assert.Equal(t, "cmd 1", first)
	last, ok := h.Get(h.Len() - 1)
	require.True(t, ok)
	assert.Equal(t, "newest", last)
}

func TestHistorySetCapacity(t *testing.T) {
	h := minish.NewHistory()
	for i := 0; i < 10; i++ {
		h.Add(fmt.Sprintf("cmd %d", i))
	}
	require.Equal(t, 10, h.Len())

	assert.Equal(t, 5, h.SetCapacity(5))
	assert.Equal(t, 5, h.Len())
	assert.Equal(t, 5, h.Capacity())
	assert.Equal(t, []string{"cmd 5", "cmd 6", "cmd 7", "cmd 8", "cmd 9"}, h.Lines())

	assert.Zero(t, h.SetCapacity(8))
	assert.Equal(t, 5, h.Len())
	h.Push("cmd 10")
	assert.Equal(t, 6, h.Len())

	assert.Equal(t, 6, h.SetCapacity(0))
	assert.Zero(t, h.Len())
	assert.False(t, h.Push("dropped"))
	assert.Zero(t, h.Len())
}

func TestHistoryClear(t *testing.T) {
	h := minish.NewHistoryWithCapacity(20)
	h.Add("test")
	require.False(t, h.IsEmpty())

	h.Clear()
	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Len())
	assert.Equal(t, 20, h.Capacity())
}

func TestHistoryGet(t *testing.T) {
	h := makeHistory("test entry")

	line, ok := h.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "test entry", line)

	_, ok = h.Get(1)
	assert.False(t, ok)
	_, ok = h.Get(-1)
	assert.False(t, ok)
}

func TestHistoryAllRestartable(t *testing.T) {
	h := makeHistory("first", "second")

	var first, second []string
	for _, line := range h.All() {
		first = append(first, line)
	}
	for i, line := range h.All() {
		assert.Equal(t, len(second), i)
		second = append(second, line)
	}
	assert.Equal(t, []string{"first", "second"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, h.Len())
}

func TestHistorySearch(t *testing.T) {
	h := makeHistory("echo hello world", "ls -la", "echo goodbye")

	data := []struct {
		Term  string
		Start int
		Dir   minish.Direction
		Found bool
		Want  minish.Match
	}{
		{
			Term:  "echo",
			Start: 0,
			Dir:   minish.Forward,
			Found: true,
			Want:  minish.Match{Index: 0, Text: "echo hello world", Pos: 0},
		},
		{
			Term:  "echo",
			Start: 2,
			Dir:   minish.Reverse,
			Found: true,
			Want:  minish.Match{Index: 2, Text: "echo goodbye", Pos: 0},
		},
		{
			Term:  "hello",
			Start: 0,
			Dir:   minish.Forward,
			Found: true,
			Want:  minish.Match{Index: 0, Text: "echo hello world", Pos: 5},
		},
		{
			Term:  "echo",
			Start: 1,
			Dir:   minish.Forward,
			Found: true,
			Want:  minish.Match{Index: 2, Text: "echo goodbye", Pos: 0},
		},
		{
			Term:  "echo",
			Start: 1,
			Dir:   minish.Reverse,
			Found: true,
			Want:  minish.Match{Index: 0, Text: "echo hello world", Pos: 0},
		},
		{
			Term:  "-la",
			Start: 2,
			Dir:   minish.Reverse,
			Found: true,
			Want:  minish.Match{Index: 1, Text: "ls -la", Pos: 3},
		},
		{
			Term:  "hello",
			Start: 1,
			Dir:   minish.Forward,
		},
		{
			Term:  "goodbye",
			Start: 1,
			Dir:   minish.Reverse,
		},
		{
			Term:  "",
			Start: 0,
			Dir:   minish.Forward,
		},
		{
			Term:  "echo",
			Start: 3,
			Dir:   minish.Reverse,
		},
		{
			Term:  "echo",
			Start: -1,
			Dir:   minish.Forward,
		},
	}
	for _, d := range data {
		t.Run(fmt.Sprintf("%s/%d/%s", d.Term, d.Start, d.Dir), func(t *testing.T) {
			m, ok := h.Search(d.Term, d.Start, d.Dir)
			require.Equal(t, d.Found, ok)
			if !ok {
				return
			}
			assert.Equal(t, d.Want, m)
			assert.LessOrEqual(t, m.Index, h.Len()-1)
			if d.Dir == minish.Reverse {
				assert.LessOrEqual(t, m.Index, d.Start)
			} else {
				assert.GreaterOrEqual(t, m.Index, d.Start)
			}
		})
	}
}

func TestHistoryStartsWith(t *testing.T) {
	h := makeHistory("echo hello", "ls -la", "echo ls")

	data := []struct {
		Term  string
		Start int
		Dir   minish.Direction
		Found bool
		Index int
	}{
		{Term: "echo", Start: 0, Dir: minish.Forward, Found: true, Index: 0},
		{Term: "ls", Start: 0, Dir: minish.Forward, Found: true, Index: 1},
		{Term: "echo", Start: 1, Dir: minish.Forward, Found: true, Index: 2},
		{Term: "echo", Start: 2, Dir: minish.Reverse, Found: true, Index: 2},
		{Term: "ls", Start: 2, Dir: minish.Reverse, Found: true, Index: 1},
		{Term: "ls", Start: 0, Dir: minish.Reverse},
		{Term: "hello", Start: 0, Dir: minish.Forward},
		{Term: "", Start: 0, Dir: minish.Forward},
		{Term: "echo", Start: 5, Dir: minish.Forward},
	}
	for _, d := range data {
		m, ok := h.StartsWith(d.Term, d.Start, d.Dir)
		if ok != d.Found {
			t.Errorf("%s/%d/%s: found mismatched! want %t, got %t", d.Term, d.Start, d.Dir, d.Found, ok)
			continue
		}
		if !ok {
			continue
		}
		if m.Index != d.Index {
			t.Errorf("%s/%d/%s: index mismatched! want %d, got %d", d.Term, d.Start, d.Dir, d.Index, m.Index)
		}
		if m.Pos != len(d.Term) {
			t.Errorf("%s/%d/%s: position mismatched! want %d, got %d", d.Term, d.Start, d.Dir, len(d.Term), m.Pos)
		}
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", minish.Forward.String())
	assert.Equal(t, "reverse", minish.Reverse.String())
	assert.Equal(t, "unknown", minish.Direction(9).String())
}
