package minish_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/minish"
)

func TestHistorySaveLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")
	src := makeHistory("echo hello world", "ls -la", "cd /tmp", "echo goodbye")
	require.NoError(t, src.Save(file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "echo hello world\nls -la\ncd /tmp\necho goodbye\n", string(data))

	dst := minish.NewHistory()
	require.NoError(t, dst.Load(file))
	assert.Equal(t, src.Lines(), dst.Lines())
}

func TestHistorySaveTruncates(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(file, []byte("old 1\nold 2\nold 3\n"), 0644))

	require.NoError(t, makeHistory("new").Save(file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestHistoryLoadCapacity(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")
	require.NoError(t, makeHistory("a", "b", "c", "d", "e").Save(file))

	dst := minish.NewHistoryWithCapacity(3)
	require.NoError(t, dst.Load(file))
	assert.Equal(t, []string{"c", "d", "e"}, dst.Lines())
}

func TestHistoryLoadSkipsEmptyLines(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(file, []byte("echo a\n\n\r\nls\r\npwd"), 0644))

	h := minish.NewHistory()
	require.NoError(t, h.Load(file))
	assert.Equal(t, []string{"echo a", "ls", "pwd"}, h.Lines())
}

func TestHistoryLoadMissing(t *testing.T) {
	h := minish.NewHistory()
	err := h.Load(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, minish.ErrIO))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestHistoryAppend(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")
	h := makeHistory("echo a", "echo b")

	require.NoError(t, h.Append(file))
	require.NoError(t, h.Append(file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "echo a\necho b\necho a\necho b\n", string(data))
}

func TestHistoryReadFromLossy(t *testing.T) {
	h := minish.NewHistory()
	input := []byte{'e', 'c', 'h', 'o', ' ', 0xff, '\n', 'l', 's', '\n'}
	n, err := h.ReadFrom(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, int64(len(input)), n)
	assert.Equal(t, []string{"echo \uFFFD", "ls"}, h.Lines())
}

func TestHistoryReadFromLongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<17)
	h := minish.NewHistory()
	_, err := h.ReadFrom(strings.NewReader(long + "\n"))
	require.NoError(t, err)
	line, ok := h.Get(0)
	require.True(t, ok)
	assert.Len(t, line, len(long))
}

func TestHistoryWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := makeHistory("a", "bc").WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, "a\nbc\n", buf.String())
}
