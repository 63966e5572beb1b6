package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLinesMissingFileIsEmptyStore(t *testing.T) {
	f := NewFile(t.TempDir(), "nope.txt")

	lines, err := f.ReadLines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadLinesSkipsBlanksAndTrimsCR(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, StudentsFile), []byte("a,b,c\r\n\n  \nd,e,f\n"), 0o644)
	require.NoError(t, err)

	f := NewFile(dir, StudentsFile)
	lines, err := f.ReadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"a,b,c", "d,e,f"}, lines)
}

func TestAppendCreatesAndGrowsFile(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(dir, AttendanceFile)

	require.NoError(t, f.Append("one"))
	require.NoError(t, f.Append("two", "three"))

	lines, err := f.ReadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestRewriteSwapsWholeContent(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(dir, HolidaysFile)
	require.NoError(t, f.Append("old-1", "old-2"))

	require.NoError(t, f.Rewrite([]string{"new-only"}))

	lines, err := f.ReadLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"new-only"}, lines)

	// No temp files are left behind after the swap.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, HolidaysFile, entries[0].Name())
}

func TestRewriteToEmpty(t *testing.T) {
	f := NewFile(t.TempDir(), HolidaysFile)
	require.NoError(t, f.Append("gone"))
	require.NoError(t, f.Rewrite(nil))

	lines, err := f.ReadLines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}
