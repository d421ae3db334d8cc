package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestImportWords(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Import("eng", []string{"zoo", "cat", "at", "cat", "cats"}))

	words, err := s.Words("eng")
	require.NoError(t, err)
	assert.Equal(t, []string{"at", "cat", "cats", "zoo"}, words)
}

func TestImportReplaces(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Import("eng", []string{"old"}))
	require.NoError(t, s.Import("eng", []string{"new", "newer"}))

	words, err := s.Words("eng")
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "newer"}, words)
}

func TestEmptyWord(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Import("odd", []string{"", "a"}))
	words, err := s.Words("odd")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a"}, words)
}

func TestNamesAndDelete(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Import("eng", []string{"a"}))
	require.NoError(t, s.Import("fra", []string{"le"}))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"eng", "fra"}, names)

	require.NoError(t, s.Delete("eng"))
	_, err = s.Words("eng")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete("eng"), ErrNotFound)
}

func TestImportNoName(t *testing.T) {
	s := openStore(t)
	assert.Error(t, s.Import("", []string{"a"}))
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Import("eng", []string{"b", "a"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	words, err := s.Words("eng")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, words)
}
