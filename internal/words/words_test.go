package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalises(t *testing.T) {
	l, err := New([]string{"  apple ", "Grape", "MANGO\r", "toolong", "four", "ab1de", "", "apple"})
	require.NoError(t, err)

	assert.Equal(t, []string{"APPLE", "GRAPE", "MANGO", "APPLE"}, l.Words())
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, "GRAPE", l.At(1))
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyList)

	_, err = New([]string{"no", "digits1", "     "})
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	l, err := New([]string{"APPLE", "GRAPE"})
	require.NoError(t, err)

	assert.True(t, l.Contains("APPLE"))
	assert.True(t, l.Contains("apple"))
	assert.True(t, l.Contains("GrApE"))
	assert.False(t, l.Contains("MANGO"))
	assert.False(t, l.Contains("APPL"))
}

func TestWordsReturnsCopy(t *testing.T) {
	l, err := New([]string{"APPLE", "GRAPE"})
	require.NoError(t, err)

	ws := l.Words()
	ws[0] = "XXXXX"
	assert.Equal(t, "APPLE", l.At(0))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("APPLE\n  grape  \n\nMANGO\n"), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "GRAPE", "MANGO"}, l.Words())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestDefault(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)
	require.Greater(t, l.Len(), 100)

	for _, w := range l.Words() {
		assert.Len(t, w, Length)
		assert.True(t, isAlpha(w), w)
	}
	for _, w := range []string{"APPLE", "GRAPE", "MANGO"} {
		assert.True(t, l.Contains(w), w)
	}
}
