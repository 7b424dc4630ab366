package assets

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordListIsUpperCase(t *testing.T) {
	list, err := WordList()
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, w := range list {
		assert.Equal(t, strings.ToUpper(w), w)
		assert.NotContains(t, w, "#")
		assert.Equal(t, strings.TrimSpace(w), w)
	}
}

func TestMigrationsAreEmbedded(t *testing.T) {
	migrations, err := Migrations()
	require.NoError(t, err)

	body, err := fs.ReadFile(migrations, "001_daily_marker.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "daily_marker")
}
