package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestAction_Stdout(t *testing.T) {
	templates := t.TempDir()
	content := "<b>{{formatPrice price}}</b>{{#if hasParking}}<i>{{parkingPrice}}万</i>{{/if}}"
	require.NoError(t, os.WriteFile(filepath.Join(templates, "house-poster.html"), []byte(content), 0o600))

	var out bytes.Buffer
	app := &cli.Command{
		Name:     "poster",
		Writer:   &out,
		Commands: []*cli.Command{Command},
	}

	err := app.Run(context.Background(), []string{
		"poster", "render", "--template-dir", templates, "--log-level", "error", "--sample", "--stdout", "house-poster",
	})
	require.NoError(t, err)
	assert.Equal(t, "<b>268万</b><i>25万</i>", out.String())
}

func TestLoadRecord(t *testing.T) {
	_, err := loadRecord("", false)
	require.ErrorIs(t, err, errMissingData)

	rec, err := loadRecord("", true)
	require.NoError(t, err)
	assert.Equal(t, 268, rec["price"])

	path := filepath.Join(t.TempDir(), "house.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"price": 999}`), 0o600))
	rec, err = loadRecord(path, true)
	require.NoError(t, err)
	assert.Equal(t, int64(999), rec["price"], "data file wins over --sample")
}
