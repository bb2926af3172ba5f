package record_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251014-go-pkg-poster/pkg/posterexp"
	"github.com/lwmacct/251014-go-pkg-poster/pkg/record"
)

func TestLoad_Formats(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"house.yaml": "price: 268\narea: 89.5\nhasParking: true\ntaxFree: 'true'\n",
		"house.json": `{"price": 268, "area": 89.5, "hasParking": true, "taxFree": "true"}`,
		"house.toml": "price = 268\narea = 89.5\nhasParking = true\ntaxFree = 'true'\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			rec, err := record.Load(path)
			require.NoError(t, err)

			got := posterexp.Expand("{{formatPrice price}}|{{area}}|{{#if hasParking}}P{{/if}}|{{taxFree}}", rec)
			assert.Equal(t, "268万|89.5|P|true", got)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := record.Load(filepath.Join(dir, "house.txt"))
	require.ErrorIs(t, err, record.ErrUnsupportedFormat)

	_, err = record.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")

	nested := filepath.Join(dir, "nested.yaml")
	require.NoError(t, os.WriteFile(nested, []byte("owner:\n  name: li\n"), 0o600))
	_, err = record.Load(nested)
	require.ErrorIs(t, err, record.ErrNotFlat)
	assert.Contains(t, err.Error(), "owner")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		format  record.Format
		content string
		want    posterexp.Record
		wantErr error
	}{
		{
			name:    "empty content",
			format:  record.FormatJSON,
			content: "  \n",
			want:    posterexp.Record{},
		},
		{
			name:    "json numbers normalized",
			format:  record.FormatJSON,
			content: `{"price": 12345, "area": 89.5}`,
			want:    posterexp.Record{"price": int64(12345), "area": 89.5},
		},
		{
			name:    "json array rejected",
			format:  record.FormatJSON,
			content: `{"tags": ["a"]}`,
			wantErr: record.ErrNotFlat,
		},
		{
			name:    "unknown format",
			format:  record.Format("xml"),
			content: `<a/>`,
			wantErr: record.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := record.Parse(tt.format, []byte(tt.content))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_YAML(t *testing.T) {
	rec, err := record.Decode(strings.NewReader("layout: 3室2厅\nfloor: 15/30\n"), record.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, posterexp.Record{"layout": "3室2厅", "floor": "15/30"}, rec)
}

func TestFormatFromContentType(t *testing.T) {
	tests := map[string]record.Format{
		"":                                record.FormatJSON,
		"application/json; charset=utf-8": record.FormatJSON,
		"application/yaml":                record.FormatYAML,
		"text/toml":                       record.FormatTOML,
	}
	for contentType, want := range tests {
		got, err := record.FormatFromContentType(contentType)
		require.NoError(t, err, contentType)
		assert.Equal(t, want, got, contentType)
	}

	_, err := record.FormatFromContentType("image/png")
	require.ErrorIs(t, err, record.ErrUnsupportedFormat)
}

func TestSample(t *testing.T) {
	rec := record.Sample()
	require.NoError(t, record.Validate(rec))
	assert.Equal(t, "268万", posterexp.FormatPrice(rec["price"]))
}
