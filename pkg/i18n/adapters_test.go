package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

func TestMapSourceSortedOrder(t *testing.T) {
	src := &i18n.MapSource{
		Data: map[string]i18n.Catalog{
			"tr": {"farewell": "Hoşça kal"},
			"en": {"farewell": "Bye"},
			"de": {"farewell": "Tschüss"},
		},
	}

	_, order, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "tr"}, order)
}

func TestMapSourceExplicitOrder(t *testing.T) {
	src := &i18n.MapSource{
		Data: map[string]i18n.Catalog{
			"tr": {"farewell": "Hoşça kal"},
			"en": {"farewell": "Bye"},
		},
		Order: []string{"tr", "en"},
	}

	_, order, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"tr", "en"}, order)
}

func TestDirSourceLoadsJSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"),
		[]byte(`{"farewell": "Bye"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tr.yml"),
		[]byte("farewell: Hoşça kal\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"),
		[]byte("not a catalog"), 0o644))

	src := i18n.NewDirSource(dir)
	catalogs, order, err := src.Load(context.Background())
	require.NoError(t, err)

	// os.ReadDir sorts entries by name; the txt file is not a catalog.
	assert.Equal(t, []string{"en", "tr"}, order)
	assert.Equal(t, "Bye", catalogs["en"]["farewell"])
	assert.Equal(t, "Hoşça kal", catalogs["tr"]["farewell"])
}

func TestDirSourceSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"),
		[]byte(`{"farewell": "Bye"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"),
		[]byte(`{not json`), 0o644))

	src := i18n.NewDirSource(dir)
	catalogs, order, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"en"}, order)
	assert.Len(t, catalogs, 1)
}

func TestDirSourceSeedsDefaultsWhenEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "locales")

	src := i18n.NewDirSource(dir)
	catalogs, order, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "tr"}, order)
	require.Contains(t, catalogs, "en")
	require.Contains(t, catalogs, "tr")

	// Defaults are persisted back so operators have files to edit.
	assert.FileExists(t, filepath.Join(dir, "en.json"))
	assert.FileExists(t, filepath.Join(dir, "tr.json"))
}

func TestDirSourceContextCancelled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"),
		[]byte(`{"farewell": "Bye"}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := i18n.NewDirSource(dir)
	_, _, err := src.Load(ctx)
	require.ErrorIs(t, err, i18n.ErrCatalogLoadCancelled)
}

func TestNewDirSourceEmptyPath(t *testing.T) {
	assert.Nil(t, i18n.NewDirSource(""))
}
