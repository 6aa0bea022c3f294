package iodataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iodataset"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maplesPath = "testdata/maples.yaml"

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		res  iodataset.Format
	}{
		{"key.yaml", iodataset.YAML},
		{"key.YML", iodataset.YAML},
		{"/tmp/key.sqlite", iodataset.SQLite},
		{"key.db", iodataset.SQLite},
		{"key.json", iodataset.UnknownFormat},
		{"key", iodataset.UnknownFormat},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, iodataset.FormatOf(v.path), v.path)
	}
	assert.Equal(t, "SQLite", iodataset.SQLite.String())
}

func TestLoadYAML(t *testing.T) {
	d, err := iodataset.Load(context.Background(), maplesPath)
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	assert.Len(t, d.Characters, 3)
	assert.Len(t, d.Taxa, 4)
	require.Len(t, d.Piles, 1)
	assert.Equal(t, "leaf_lobes", d.Characters[0].ShortName)
	assert.Equal(t, "5", d.Characters[0].Values[1].Value)
	assert.Equal(t, []int{12, 21, 31}, d.Taxa[1].ValueIDs)
	assert.Equal(t, "woody-angiosperms", d.Piles[0].Slug)
	assert.Equal(t, []int{11, 12, 21, 22}, d.Piles[0].ValueIDs)
}

func TestLoadUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := "characters: []\nspecies: []\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := iodataset.Load(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, errcode.DatasetReadError, codeOf(t, err))
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	_, err := iodataset.Load(ctx, "key.csv")
	assert.Equal(t, errcode.DatasetFormatError, codeOf(t, err))

	_, err = iodataset.Load(ctx, filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, errcode.DatasetReadError, codeOf(t, err))

	_, err = iodataset.Load(ctx, filepath.Join(t.TempDir(), "none.sqlite"))
	assert.Equal(t, errcode.DatasetReadError, codeOf(t, err))
}

// TestSQLiteRoundTrip checks that YAML and SQLite give the same dataset.
func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	d, err := iodataset.Load(ctx, maplesPath)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "maples.sqlite")
	err = iodataset.Write(ctx, d, path)
	require.NoError(t, err)

	res, err := iodataset.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, d, res)

	// writing again replaces the archive
	err = iodataset.Write(ctx, d, path)
	require.NoError(t, err)
	res, err = iodataset.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, d.Stats(), res.Stats())
}

func TestYAMLRoundTrip(t *testing.T) {
	ctx := context.Background()
	d, err := iodataset.Load(ctx, maplesPath)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "maples.yml")
	err = iodataset.Write(ctx, d, path)
	require.NoError(t, err)

	res, err := iodataset.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, d, res)
}

func TestRows(t *testing.T) {
	d, err := iodataset.Load(context.Background(), maplesPath)
	require.NoError(t, err)

	stats := d.Stats()
	for table, count := range stats {
		assert.Len(t, iodataset.Rows(d, table), count, table)
	}

	rows := iodataset.Rows(d, "character_values")
	assert.Equal(t, []any{12, 1, "5"}, rows[1])
	assert.Nil(t, iodataset.Rows(d, "unknown"))
}

func codeOf(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be *gn.Error")
	return gnErr.Code
}
