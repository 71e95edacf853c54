package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10.0, cfg.Layout.Distance)
	assert.Equal(t, 2, cfg.Layout.Iterations)
	assert.Equal(t, 4.0, cfg.Layout.K)
	assert.Equal(t, 100, cfg.Centrality.Iterations)
	assert.True(t, cfg.Centrality.Directed)
	assert.Equal(t, 4, cfg.Paths.MaxLength)
	assert.False(t, cfg.Paths.Directed)
}

func TestParseTOMLKeepsMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte(`
[layout]
distance = 20
seed = 7
k = 0

[paths]
directed = true
`), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.Layout.Distance)
	assert.Equal(t, int64(7), cfg.Layout.Seed)
	assert.Equal(t, 4.0, cfg.Layout.K, "zero k falls back to the default")
	assert.Equal(t, 0.01, cfg.Layout.Force)
	assert.True(t, cfg.Paths.Directed)
	assert.Equal(t, 4, cfg.Paths.MaxLength)
	assert.True(t, cfg.Centrality.Normalized)
}

func TestParseYAMLKeepsMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("centrality:\n  iterations: 50\n  normalized: false\n"), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Centrality.Iterations)
	assert.False(t, cfg.Centrality.Normalized)
	assert.True(t, cfg.Centrality.Directed)
	assert.Equal(t, 10.0, cfg.Layout.Distance)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("layout:\n  distance: -1\n"), FormatYAML)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("[paths]\nmax_length = 1\n"), FormatTOML)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("[layout]\nlimit = -0.5\n"), FormatTOML)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("layout = ["), FormatTOML)
	require.Error(t, err)

	_, err = Parse(nil, "json")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	dir := t.TempDir()
	yml := filepath.Join(dir, "netgraph.yml")
	require.NoError(t, os.WriteFile(yml, []byte("paths:\n  max_length: 6\n"), 0o644))
	cfg, err = Load(yml)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Paths.MaxLength)

	_, err = Load(filepath.Join(dir, "netgraph.ini"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeParsesBack(t *testing.T) {
	want := Default()
	want.Layout.Seed = 99
	want.Paths.Directed = true

	for _, format := range []string{FormatTOML, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, want.Encode(&buf, format), format)
		got, err := Parse(buf.Bytes(), format)
		require.NoError(t, err, format)
		require.Equal(t, want, got, format)
	}

	require.ErrorIs(t, want.Encode(&bytes.Buffer{}, "xml"), ErrUnsupportedFormat)
}

func TestOptionAdapters(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.SpringOptions(), 4)
	assert.Len(t, cfg.EigenvectorOptions(), 4)
	assert.Len(t, cfg.BetweennessOptions(), 2)
}
