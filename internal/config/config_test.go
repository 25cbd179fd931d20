package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RCoeurjoly/edea/marshal"
	"github.com/RCoeurjoly/edea/primitive"
	"github.com/RCoeurjoly/edea/sexpr"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
version: "1"
precision: 3
max_depth: 64
check:
  roundtrip: true
  jobs: 2
watch:
  debounce: 1.5s
`))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Version:   "1",
		Precision: 3,
		MaxDepth:  64,
		Check:     Check{RoundTrip: true, Jobs: 2},
		Watch:     Watch{Debounce: 1500 * time.Millisecond},
	}, cfg)
}

func TestParse_Defaults(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"empty mapping", "{}"},
		{"only check", "check: {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			assert.Equal(t, Default(), cfg)
			assert.Equal(t, "1", cfg.Version)
			assert.Equal(t, primitive.DefaultPrecision, cfg.Precision)
			assert.Equal(t, sexpr.DefaultMaxDepth, cfg.MaxDepth)
			assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Check.Jobs)
			assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
		})
	}
}

func TestParse_ZeroPrecisionKept(t *testing.T) {
	cfg, err := Parse([]byte("precision: 0"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Precision)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "precison: 3", "precison"},
		{"unknown nested key", "check:\n  round_trip: true", "/check"},
		{"precision too large", "precision: 18", "/precision"},
		{"negative depth", "max_depth: 0", "/max_depth"},
		{"unsupported version", `version: "2"`, "/version"},
		{"bad duration", "watch:\n  debounce: soon", "/watch/debounce"},
		{"wrong type", "check:\n  jobs: many", "/check/jobs"},
		{"fractional precision", "precision: 2.5", "/precision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestJSONValue(t *testing.T) {
	v, err := jsonValue(map[string]any{"precision": 3, "check": map[string]any{"roundtrip": true}})
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("3"), m["precision"])
	assert.Equal(t, map[string]any{"roundtrip": true}, m["check"])
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("check: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kicadfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Precision)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("precision: 40\n"), 0o644))
	_, err = Load(path)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_DefaultFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestCatalogOptions(t *testing.T) {
	cfg := Default()
	cfg.MaxDepth = 8

	cat, err := marshal.NewCatalog(cfg.CatalogOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 8, cat.MaxDepth())
}
