package options_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-caster/options"
	"schema-caster/primitive"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := options.Parse([]byte(`
cache_size: 16
categories: [safe_number, text_number, unsafe_array]
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.CacheSize)

	set, err := cfg.CategorySet()
	require.NoError(t, err)
	assert.Equal(t, primitive.CategorySafeNumber|primitive.CategoryTextNumber|primitive.CategoryUnsafeArray, set)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := options.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, options.Default(), cfg)

	set, err := cfg.CategorySet()
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryDefault, set)

	cfg, err = options.Parse([]byte("categories: []\n"))
	require.NoError(t, err)
	set, err = cfg.CategorySet()
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryEnum(primitive.CategoryNone), set)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		err  string
	}{
		{"unknown key", "cache: 1\n", "field cache not found"},
		{"negative cache", "cache_size: -1\n", "cache_size must not be negative, got -1"},
		{"unknown category", "categories: [fast]\n", `unknown conversion category "fast"`},
		{"bad level", "log_level: loud\n", `invalid log_level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := options.Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "caster.yaml")
	data, err := options.Marshal(options.Config{CacheSize: 8, Categories: []string{"all"}, LogLevel: "warn"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := options.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.CacheSize)

	set, err := cfg.CategorySet()
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryEnum(primitive.CategoryAll), set)

	_, err = options.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")
}
