package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	m, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "words_eng.txt", m.Get().Dictionary.Path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk Config
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, m.Get().Server.Addr, onDisk.Server.Addr)
	assert.Equal(t, Duration(10*time.Minute), onDisk.Cache.TTL)
	assert.Contains(t, string(raw), `"ttl": "10m0s"`)
	assert.Equal(t, 64, onDisk.Server.MaxLetters)
}

func TestNew_ReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"log_level": "debug"},
		"dictionary": {"path": "other.txt", "fold_case": true}
	}`), 0644))

	m, err := New(path)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "other.txt", cfg.Dictionary.Path)
	assert.True(t, cfg.Dictionary.FoldCase)
	// fields absent from the file keep their defaults
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "bad_json", json: `{`},
		{name: "bad_level", json: `{"app": {"log_level": "loud"}}`},
		{name: "no_source", json: `{"dictionary": {"path": ""}}`},
		{name: "db_without_name", json: `{"dictionary": {"db": "words.db", "name": ""}}`},
		{name: "half_limiter", json: `{"server": {"limiter": {"requests": 5, "per": 0}}}`},
		{name: "bad_cache", json: `{"cache": {"size": 10, "ttl": 0}}`},
		{name: "zero_ttl_string", json: `{"cache": {"size": 10, "ttl": "0s"}}`},
		{name: "bad_duration", json: `{"cache": {"ttl": "ten minutes"}}`},
		{name: "duration_type", json: `{"server": {"limiter": {"requests": 5, "per": true}}}`},
		{name: "max_letters_zero", json: `{"server": {"max_letters": 0}}`},
		{name: "max_letters_negative", json: `{"server": {"max_letters": -1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.json), 0644))

			_, err := New(path)
			assert.Error(t, err)
		})
	}
}

func TestNew_Durations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"limiter": {"requests": 5, "per": "2s"}},
		"cache": {"size": 10, "ttl": 1500000000}
	}`), 0644))

	m, err := New(path)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, 2*time.Second, cfg.Server.Limiter.Per.Std())
	// bare numbers are nanoseconds
	assert.Equal(t, 1500*time.Millisecond, cfg.Cache.TTL.Std())
}

func TestDuration_JSON(t *testing.T) {
	raw, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(raw))

	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"250ms"`), &d))
	assert.Equal(t, 250*time.Millisecond, d.Std())

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &d))
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m, err := New(path)
	require.NoError(t, err)

	require.NoError(t, m.Update(func(cfg *Config) {
		cfg.Build.Parallelism = 3
	}))
	assert.Equal(t, 3, m.Get().Build.Parallelism)

	reloaded, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.Get().Build.Parallelism)

	err = m.Update(func(cfg *Config) {
		cfg.Cache.Size = -1
	})
	assert.Error(t, err)
	assert.Equal(t, 10_000, m.Get().Cache.Size)
}

func TestNewDefault(t *testing.T) {
	m := NewDefault()
	require.NoError(t, m.Update(func(cfg *Config) {
		cfg.Server.Addr = ":9999"
	}))
	assert.Equal(t, ":9999", m.Get().Server.Addr)
}
