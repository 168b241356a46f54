package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidatesWithSchema(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SchemaFile = "schema.yaml"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ModeRows, cfg.Mode)
	assert.Equal(t, "stdout", cfg.Output.Type)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SchemaFile = "schema.yaml"

	cfg.Mode = "streams"
	assert.Error(t, cfg.Validate())
	cfg.Mode = ModeRows

	cfg.Count = -1
	assert.Error(t, cfg.Validate())
	cfg.Count = 10

	cfg.SchemaFile = ""
	assert.Error(t, cfg.Validate())
	cfg.SchemaFile = "schema.yaml"

	cfg.Output.Type = "file"
	cfg.Output.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.Output.Type = "s3"
	assert.Error(t, cfg.Validate())
	cfg.Output.S3.Bucket = "b"
	assert.NoError(t, cfg.Validate())
}

func TestValidateProviders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SchemaFile = "schema.yaml"

	cfg.Providers = []ProviderConfig{{Name: "dept"}}
	assert.Error(t, cfg.Validate())

	cfg.Providers = []ProviderConfig{{Name: "dept", Options: []string{"a", "b"}, Weights: []uint64{1}}}
	assert.Error(t, cfg.Validate())

	cfg.Providers = []ProviderConfig{{Name: "dept", Options: []string{"a", "b"}, Weights: []uint64{3, 1}}}
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := []byte(`
seed: 42
locale: en_US
count: 500
mode: columns
chunk_size: 100
schema_file: schema.yaml
output:
  type: file
  path: out.jsonl
  compress: true
providers:
  - name: dept
    options: [eng, sales]
`)
	require.NoError(t, os.WriteFile(path, doc, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 500, cfg.Count)
	assert.Equal(t, ModeColumns, cfg.Mode)
	assert.Equal(t, 100, cfg.ChunkSize)
	assert.True(t, cfg.Output.Compress)
	require.Len(t, cfg.Providers, 1)
	assert.Equal(t, "dept", cfg.Providers[0].Name)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	doc := []byte(`{"seed": 7, "count": 3, "schema_file": "s.yaml"}`)
	require.NoError(t, os.WriteFile(path, doc, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.Count)
	// Defaults survive partial documents.
	assert.Equal(t, "en_US", cfg.Locale)
}

func TestLoadFromFileRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FABRICA_SEED", "99")
	t.Setenv("FABRICA_MODE", "tuples")
	t.Setenv("FABRICA_OUTPUT_TYPE", "sqlite")
	t.Setenv("FABRICA_OUTPUT_PATH", "out.db")
	t.Setenv("FABRICA_OUTPUT_COMPRESS", "1")

	cfg := DefaultConfig()
	LoadFromEnv(cfg)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, ModeTuples, cfg.Mode)
	assert.Equal(t, "sqlite", cfg.Output.Type)
	assert.Equal(t, "out.db", cfg.Output.Path)
	assert.True(t, cfg.Output.Compress)
}

func TestResolveSetsSpoolDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Type = "s3"
	cfg.Resolve()
	assert.NotEmpty(t, cfg.Output.SpoolDir)
}
