package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistaara/sutradhar/internal/layout"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `relayDir: relay
graphSource: site/data/constellation.js
tags:
  bravli: [bravli]
  watch: [mayapramana, deluvian]
structural: [samvaha]
childPrefixes: [pt-]
layout:
  algorithm: force
  seed: 42
verbose: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sutradhar.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "relay", cfg.RelayDir)
	assert.Equal(t, "site/data/constellation.js", cfg.GraphSource)
	assert.Equal(t, []string{"bravli"}, cfg.Tags["bravli"])
	assert.Equal(t, []string{"mayapramana", "deluvian"}, cfg.Tags["watch"])
	assert.Equal(t, layout.AlgorithmForce, cfg.Layout.Algorithm)
	assert.Equal(t, int64(42), cfg.Layout.Seed)
	assert.True(t, cfg.Verbose)

	tags := cfg.TagMap()
	assert.Equal(t, []string{"bravli"}, tags["bravli"])

	excl := cfg.Exclusions()
	assert.Equal(t, []string{"samvaha"}, excl.Structural)
	assert.Equal(t, []string{"pt-"}, excl.ChildPrefixes)
}

func TestLoad_YamlExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sutradhar.yaml"), []byte("relayDir: r\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "r", cfg.RelayDir)
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg, "missing config is not an error")
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sutradhar.yml"), []byte("relayDir: [\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
