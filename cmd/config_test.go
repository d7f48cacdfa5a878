package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadRunConfig_PartialFileKeepsDefaults(t *testing.T) {
	// GIVEN a file setting only two keys
	path := writeYAML(t, "nblock: 3\nactivity: 0.5\n")

	// WHEN loaded
	cfg, err := LoadRunConfig(path)

	// THEN those keys change and the rest keep their defaults
	require.NoError(t, err)
	want := DefaultRunConfig()
	want.NBlock = 3
	want.Activity = 0.5
	assert.Equal(t, want, cfg)
}

func TestLoadRunConfig_UnknownKeyRejected(t *testing.T) {
	// GIVEN a typo in a key name
	path := writeYAML(t, "nblocks: 3\n")

	// WHEN loaded
	_, err := LoadRunConfig(path)

	// THEN strict parsing reports it
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nblocks")
}

func TestLoadRunConfig_MissingFile(t *testing.T) {
	_, err := LoadRunConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr string
	}{
		{"defaults", func(*RunConfig) {}, ""},
		{"hard spheres", func(c *RunConfig) { c.Potential = "hs" }, ""},
		{"trace moves", func(c *RunConfig) { c.Trace = "moves" }, ""},
		{"negative nblock", func(c *RunConfig) { c.NBlock = -1 }, "nblock"},
		{"negative nstep", func(c *RunConfig) { c.NStep = -1 }, "nstep"},
		{"negative capacity", func(c *RunConfig) { c.Capacity = -5 }, "capacity"},
		{"empty input", func(c *RunConfig) { c.Input = "" }, "input"},
		{"unknown potential", func(c *RunConfig) { c.Potential = "morse" }, "unknown potential"},
		{"unknown trace", func(c *RunConfig) { c.Trace = "verbose" }, "trace level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
