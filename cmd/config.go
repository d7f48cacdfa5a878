package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zvt-sim/zvt-sim/sim/potential"
	"github.com/zvt-sim/zvt-sim/sim/trace"
)

// RunConfig is the YAML run configuration. Every key has a matching flag on
// the run command; a flag overrides the file only when set explicitly.
type RunConfig struct {
	NBlock          int     `yaml:"nblock"`
	NStep           int     `yaml:"nstep"`
	Temperature     float64 `yaml:"temperature"`
	Activity        float64 `yaml:"activity"`
	ProbMove        float64 `yaml:"prob_move"`
	CutoffRadius    float64 `yaml:"r_cut"`
	MaxDisplacement float64 `yaml:"dr_max"`
	Potential       string  `yaml:"potential"`
	Seed            int64   `yaml:"seed"`
	Capacity        int     `yaml:"capacity"` // 0 selects twice the initial particle count
	Input           string  `yaml:"input"`
	OutputDir       string  `yaml:"output_dir"`
	Trace           string  `yaml:"trace"`
}

// DefaultRunConfig returns the configuration used when neither a file nor a
// flag sets a key.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		NBlock:          10,
		NStep:           1000,
		Temperature:     1.0,
		Activity:        0.0795,
		ProbMove:        0.34,
		CutoffRadius:    2.5,
		MaxDisplacement: 0.15,
		Potential:       potential.NameLennardJones,
		Seed:            42,
		Input:           "cnf.inp",
		OutputDir:       ".",
		Trace:           string(trace.TraceLevelNone),
	}
}

// LoadRunConfig reads path over the defaults. Unknown keys are errors.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading run config: %w", err)
	}
	// Parse YAML with strict field checking: typos must cause errors
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the keys that do not depend on the input configuration.
// Box-dependent checks happen once the input file is read.
func (c RunConfig) Validate() error {
	if c.NBlock < 0 {
		return fmt.Errorf("nblock must be non-negative, got %d", c.NBlock)
	}
	if c.NStep < 0 {
		return fmt.Errorf("nstep must be non-negative, got %d", c.NStep)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must be non-negative, got %d", c.Capacity)
	}
	if c.Input == "" {
		return fmt.Errorf("input configuration path must not be empty")
	}
	if !potential.IsValidName(c.Potential) {
		return fmt.Errorf("unknown potential %q; valid: %v", c.Potential, potential.Names())
	}
	if !trace.IsValidTraceLevel(c.Trace) {
		return fmt.Errorf("unknown trace level %q; valid: none, moves", c.Trace)
	}
	return nil
}
