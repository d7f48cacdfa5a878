package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/zvt-sim/zvt-sim/sim"
	"github.com/zvt-sim/zvt-sim/sim/cnf"
	"github.com/zvt-sim/zvt-sim/sim/potential"
	"github.com/zvt-sim/zvt-sim/sim/stats"
	"github.com/zvt-sim/zvt-sim/sim/trace"
)

var (
	// CLI flags for the run command
	configPath string    // Optional YAML run configuration
	logLevel   string    // Log verbosity level
	flagCfg    RunConfig // Flag values; applied over the YAML file only when Changed()

	// CLI flags for the lattice command
	latticeCells   int     // FCC unit cells per box side
	latticeDensity float64 // Number density of the generated lattice
	latticeJitter  float64 // Random displacement amplitude (absolute units)
	latticeSeed    int64   // Seed for the jitter
	latticeOutput  string  // Output configuration path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "zvt-sim",
	Short: "Grand-canonical Monte Carlo simulator for atomic fluids",
}

// runCmd executes the simulation using parameters from the run config and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a grand-canonical Monte Carlo simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(logLevel)

		cfg := DefaultRunConfig()
		if configPath != "" {
			loaded, err := LoadRunConfig(configPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			cfg = loaded
		}
		applyFlagOverrides(cmd, &cfg)

		if err := runSimulation(cfg, os.Stdout); err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}
	},
}

// latticeCmd writes an FCC starting configuration
var latticeCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Write an FCC lattice configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(logLevel)
		if err := writeLattice(latticeOutput, latticeCells, latticeDensity, latticeJitter, latticeSeed); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func setLogLevel(name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", name)
	}
	logrus.SetLevel(level)
}

// applyFlagOverrides copies explicitly set flags over cfg. Unset flags never
// clobber values from the YAML file.
func applyFlagOverrides(cmd *cobra.Command, cfg *RunConfig) {
	f := cmd.Flags()
	if f.Changed("nblock") {
		cfg.NBlock = flagCfg.NBlock
	}
	if f.Changed("nstep") {
		cfg.NStep = flagCfg.NStep
	}
	if f.Changed("temperature") {
		cfg.Temperature = flagCfg.Temperature
	}
	if f.Changed("activity") {
		cfg.Activity = flagCfg.Activity
	}
	if f.Changed("prob-move") {
		cfg.ProbMove = flagCfg.ProbMove
	}
	if f.Changed("r-cut") {
		cfg.CutoffRadius = flagCfg.CutoffRadius
	}
	if f.Changed("dr-max") {
		cfg.MaxDisplacement = flagCfg.MaxDisplacement
	}
	if f.Changed("potential") {
		cfg.Potential = flagCfg.Potential
	}
	if f.Changed("seed") {
		cfg.Seed = flagCfg.Seed
	}
	if f.Changed("capacity") {
		cfg.Capacity = flagCfg.Capacity
	}
	if f.Changed("input") {
		cfg.Input = flagCfg.Input
	}
	if f.Changed("output-dir") {
		cfg.OutputDir = flagCfg.OutputDir
	}
	if f.Changed("trace") {
		cfg.Trace = flagCfg.Trace
	}
}

// runSimulation reads the input configuration, runs the chain and writes the
// block table to out. Every returned error is fatal for the run.
func runSimulation(cfg RunConfig, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	log := logrus.WithField("run", uuid.NewString())

	initial, err := cnf.Read(cfg.Input)
	if err != nil {
		return err
	}
	log.Infof("Read %d particles, box %.6f, density %.6f from %s",
		initial.N(), initial.Box, float64(initial.N())/(initial.Box*initial.Box*initial.Box), cfg.Input)

	params := sim.NewRunParameters(initial.Box, cfg.Temperature, cfg.Activity, cfg.CutoffRadius, cfg.MaxDisplacement, cfg.ProbMove)
	if err := params.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	pot, err := potential.New(sim.PotentialConfig{Name: cfg.Potential, BoxLength: initial.Box, CutoffRadius: cfg.CutoffRadius})
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	state, err := sim.NewState(params, initial.BoxUnits(), cfg.Capacity, pot, rng.ForSubsystem(sim.SubsystemMC))
	if err != nil {
		return err
	}
	log.Infof("Temperature %.6f, activity %.6f, r_cut %.6f, dr_max %.6f, potential %s",
		params.Temperature, params.Activity, params.CutoffRadius, params.MaxDisplacement, cfg.Potential)
	log.Infof("Probabilities move/create/destroy %.4f/%.4f/%.4f",
		params.ProbMove, params.ProbCreate, params.ProbDestroy())
	log.Infof("Initial potential energy %.6f, virial %.6f", state.Totals.Potential, state.Totals.Virial)

	averages := stats.NewBlockAverages(out)
	engine := sim.NewSimulator(state, averages, cnf.NewDirWriter(cfg.OutputDir))
	engine.Log = log
	traceCfg := trace.TraceConfig{Level: trace.TraceLevel(cfg.Trace)}
	if traceCfg.Enabled() {
		engine.Trace = trace.NewSimulationTrace(traceCfg)
	}

	startTime := time.Now()
	log.Infof("Run started at %s", startTime.Format(time.RFC3339))
	if err := engine.Run(cfg.NBlock, cfg.NStep); err != nil {
		return err
	}
	averages.PrintSummary()
	if engine.Trace != nil {
		printTraceSummary(out, trace.Summarize(engine.Trace))
	}
	log.Infof("Run finished at %s after %s", time.Now().Format(time.RFC3339), time.Since(startTime))
	return nil
}

func printTraceSummary(out io.Writer, s *trace.TraceSummary) {
	fmt.Fprintf(out, "Trace: %d tries, %d accepted, %d rejected, n in [%d, %d], final n %d\n",
		s.TotalTries, s.Accepted, s.Rejected, s.MinN, s.MaxN, s.FinalN)
	for _, kind := range []sim.MoveKind{sim.MoveTranslate, sim.MoveCreate, sim.MoveDestroy} {
		k := s.ByKind[kind.String()]
		fmt.Fprintf(out, "  %-8s tries=%d accepted=%d ratio=%.4f\n", kind, k.Tries, k.Accepted, k.Ratio())
	}
}

// writeLattice generates an FCC configuration, optionally jittered, and writes it to path.
func writeLattice(path string, nc int, density, jitter float64, seed int64) error {
	c, err := cnf.FCCLattice(nc, density)
	if err != nil {
		return err
	}
	if jitter < 0 {
		return fmt.Errorf("lattice: jitter must be non-negative, got %g", jitter)
	}
	if jitter > 0 {
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
		cnf.Jitter(c, jitter, rng.ForSubsystem(sim.SubsystemLattice))
	}
	if err := cnf.Write(path, c); err != nil {
		return err
	}
	logrus.Infof("Wrote %d-particle FCC lattice (box %.6f) to %s", c.N(), c.Box, path)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	d := DefaultRunConfig()

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run configuration")
	runCmd.Flags().Int64Var(&flagCfg.Seed, "seed", d.Seed, "Seed for the Markov chain")

	// Run length
	runCmd.Flags().IntVar(&flagCfg.NBlock, "nblock", d.NBlock, "Number of blocks")
	runCmd.Flags().IntVar(&flagCfg.NStep, "nstep", d.NStep, "Number of steps per block")

	// Thermodynamic state and move parameters
	runCmd.Flags().Float64Var(&flagCfg.Temperature, "temperature", d.Temperature, "Temperature (reduced units)")
	runCmd.Flags().Float64Var(&flagCfg.Activity, "activity", d.Activity, "Activity z = exp(mu/kT)")
	runCmd.Flags().Float64Var(&flagCfg.ProbMove, "prob-move", d.ProbMove, "Probability of a translation try; the rest is split evenly between create and destroy")
	runCmd.Flags().Float64Var(&flagCfg.CutoffRadius, "r-cut", d.CutoffRadius, "Potential cutoff radius (sigma units)")
	runCmd.Flags().Float64Var(&flagCfg.MaxDisplacement, "dr-max", d.MaxDisplacement, "Maximum translation per coordinate (sigma units)")
	runCmd.Flags().StringVar(&flagCfg.Potential, "potential", d.Potential, "Pair potential (lj, hs)")
	runCmd.Flags().IntVar(&flagCfg.Capacity, "capacity", d.Capacity, "Maximum particle count (0 = twice the initial count)")

	// Files
	runCmd.Flags().StringVar(&flagCfg.Input, "input", d.Input, "Initial configuration file")
	runCmd.Flags().StringVar(&flagCfg.OutputDir, "output-dir", d.OutputDir, "Directory for block and final configuration files")
	runCmd.Flags().StringVar(&flagCfg.Trace, "trace", d.Trace, "Move trace level (none, moves)")

	latticeCmd.Flags().IntVar(&latticeCells, "n-cells", 3, "FCC unit cells per box side (4*n^3 particles)")
	latticeCmd.Flags().Float64Var(&latticeDensity, "density", 0.5, "Number density")
	latticeCmd.Flags().Float64Var(&latticeJitter, "jitter", 0, "Random displacement amplitude per coordinate (sigma units)")
	latticeCmd.Flags().Int64Var(&latticeSeed, "seed", 42, "Seed for the jitter")
	latticeCmd.Flags().StringVar(&latticeOutput, "output", "cnf.inp", "Output configuration file")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(latticeCmd)
}
