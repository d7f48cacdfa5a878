package sim_test

// Blank import triggers sim/potential's init(), which registers NewPotentialFunc.
// This allows package sim's internal test files to create potentials
// without directly importing sim/potential (which would create an import cycle).
import _ "github.com/zvt-sim/zvt-sim/sim/potential"
