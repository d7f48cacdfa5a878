// register.go wires sim/potential constructors into the sim package's
// registration variable (NewPotentialFunc). This init() runs when any package
// imports sim/potential, breaking the import cycle between sim/ (interface
// owner) and sim/potential/ (implementation). Test code in package sim uses
// potential_import_test.go for the blank import.
package potential

import "github.com/zvt-sim/zvt-sim/sim"

func init() {
	sim.NewPotentialFunc = New
}
