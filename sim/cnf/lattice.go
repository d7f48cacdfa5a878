package cnf

import (
	"fmt"
	"math"

	"github.com/zvt-sim/zvt-sim/sim"
)

// fccBasis holds the four atoms of a face-centred cubic unit cell in cell units.
var fccBasis = [4]sim.Vec3{
	{0.25, 0.25, 0.25},
	{0.25, 0.75, 0.75},
	{0.75, 0.75, 0.25},
	{0.75, 0.25, 0.75},
}

// FCCLattice places 4*nc^3 atoms on an FCC lattice at the given number
// density, centred on the origin. The box length follows from the density.
func FCCLattice(nc int, density float64) (*Config, error) {
	if nc < 1 {
		return nil, fmt.Errorf("lattice: cells per side must be positive, got %d", nc)
	}
	if !(density > 0) || math.IsInf(density, 0) {
		return nil, fmt.Errorf("lattice: density must be a positive finite number, got %g", density)
	}
	n := 4 * nc * nc * nc
	box := math.Cbrt(float64(n) / density)

	rel := make([]sim.Vec3, 0, n)
	for ix := 0; ix < nc; ix++ {
		for iy := 0; iy < nc; iy++ {
			for iz := 0; iz < nc; iz++ {
				cell := sim.Vec3{float64(ix), float64(iy), float64(iz)}
				for _, b := range fccBasis {
					r := cell.Add(b).Scale(1 / float64(nc)).Sub(sim.Vec3{0.5, 0.5, 0.5})
					rel = append(rel, r.Wrap())
				}
			}
		}
	}
	return FromBoxUnits(box, rel), nil
}

// Jitter displaces every atom by a uniform vector in [-amplitude, amplitude]^3
// (absolute units) and wraps the result back into the box.
func Jitter(c *Config, amplitude float64, rng sim.RandomSource) {
	for i, r := range c.Positions {
		var d sim.Vec3
		for k := range d {
			d[k] = (2*rng.Float64() - 1) * amplitude
		}
		c.Positions[i] = r.Add(d).Scale(1 / c.Box).Wrap().Scale(c.Box)
	}
}
