// Package testutil provides shared test infrastructure for the zVT simulator:
// tolerance assertions and scripted random streams used across sim/ and its
// sub-packages.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// ScriptedRNG replays fixed draws. Float64 and Intn consume their own queues
// and panic when a queue runs dry, so a test fails loudly on unexpected draws.
type ScriptedRNG struct {
	Floats []float64
	Ints   []int

	FloatCalls int
	IntCalls   int
}

// NewScriptedRNG returns a stream yielding floats then ints in order.
func NewScriptedRNG(floats []float64, ints []int) *ScriptedRNG {
	return &ScriptedRNG{Floats: floats, Ints: ints}
}

func (r *ScriptedRNG) Float64() float64 {
	if r.FloatCalls >= len(r.Floats) {
		panic(fmt.Sprintf("ScriptedRNG: Float64 call %d beyond script of %d", r.FloatCalls+1, len(r.Floats)))
	}
	v := r.Floats[r.FloatCalls]
	r.FloatCalls++
	return v
}

func (r *ScriptedRNG) Intn(n int) int {
	if r.IntCalls >= len(r.Ints) {
		panic(fmt.Sprintf("ScriptedRNG: Intn call %d beyond script of %d", r.IntCalls+1, len(r.Ints)))
	}
	v := r.Ints[r.IntCalls]
	r.IntCalls++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("ScriptedRNG: scripted int %d outside [0, %d)", v, n))
	}
	return v
}

// Exhausted reports whether every scripted draw was consumed.
func (r *ScriptedRNG) Exhausted() bool {
	return r.FloatCalls == len(r.Floats) && r.IntCalls == len(r.Ints)
}
