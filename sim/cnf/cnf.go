// Package cnf reads and writes atomic configuration files.
//
// The text format is: particle count on the first line, box length on the
// second, then one "x y z" line per particle in absolute length units.
package cnf

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/zvt-sim/zvt-sim/sim"
)

// Config is a configuration in absolute units.
type Config struct {
	Box       float64
	Positions []sim.Vec3
}

// N returns the particle count.
func (c *Config) N() int { return len(c.Positions) }

// BoxUnits returns the positions divided by the box length and wrapped into
// the unit cell.
func (c *Config) BoxUnits() []sim.Vec3 {
	out := make([]sim.Vec3, len(c.Positions))
	for i, r := range c.Positions {
		out[i] = r.Scale(1 / c.Box).Wrap()
	}
	return out
}

// FromBoxUnits builds a Config from box-relative positions.
func FromBoxUnits(box float64, rel []sim.Vec3) *Config {
	c := &Config{Box: box, Positions: make([]sim.Vec3, len(rel))}
	for i, r := range rel {
		c.Positions[i] = r.Scale(box)
	}
	return c
}

// Read parses a configuration file.
func Read(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := 0
	next := func() ([]string, error) {
		for sc.Scan() {
			line++
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, nil
			}
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: unexpected end of file after line %d", path, line)
	}

	fields, err := next()
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%s:%d: particle count must be a non-negative integer, got %q", path, line, fields[0])
	}

	fields, err = next()
	if err != nil {
		return nil, err
	}
	box, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || box <= 0 {
		return nil, fmt.Errorf("%s:%d: box length must be a positive number, got %q", path, line, fields[0])
	}

	c := &Config{Box: box, Positions: make([]sim.Vec3, n)}
	for i := 0; i < n; i++ {
		fields, err = next()
		if err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 coordinates, got %d", path, line, len(fields))
		}
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: coordinate %d: %w", path, line, k, err)
			}
			c.Positions[i][k] = v
		}
	}
	return c, nil
}

// Write stores c at path, replacing any existing file.
func Write(path string, c *Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating configuration %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", c.N())
	fmt.Fprintf(w, "%.10f\n", c.Box)
	for _, r := range c.Positions {
		fmt.Fprintf(w, "%20.10f%20.10f%20.10f\n", r[0], r[1], r[2])
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing configuration %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing configuration %s: %w", path, err)
	}
	logrus.Debugf("Wrote %d particles to %s", c.N(), path)
	return nil
}

// DirWriter writes tagged configurations as <Dir>/<Prefix><tag>.
// It implements sim.ConfigWriter.
type DirWriter struct {
	Dir    string
	Prefix string
}

// NewDirWriter uses the conventional "cnf." prefix.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{Dir: dir, Prefix: "cnf."}
}

// Path returns the file a tag is written to.
func (d *DirWriter) Path(tag string) string {
	return filepath.Join(d.Dir, d.Prefix+tag)
}

func (d *DirWriter) WriteConfig(tag string, box float64, positions []sim.Vec3) error {
	return Write(d.Path(tag), FromBoxUnits(box, positions))
}
