package io

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"
	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/ljcell/potential"
)

const (
	ExampleEnergyFile = `[Energy]

#######################
# Required Parameters #
#######################

# Widths of the periodic box along each axis, in units of sigma.
Dims = 8.55 8.55 8.55

# Positions come either from a whitespace-separated table (Input) or are
# generated at random (Particles). Exactly one of these must be set.
Input = path/to/coordinates.txt
# Particles = 500

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of Input holding the coordinates, one per axis.
# Default is 0 1 2. Input files ending in .xyz skip their two header lines
# and count columns from the first field after the atom label.
# Columns = 1 2 3

# Random seed used when Particles is set. Default is 0.
# Seed = 1

# Pair potential. One of LJ, HardSphere or SquareWell. Default is LJ.
# Potential = LJ

# Potential parameters. Sigma and Epsilon default to 1. Cutoff defaults to
# 2.6 Sigma and only applies to LJ. Lambda only applies to SquareWell.
# Sigma = 1
# Epsilon = 1
# Cutoff = 2.6
# Lambda = 1.5

# Number of goroutines used to evaluate pair energies. Default is 1.
# Workers = 4

# If set, the wrapped coordinates are written to this file.
# WrappedOutput = path/to/wrapped.txt`

	ExamplePlotFile = `[Plot]

#######################
# Required Parameters #
#######################

# Name of the output figure.
Output = path/to/lj.png

#######################
# Optional Parameters #
#######################

# Range of separations to sample, in units of sigma. Defaults are 0.9 and
# the cutoff.
# RMin = 0.9
# RMax = 2.6

# Number of separations sampled. Default is 200.
# Points = 200

# Sigma = 1
# Epsilon = 1
# Cutoff = 2.6`
)

// Potential names accepted by EnergyConfig.Potential.
const (
	LJName         = "LJ"
	HardSphereName = "HardSphere"
	SquareWellName = "SquareWell"
)

type EnergyWrapper struct {
	Energy EnergyConfig `yaml:"energy"`
}

type PlotWrapper struct {
	Plot PlotConfig `yaml:"plot"`
}

type PotentialConfig struct {
	Potential string  `yaml:"potential"`
	Sigma     float64 `yaml:"sigma"`
	Epsilon   float64 `yaml:"epsilon"`
	Cutoff    float64 `yaml:"cutoff"`
	Lambda    float64 `yaml:"lambda"`
}

type EnergyConfig struct {
	PotentialConfig `yaml:",inline"`

	// Required
	Dims      string `yaml:"dims"`
	Input     string `yaml:"input"`
	Particles int    `yaml:"particles"`

	// Optional
	Columns       string `yaml:"columns"`
	Seed          int64  `yaml:"seed"`
	Workers       int    `yaml:"workers"`
	WrappedOutput string `yaml:"wrappedOutput"`
}

type PlotConfig struct {
	PotentialConfig `yaml:",inline"`

	// Required
	Output string `yaml:"output"`

	// Optional
	RMin   float64 `yaml:"rMin"`
	RMax   float64 `yaml:"rMax"`
	Points int     `yaml:"points"`
}

func defaultPotentialConfig() PotentialConfig {
	return PotentialConfig{
		Potential: LJName,
		Sigma:     potential.DefaultSigma,
		Epsilon:   potential.DefaultEpsilon,
		Lambda:    1.5,
	}
}

func DefaultEnergyWrapper() *EnergyWrapper {
	con := EnergyConfig{PotentialConfig: defaultPotentialConfig()}
	con.Columns = "0 1 2"
	con.Workers = 1
	return &EnergyWrapper{con}
}

func DefaultPlotWrapper() *PlotWrapper {
	con := PlotConfig{PotentialConfig: defaultPotentialConfig()}
	con.Points = 200
	return &PlotWrapper{con}
}

// ReadEnergyConfig reads and checks an [Energy] configuration file. Files
// ending in .yaml or .yml are read as YAML, everything else as gcfg.
func ReadEnergyConfig(fname string) (*EnergyConfig, error) {
	wrap := DefaultEnergyWrapper()
	if err := readConfigInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Energy
	if err := con.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return con, nil
}

// ReadPlotConfig reads and checks a [Plot] configuration file. Files ending
// in .yaml or .yml are read as YAML, everything else as gcfg.
func ReadPlotConfig(fname string) (*PlotConfig, error) {
	wrap := DefaultPlotWrapper()
	if err := readConfigInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Plot
	if err := con.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return con, nil
}

func readConfigInto(wrap interface{}, fname string) error {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		f, err := os.Open(fname)
		if err != nil {
			return err
		}
		defer f.Close()

		dec := yaml.NewDecoder(bufio.NewReader(f))
		dec.KnownFields(true)
		return dec.Decode(wrap)
	default:
		return gcfg.ReadFileInto(wrap, fname)
	}
}

func (con *PotentialConfig) ValidPotential() bool {
	switch con.Potential {
	case LJName, HardSphereName, SquareWellName:
		return true
	}
	return false
}

// CheckInit validates the potential parameters and fills in the
// sigma-dependent default cutoff.
func (con *PotentialConfig) CheckInit() error {
	if !con.ValidPotential() {
		return fmt.Errorf(
			"Invalid 'Potential' value '%s'. Accepted values are %s, %s and %s.",
			con.Potential, LJName, HardSphereName, SquareWellName,
		)
	}

	if con.Cutoff == 0 {
		con.Cutoff = potential.DefaultCutoff * con.Sigma
	}

	// The constructors hold the real parameter checks.
	_, err := con.Build()
	return err
}

// Build constructs the potential described by con.
func (con *PotentialConfig) Build() (potential.Potential, error) {
	switch con.Potential {
	case LJName:
		return potential.NewLJ(con.Sigma, con.Epsilon, con.Cutoff)
	case HardSphereName:
		return potential.NewHardSphere(con.Sigma)
	case SquareWellName:
		return potential.NewSquareWell(con.Sigma, con.Epsilon, con.Lambda)
	}
	return nil, fmt.Errorf("Unrecognized potential '%s'.", con.Potential)
}

func (con *EnergyConfig) ValidInput() bool {
	return con.Input != ""
}

func (con *EnergyConfig) ValidParticles() bool {
	return con.Particles > 0
}

func (con *EnergyConfig) ValidWorkers() bool {
	return con.Workers > 0
}

func (con *EnergyConfig) ValidWrappedOutput() bool {
	return con.WrappedOutput != ""
}

// CheckInit returns an error describing the first invalid field of con.
func (con *EnergyConfig) CheckInit() error {
	dims, err := con.ParseDims()
	if err != nil {
		return err
	}

	if con.ValidInput() == con.ValidParticles() {
		return fmt.Errorf(
			"Exactly one of 'Input' and 'Particles' must be set.",
		)
	} else if con.Particles < 0 {
		return fmt.Errorf(
			"'Particles' must be positive, but is %d.", con.Particles,
		)
	} else if !con.ValidWorkers() {
		return fmt.Errorf(
			"'Workers' must be positive, but is %d.", con.Workers,
		)
	}

	if con.ValidInput() {
		cols, err := con.ParseColumns()
		if err != nil {
			return err
		} else if len(cols) != len(dims) {
			return fmt.Errorf(
				"'Columns' lists %d columns, but 'Dims' has %d axes.",
				len(cols), len(dims),
			)
		}
	}

	return con.PotentialConfig.CheckInit()
}

// ParseDims returns the box widths listed in Dims.
func (con *EnergyConfig) ParseDims() ([]float64, error) {
	fields := strings.Fields(con.Dims)
	if len(fields) == 0 {
		return nil, fmt.Errorf("Need to specify at least one value in 'Dims'.")
	}

	dims := make([]float64, len(fields))
	for i, s := range fields {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("Could not parse 'Dims' value '%s'.", s)
		} else if !(x > 0) {
			return nil, fmt.Errorf(
				"'Dims' values must be positive, but value %d is %g.", i, x,
			)
		}
		dims[i] = x
	}
	return dims, nil
}

// ParseColumns returns the column indices listed in Columns.
func (con *EnergyConfig) ParseColumns() ([]int, error) {
	fields := strings.Fields(con.Columns)
	cols := make([]int, len(fields))
	for i, s := range fields {
		c, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("Could not parse 'Columns' value '%s'.", s)
		} else if c < 0 {
			return nil, fmt.Errorf(
				"'Columns' values must be non-negative, but value %d is %d.",
				i, c,
			)
		}
		cols[i] = c
	}
	return cols, nil
}

// CheckInit returns an error describing the first invalid field of con and
// fills in the default separation range.
func (con *PlotConfig) CheckInit() error {
	if con.Output == "" {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if con.Potential != LJName {
		return fmt.Errorf(
			"Only the %s potential can be plotted, not '%s'.",
			LJName, con.Potential,
		)
	} else if con.Points < 2 {
		return fmt.Errorf("'Points' must be at least 2, but is %d.", con.Points)
	}

	if err := con.PotentialConfig.CheckInit(); err != nil {
		return err
	}

	if con.RMin == 0 {
		con.RMin = 0.9 * con.Sigma
	}
	if con.RMax == 0 {
		con.RMax = con.Cutoff
	}
	if con.RMin <= 0 || con.RMax <= con.RMin {
		return fmt.Errorf(
			"Need 0 < 'RMin' < 'RMax', but 'RMin' = %g and 'RMax' = %g.",
			con.RMin, con.RMax,
		)
	}
	return nil
}
