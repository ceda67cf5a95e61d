package io

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/ljcell/potential"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	fname := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(fname, []byte(body), 0644))
	return fname
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "ljcell_io")
	require.NoError(t, err)
	return dir
}

func TestReadEnergyConfigGcfg(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	fname := writeTemp(t, dir, "energy.cfg", `[Energy]
Dims = 10 10 12.5
Particles = 100
Seed = 7
Sigma = 2
Workers = 4
`)

	con, err := ReadEnergyConfig(fname)
	require.NoError(t, err)

	dims, err := con.ParseDims()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 12.5}, dims)
	assert.Equal(t, 100, con.Particles)
	assert.Equal(t, int64(7), con.Seed)
	assert.Equal(t, 4, con.Workers)
	assert.Equal(t, LJName, con.Potential)
	assert.Equal(t, 2.0, con.Sigma)
	assert.Equal(t, 1.0, con.Epsilon)
	assert.InDelta(t, 5.2, con.Cutoff, 1e-12)

	p, err := con.Build()
	require.NoError(t, err)
	lj, ok := p.(*potential.LJ)
	require.True(t, ok)
	assert.InDelta(t, 5.2, lj.Cutoff(), 1e-12)
}

func TestReadEnergyConfigYAML(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	fname := writeTemp(t, dir, "energy.yaml", `energy:
  dims: "5 5"
  input: coords.txt
  columns: "1 2"
  potential: SquareWell
  lambda: 1.8
  wrappedOutput: wrapped.txt
`)

	con, err := ReadEnergyConfig(fname)
	require.NoError(t, err)

	cols, err := con.ParseColumns()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, cols)
	assert.Equal(t, "coords.txt", con.Input)
	assert.True(t, con.ValidWrappedOutput())
	assert.Equal(t, 1, con.Workers)

	p, err := con.Build()
	require.NoError(t, err)
	sw, ok := p.(*potential.SquareWell)
	require.True(t, ok)
	assert.Equal(t, 1.8, sw.Lambda())
}

func TestReadEnergyConfigInvalid(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	bodies := map[string]string{
		"no_dims.cfg":     "[Energy]\nParticles = 10\n",
		"bad_dims.cfg":    "[Energy]\nDims = 10 -1 10\nParticles = 10\n",
		"text_dims.cfg":   "[Energy]\nDims = 10 ten 10\nParticles = 10\n",
		"no_source.cfg":   "[Energy]\nDims = 10 10 10\n",
		"two_sources.cfg": "[Energy]\nDims = 10 10 10\nParticles = 10\nInput = x.txt\n",
		"columns.cfg":     "[Energy]\nDims = 10 10\nInput = x.txt\n",
		"potential.cfg":   "[Energy]\nDims = 10 10 10\nParticles = 10\nPotential = Morse\n",
		"sigma.cfg":       "[Energy]\nDims = 10 10 10\nParticles = 10\nSigma = -1\n",
		"lambda.cfg":      "[Energy]\nDims = 10 10 10\nParticles = 10\nPotential = SquareWell\nLambda = 0.5\n",
		"workers.cfg":     "[Energy]\nDims = 10 10 10\nParticles = 10\nWorkers = 0\n",
		"unknown.cfg":     "[Energy]\nDims = 10 10 10\nParticles = 10\nTemperature = 2\n",
		"unknown.yaml":    "energy:\n  dims: \"10 10 10\"\n  particles: 10\n  temperature: 2\n",
	}

	for name, body := range bodies {
		fname := writeTemp(t, dir, name, body)
		_, err := ReadEnergyConfig(fname)
		assert.Error(t, err, name)
	}

	_, err := ReadEnergyConfig(filepath.Join(dir, "missing.cfg"))
	assert.Error(t, err)
}

func TestReadPlotConfig(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	fname := writeTemp(t, dir, "plot.cfg", "[Plot]\nOutput = lj.png\n")
	con, err := ReadPlotConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, 200, con.Points)
	assert.InDelta(t, 0.9, con.RMin, 1e-12)
	assert.InDelta(t, 2.6, con.RMax, 1e-12)

	fname = writeTemp(t, dir, "bad_range.cfg",
		"[Plot]\nOutput = lj.png\nRMin = 2\nRMax = 1\n")
	_, err = ReadPlotConfig(fname)
	assert.Error(t, err)

	fname = writeTemp(t, dir, "hs.cfg",
		"[Plot]\nOutput = lj.png\nPotential = HardSphere\n")
	_, err = ReadPlotConfig(fname)
	assert.Error(t, err)

	fname = writeTemp(t, dir, "no_output.cfg", "[Plot]\nPoints = 10\n")
	_, err = ReadPlotConfig(fname)
	assert.Error(t, err)
}

func TestCoordinatesRoundTrip(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	coords := [][]float64{
		{0.5, 1.25, 9.75},
		{3, 4, 5},
		{0.1, 0.2, 0.3},
	}
	fname := filepath.Join(dir, "coords.txt")
	require.NoError(t, WriteCoordinates(fname, coords))

	read, err := ReadCoordinates(fname, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, coords, read)

	read, err = ReadCoordinates(fname, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{9.75, 0.5}, {5, 3}, {0.3, 0.1}}, read)

	_, err = ReadCoordinates(fname, nil)
	assert.Error(t, err)
}

func TestReadXYZ(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	fname := writeTemp(t, dir, "config.xyz", `3
argon sample
Ar 0.5 1.5 2.5
Ar -1 0 4
Ar 3.25 3 3
`)
	assert.True(t, IsXYZ(fname))
	assert.False(t, IsXYZ(filepath.Join(dir, "coords.txt")))

	coords, err := ReadXYZ(fname, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0.5, 1.5, 2.5}, {-1, 0, 4}, {3.25, 3, 3},
	}, coords)

	coords, err = ReadXYZ(fname, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2.5, 0.5}, {4, -1}, {3, 3.25}}, coords)

	_, err = ReadXYZ(fname, []int{3})
	assert.Error(t, err)
	_, err = ReadXYZ(fname, nil)
	assert.Error(t, err)

	bodies := map[string]string{
		"count.xyz": "three\ncomment\nAr 0 0 0\n",
		"short.xyz": "3\ncomment\nAr 0 0 0\n",
		"value.xyz": "1\ncomment\nAr 0 zero 0\n",
		"empty.xyz": "",
	}
	for name, body := range bodies {
		_, err = ReadXYZ(writeTemp(t, dir, name, body), []int{0, 1, 2})
		assert.Error(t, err, name)
	}
}
