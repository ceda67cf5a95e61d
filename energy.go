/*
Package ljcell combines periodic simulation cells with pairwise potentials
to compute the configurational energy of a set of particles.

The geometry lives in package box and the potentials live in package
potential. This package contains the loops a simulation driver needs to
combine the two.
*/
package ljcell

import (
	"fmt"

	"github.com/phil-mansfield/ljcell/box"
	"github.com/phil-mansfield/ljcell/potential"
)

// TotalEnergy returns the energy of every unique pair of particles in the
// cell under the minimum image convention. If pot is a
// potential.TailCorrector, the correction for the cell's volume is added once.
//
// Coincident particles are reported as an error wrapping
// potential.ErrNumericAnomaly.
func TotalEnergy(cell *box.Cell, pot potential.Potential) (float64, error) {
	return ParallelTotalEnergy(cell, pot, 1)
}

// ParallelTotalEnergy is identical to TotalEnergy, but splits the pair
// separations between the given number of goroutines. Unlike TotalEnergy,
// it holds all n(n-1)/2 separations in memory at once when workers != 1.
func ParallelTotalEnergy(
	cell *box.Cell, pot potential.Potential, workers int,
) (float64, error) {
	if err := cell.Check(); err != nil {
		return 0, err
	}

	n := cell.Len()
	e := 0.0

	var all []float64
	if workers != 1 {
		all = make([]float64, 0, n*(n-1)/2)
	}

	for i := 0; i < n-1; i++ {
		rest := &box.Cell{Dims: cell.Dims, Coords: cell.Coords[i+1:]}
		rij2, err := rest.MinimumImageDistances2(cell.Coords[i])
		if err != nil {
			return 0, err
		}
		if err = potential.CheckSeparations(rij2); err != nil {
			return 0, fmt.Errorf("particle %d: %w", i, err)
		}

		if workers == 1 {
			e += pot.Energy(rij2)
		} else {
			all = append(all, rij2...)
		}
	}

	if workers != 1 {
		e = potential.ParallelEnergy(pot, all, workers)
	}

	if tc, ok := pot.(potential.TailCorrector); ok {
		corr, err := tc.CutoffCorrection(cell.Volume(), n)
		if err != nil {
			return 0, err
		}
		e += corr
	}

	return e, nil
}

// ParticleEnergy returns the energy of particle i with every other particle
// in the cell. No tail correction is applied.
func ParticleEnergy(
	cell *box.Cell, pot potential.Potential, i int,
) (float64, error) {
	if i < 0 || i >= cell.Len() {
		return 0, fmt.Errorf("%w: particle index %d out of range [0, %d)",
			box.ErrInvalidCell, i, cell.Len())
	}

	rij2, err := cell.MinimumImageDistances2(cell.Coords[i])
	if err != nil {
		return 0, err
	}
	rij2 = append(rij2[:i], rij2[i+1:]...)

	if err = potential.CheckSeparations(rij2); err != nil {
		return 0, fmt.Errorf("particle %d: %w", i, err)
	}
	return pot.Energy(rij2), nil
}
