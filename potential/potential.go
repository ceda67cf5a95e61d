/*
Package potential contains pairwise interaction potentials which convert
squared particle separations into energies.

All potentials take squared separations so that callers never need to take
square roots. Callers are responsible for passing each unique pair once.
*/
package potential

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidParameter is wrapped by errors caused by non-positive or
	// otherwise unphysical potential parameters.
	ErrInvalidParameter = errors.New("invalid potential parameter")
	// ErrNumericAnomaly is wrapped by errors caused by separations which
	// cannot be evaluated, such as coincident particles.
	ErrNumericAnomaly = errors.New("numeric anomaly")
)

// Potential is a pairwise potential.
type Potential interface {
	// Energy returns the total energy of the pairs with the given squared
	// separations.
	Energy(rij2 []float64) float64
}

// TailCorrector is implemented by truncated potentials which can estimate
// the energy lost to truncation.
type TailCorrector interface {
	// CutoffCorrection returns the energy neglected beyond the cutoff for n
	// uniformly distributed particles in the given volume.
	CutoffCorrection(volume float64, n int) (float64, error)
}

// CheckSeparations returns an error wrapping ErrNumericAnomaly for the first
// squared separation which is non-positive or NaN.
func CheckSeparations(rij2 []float64) error {
	for i, r2 := range rij2 {
		if math.IsNaN(r2) {
			return fmt.Errorf("%w: squared separation %d is NaN",
				ErrNumericAnomaly, i)
		} else if r2 <= 0 {
			return fmt.Errorf(
				"%w: squared separation %d is %g (coincident particles)",
				ErrNumericAnomaly, i, r2,
			)
		}
	}
	return nil
}

// ParallelEnergy evaluates p over contiguous chunks of rij2 in separate
// goroutines and sums the partial energies. If workers is non-positive,
// runtime.NumCPU() workers are used.
func ParallelEnergy(p Potential, rij2 []float64, workers int) float64 {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(rij2) {
		workers = len(rij2)
	}
	if workers <= 1 {
		return p.Energy(rij2)
	}

	chunkSize := len(rij2) / workers
	partial := make([]float64, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if w == workers-1 {
			end = len(rij2)
		}

		go func(w, start, end int) {
			defer wg.Done()
			partial[w] = p.Energy(rij2[start:end])
		}(w, start, end)
	}
	wg.Wait()

	return floats.Sum(partial)
}

func checkPositive(name string, x float64) error {
	if !(x > 0) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: %s must be positive and finite, but is %g",
			ErrInvalidParameter, name, x)
	}
	return nil
}
