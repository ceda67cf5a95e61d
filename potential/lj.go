package potential

import (
	"fmt"
	"math"
)

// Reduced-unit Lennard-Jones defaults. DefaultCutoff is in units of sigma.
const (
	DefaultSigma   = 1.0
	DefaultEpsilon = 1.0
	DefaultCutoff  = 2.6
)

// LJ is a Lennard-Jones potential truncated at a cutoff radius:
//
//	V(r) = 4 epsilon [(sigma/r)^12 - (sigma/r)^6]  for r < cutoff
//	V(r) = 0                                       otherwise
//
// An LJ is immutable and may be shared between goroutines.
type LJ struct {
	sigma, epsilon, cutoff float64
	sigma2, cutoff2        float64
}

// NewLJ creates a truncated Lennard-Jones potential. All parameters must be
// positive.
func NewLJ(sigma, epsilon, cutoff float64) (*LJ, error) {
	if err := checkPositive("sigma", sigma); err != nil {
		return nil, err
	} else if err := checkPositive("epsilon", epsilon); err != nil {
		return nil, err
	} else if err := checkPositive("cutoff", cutoff); err != nil {
		return nil, err
	}

	return &LJ{
		sigma: sigma, epsilon: epsilon, cutoff: cutoff,
		sigma2: sigma * sigma, cutoff2: cutoff * cutoff,
	}, nil
}

// DefaultLJ returns the reduced-unit potential with sigma = epsilon = 1 and a
// cutoff of 2.6 sigma.
func DefaultLJ() *LJ {
	lj, err := NewLJ(DefaultSigma, DefaultEpsilon, DefaultCutoff*DefaultSigma)
	if err != nil {
		panic(err.Error())
	}
	return lj
}

func (lj *LJ) Sigma() float64   { return lj.sigma }
func (lj *LJ) Epsilon() float64 { return lj.epsilon }
func (lj *LJ) Cutoff() float64  { return lj.cutoff }
func (lj *LJ) Cutoff2() float64 { return lj.cutoff2 }

// Pair returns the untruncated energy of a single pair with squared
// separation r2. Coincident particles (r2 <= 0) have infinite energy.
func (lj *LJ) Pair(r2 float64) float64 {
	if r2 <= 0 {
		return math.Inf(+1)
	}
	sr2 := lj.sigma2 / r2
	sr6 := sr2 * sr2 * sr2
	// sr6 may overflow for tiny r2. Factoring keeps the result at +Inf
	// instead of Inf - Inf.
	return 4 * lj.epsilon * sr6 * (sr6 - 1)
}

// Energy returns the truncated energy summed over rij2. Pairs at or beyond
// the cutoff contribute nothing. The result is +Inf if any pair is
// coincident or so close that its energy overflows, and NaN if any
// separation is NaN.
func (lj *LJ) Energy(rij2 []float64) float64 {
	sum := 0.0
	for _, r2 := range rij2 {
		if math.IsNaN(r2) {
			return math.NaN()
		} else if r2 < lj.cutoff2 {
			sum += lj.Pair(r2)
		}
	}
	return sum
}

// CutoffCorrection returns the standard analytic tail correction for n
// particles spread uniformly through the given volume:
//
//	(8/9) pi n^2 epsilon sigma^3 / V [(sigma/rc)^9 - 3 (sigma/rc)^3]
func (lj *LJ) CutoffCorrection(volume float64, n int) (float64, error) {
	if err := checkPositive("volume", volume); err != nil {
		return 0, err
	} else if n < 0 {
		return 0, fmt.Errorf("%w: particle count must be non-negative, "+
			"but is %d", ErrInvalidParameter, n)
	}

	sc3 := math.Pow(lj.sigma/lj.cutoff, 3)
	sc9 := sc3 * sc3 * sc3
	n2 := float64(n) * float64(n)
	s3 := lj.sigma * lj.sigma * lj.sigma

	return 8.0 / 9.0 * math.Pi * n2 * lj.epsilon * s3 / volume *
		(sc9 - 3*sc3), nil
}
