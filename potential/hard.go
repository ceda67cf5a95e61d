package potential

import (
	"fmt"
	"math"
)

// HardSphere is the hard-sphere potential: infinite for overlapping spheres
// and zero otherwise.
type HardSphere struct {
	diameter, diameter2 float64
}

// NewHardSphere creates a hard-sphere potential for spheres of the given
// diameter.
func NewHardSphere(diameter float64) (*HardSphere, error) {
	if err := checkPositive("diameter", diameter); err != nil {
		return nil, err
	}
	return &HardSphere{diameter, diameter * diameter}, nil
}

func (hs *HardSphere) Diameter() float64 { return hs.diameter }

// Energy returns +Inf if any pair overlaps, NaN if any separation is NaN and
// zero otherwise.
func (hs *HardSphere) Energy(rij2 []float64) float64 {
	overlap := false
	for _, r2 := range rij2 {
		if math.IsNaN(r2) {
			return math.NaN()
		} else if r2 < hs.diameter2 {
			overlap = true
		}
	}
	if overlap {
		return math.Inf(+1)
	}
	return 0
}

// SquareWell is a hard core of diameter sigma surrounded by an attractive
// well of depth epsilon which extends to lambda * sigma.
type SquareWell struct {
	sigma, epsilon, lambda float64
	sigma2, range2         float64
}

// NewSquareWell creates a square-well potential. lambda must be greater than
// one.
func NewSquareWell(sigma, epsilon, lambda float64) (*SquareWell, error) {
	if err := checkPositive("sigma", sigma); err != nil {
		return nil, err
	} else if err := checkPositive("epsilon", epsilon); err != nil {
		return nil, err
	} else if !(lambda > 1) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("%w: lambda must be finite and greater "+
			"than 1, but is %g", ErrInvalidParameter, lambda)
	}

	r := lambda * sigma
	return &SquareWell{
		sigma: sigma, epsilon: epsilon, lambda: lambda,
		sigma2: sigma * sigma, range2: r * r,
	}, nil
}

func (sw *SquareWell) Sigma() float64   { return sw.sigma }
func (sw *SquareWell) Epsilon() float64 { return sw.epsilon }
func (sw *SquareWell) Lambda() float64  { return sw.lambda }

// Energy returns -epsilon for every pair inside the well, +Inf if any pair
// overlaps the core and NaN if any separation is NaN.
func (sw *SquareWell) Energy(rij2 []float64) float64 {
	sum, overlap := 0.0, false
	for _, r2 := range rij2 {
		if math.IsNaN(r2) {
			return math.NaN()
		} else if r2 < sw.sigma2 {
			overlap = true
		} else if r2 < sw.range2 {
			sum -= sw.epsilon
		}
	}
	if overlap {
		return math.Inf(+1)
	}
	return sum
}
