/*
Package box implements a rectangular simulation cell with periodic boundary
conditions.

A Cell holds the widths of the box along each axis and the positions of the
particles inside it. The box may have any number of dimensions, but every
position must have exactly one component per axis.
*/
package box

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidCell is wrapped by every error caused by malformed dimensions
// or coordinates.
var ErrInvalidCell = errors.New("invalid simulation cell")

// Cell is a periodic simulation box. Dims and Coords may be replaced freely
// between calls; each method re-validates them.
type Cell struct {
	Dims   []float64
	Coords [][]float64
}

// New creates a Cell with the given box widths and particle positions. The
// slices are not copied.
func New(dims []float64, coords [][]float64) (*Cell, error) {
	c := &Cell{Dims: dims, Coords: coords}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

// Check returns an error if the dimensions are empty or non-positive or if
// any particle has the wrong number of components or a non-finite one.
func (c *Cell) Check() error {
	if len(c.Dims) == 0 {
		return fmt.Errorf("%w: no dimensions given", ErrInvalidCell)
	}
	for i, w := range c.Dims {
		if !(w > 0) || math.IsInf(w, 0) {
			return fmt.Errorf(
				"%w: width of axis %d must be positive and finite, but is %g",
				ErrInvalidCell, i, w,
			)
		}
	}
	for i := range c.Coords {
		if len(c.Coords[i]) != len(c.Dims) {
			return fmt.Errorf(
				"%w: particle %d has %d components, but the cell has %d axes",
				ErrInvalidCell, i, len(c.Coords[i]), len(c.Dims),
			)
		}
		for j, x := range c.Coords[i] {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf(
					"%w: component %d of particle %d is %g",
					ErrInvalidCell, j, i, x,
				)
			}
		}
	}
	return nil
}

// Len returns the number of particles in the cell.
func (c *Cell) Len() int { return len(c.Coords) }

// Volume returns the product of the box widths.
func (c *Cell) Volume() float64 { return floats.Prod(c.Dims) }

// WrapCoordinates returns a copy of the particle positions with every
// component folded into [0, width) along its axis. The stored positions are
// not modified.
func (c *Cell) WrapCoordinates() ([][]float64, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}

	wrapped := make([][]float64, len(c.Coords))
	for i, x := range c.Coords {
		wrapped[i] = make([]float64, len(x))
		for j := range x {
			wrapped[i][j] = Wrap(x[j], c.Dims[j])
		}
	}
	return wrapped, nil
}

// MinimumImageDistances2 returns the squared minimum-image distance between
// pt and each particle in the cell, in particle order.
//
// The displacement along each axis is folded to the nearest periodic image
// rather than searched over all images, so the result is only the true
// nearest distance for separations below half the box width.
func (c *Cell) MinimumImageDistances2(pt []float64) ([]float64, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}
	if len(pt) != len(c.Dims) {
		return nil, fmt.Errorf(
			"%w: reference point has %d components, but the cell has %d axes",
			ErrInvalidCell, len(pt), len(c.Dims),
		)
	}
	for j, x := range pt {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf(
				"%w: component %d of reference point is %g", ErrInvalidCell, j, x,
			)
		}
	}

	r2s := make([]float64, 0, len(c.Coords))
	for _, x := range c.Coords {
		sum := 0.0
		for j := range x {
			dx := MinimumImage(pt[j]-x[j], c.Dims[j])
			sum += dx * dx
		}
		r2s = append(r2s, sum)
	}
	return r2s, nil
}

// MinimumImageDistances is identical to MinimumImageDistances2, but returns
// distances instead of squared distances.
func (c *Cell) MinimumImageDistances(pt []float64) ([]float64, error) {
	rs, err := c.MinimumImageDistances2(pt)
	if err != nil {
		return nil, err
	}
	for i := range rs {
		rs[i] = math.Sqrt(rs[i])
	}
	return rs, nil
}

// Wrap folds x into [0, width) using a floored modulo, so negative values
// land near the top of the box instead of staying negative.
func Wrap(x, width float64) float64 {
	r := math.Mod(x, width)
	if r < 0 {
		r += width
	}
	// r + width rounds up to width when r is a tiny negative number.
	if r >= width {
		r = 0
	}
	return r
}

// MinimumImage folds the displacement dx into [-width/2, width/2), the
// displacement to the nearest periodic image.
func MinimumImage(dx, width float64) float64 {
	r := math.Mod(dx, width)
	if r >= width/2 {
		return r - width
	} else if r < width/-2 {
		return r + width
	}
	return r
}
