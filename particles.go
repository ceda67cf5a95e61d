package ljcell

import (
	"fmt"
	"math/rand"

	"github.com/phil-mansfield/ljcell/box"
)

// RandomCoordinates places n particles uniformly at random inside a cell
// with the given box widths.
func RandomCoordinates(
	n int, dims []float64, gen *rand.Rand,
) ([][]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative particle count %d",
			box.ErrInvalidCell, n)
	} else if err := (&box.Cell{Dims: dims}).Check(); err != nil {
		return nil, err
	}

	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = make([]float64, len(dims))
		for j, w := range dims {
			coords[i][j] = box.Wrap(gen.Float64()*w, w)
		}
	}
	return coords, nil
}
