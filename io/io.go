/*
Package io reads and writes the files used by the ljcell command: gcfg or
YAML configuration files and whitespace-separated coordinate tables.
*/
package io

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"
)

// ReadCoordinates reads particle positions from the given columns of a
// whitespace-separated text table. Row i of the result holds the values of
// cols in line i of the table.
func ReadCoordinates(fname string, cols []int) ([][]float64, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("No coordinate columns requested from %s.", fname)
	}

	tCols, err := table.ReadTable(fname, cols, nil)
	if err != nil {
		return nil, err
	} else if len(tCols) != len(cols) {
		return nil, fmt.Errorf(
			"Read %d columns from %s, but requested %d.",
			len(tCols), fname, len(cols),
		)
	}

	n := len(tCols[0])
	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = make([]float64, len(cols))
		for j := range cols {
			coords[i][j] = tCols[j][i]
		}
	}
	return coords, nil
}

// IsXYZ returns true if fname should be read with ReadXYZ rather than
// ReadCoordinates.
func IsXYZ(fname string) bool {
	return strings.ToLower(filepath.Ext(fname)) == ".xyz"
}

// ReadXYZ reads particle positions from an .xyz file: an atom count, a
// comment line, and then one "label x y z ..." line per atom. cols index the
// numeric fields which follow the label, so {0, 1, 2} selects x, y and z.
func ReadXYZ(fname string, cols []int) ([][]float64, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("No coordinate columns requested from %s.", fname)
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) < 2 {
		return nil, fmt.Errorf("%s is too short to be an .xyz file.", fname)
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || n < 0 {
		return nil, fmt.Errorf(
			"Could not parse atom count '%s' in %s.", lines[0], fname,
		)
	} else if len(lines) < n+2 {
		return nil, fmt.Errorf(
			"%s lists %d atoms, but only has %d atom lines.",
			fname, n, len(lines)-2,
		)
	}

	coords := make([][]float64, n)
	for i := range coords {
		fields := strings.Fields(lines[i+2])
		coords[i] = make([]float64, len(cols))
		for j, c := range cols {
			if c < 0 || c+1 >= len(fields) {
				return nil, fmt.Errorf(
					"Line %d of %s has no column %d.", i+3, fname, c,
				)
			}
			x, err := strconv.ParseFloat(fields[c+1], 64)
			if err != nil {
				return nil, fmt.Errorf(
					"Could not parse '%s' on line %d of %s.",
					fields[c+1], i+3, fname,
				)
			}
			coords[i][j] = x
		}
	}
	return coords, nil
}

// WriteCoordinates writes particle positions to fname as a
// whitespace-separated table which ReadCoordinates can read back.
func WriteCoordinates(fname string, coords [][]float64) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, x := range coords {
		for j := range x {
			if j > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%.17g", x[j])
		}
		w.WriteByte('\n')
	}

	if err = w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
