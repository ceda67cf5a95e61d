package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/ljcell"
	"github.com/phil-mansfield/ljcell/box"
	"github.com/phil-mansfield/ljcell/io"
	"github.com/phil-mansfield/ljcell/potential"
)

func main() {
	var (
		energy, plot  string
		exampleConfig string
	)
	vars := map[string]*string{
		"Energy":        &energy,
		"Plot":          &plot,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&energy, "Energy", "",
		"Configuration file for [Energy] mode.",
	)
	flag.StringVar(
		&plot, "Plot", "",
		"Configuration file for [Plot] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Energy' and "+
			"'Plot'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Energy":
		con, err := io.ReadEnergyConfig(energy)
		if err != nil {
			log.Fatal(err.Error())
		}
		energyMain(con)
	case "Plot":
		con, err := io.ReadPlotConfig(plot)
		if err != nil {
			log.Fatal(err.Error())
		}
		plotMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "Energy":
			fmt.Println(io.ExampleEnergyFile)
		case "Plot":
			fmt.Println(io.ExamplePlotFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Energy' and 'Plot'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but ljcell "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func energyMain(con *io.EnergyConfig) {
	dims, err := con.ParseDims()
	if err != nil {
		log.Fatal(err.Error())
	}

	coords, err := loadCoordinates(con, dims)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Loaded %d particles in a %d-dimensional cell.",
		len(coords), len(dims))

	cell, err := box.New(dims, coords)
	if err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidWrappedOutput() {
		wrapped, err := cell.WrapCoordinates()
		if err != nil {
			log.Fatal(err.Error())
		}
		if err = io.WriteCoordinates(con.WrappedOutput, wrapped); err != nil {
			log.Fatal(err.Error())
		}
		log.Println("Wrote wrapped coordinates to", con.WrappedOutput)
	}

	pot, err := con.Build()
	if err != nil {
		log.Fatal(err.Error())
	}

	e, err := ljcell.ParallelTotalEnergy(cell, pot, con.Workers)
	if err != nil {
		log.Fatal(err.Error())
	}

	if tc, ok := pot.(potential.TailCorrector); ok {
		corr, err := tc.CutoffCorrection(cell.Volume(), cell.Len())
		if err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Tail correction: %.10g", corr)
	}

	fmt.Printf("Volume: %.10g\n", cell.Volume())
	fmt.Printf("Total energy: %.10g\n", e)
	if cell.Len() > 0 {
		fmt.Printf("Energy per particle: %.10g\n", e/float64(cell.Len()))
	}
}

func loadCoordinates(
	con *io.EnergyConfig, dims []float64,
) ([][]float64, error) {
	if con.ValidInput() {
		cols, err := con.ParseColumns()
		if err != nil {
			return nil, err
		}
		if io.IsXYZ(con.Input) {
			return io.ReadXYZ(con.Input, cols)
		}
		return io.ReadCoordinates(con.Input, cols)
	}

	gen := rand.New(rand.NewSource(con.Seed))
	return ljcell.RandomCoordinates(con.Particles, dims, gen)
}

func plotMain(con *io.PlotConfig) {
	lj, err := potential.NewLJ(con.Sigma, con.Epsilon, con.Cutoff)
	if err != nil {
		log.Fatal(err.Error())
	}

	rs := make([]float64, con.Points)
	floats.Span(rs, con.RMin, con.RMax)
	us := make([]float64, con.Points)
	for i, r := range rs {
		us[i] = lj.Energy([]float64{r * r})
	}

	plt.Figure()
	plt.Plot(rs, us, "k", plt.LW(2))
	plt.Plot([]float64{con.RMin, con.RMax}, []float64{0, 0}, plt.C("DimGray"))

	plt.Title(fmt.Sprintf(
		`Lennard-Jones: $\sigma$ = %.3g, $\epsilon$ = %.3g, $r_c$ = %.3g`,
		lj.Sigma(), lj.Epsilon(), lj.Cutoff(),
	))
	plt.XLabel(`$r$`, plt.FontSize(16))
	plt.YLabel(`$V(r)$`, plt.FontSize(16))
	plt.YLim(-1.5*lj.Epsilon(), 3*lj.Epsilon())
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(con.Output)

	plt.Execute()
	log.Println("Wrote potential plot to", con.Output)
}
