package moogo_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hupe1980/moogo"
	"github.com/hupe1980/moogo/config"
	"github.com/hupe1980/moogo/pointset"
)

// Example_hypervolume computes the hypervolume of a two-objective front.
func Example_hypervolume() {
	eng := moogo.New()

	front := pointset.MustFromRows([][]float64{{5, 5}, {4, 6}, {2, 7}, {7, 4}})
	hv, err := eng.Hypervolume(front, []float64{10, 10}, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(hv)
	// Output: 38
}

// Example_filterDominated keeps the nondominated points of a set.
func Example_filterDominated() {
	eng := moogo.New()

	points := pointset.MustFromRows([][]float64{{1, 1}, {0, 1}, {1, 0}, {1, 0}})
	mask, _ := eng.IsNondominated(points, nil, false)
	front, _ := eng.FilterDominated(points, nil, false)

	fmt.Println(mask)
	fmt.Println(front.ToRows())
	// Output:
	// [false true false true]
	// [[0 1] [1 0]]
}

// Example_igd compares a front with a reference front.
func Example_igd() {
	eng := moogo.New()

	front := pointset.MustFromRows([][]float64{{4, 2}, {3, 3}, {2, 4}})
	ref := pointset.MustFromRows([][]float64{{10, 0}, {6, 1}, {2, 2}, {1, 6}, {0, 10}})

	igd, _ := eng.IGD(front, ref, nil)
	igdPlus, _ := eng.IGDPlus(front, ref, nil)

	fmt.Printf("IGD=%.6f IGD+=%.6f\n", igd, igdPlus)
	// Output: IGD=3.707092 IGD+=1.482843
}

// Example_eaf computes the attainment surfaces of two sets.
func Example_eaf() {
	eng := moogo.New()

	ds, err := eng.ReadDatasetsFrom(strings.NewReader("1 3\n3 1\n\n2 2\n"))
	if err != nil {
		log.Fatal(err)
	}

	res, _ := eng.GetEAF(ds, nil)
	for _, l := range res.Levels {
		fmt.Println(l.Percentile, l.Points.ToRows())
	}
	// Output:
	// 50 [[1 3] [2 2] [3 1]]
	// 100 [[2 3] [3 2]]
}

// Example_evaluate computes a report for every set of a dataset.
func Example_evaluate() {
	eng := moogo.New()

	ds, _ := eng.ReadDatasetsFrom(strings.NewReader("1 5\n3 3\n5 1\n\n2 4\n4 2\n6 6\n"))
	cfg, _ := config.Parse([]byte("indicators: [hypervolume]\nreference_point: [6, 6]\n"))

	report, err := eng.Evaluate(context.Background(), ds, cfg)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range report.Sets {
		fmt.Printf("set %d: hv=%g\n", s.ID, s.Indicators["hypervolume"])
	}
	// Output:
	// set 1: hv=13
	// set 2: hv=12
}
