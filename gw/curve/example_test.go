package curve_test

import (
	"fmt"

	"github.com/cwbudde/algo-gw/gw/curve"
)

func ExampleLogSpace() {
	f, _ := curve.LogSpace(1e-3, 1e-1, 3)
	fmt.Printf("%.0e %.0e %.0e\n", f[0], f[1], f[2])
	// Output:
	// 1e-03 1e-02 1e-01
}

func ExampleInterpolateLogLog() {
	f := []float64{1, 100}
	p := []float64{1, 1e-4}
	out, _ := curve.InterpolateLogLog(f, p, []float64{10})
	fmt.Printf("%.0e\n", out[0])
	// Output:
	// 1e-02
}
