package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvrank/matrix"
)

// ExampleSingularValues computes the spectrum of the 9×5 reference matrix.
// Three values are significant; the last two are numerically zero.
func ExampleSingularValues() {
	m, err := matrix.NewFromRows([][]float64{
		{1, 0, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{1, 0, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{1, 0, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{1, 0, 2, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 1, 0, 1},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sv, err := matrix.SingularValues(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range sv {
		fmt.Printf("%.4f\n", s)
	}
	// Output:
	// 4.5029
	// 1.2818
	// 1.0396
	// 0.0000
	// 0.0000
}

// ExampleDense_String shows the diagnostic dump.
func ExampleDense_String() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	fmt.Print(m)
	// Output:
	// [1, 2]
	// [3, 4]
}
