package curve_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvplot/curve"
)

// ExampleSynthesize shows a linear recovery from 0 to 10 in five steps.
func ExampleSynthesize() {
	c, err := curve.Synthesize(0, 10, 5, curve.Linear)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c.Steps)
	fmt.Println(c.Values)
	// Output:
	// [0 1 2 3 4 5]
	// [0 2 4 6 8 10]
}

// ExampleSynthesize_exponential mirrors a FireFly run on benchmark 1:
// fitness drops from 8.0 to its pre-change best in six iterations.
func ExampleSynthesize_exponential() {
	c, _ := curve.Synthesize(8.0, 4.326799, 6, curve.Exponential)
	for i, v := range c.Values {
		fmt.Printf("%d %.4f\n", c.Steps[i], v)
	}
	// Output:
	// 0 8.0000
	// 1 7.1091
	// 2 6.4343
	// 3 5.9232
	// 4 5.5360
	// 5 5.2427
	// 6 4.3268
}

// ExampleSynthesize_zeroSteps shows the domain error for an empty recovery window.
func ExampleSynthesize_zeroSteps() {
	_, err := curve.Synthesize(1, 2, 0, curve.Sigmoid)
	fmt.Println(errors.Is(err, curve.ErrBadStepCount))
	// Output:
	// true
}

// ExampleParseShape rejects names outside the closed set.
func ExampleParseShape() {
	s, _ := curve.ParseShape("sigmoid")
	fmt.Println(s)

	_, err := curve.ParseShape("cubic")
	fmt.Println(errors.Is(err, curve.ErrUnknownShape))
	// Output:
	// sigmoid
	// true
}
