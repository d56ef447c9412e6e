// SPDX-License-Identifier: MIT
// Package: lvplot/curve
//
// types.go — Shape enumeration, request and result types.

package curve

import (
	"strconv"
	"strings"
)

// Shape selects the progress profile of a recovery curve.
// The set is closed: values other than the three constants below are rejected.
type Shape int

const (
	// Exponential approaches the end value quickly and then flattens.
	Exponential Shape = iota

	// Linear moves at a constant rate.
	Linear

	// Sigmoid starts slow, accelerates through the midpoint and settles.
	Sigmoid
)

// shapeNames maps each Shape to its canonical lowercase name.
var shapeNames = [...]string{
	Exponential: "exponential",
	Linear:      "linear",
	Sigmoid:     "sigmoid",
}

// Shapes returns every supported shape in declaration order.
func Shapes() []Shape {
	return []Shape{Exponential, Linear, Sigmoid}
}

// Valid reports whether s is one of the declared shapes.
func (s Shape) Valid() bool {
	return s >= Exponential && s <= Sigmoid
}

// String returns the canonical name, or "shape(N)" for undeclared values.
func (s Shape) String() string {
	if !s.Valid() {
		return "shape(" + strconv.Itoa(int(s)) + ")"
	}

	return shapeNames[s]
}

// ParseShape maps a case-insensitive name to a Shape.
// Unknown names return ErrUnknownShape; there is no silent fallback.
func ParseShape(name string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == key {
			return Shape(i), nil
		}
	}

	return 0, curveErrorf(methodParseShape, ErrUnknownShape, "%q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, curveErrorf(methodMarshalText, ErrUnknownShape, "%d", int(s))
	}

	return []byte(shapeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Request bundles the four scalars of one synthesis call.
//
// Steps is a positive real treated as an integer count: the curve has
// int(Steps)+1 samples while the formulas divide by Steps itself. Recovery
// tables store averages such as 6.00, so both readings matter.
type Request struct {
	Start float64 // value at step 0 (approximate for Sigmoid)
	End   float64 // value at the last step (exact)
	Steps float64 // step count, ≥ 1
	Shape Shape   // progress profile
}

// Synthesize is Request's method form of the package-level Synthesize.
func (r Request) Synthesize() (Curve, error) {
	return Synthesize(r.Start, r.End, r.Steps, r.Shape)
}

// Curve is the result of one synthesis: equal-length step and value sequences.
type Curve struct {
	Steps  []int     `json:"steps"`  // 0, 1, ..., n
	Values []float64 `json:"values"` // interpolated values, Values[n] == end
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.Values) }

// Last returns the final value, or 0 for an empty curve.
func (c Curve) Last() float64 {
	if len(c.Values) == 0 {
		return 0
	}

	return c.Values[len(c.Values)-1]
}

// XValues returns the step indices as float64, the form chart series expect.
func (c Curve) XValues() []float64 {
	out := make([]float64, len(c.Steps))
	for i, s := range c.Steps {
		out[i] = float64(s)
	}

	return out
}
