package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipPolyline(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		xs, ys   []float64
		want     [][2][]float64 // per fragment: x, y
		crossing [][]bool
	}{
		{
			name: "inside",
			xs:   []float64{0, 1, 2}, ys: []float64{4, 5, 6},
			want:     [][2][]float64{{{0, 1, 2}, {4, 5, 6}}},
			crossing: [][]bool{{false, false, false}},
		},
		{
			name: "below",
			xs:   []float64{0, 1}, ys: []float64{0.5, 0},
		},
		{
			name: "leaves through bottom",
			xs:   []float64{0, 1, 2}, ys: []float64{8, 4, 2},
			want:     [][2][]float64{{{0, 1, 1.5}, {8, 4, 3}}},
			crossing: [][]bool{{false, false, true}},
		},
		{
			name: "enters from top",
			xs:   []float64{0, 2}, ys: []float64{14, 6},
			want:     [][2][]float64{{{1, 2}, {10, 6}}},
			crossing: [][]bool{{true, false}},
		},
		{
			name: "out and back",
			xs:   []float64{0, 1, 2}, ys: []float64{5, 1, 5},
			want: [][2][]float64{
				{{0, 0.5}, {5, 3}},
				{{1.5, 2}, {3, 5}},
			},
			crossing: [][]bool{{false, true}, {true, false}},
		},
		{
			name: "touches edge",
			xs:   []float64{0, 1}, ys: []float64{10, 12},
			want:     [][2][]float64{{{0}, {10}}},
			crossing: [][]bool{{false}},
		},
		{
			name: "single point",
			xs:   []float64{3}, ys: []float64{7},
			want:     [][2][]float64{{{3}, {7}}},
			crossing: [][]bool{{false}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := clipPolyline(tc.xs, tc.ys, 3, 10)
			require.Len(t, got, len(tc.want))
			for i, f := range got {
				assert.InDeltaSlice(t, tc.want[i][0], f.x, 1e-12, "fragment %d x", i)
				assert.InDeltaSlice(t, tc.want[i][1], f.y, 1e-12, "fragment %d y", i)
				assert.Equal(t, tc.crossing[i], f.crossing, "fragment %d crossing", i)
				for _, y := range f.y {
					assert.GreaterOrEqual(t, y, 3.0)
					assert.LessOrEqual(t, y, 10.0)
				}
			}
		})
	}
}
