// SPDX-License-Identifier: MIT
// Package: lvplot/chart
//
// clip.go — cuts polylines to a fixed y band.
//
// go-chart draws series straight through its canvas box, so a pinned y range
// needs the data cut first. Segments leaving the band end at the crossing
// point; segments re-entering start a new fragment there. Crossing points are
// flagged so the caller can keep them out of the dot layer.

package chart

import "math"

// fragment is one run of a polyline that stays inside the band.
type fragment struct {
	x, y     []float64
	crossing []bool // true where the point was added at a band edge
}

func (f *fragment) add(x, y float64, crossing bool) {
	if n := len(f.x); n > 0 && f.x[n-1] == x && f.y[n-1] == y {
		f.crossing[n-1] = f.crossing[n-1] && crossing
		return
	}
	f.x = append(f.x, x)
	f.y = append(f.y, y)
	f.crossing = append(f.crossing, crossing)
}

// clipPolyline returns the parts of (xs, ys) that lie within [lo, hi].
// Points exactly on an edge are inside.
func clipPolyline(xs, ys []float64, lo, hi float64) []fragment {
	var out []fragment
	var cur *fragment
	flush := func() {
		if cur != nil {
			out = append(out, *cur)
			cur = nil
		}
	}

	if len(xs) == 1 {
		if ys[0] >= lo && ys[0] <= hi {
			out = append(out, fragment{x: xs[:1:1], y: ys[:1:1], crossing: []bool{false}})
		}
		return out
	}

	for i := 1; i < len(xs); i++ {
		x0, y0, x1, y1 := xs[i-1], ys[i-1], xs[i], ys[i]
		t0, t1, ok := bandInterval(y0, y1, lo, hi)
		if !ok {
			flush()
			continue
		}
		if cur == nil {
			cur = &fragment{}
		}
		at := func(t float64) (float64, float64) {
			switch t {
			case 0:
				return x0, y0
			case 1:
				return x1, y1
			}
			return x0 + t*(x1-x0), clamp(y0+t*(y1-y0), lo, hi)
		}
		xa, ya := at(t0)
		cur.add(xa, ya, t0 > 0)
		xb, yb := at(t1)
		cur.add(xb, yb, t1 < 1)
		if t1 < 1 {
			flush()
		}
	}
	flush()

	return out
}

// bandInterval returns the parameter range [t0, t1] ⊆ [0, 1] over which the
// segment y0→y1 stays within [lo, hi].
func bandInterval(y0, y1, lo, hi float64) (t0, t1 float64, ok bool) {
	if y0 == y1 {
		return 0, 1, y0 >= lo && y0 <= hi
	}
	ta := (lo - y0) / (y1 - y0)
	tb := (hi - y0) / (y1 - y0)
	t0 = math.Max(0, math.Min(ta, tb))
	t1 = math.Min(1, math.Max(ta, tb))

	return t0, t1, t0 <= t1
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
