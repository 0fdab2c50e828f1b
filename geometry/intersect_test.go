package geometry

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

var square = Polygon{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}

func regularPolygon(center Point, radius, phase float64, sides int) Polygon {
	p := make(Polygon, sides)
	for i := range p {
		a := phase + 2*math.Pi*float64(i)/float64(sides)
		p[i] = Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return p
}

func TestSegmentsIntersect(t *testing.T) {
	t.Run("crossing diagonals intersect", func(t *testing.T) {
		l1 := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 2, Y: 2}}
		l2 := Segment{A: Point{X: 0, Y: 2}, B: Point{X: 2, Y: 0}}

		require.True(t, SegmentsIntersect(l1, l2))
		require.True(t, SegmentsIntersect(l2, l1))
	})

	t.Run("separated segments do not intersect", func(t *testing.T) {
		l1 := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 1, Y: 0}}
		l2 := Segment{A: Point{X: 0, Y: 1}, B: Point{X: 1, Y: 2}}

		require.False(t, SegmentsIntersect(l1, l2))
	})

	t.Run("both projections must straddle", func(t *testing.T) {
		// l1 crosses the line through l2, but l2 lies entirely above l1.
		l1 := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 4, Y: 0}}
		l2 := Segment{A: Point{X: 2, Y: 1}, B: Point{X: 2, Y: 3}}

		require.True(t, straddles(l1, l2))
		require.False(t, straddles(l2, l1))
		require.False(t, SegmentsIntersect(l1, l2))
	})

	t.Run("segment short of the other line", func(t *testing.T) {
		l1 := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 2, Y: 2}}
		l2 := Segment{A: Point{X: 5, Y: 0}, B: Point{X: 4, Y: 1}}

		require.False(t, SegmentsIntersect(l1, l2))
	})
}

func TestPointInPolygon(t *testing.T) {
	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"interior", Point{X: 1, Y: 1}, true},
		{"outside", Point{X: 3, Y: 1}, false},
		{"on edge", Point{X: 2, Y: 1}, true},
		{"on vertex", Point{X: 0, Y: 0}, true},
		{"diagonal outside", Point{X: -0.5, Y: 2.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PointInPolygon(square, tt.pt))
		})
	}

	t.Run("degenerate polygon is never a container", func(t *testing.T) {
		line := Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}
		require.False(t, PointInPolygon(line, Point{X: 0, Y: 0}))

		_, err := PointInPolygonChecked(line, Point{X: 0, Y: 0})
		require.ErrorIs(t, err, ErrPrecondition)
	})
}

func TestSegmentIntersectsPolygon(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want bool
	}{
		{"passes through", Segment{A: Point{X: -1, Y: 1}, B: Point{X: 3, Y: 1}}, true},
		{"leaves from inside", Segment{A: Point{X: 1, Y: 1}, B: Point{X: 5, Y: 1}}, true},
		{"fully outside", Segment{A: Point{X: -1, Y: -1}, B: Point{X: -1, Y: 3}}, false},
		{"ends on a vertex", Segment{A: Point{X: -1, Y: -1}, B: Point{X: 0, Y: 0}}, false},
		{"runs along an edge", Segment{A: Point{X: 0, Y: 0}, B: Point{X: 2, Y: 0}}, false},
		{"grazes a corner", Segment{A: Point{X: -1, Y: 1}, B: Point{X: 1, Y: -1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SegmentIntersectsPolygon(square, tt.seg))
		})
	}

	t.Run("degenerate polygon", func(t *testing.T) {
		seg := Segment{A: Point{X: -1, Y: 0}, B: Point{X: 1, Y: 0}}
		require.False(t, SegmentIntersectsPolygon(Polygon{{X: 0, Y: -1}, {X: 0, Y: 1}}, seg))

		_, err := SegmentIntersectsPolygonChecked(Polygon{}, seg)
		var perr *PreconditionError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "SegmentIntersectsPolygon", perr.Op)
	})
}

func TestSegmentIntersectsWorld(t *testing.T) {
	triangle := Polygon{{X: 10, Y: 0}, {X: 12, Y: 0}, {X: 11, Y: 2}}
	world := World{square, triangle}

	require.True(t, SegmentIntersectsWorld(world, Segment{A: Point{X: 9, Y: 1}, B: Point{X: 13, Y: 1}}))
	require.True(t, SegmentIntersectsWorld(world, Segment{A: Point{X: -1, Y: 1}, B: Point{X: 3, Y: 1}}))
	require.False(t, SegmentIntersectsWorld(world, Segment{A: Point{X: 3, Y: -1}, B: Point{X: 9, Y: 5}}))
	require.False(t, SegmentIntersectsWorld(nil, Segment{A: Point{X: -1, Y: 1}, B: Point{X: 3, Y: 1}}))
}

func TestPolygonContaining(t *testing.T) {
	triangle := Polygon{{X: 10, Y: 0}, {X: 12, Y: 0}, {X: 11, Y: 2}}
	world := World{square, triangle}

	idx, ok := PolygonContaining(world, Point{X: 11, Y: 1})
	require.True(t, ok)
	require.Equal(t, 1, idx)

	idx, ok = PolygonContaining(world, Point{X: 5, Y: 5})
	require.False(t, ok)
	require.Equal(t, -1, idx)

	t.Run("first match wins", func(t *testing.T) {
		overlapping := World{square, square}
		idx, ok := PolygonContaining(overlapping, Point{X: 1, Y: 1})
		require.True(t, ok)
		require.Equal(t, 0, idx)
	})
}

func TestAngularExtrema(t *testing.T) {
	t.Run("silhouette of a square", func(t *testing.T) {
		left, right := AngularExtrema(square, Point{X: -2, Y: 1})

		require.Equal(t, Point{X: 0, Y: 0}, left)
		require.Equal(t, Point{X: 0, Y: 2}, right)
	})

	t.Run("vertex order does not matter", func(t *testing.T) {
		reversed := Polygon{square[3], square[2], square[1], square[0]}
		left, right := AngularExtrema(reversed, Point{X: -2, Y: 1})

		require.Equal(t, Point{X: 0, Y: 0}, left)
		require.Equal(t, Point{X: 0, Y: 2}, right)
	})

	t.Run("extrema are visible vertices", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 11))
		for i := 0; i < 200; i++ {
			p := regularPolygon(Point{X: 0, Y: 0}, 1+rng.Float64()*3, rng.Float64()*math.Pi, 3+rng.IntN(6))
			angle := rng.Float64() * 2 * math.Pi
			dist := 5 + rng.Float64()*20
			vp := Point{X: dist * math.Cos(angle), Y: dist * math.Sin(angle)}

			left, right, err := AngularExtremaChecked(p, vp)
			require.NoError(t, err)
			require.NotEqual(t, -1, p.IndexOf(left))
			require.NotEqual(t, -1, p.IndexOf(right))
			require.NotEqual(t, left, right)
			require.False(t, SegmentIntersectsPolygon(p, Segment{A: vp, B: left}))
			require.False(t, SegmentIntersectsPolygon(p, Segment{A: vp, B: right}))
		}
	})

	t.Run("viewpoint inside is a precondition error", func(t *testing.T) {
		_, _, err := AngularExtremaChecked(square, Point{X: 1, Y: 1})

		var perr *PreconditionError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "AngularExtrema", perr.Op)
		require.ErrorIs(t, err, ErrPrecondition)
	})

	t.Run("empty polygon yields zero points", func(t *testing.T) {
		left, right := AngularExtrema(nil, Point{X: 1, Y: 1})
		require.Equal(t, Point{}, left)
		require.Equal(t, Point{}, right)
	})
}
