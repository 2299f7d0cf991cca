package glshapes

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestTessellateCircle(t *testing.T) {
	for _, r := range []float64{0.05, 0.5, 1.0, 4.5, 10.0, 100.0, 1000.0} {
		t.Run(fmt.Sprint(r), func(t *testing.T) {
			g, err := Tessellate(CirclePath(r), Tolerance)
			test.Error(t, err)
			test.That(t, 3 <= g.NumVertices(), "at least three vertices")
			test.That(t, 0 < len(g.Indices), "non-empty indices")
			test.T(t, len(g.Indices)%3, 0)
			for _, i := range g.Indices {
				test.That(t, int(i) < g.NumVertices(), "index out of range")
			}
			for i := 0; i < g.NumVertices(); i++ {
				test.That(t, math.Abs(g.Vertex(i).Length()-r) < 1e-3*r, "vertex off circle:", g.Vertex(i))
			}

			// the inscribed polygon lies within tolerance of the circle
			area := meshArea(g)
			test.That(t, area <= math.Pi*r*r, "area exceeds circle:", area)
			test.That(t, math.Pi*r*r-2.0*math.Pi*r*Tolerance <= area, "area too small:", area)
		})
	}
}

func TestTessellateRectangle(t *testing.T) {
	var tts = []struct {
		w, h float64
	}{
		{1.0, 1.0},
		{10.0, 20.0},
		{300.0, 48.0},
		{0.5, 1000.0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			g, err := Tessellate(RectanglePath(tt.w, tt.h), Tolerance)
			test.Error(t, err)
			test.T(t, g.NumVertices(), 4)
			test.T(t, len(g.Indices), 6)

			corners := map[Point]bool{{0.0, 0.0}: true, {tt.w, 0.0}: true, {tt.w, tt.h}: true, {0.0, tt.h}: true}
			for j := 0; j < g.NumVertices(); j++ {
				q := g.Vertex(j)
				test.That(t, corners[q], "unexpected vertex:", q)
				delete(corners, q)
			}
			test.T(t, len(corners), 0)
			test.That(t, math.Abs(meshArea(g)-tt.w*tt.h) < 1e-3, "area")
		})
	}
}

func TestTessellateRoundedRectangle(t *testing.T) {
	var tts = []struct {
		w, h float64
	}{
		{100.0, 40.0},
		{9.0, 9.0}, // corners meet
		{5.0, 20.0},
		{300.0, 48.0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			g, err := Tessellate(RoundedRectanglePath(tt.w, tt.h, CornerRadius), Tolerance)
			test.Error(t, err)
			test.That(t, 4 < g.NumVertices(), "rounded corners add vertices")
			test.T(t, len(g.Indices)%3, 0)

			r := math.Min(CornerRadius, math.Min(tt.w, tt.h)/2.0)
			exact := tt.w*tt.h - (4.0-math.Pi)*r*r
			area := meshArea(g)
			test.That(t, area <= exact+1e-6, "area exceeds outline:", area, exact)
			test.That(t, exact-2.0*math.Pi*r*Tolerance <= area, "area too small:", area, exact)
			for j := 0; j < g.NumVertices(); j++ {
				q := g.Vertex(j)
				test.That(t, -1e-4 <= q.X && q.X <= tt.w+1e-4 && -1e-4 <= q.Y && q.Y <= tt.h+1e-4, "vertex outside bounds:", q)
			}
		})
	}
}

func TestTessellateHole(t *testing.T) {
	g, err := Tessellate(AnnulusPath(10.0, 5.0), Tolerance)
	test.Error(t, err)
	area := meshArea(g)
	exact := math.Pi * (100.0 - 25.0)
	test.That(t, math.Abs(area-exact) < 2.0*math.Pi*10.0*Tolerance, "ring area:", area, exact)
	for j := 0; j < g.NumVertices(); j++ {
		test.That(t, 5.0-1e-3 <= g.Vertex(j).Length(), "vertex inside hole:", g.Vertex(j))
	}
}

func TestTessellatePath(t *testing.T) {
	// concave L shape
	g, err := Tessellate(MustParseSVGPath("M0 0H20V10H10V20H0z"), Tolerance)
	test.Error(t, err)
	test.T(t, g.NumVertices(), 6)
	test.T(t, len(g.Indices), 12)
	test.Float(t, meshArea(g), 300.0)
}

func TestTessellateErrors(t *testing.T) {
	var tts = []struct {
		name string
		p    *Path
	}{
		{"empty", &Path{}},
		{"zero circle", CirclePath(0.0)},
		{"zero rectangle", RectanglePath(0.0, 10.0)},
		{"line", MustParseSVGPath("M0 0L10 0z")},
		{"point", MustParseSVGPath("M5 5z")},
		{"collinear", MustParseSVGPath("M0 0L5 0L10 0z")},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tessellate(tt.p, Tolerance)
			test.That(t, errors.Is(err, ErrTessellation), "expected tessellation error, got", err)
		})
	}
}

func TestMustTessellate(t *testing.T) {
	defer func() {
		r := recover()
		test.That(t, r != nil, "must panic")
		err, ok := r.(error)
		test.That(t, ok && errors.Is(err, ErrTessellation))
	}()
	MustTessellate(&Path{}, Tolerance)
}

func TestTessellateSmall(t *testing.T) {
	var tts = []struct {
		name   string
		p      *Path
		lo, hi float64 // area bounds
	}{
		{"circle", CirclePath(1e-4), 2e-8, math.Pi * 1e-8},
		{"circle tiny", CirclePath(1e-6), 2e-12, math.Pi * 1e-12},
		{"rectangle", RectanglePath(1e-4, 1e-4), 1e-8, 1e-8},
		{"rounded rectangle", RoundedRectanglePath(1e-4, 1e-4, CornerRadius), 5e-9, math.Pi * 2.5e-9},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Tessellate(tt.p, Tolerance)
			test.Error(t, err)
			test.T(t, len(g.Indices)%3, 0)
			area := meshArea(g)
			test.That(t, tt.lo*(1.0-1e-4) <= area && area <= tt.hi*(1.0+1e-4), "area:", area, "not in", tt.lo, tt.hi)
		})
	}

	// concave outlines go through the sweep line triangulator
	p := &Path{}
	p.MoveTo(0.0, 0.0)
	p.LineTo(2e-5, 0.0)
	p.LineTo(2e-5, 1e-5)
	p.LineTo(1e-5, 1e-5)
	p.LineTo(1e-5, 2e-5)
	p.LineTo(0.0, 2e-5)
	p.Close()
	g, err := Tessellate(p, Tolerance)
	test.Error(t, err)
	test.T(t, len(g.Indices), 12)
	test.That(t, math.Abs(meshArea(g)-3e-10) < 1e-3*3e-10, "area:", meshArea(g))
}

func TestTessellateFan(t *testing.T) {
	for _, r := range []float64{0.5, 1.5, 2.0, 3.0, 3.5, 172.0, 342.0} {
		t.Run(fmt.Sprint(r), func(t *testing.T) {
			g, err := Tessellate(CirclePath(r), Tolerance)
			test.Error(t, err)
			test.T(t, len(g.Indices), 3*(g.NumVertices()-2))
			for i := 0; i < len(g.Indices); i += 3 {
				test.T(t, g.Indices[i], uint16(0))
			}
		})
	}
}

func TestIsConvex(t *testing.T) {
	star := []Point{}
	for k := 0; k < 5; k++ {
		sin, cos := math.Sincos((90.0 + 144.0*float64(k)) * math.Pi / 180.0)
		star = append(star, Point{10.0 * cos, 10.0 * sin})
	}

	test.That(t, isConvex(CirclePath(10.0).Flatten(Tolerance)[0]), "circle")
	test.That(t, isConvex(RoundedRectanglePath(100.0, 40.0, CornerRadius).Flatten(Tolerance)[0]), "rounded rectangle")
	test.That(t, isConvex([]Point{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}), "collinear vertices")
	test.That(t, !isConvex(MustParseSVGPath("M0 0H20V10H10V20H0z").Flatten(Tolerance)[0]), "L shape")
	test.That(t, !isConvex(star), "pentagram")
}
