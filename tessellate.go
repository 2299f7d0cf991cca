package glshapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/ByteArena/poly2tri-go"
)

// ErrTessellation is returned when an outline cannot be converted into triangles.
var ErrTessellation = errors.New("tessellation failed")

// Geometry is a triangle mesh with interleaved 2D vertex positions and 16-bit triangle indices.
type Geometry struct {
	Vertices []float32 // x0, y0, x1, y1, ...
	Indices  []uint16  // three per triangle
}

// NumVertices returns the number of vertices.
func (g Geometry) NumVertices() int {
	return len(g.Vertices) / 2
}

// Vertex returns the i-th vertex.
func (g Geometry) Vertex(i int) Point {
	return Point{float64(g.Vertices[2*i]), float64(g.Vertices[2*i+1])}
}

// degenerateArea is the smallest polygon area, relative to the square of its bounding box extent, that is still tessellated.
const degenerateArea = 1e-9

// sweepRotations are the rotations in radians of the outline tried in turn by the sweep line triangulator, which fails on some configurations of vertices sharing the same Y coordinate.
var sweepRotations = []float64{0.0, 0.1, 0.7}

// Tessellate flattens the path at the given tolerance and triangulates the result. The first subpath is the outer contour, any following subpaths are holes within it. Convex outlines without holes are triangulated as a fan, all others with a constrained Delaunay triangulation.
func Tessellate(p *Path, tolerance float64) (Geometry, error) {
	polys := p.Flatten(tolerance)
	if len(polys) == 0 {
		return Geometry{}, fmt.Errorf("%w: empty outline", ErrTessellation)
	}
	n := 0
	for _, poly := range polys {
		if len(poly) < 3 || isDegenerate(poly) {
			return Geometry{}, fmt.Errorf("%w: degenerate outline", ErrTessellation)
		}
		n += len(poly)
	}
	if math.MaxUint16+1 < n {
		return Geometry{}, fmt.Errorf("%w: %d vertices exceed 16-bit indices", ErrTessellation, n)
	}

	g := Geometry{
		Vertices: make([]float32, 0, 2*n),
	}
	for _, poly := range polys {
		for _, q := range poly {
			g.Vertices = append(g.Vertices, float32(q.X), float32(q.Y))
		}
	}
	if len(polys) == 1 && isConvex(polys[0]) {
		g.Indices = fanIndices(len(polys[0]))
	} else {
		var err error
		if g.Indices, err = triangulate(polys); err != nil {
			return Geometry{}, err
		}
	}
	Logger().Debug("tessellated outline", "vertices", g.NumVertices(), "triangles", len(g.Indices)/3)
	return g, nil
}

// fanIndices triangulates a convex polygon of n vertices from its first vertex.
func fanIndices(n int) []uint16 {
	indices := make([]uint16, 0, 3*(n-2))
	for i := 1; i+1 < n; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	return indices
}

// triangulate runs the sweep line triangulator on the outline normalized to a unit box, so that its fixed epsilon is independent of the outline's size. Indices refer to the vertices of polys in order.
func triangulate(polys [][]Point) (indices []uint16, err error) {
	x0, y0, x1, y1 := bounds(polys[0])
	cx, cy := (x0+x1)/2.0, (y0+y1)/2.0
	scale := 1.0 / math.Max(x1-x0, y1-y0)
	for _, rot := range sweepRotations {
		if indices, err = sweep(polys, cx, cy, scale, rot); err == nil {
			return indices, nil
		}
		Logger().Debug("triangulation failed", "rotation", rot, "err", err)
	}
	return nil, err
}

func sweep(polys [][]Point, cx, cy, scale, rot float64) (indices []uint16, err error) {
	// the triangulator panics on input it cannot handle, such as intersecting edges
	defer func() {
		if r := recover(); r != nil {
			indices = nil
			err = fmt.Errorf("%w: %v", ErrTessellation, r)
		}
	}()

	sinrot, cosrot := math.Sincos(rot)
	index := map[*poly2tri.Point]uint16{}
	contour := func(poly []Point) []*poly2tri.Point {
		points := make([]*poly2tri.Point, 0, len(poly))
		for _, q := range poly {
			x, y := (q.X-cx)*scale, (q.Y-cy)*scale
			pt := poly2tri.NewPoint(cosrot*x-sinrot*y, sinrot*x+cosrot*y)
			index[pt] = uint16(len(index))
			points = append(points, pt)
		}
		return points
	}

	swctx := poly2tri.NewSweepContext(contour(polys[0]), false)
	for _, hole := range polys[1:] {
		swctx.AddHole(contour(hole))
	}
	swctx.Triangulate()

	triangles := swctx.GetTriangles()
	indices = make([]uint16, 0, 3*len(triangles))
	for _, tr := range triangles {
		for _, pt := range tr.Points {
			i, ok := index[pt]
			if !ok {
				return nil, fmt.Errorf("%w: triangle vertex not on outline", ErrTessellation)
			}
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: no triangles", ErrTessellation)
	}
	return indices, nil
}

// MustTessellate is like Tessellate but panics on error.
func MustTessellate(p *Path, tolerance float64) Geometry {
	g, err := Tessellate(p, tolerance)
	if err != nil {
		panic(err)
	}
	return g
}

// polygonArea returns the signed area using the shoelace formula, positive for counter clockwise polygons in a Y-up coordinate system.
func polygonArea(poly []Point) float64 {
	area := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2.0
}

// isDegenerate returns true if the polygon's area vanishes relative to its size.
func isDegenerate(poly []Point) bool {
	x0, y0, x1, y1 := bounds(poly)
	d := math.Max(x1-x0, y1-y0)
	return d == 0.0 || math.Abs(polygonArea(poly)) <= degenerateArea*d*d
}

// isConvex returns true if the polygon turns in one direction only and winds around once. Collinear vertices are allowed.
func isConvex(poly []Point) bool {
	sign := polygonArea(poly)
	turning := 0.0
	for i := range poly {
		a, b, c := poly[i], poly[(i+1)%len(poly)], poly[(i+2)%len(poly)]
		u, v := b.Sub(a), c.Sub(b)
		cross := u.X*v.Y - u.Y*v.X
		if cross*sign < 0.0 && degenerateArea*u.Length()*v.Length() < math.Abs(cross) {
			return false
		}
		turning += math.Atan2(cross, u.X*v.X+u.Y*v.Y)
	}
	return math.Abs(turning) < 3.0*math.Pi
}

func bounds(poly []Point) (float64, float64, float64, float64) {
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, q := range poly {
		x0, y0 = math.Min(x0, q.X), math.Min(y0, q.Y)
		x1, y1 = math.Max(x1, q.X), math.Max(y1, q.Y)
	}
	return x0, y0, x1, y1
}
