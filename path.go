package glshapes

import (
	"math"
)

// Epsilon is the tolerance used to compare coordinates.
const Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Equals returns true if both points are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// PathCmd is a path segment command.
type PathCmd int

// Path segment commands.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	ArcToCmd
	CloseCmd
)

// cmdLen is the number of coordinates each command carries in Path.d.
func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd:
		return 2
	case QuadToCmd:
		return 4
	case CubeToCmd:
		return 6
	case ArcToCmd:
		return 7
	}
	return 0
}

// Path is an outline made of one or more subpaths. When tessellated, the first subpath is the outer contour and all following subpaths are holes.
type Path struct {
	cmds []PathCmd
	d    []float64
	x0   float64
	y0   float64
}

// IsEmpty returns true if the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.cmds) == 0
}

// Pos returns the current position of the pen.
func (p *Path) Pos() (float64, float64) {
	if 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd {
		return p.x0, p.y0
	}
	if 1 < len(p.d) {
		return p.d[len(p.d)-2], p.d[len(p.d)-1]
	}
	return 0.0, 0.0
}

// Append appends the subpaths of q to p.
func (p *Path) Append(q *Path) *Path {
	p.cmds = append(p.cmds, q.cmds...)
	p.d = append(p.d, q.d...)
	p.x0, p.y0 = q.x0, q.y0
	return p
}

// Translate moves all coordinates of the path by (x,y).
func (p *Path) Translate(x, y float64) *Path {
	i := 0
	for _, cmd := range p.cmds {
		n := cmdLen(cmd)
		if cmd == ArcToCmd {
			p.d[i+5] += x
			p.d[i+6] += y
		} else {
			for j := 0; j < n; j += 2 {
				p.d[i+j] += x
				p.d[i+j+1] += y
			}
		}
		i += n
	}
	p.x0 += x
	p.y0 += y
	return p
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

// LineTo adds a straight line to (x,y).
func (p *Path) LineTo(x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// QuadTo adds a quadratic Bézier curve with control point (cpx,cpy) and end point (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, QuadToCmd)
	p.d = append(p.d, cpx, cpy, x, y)
}

// CubeTo adds a cubic Bézier curve with control points (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, CubeToCmd)
	p.d = append(p.d, cpx1, cpy1, cpx2, cpy2, x, y)
}

// ArcTo adds an elliptical arc with radii rx and ry, with rot the counter clockwise rotation in degrees, and large and sweep booleans (see https://developer.mozilla.org/en-US/docs/Web/SVG/Tutorial/Paths#Arcs), ending at (x,y).
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		p.LineTo(x, y)
		return
	}
	flarge, fsweep := 0.0, 0.0
	if large {
		flarge = 1.0
	}
	if sweep {
		fsweep = 1.0
	}
	p.cmds = append(p.cmds, ArcToCmd)
	p.d = append(p.d, rx, ry, rot, flarge, fsweep, x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.cmds) == 0 || p.cmds[len(p.cmds)-1] == CloseCmd {
		return
	}
	p.cmds = append(p.cmds, CloseCmd)
}

////////////////////////////////////////////////////////////////

// Flatten converts the path into polygons, one per subpath, where curves are replaced by line segments that deviate at most tolerance from the curve. Consecutive duplicate points are removed as is the closing point that coincides with the start.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0.0 {
		tolerance = Tolerance
	}
	polys := [][]Point{}
	poly := []Point{}
	add := func(q Point) {
		if 0 < len(poly) && poly[len(poly)-1].Equals(q) {
			return
		}
		poly = append(poly, q)
	}
	flush := func() {
		if 1 < len(poly) && poly[0].Equals(poly[len(poly)-1]) {
			poly = poly[:len(poly)-1]
		}
		if 1 < len(poly) {
			polys = append(polys, poly)
		}
		poly = []Point{}
	}

	var start, pos Point
	i := 0
	for _, cmd := range p.cmds {
		d := p.d[i : i+cmdLen(cmd)]
		switch cmd {
		case MoveToCmd:
			flush()
			start = Point{d[0], d[1]}
			pos = start
			add(pos)
		case LineToCmd:
			pos = Point{d[0], d[1]}
			add(pos)
		case QuadToCmd:
			cp, end := Point{d[0], d[1]}, Point{d[2], d[3]}
			flattenQuadraticBezier(pos, cp, end, tolerance, add)
			pos = end
		case CubeToCmd:
			cp1, cp2, end := Point{d[0], d[1]}, Point{d[2], d[3]}, Point{d[4], d[5]}
			flattenCubicBezier(pos, cp1, cp2, end, tolerance, add)
			pos = end
		case ArcToCmd:
			end := Point{d[5], d[6]}
			flattenEllipticArc(pos, d[0], d[1], d[2], d[3] == 1.0, d[4] == 1.0, end, tolerance, add)
			pos = end
		case CloseCmd:
			flush()
			pos = start
			add(pos)
		}
		i += cmdLen(cmd)
	}
	flush()
	return polys
}

// flattenQuadraticBezier subdivides uniformly, the number of segments is bounded by the maximum of the second derivative so that the deviation stays within tolerance.
func flattenQuadraticBezier(p0, p1, p2 Point, tolerance float64, add func(Point)) {
	dd := Point{p0.X - 2.0*p1.X + p2.X, p0.Y - 2.0*p1.Y + p2.Y}.Length()
	n := int(math.Ceil(math.Sqrt(dd / (4.0 * tolerance))))
	n = max(n, 1)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1.0 - t
		add(Point{
			s*s*p0.X + 2.0*s*t*p1.X + t*t*p2.X,
			s*s*p0.Y + 2.0*s*t*p1.Y + t*t*p2.Y,
		})
	}
}

func flattenCubicBezier(p0, p1, p2, p3 Point, tolerance float64, add func(Point)) {
	dd0 := Point{p0.X - 2.0*p1.X + p2.X, p0.Y - 2.0*p1.Y + p2.Y}.Length()
	dd1 := Point{p1.X - 2.0*p2.X + p3.X, p1.Y - 2.0*p2.Y + p3.Y}.Length()
	n := int(math.Ceil(math.Sqrt(3.0 * math.Max(dd0, dd1) / (4.0 * tolerance))))
	n = max(n, 1)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1.0 - t
		add(Point{
			s*s*s*p0.X + 3.0*s*s*t*p1.X + 3.0*s*t*t*p2.X + t*t*t*p3.X,
			s*s*s*p0.Y + 3.0*s*s*t*p1.Y + 3.0*s*t*t*p2.Y + t*t*t*p3.Y,
		})
	}
}

func flattenEllipticArc(start Point, rx, ry, rot float64, large, sweep bool, end Point, tolerance float64, add func(Point)) {
	cx, cy, rx, ry, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, rot, large, sweep, end.X, end.Y)
	if Equal(theta0, theta1) {
		add(end)
		return
	}

	// largest angle step for which the chord stays within tolerance of the arc
	r := math.Max(rx, ry)
	dtheta := math.Pi / 2.0
	if tolerance < r {
		dtheta = math.Min(dtheta, 2.0*math.Acos(1.0-tolerance/r))
	}
	n := int(math.Ceil(math.Abs(theta1-theta0) * math.Pi / 180.0 / dtheta))
	n = max(n, 1)

	sinrot, cosrot := math.Sincos(rot * math.Pi / 180.0)
	for i := 1; i < n; i++ {
		theta := (theta0 + (theta1-theta0)*float64(i)/float64(n)) * math.Pi / 180.0
		sintheta, costheta := math.Sincos(theta)
		x, y := rx*costheta, ry*sintheta
		add(Point{cx + cosrot*x - sinrot*y, cy + sinrot*x + cosrot*y})
	}
	add(end)
}

// arcToCenter changes between the SVG arc format to the center and angles format, it returns the center, the (possibly enlarged) radii, and the start and end angles in degrees.
// See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	if Equal(x1, x2) && Equal(y1, y2) {
		return x1, y1, rx, ry, 0.0, 0.0
	}

	sinrot, cosrot := math.Sincos(rot * math.Pi / 180.0)
	x1p := cosrot*(x1-x2)/2.0 + sinrot*(y1-y2)/2.0
	y1p := -sinrot*(x1-x2)/2.0 + cosrot*(y1-y2)/2.0

	// radii too small to reach the end point are scaled up
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if 1.0 < radiiCheck {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosrot*cxp - sinrot*cyp + (x1+x2)/2.0
	cy := sinrot*cxp + cosrot*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}
	theta *= 180.0 / math.Pi

	cos := (ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy))
	delta := math.Acos(math.Max(-1.0, math.Min(1.0, cos)))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	delta *= 180.0 / math.Pi
	if !sweep && 0.0 < delta {
		delta -= 360.0
	} else if sweep && delta < 0.0 {
		delta += 360.0
	}
	return cx, cy, rx, ry, theta, theta + delta
}
