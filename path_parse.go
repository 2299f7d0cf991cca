package glshapes

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// MustParseSVGPath parses an SVG path data string into a path and panics if it fails.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVGPath parses an SVG path data string into a path. See https://www.w3.org/TR/SVG/paths.html#PathData.
func ParseSVGPath(s string) (*Path, error) {
	path := []byte(s)
	i := 0
	num := func() float64 {
		if i < 0 {
			return 0.0
		}
		i += skipCommaWhitespace(path[i:])
		f, n := strconv.ParseFloat(path[i:])
		if n == 0 {
			i = -1
			return 0.0
		}
		i += n
		return f
	}

	p := &Path{}
	var cmd, prevCmd byte
	var cpx, cpy float64 // previous control point
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		start := i
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("bad path: expected command at position %d", i)
		}

		x, y := p.Pos()
		switch cmd {
		case 'M', 'm':
			a, b := num(), num()
			if cmd == 'm' {
				a, b = a+x, b+y
			}
			p.MoveTo(a, b)
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			a, b := num(), num()
			if cmd == 'l' {
				a, b = a+x, b+y
			}
			p.LineTo(a, b)
		case 'H', 'h':
			a := num()
			if cmd == 'h' {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			b := num()
			if cmd == 'v' {
				b += y
			}
			p.LineTo(x, b)
		case 'C', 'c':
			a, b, c, d, e, f := num(), num(), num(), num(), num(), num()
			if cmd == 'c' {
				a, b, c, d, e, f = a+x, b+y, c+x, d+y, e+x, f+y
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'S', 's':
			c, d, e, f := num(), num(), num(), num()
			if cmd == 's' {
				c, d, e, f = c+x, d+y, e+x, f+y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'Q', 'q':
			a, b, c, d := num(), num(), num(), num()
			if cmd == 'q' {
				a, b, c, d = a+x, b+y, c+x, d+y
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'T', 't':
			c, d := num(), num()
			if cmd == 't' {
				c, d = c+x, d+y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'A', 'a':
			a, b, c, d, e, f, g := num(), num(), num(), num(), num(), num(), num()
			if cmd == 'a' {
				f, g = f+x, g+y
			}
			large := math.Abs(d-1.0) < Epsilon
			sweep := math.Abs(e-1.0) < Epsilon
			p.ArcTo(a, b, c, large, sweep, f, g)
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, start)
		}
		if i < 0 {
			return nil, fmt.Errorf("bad path: expected number after '%c' at position %d", cmd, start)
		}
		prevCmd = cmd
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
	}
	return p, nil
}
