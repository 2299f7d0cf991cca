package glshapes

import "math"

// Tolerance is the maximum deviation in units between a curved outline and its tessellation.
const Tolerance = 0.1

// CornerRadius is the radius of the corners of rectangles with rounded corners.
const CornerRadius = 4.5

// CirclePath returns a circle of radius r centered at the origin.
func CirclePath(r float64) *Path {
	return EllipsePath(r, r)
}

// EllipsePath returns an ellipse of radii rx and ry centered at the origin.
func EllipsePath(rx, ry float64) *Path {
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(rx, 0.0)
	p.ArcTo(rx, ry, 0.0, false, true, -rx, 0.0)
	p.ArcTo(rx, ry, 0.0, false, true, rx, 0.0)
	p.Close()
	return p
}

// RectanglePath returns a rectangle of width w and height h with its top-left corner at the origin.
func RectanglePath(w, h float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.MoveTo(0.0, 0.0)
	p.LineTo(w, 0.0)
	p.LineTo(w, h)
	p.LineTo(0.0, h)
	p.Close()
	return p
}

// RoundedRectanglePath returns a rectangle of width w and height h with rounded corners of radius r. The radius is limited to half the width and half the height.
func RoundedRectanglePath(w, h, r float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return &Path{}
	}
	r = math.Abs(r)
	r = math.Min(r, math.Abs(w)/2.0)
	r = math.Min(r, math.Abs(h)/2.0)
	if Equal(r, 0.0) {
		return RectanglePath(w, h)
	}

	p := &Path{}
	p.MoveTo(0.0, r)
	p.ArcTo(r, r, 0.0, false, true, r, 0.0)
	p.LineTo(w-r, 0.0)
	p.ArcTo(r, r, 0.0, false, true, w, r)
	p.LineTo(w, h-r)
	p.ArcTo(r, r, 0.0, false, true, w-r, h)
	p.LineTo(r, h)
	p.ArcTo(r, r, 0.0, false, true, 0.0, h-r)
	p.Close()
	return p
}

// AnnulusPath returns a ring with outer radius r0 and inner radius r1 centered at the origin. The inner circle is added as a second subpath and becomes a hole when tessellated.
func AnnulusPath(r0, r1 float64) *Path {
	p := CirclePath(r0)
	if 0.0 < r1 && r1 < r0 {
		p.Append(CirclePath(r1))
	}
	return p
}
