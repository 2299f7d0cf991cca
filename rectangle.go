package glshapes

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// CornerType is the style of a rectangle's corners.
type CornerType int

// Corner types.
const (
	RoundCorners CornerType = iota // rounded with radius CornerRadius
	HardCorners
)

func (corner CornerType) String() string {
	switch corner {
	case RoundCorners:
		return "Round"
	case HardCorners:
		return "Hard"
	}
	return fmt.Sprintf("CornerType(%d)", int(corner))
}

// Path returns the outline of a rectangle of width w and height h with this corner type.
func (corner CornerType) Path(w, h float64) *Path {
	if corner == RoundCorners {
		return RoundedRectanglePath(w, h, CornerRadius)
	}
	return RectanglePath(w, h)
}

// Rectangle is a filled rectangle with its top-left corner at its position.
type Rectangle struct {
	*Mesh
	Width, Height float32
	Corner        CornerType
}

func tessellateRectangle(w, h float32, corner CornerType) (Geometry, error) {
	if w <= 0.0 || h <= 0.0 {
		return Geometry{}, fmt.Errorf("%w: rectangle size %gx%g must be positive", ErrTessellation, w, h)
	}
	g, err := Tessellate(corner.Path(float64(w), float64(h)), Tolerance)
	if err != nil {
		return Geometry{}, fmt.Errorf("rectangle: %w", err)
	}
	return g, nil
}

// NewRectangle tessellates a rectangle of width w and height h and uploads it.
func NewRectangle(ctx Context, w, h float32, corner CornerType) (*Rectangle, error) {
	g, err := tessellateRectangle(w, h, corner)
	if err != nil {
		return nil, err
	}
	mesh, err := NewMesh(ctx, g, StaticDraw)
	if err != nil {
		return nil, fmt.Errorf("rectangle: %w", err)
	}
	return &Rectangle{mesh, w, h, corner}, nil
}

// Update re-tessellates the rectangle with a new size and corner type and overwrites the buffer contents. The GPU objects are reused. On error the rectangle is unchanged.
func (r *Rectangle) Update(w, h float32, corner CornerType) error {
	if r.vertexArray == 0 {
		return fmt.Errorf("rectangle: update: %w", ErrClosed)
	}
	g, err := tessellateRectangle(w, h, corner)
	if err != nil {
		return err
	}
	r.upload(g)
	r.Width, r.Height, r.Corner = w, h, corner
	return nil
}

// DrawWith draws the rectangle with its top-left corner at position.
func (r *Rectangle) DrawWith(program Program, position mgl32.Vec2, color Color, resolution image.Point) error {
	return r.Render(program, drawUniforms(position, color, resolution)...)
}
