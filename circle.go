package glshapes

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Circle is a filled circle centered at its position.
type Circle struct {
	*Mesh
	Radius float32
}

// NewCircle tessellates a circle of radius r and uploads it. The context is shared with the caller and must outlive the circle.
func NewCircle(ctx Context, r float32) (*Circle, error) {
	if r <= 0.0 {
		return nil, fmt.Errorf("%w: circle radius %g must be positive", ErrTessellation, r)
	}
	g, err := Tessellate(CirclePath(float64(r)), Tolerance)
	if err != nil {
		return nil, fmt.Errorf("circle: %w", err)
	}
	mesh, err := NewMesh(ctx, g, DynamicDraw)
	if err != nil {
		return nil, fmt.Errorf("circle: %w", err)
	}
	return &Circle{mesh, r}, nil
}

// DrawWith draws the circle centered at position with program, which must accept the "projection", "transform", and "ucolor" uniforms. Resolution is the viewport size in pixels.
func (c *Circle) DrawWith(program Program, position mgl32.Vec2, color Color, resolution image.Point) error {
	return c.Render(program, drawUniforms(position, color, resolution)...)
}

////////////////////////////////////////////////////////////////

// RadialGradient is a circle drawn with a gradient fragment shader that receives the circle's center and radius.
type RadialGradient struct {
	*Mesh
	Radius float32
}

// NewRadialGradient tessellates a circle of radius r and uploads it.
func NewRadialGradient(ctx Context, r float32) (*RadialGradient, error) {
	if r <= 0.0 {
		return nil, fmt.Errorf("%w: gradient radius %g must be positive", ErrTessellation, r)
	}
	g, err := Tessellate(CirclePath(float64(r)), Tolerance)
	if err != nil {
		return nil, fmt.Errorf("radial gradient: %w", err)
	}
	mesh, err := NewMesh(ctx, g, DynamicDraw)
	if err != nil {
		return nil, fmt.Errorf("radial gradient: %w", err)
	}
	return &RadialGradient{mesh, r}, nil
}

// DrawWith draws the gradient centered at position. Besides the uniforms of Circle.DrawWith, program receives "center" set to position and "range" set to the radius.
func (rg *RadialGradient) DrawWith(program Program, position mgl32.Vec2, color Color, resolution image.Point) error {
	uniforms := append(drawUniforms(position, color, resolution),
		Vec2(CenterName, position),
		Scalar(RangeName, rg.Radius),
	)
	return rg.Render(program, uniforms...)
}

////////////////////////////////////////////////////////////////

// OutlinedCircle is a circle with an outline, drawn as two concentric circles.
type OutlinedCircle struct {
	Outline *Circle
	Inner   *Circle
}

// NewOutlinedCircle returns a circle of radius r whose outer ring of the given thickness is drawn in a separate color.
func NewOutlinedCircle(ctx Context, r, thickness float32) (*OutlinedCircle, error) {
	if thickness <= 0.0 || r <= thickness {
		return nil, fmt.Errorf("%w: outline thickness %g must be in (0,%g)", ErrTessellation, thickness, r)
	}
	outline, err := NewCircle(ctx, r)
	if err != nil {
		return nil, err
	}
	inner, err := NewCircle(ctx, r-thickness)
	if err != nil {
		outline.Close()
		return nil, err
	}
	return &OutlinedCircle{outline, inner}, nil
}

// Radius returns the outer radius.
func (c *OutlinedCircle) Radius() float32 {
	return c.Outline.Radius
}

// Thickness returns the thickness of the outline.
func (c *OutlinedCircle) Thickness() float32 {
	return c.Outline.Radius - c.Inner.Radius
}

// DrawWith draws the outline in outlineColor and then the inner circle over it in fillColor.
func (c *OutlinedCircle) DrawWith(program Program, position mgl32.Vec2, outlineColor, fillColor Color, resolution image.Point) error {
	if err := c.Outline.DrawWith(program, position, outlineColor, resolution); err != nil {
		return err
	}
	return c.Inner.DrawWith(program, position, fillColor, resolution)
}

// Close releases both circles.
func (c *OutlinedCircle) Close() error {
	return errors.Join(c.Outline.Close(), c.Inner.Close())
}
