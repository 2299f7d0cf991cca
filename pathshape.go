package glshapes

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// PathShape is a filled arbitrary outline.
type PathShape struct {
	*Mesh
	Path *Path
}

// NewPathShape tessellates p and uploads it. The first subpath of p is the outer contour and any following subpaths are holes.
func NewPathShape(ctx Context, p *Path) (*PathShape, error) {
	g, err := Tessellate(p, Tolerance)
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	mesh, err := NewMesh(ctx, g, StaticDraw)
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	return &PathShape{mesh, p}, nil
}

// DrawWith draws the path translated to position.
func (s *PathShape) DrawWith(program Program, position mgl32.Vec2, color Color, resolution image.Point) error {
	return s.Render(program, drawUniforms(position, color, resolution)...)
}
