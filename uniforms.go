package glshapes

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUniformNotFound is returned when a program has no active uniform of the requested name.
var ErrUniformNotFound = errors.New("uniform not found")

// Uniform names used by the bundled shaders.
const (
	TransformName  = "transform"
	ColorName      = "ucolor"
	ProjectionName = "projection"
	CenterName     = "center"
	RangeName      = "range"
)

// UniformKind is the type of value a uniform carries.
type UniformKind int

// Uniform kinds.
const (
	Mat4Uniform UniformKind = iota
	Vec3Uniform
	Vec2Uniform
	FloatUniform
)

func (kind UniformKind) String() string {
	switch kind {
	case Mat4Uniform:
		return "mat4"
	case Vec3Uniform:
		return "vec3"
	case Vec2Uniform:
		return "vec2"
	case FloatUniform:
		return "float"
	}
	return fmt.Sprintf("UniformKind(%d)", int(kind))
}

// Uniform is a named value that is set into a shader program right before a draw call. Uniforms are built per draw and not retained.
type Uniform struct {
	Name string
	Kind UniformKind
	Mat  mgl32.Mat4 // for Mat4Uniform
	Vec  mgl32.Vec3 // for Vec3Uniform, Vec2Uniform uses the first two and FloatUniform the first component
}

// Mat4 returns a 4x4 matrix uniform.
func Mat4(name string, m mgl32.Mat4) Uniform {
	return Uniform{Name: name, Kind: Mat4Uniform, Mat: m}
}

// Vec3 returns a three component vector uniform.
func Vec3(name string, v mgl32.Vec3) Uniform {
	return Uniform{Name: name, Kind: Vec3Uniform, Vec: v}
}

// Vec2 returns a two component vector uniform.
func Vec2(name string, v mgl32.Vec2) Uniform {
	return Uniform{Name: name, Kind: Vec2Uniform, Vec: v.Vec3(0.0)}
}

// Scalar returns a float uniform.
func Scalar(name string, f float32) Uniform {
	return Uniform{Name: name, Kind: FloatUniform, Vec: mgl32.Vec3{f, 0.0, 0.0}}
}

// Apply looks up the uniform's location in program and sets its value. The program must be in use.
func (u Uniform) Apply(ctx Context, program Program) error {
	location, ok := ctx.UniformLocation(uint32(program), u.Name)
	if !ok {
		return fmt.Errorf("%w: %s %s", ErrUniformNotFound, u.Kind, u.Name)
	}
	switch u.Kind {
	case Mat4Uniform:
		ctx.UniformMatrix4f(location, false, u.Mat)
	case Vec3Uniform:
		ctx.Uniform3f(location, u.Vec[0], u.Vec[1], u.Vec[2])
	case Vec2Uniform:
		ctx.Uniform2f(location, u.Vec[0], u.Vec[1])
	case FloatUniform:
		ctx.Uniform1f(location, u.Vec[0])
	default:
		return fmt.Errorf("unknown uniform kind %v for %s", u.Kind, u.Name)
	}
	return nil
}

////////////////////////////////////////////////////////////////

// Transform is a model transformation. Translate and Rotate post-multiply, so the last call is applied to the vertices first.
type Transform struct {
	M mgl32.Mat4
}

// NewTransform returns the identity transformation.
func NewTransform() Transform {
	return Transform{mgl32.Ident4()}
}

// Translate translates by (x,y).
func (t Transform) Translate(x, y float32) Transform {
	t.M = t.M.Mul4(mgl32.Translate3D(x, y, 0.0))
	return t
}

// Rotate rotates around the Z axis by rot in radians.
func (t Transform) Rotate(rot float32) Transform {
	t.M = t.M.Mul4(mgl32.HomogRotate3DZ(rot))
	return t
}

// Uniform returns the transform as the "transform" uniform.
func (t Transform) Uniform() Uniform {
	return Mat4(TransformName, t.M)
}

// Projection returns the "projection" uniform, an orthographic projection that maps (0,0) to the top-left and size to the bottom-right of clip space.
func Projection(size image.Point) Uniform {
	return Mat4(ProjectionName, ProjectionMatrix(size))
}

// ProjectionMatrix returns the orthographic projection for a viewport of the given size in pixels, with the Y axis pointing down.
func ProjectionMatrix(size image.Point) mgl32.Mat4 {
	return mgl32.Ortho(0.0, float32(size.X), float32(size.Y), 0.0, 0.0, 1.0)
}

////////////////////////////////////////////////////////////////

// Color is an RGB color with components in [0,1].
type Color [3]float32

// NewColor returns a color from components in [0,1].
func NewColor(r, g, b float32) Color {
	return Color{r, g, b}
}

// NewColorFrom8 returns a color from components in [0,255].
func NewColorFrom8(r, g, b uint8) Color {
	return Color{float32(r) / 255.0, float32(g) / 255.0, float32(b) / 255.0}
}

// ColorFromRGBA converts any color, un-premultiplying its alpha. Transparency is not drawn.
func ColorFromRGBA(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColorFrom8(n.R, n.G, n.B)
}

// RGBA returns the opaque color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		uint8(c[0]*255.0 + 0.5),
		uint8(c[1]*255.0 + 0.5),
		uint8(c[2]*255.0 + 0.5),
		255,
	}
}

// Uniform returns the color as the "ucolor" uniform.
func (c Color) Uniform() Uniform {
	return Vec3(ColorName, mgl32.Vec3(c))
}

// SetClearColor sets the color the framebuffer is cleared to, with zero alpha.
func SetClearColor(ctx Context, c Color) {
	ctx.ClearColor(c[0], c[1], c[2], 0.0)
}
