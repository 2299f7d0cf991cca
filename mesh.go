package glshapes

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrClosed is returned when drawing or updating a shape after Close.
var ErrClosed = errors.New("mesh is closed")

// Mesh owns the vertex array, vertex buffer, and index buffer of a tessellated shape. The three objects are created together and released together by Close.
type Mesh struct {
	ctx          Context
	vertexArray  uint32
	vertexBuffer uint32
	indexBuffer  uint32
	indices      int
	usage        uint32
}

// NewMesh creates the GPU objects for g and uploads it. Usage is a buffer usage hint such as StaticDraw or DynamicDraw.
func NewMesh(ctx Context, g Geometry, usage uint32) (*Mesh, error) {
	m := &Mesh{ctx: ctx, usage: usage}

	var err error
	if m.vertexArray, err = ctx.CreateVertexArray(); err != nil {
		return nil, fmt.Errorf("vertex array: %w", err)
	}
	if m.vertexBuffer, err = ctx.CreateBuffer(); err != nil {
		ctx.DeleteVertexArray(m.vertexArray)
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}
	if m.indexBuffer, err = ctx.CreateBuffer(); err != nil {
		ctx.DeleteVertexArray(m.vertexArray)
		ctx.DeleteBuffer(m.vertexBuffer)
		return nil, fmt.Errorf("index buffer: %w", err)
	}
	m.upload(g)
	return m, nil
}

// upload binds the mesh's objects, declares attribute 0 as tightly packed 2D float positions, and overwrites the buffer contents with g.
func (m *Mesh) upload(g Geometry) {
	m.ctx.BindVertexArray(m.vertexArray)
	m.ctx.BindBuffer(ArrayBuffer, m.vertexBuffer)
	m.ctx.BindBuffer(ElementArrayBuffer, m.indexBuffer)

	m.ctx.EnableVertexAttribArray(0)
	m.ctx.VertexAttribPointer(0, 2, Float, false, 0, 0)

	m.ctx.BufferData(ArrayBuffer, vertexBytes(g.Vertices), m.usage)
	m.ctx.BufferData(ElementArrayBuffer, indexBytes(g.Indices), m.usage)
	m.indices = len(g.Indices)
	Logger().Debug("uploaded mesh", "vertexArray", m.vertexArray, "vertices", g.NumVertices(), "indices", m.indices)
}

// Indices returns the number of indices drawn.
func (m *Mesh) Indices() int {
	return m.indices
}

// VertexArray returns the handle of the vertex array object.
func (m *Mesh) VertexArray() uint32 {
	return m.vertexArray
}

// Render draws the mesh as indexed triangles with program after setting the uniforms in order. Nothing is cached between calls, all state the draw requires is bound again.
func (m *Mesh) Render(program Program, uniforms ...Uniform) error {
	if m.vertexArray == 0 {
		return fmt.Errorf("render: %w", ErrClosed)
	}
	m.ctx.UseProgram(uint32(program))
	m.ctx.BindVertexArray(m.vertexArray)
	m.ctx.BindBuffer(ArrayBuffer, m.vertexBuffer)
	m.ctx.BindBuffer(ElementArrayBuffer, m.indexBuffer)
	for _, u := range uniforms {
		if err := u.Apply(m.ctx, program); err != nil {
			Logger().Warn("draw skipped", "vertexArray", m.vertexArray, "err", err)
			return err
		}
	}
	m.ctx.DrawElements(Triangles, int32(m.indices), UnsignedShort, 0)
	return nil
}

// Close releases the vertex array and both buffers. Subsequent calls do nothing.
func (m *Mesh) Close() error {
	if m.vertexArray == 0 {
		return nil
	}
	m.ctx.DeleteVertexArray(m.vertexArray)
	m.ctx.DeleteBuffer(m.vertexBuffer)
	m.ctx.DeleteBuffer(m.indexBuffer)
	Logger().Debug("released mesh", "vertexArray", m.vertexArray)
	m.vertexArray, m.vertexBuffer, m.indexBuffer = 0, 0, 0
	m.indices = 0
	return nil
}

// vertexBytes encodes the positions as little-endian 32-bit floats.
func vertexBytes(vertices []float32) []byte {
	b := make([]byte, 0, 4*len(vertices))
	for _, f := range vertices {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

func indexBytes(indices []uint16) []byte {
	b := make([]byte, 0, 2*len(indices))
	for _, i := range indices {
		b = binary.LittleEndian.AppendUint16(b, i)
	}
	return b
}

// drawUniforms returns the uniforms shared by all shapes: the projection for the viewport, the translation to position, and the fill color.
func drawUniforms(position mgl32.Vec2, color Color, resolution image.Point) []Uniform {
	return []Uniform{
		Projection(resolution),
		NewTransform().Translate(position.X(), position.Y()).Uniform(),
		color.Uniform(),
	}
}
