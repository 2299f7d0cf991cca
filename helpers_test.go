package glshapes

import (
	"encoding/binary"
	"math"
)

type fakeDraw struct {
	program     uint32
	vertexArray uint32
	count       int32
	values      map[string][]float32
}

// fakeContext records GL calls and tracks which objects are alive.
type fakeContext struct {
	next uint32

	vertexArrays map[uint32]bool
	buffers      map[uint32][]byte
	shaders      map[uint32]string
	programs     map[uint32][]uint32 // attached shaders

	createdVertexArrays, deletedVertexArrays int
	createdBuffers, deletedBuffers           int
	deletedShaders, detachedShaders          int

	boundVertexArray uint32
	bound            map[uint32]uint32 // target to buffer
	program          uint32

	uniforms []string // active uniform names, location is index+1
	values   map[string][]float32
	draws    []fakeDraw
	clear    [4]float32

	failCreate  map[string]int // object kind to number of successful creates before failing
	failCompile uint32         // shader kind that fails to compile
	failLink    bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		vertexArrays: map[uint32]bool{},
		buffers:      map[uint32][]byte{},
		shaders:      map[uint32]string{},
		programs:     map[uint32][]uint32{},
		bound:        map[uint32]uint32{},
		uniforms:     []string{ProjectionName, TransformName, ColorName, CenterName, RangeName},
		values:       map[string][]float32{},
		failCreate:   map[string]int{},
	}
}

func (ctx *fakeContext) create(kind string) (uint32, error) {
	if n, ok := ctx.failCreate[kind]; ok {
		if n == 0 {
			return 0, ErrCreateObject
		}
		ctx.failCreate[kind] = n - 1
	}
	ctx.next++
	return ctx.next, nil
}

func (ctx *fakeContext) alive() int {
	return len(ctx.vertexArrays) + len(ctx.buffers)
}

func (ctx *fakeContext) CreateVertexArray() (uint32, error) {
	vertexArray, err := ctx.create("vertex array")
	if err == nil {
		ctx.vertexArrays[vertexArray] = true
		ctx.createdVertexArrays++
	}
	return vertexArray, err
}

func (ctx *fakeContext) BindVertexArray(vertexArray uint32) {
	ctx.boundVertexArray = vertexArray
}

func (ctx *fakeContext) DeleteVertexArray(vertexArray uint32) {
	delete(ctx.vertexArrays, vertexArray)
	ctx.deletedVertexArrays++
}

func (ctx *fakeContext) CreateBuffer() (uint32, error) {
	buffer, err := ctx.create("buffer")
	if err == nil {
		ctx.buffers[buffer] = nil
		ctx.createdBuffers++
	}
	return buffer, err
}

func (ctx *fakeContext) BindBuffer(target, buffer uint32) {
	ctx.bound[target] = buffer
}

func (ctx *fakeContext) BufferData(target uint32, data []byte, usage uint32) {
	ctx.buffers[ctx.bound[target]] = append([]byte{}, data...)
}

func (ctx *fakeContext) DeleteBuffer(buffer uint32) {
	delete(ctx.buffers, buffer)
	ctx.deletedBuffers++
}

func (ctx *fakeContext) EnableVertexAttribArray(index uint32) {}

func (ctx *fakeContext) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
}

func (ctx *fakeContext) CreateShader(kind uint32) (uint32, error) {
	shader, err := ctx.create("shader")
	if err == nil {
		ctx.shaders[shader] = ""
		if kind == ctx.failCompile {
			ctx.shaders[shader] = "fail"
		}
	}
	return shader, err
}

func (ctx *fakeContext) ShaderSource(shader uint32, source string) {
	if ctx.shaders[shader] != "fail" {
		ctx.shaders[shader] = source
	}
}

func (ctx *fakeContext) CompileShader(shader uint32) {}

func (ctx *fakeContext) ShaderCompileStatus(shader uint32) bool {
	return ctx.shaders[shader] != "fail"
}

func (ctx *fakeContext) ShaderInfoLog(shader uint32) string {
	return "0:1(1): error: syntax error\n"
}

func (ctx *fakeContext) DeleteShader(shader uint32) {
	delete(ctx.shaders, shader)
	ctx.deletedShaders++
}

func (ctx *fakeContext) CreateProgram() (uint32, error) {
	program, err := ctx.create("program")
	if err == nil {
		ctx.programs[program] = nil
	}
	return program, err
}

func (ctx *fakeContext) AttachShader(program, shader uint32) {
	ctx.programs[program] = append(ctx.programs[program], shader)
}

func (ctx *fakeContext) DetachShader(program, shader uint32) {
	ctx.detachedShaders++
}

func (ctx *fakeContext) LinkProgram(program uint32) {}

func (ctx *fakeContext) ProgramLinkStatus(program uint32) bool {
	return !ctx.failLink
}

func (ctx *fakeContext) ProgramInfoLog(program uint32) string {
	return "error: vertex output fragPosition not read\n"
}

func (ctx *fakeContext) UseProgram(program uint32) {
	ctx.program = program
}

func (ctx *fakeContext) DeleteProgram(program uint32) {
	delete(ctx.programs, program)
}

func (ctx *fakeContext) UniformLocation(program uint32, name string) (int32, bool) {
	for i, uniform := range ctx.uniforms {
		if uniform == name {
			return int32(i + 1), true
		}
	}
	return -1, false
}

func (ctx *fakeContext) set(location int32, values ...float32) {
	ctx.values[ctx.uniforms[location-1]] = values
}

func (ctx *fakeContext) Uniform1f(location int32, v0 float32) {
	ctx.set(location, v0)
}

func (ctx *fakeContext) Uniform2f(location int32, v0, v1 float32) {
	ctx.set(location, v0, v1)
}

func (ctx *fakeContext) Uniform3f(location int32, v0, v1, v2 float32) {
	ctx.set(location, v0, v1, v2)
}

func (ctx *fakeContext) UniformMatrix4f(location int32, transpose bool, m [16]float32) {
	ctx.set(location, m[:]...)
}

func (ctx *fakeContext) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	values := map[string][]float32{}
	for name, v := range ctx.values {
		values[name] = v
	}
	ctx.draws = append(ctx.draws, fakeDraw{ctx.program, ctx.boundVertexArray, count, values})
	ctx.values = map[string][]float32{}
}

func (ctx *fakeContext) ClearColor(r, g, b, a float32) {
	ctx.clear = [4]float32{r, g, b, a}
}

// uploaded decodes the vertex and index buffers of a mesh.
func (ctx *fakeContext) uploaded(m *Mesh) ([]float32, []uint16) {
	vb, ib := ctx.buffers[m.vertexBuffer], ctx.buffers[m.indexBuffer]
	vertices := make([]float32, len(vb)/4)
	for i := range vertices {
		vertices[i] = math.Float32frombits(binary.LittleEndian.Uint32(vb[4*i:]))
	}
	indices := make([]uint16, len(ib)/2)
	for i := range indices {
		indices[i] = binary.LittleEndian.Uint16(ib[2*i:])
	}
	return vertices, indices
}

func triangleArea(g Geometry, i int) float64 {
	a, b, c := g.Vertex(int(g.Indices[i])), g.Vertex(int(g.Indices[i+1])), g.Vertex(int(g.Indices[i+2]))
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2.0
}

func meshArea(g Geometry) float64 {
	area := 0.0
	for i := 0; i < len(g.Indices); i += 3 {
		area += triangleArea(g, i)
	}
	return area
}
