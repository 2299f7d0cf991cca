package glshapes

import "errors"

// GL enumerations used by this package. The values are those of the OpenGL specification so that a binding can pass them through unchanged.
const (
	Triangles          uint32 = 0x0004
	UnsignedShort      uint32 = 0x1403
	Float              uint32 = 0x1406
	ArrayBuffer        uint32 = 0x8892
	ElementArrayBuffer uint32 = 0x8893
	StaticDraw         uint32 = 0x88E4
	DynamicDraw        uint32 = 0x88E8
	FragmentShader     uint32 = 0x8B30
	VertexShader       uint32 = 0x8B31
)

// ErrCreateObject is returned when the graphics context fails to create a vertex array, buffer, shader, or program.
var ErrCreateObject = errors.New("cannot create GL object")

// Context is the graphics context that shapes, uniforms, and shaders draw through. It mirrors the subset of the OpenGL 3.3 core API that is required. A Context is not safe for concurrent use; all calls must be made from the thread that owns the underlying GL context. Many shapes may share the same Context.
type Context interface {
	CreateVertexArray() (uint32, error)
	BindVertexArray(vertexArray uint32)
	DeleteVertexArray(vertexArray uint32)

	CreateBuffer() (uint32, error)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []byte, usage uint32)
	DeleteBuffer(buffer uint32)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)

	CreateShader(kind uint32) (uint32, error)
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() (uint32, error)
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns false when the program has no active uniform with the given name.
	UniformLocation(program uint32, name string) (int32, bool)
	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	UniformMatrix4f(location int32, transpose bool, m [16]float32)

	DrawElements(mode uint32, count int32, xtype uint32, offset int)
	ClearColor(r, g, b, a float32)
}
