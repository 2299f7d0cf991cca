//go:build cgo

// Package opengl implements glshapes.Context on top of the go-gl OpenGL 3.3 core bindings.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/tdewolff/glshapes"
)

// Context calls into the OpenGL context that is current on the calling thread.
type Context struct {
	Version string
}

var _ glshapes.Context = (*Context)(nil)

// New loads the OpenGL function pointers. A GL 3.3 core context must be current on the calling thread, which must stay locked to its OS thread (see runtime.LockOSThread).
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	glshapes.Logger().Info("initialised OpenGL", "version", version)
	return &Context{Version: version}, nil
}

func created(kind string, handle uint32) (uint32, error) {
	if handle == 0 {
		return 0, fmt.Errorf("%w: %s", glshapes.ErrCreateObject, kind)
	}
	return handle, nil
}

func (ctx *Context) CreateVertexArray() (uint32, error) {
	var vertexArray uint32
	gl.GenVertexArrays(1, &vertexArray)
	return created("vertex array", vertexArray)
}

func (ctx *Context) BindVertexArray(vertexArray uint32) {
	gl.BindVertexArray(vertexArray)
}

func (ctx *Context) DeleteVertexArray(vertexArray uint32) {
	gl.DeleteVertexArrays(1, &vertexArray)
}

func (ctx *Context) CreateBuffer() (uint32, error) {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return created("buffer", buffer)
}

func (ctx *Context) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (ctx *Context) BufferData(target uint32, data []byte, usage uint32) {
	var ptr unsafe.Pointer
	if 0 < len(data) {
		ptr = gl.Ptr(&data[0])
	}
	gl.BufferData(target, len(data), ptr, usage)
}

func (ctx *Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (ctx *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (ctx *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
}

func (ctx *Context) CreateShader(kind uint32) (uint32, error) {
	return created("shader", gl.CreateShader(kind))
}

func (ctx *Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (ctx *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (ctx *Context) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (ctx *Context) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (ctx *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (ctx *Context) CreateProgram() (uint32, error) {
	return created("program", gl.CreateProgram())
}

func (ctx *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (ctx *Context) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (ctx *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (ctx *Context) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (ctx *Context) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (ctx *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (ctx *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UniformLocation returns false for names that are not an active uniform, including uniforms the driver optimised away.
func (ctx *Context) UniformLocation(program uint32, name string) (int32, bool) {
	location := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	return location, location != -1
}

func (ctx *Context) Uniform1f(location int32, v0 float32) {
	gl.Uniform1f(location, v0)
}

func (ctx *Context) Uniform2f(location int32, v0, v1 float32) {
	gl.Uniform2f(location, v0, v1)
}

func (ctx *Context) Uniform3f(location int32, v0, v1, v2 float32) {
	gl.Uniform3f(location, v0, v1, v2)
}

func (ctx *Context) UniformMatrix4f(location int32, transpose bool, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &m[0])
}

func (ctx *Context) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	gl.DrawElementsWithOffset(mode, count, xtype, uintptr(offset))
}

func (ctx *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}
