package glshapes

import (
	"errors"
	"fmt"
	"strings"
)

// Version is the GLSL version directive prepended to all shader sources.
const Version = "#version 330"

var (
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrProgramLink   = errors.New("program linking failed")
)

// Program is a linked shader program. It is owned by the caller and must be deleted explicitly.
type Program uint32

// Delete releases the program.
func (program Program) Delete(ctx Context) {
	ctx.DeleteProgram(uint32(program))
}

func shaderKindName(kind uint32) string {
	switch kind {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("0x%04X", kind)
}

// CompileShader compiles the vertex and fragment shader sources and links them into a program. The sources must not contain a #version directive, it is prepended. On failure the error contains the driver's info log, and intermediate objects are not released.
func CompileShader(ctx Context, vertexSource, fragmentSource string) (Program, error) {
	program, err := ctx.CreateProgram()
	if err != nil {
		return 0, fmt.Errorf("program: %w", err)
	}

	sources := []struct {
		kind   uint32
		source string
	}{
		{VertexShader, vertexSource},
		{FragmentShader, fragmentSource},
	}
	shaders := make([]uint32, 0, len(sources))
	for _, src := range sources {
		shader, err := ctx.CreateShader(src.kind)
		if err != nil {
			return 0, fmt.Errorf("%s shader: %w", shaderKindName(src.kind), err)
		}
		ctx.ShaderSource(shader, Version+"\n"+src.source)
		ctx.CompileShader(shader)
		if !ctx.ShaderCompileStatus(shader) {
			log := strings.TrimSpace(ctx.ShaderInfoLog(shader))
			Logger().Warn("shader compilation failed", "stage", shaderKindName(src.kind), "log", log)
			return 0, fmt.Errorf("%w: %s shader: %s", ErrShaderCompile, shaderKindName(src.kind), log)
		}
		ctx.AttachShader(program, shader)
		shaders = append(shaders, shader)
	}

	ctx.LinkProgram(program)
	if !ctx.ProgramLinkStatus(program) {
		log := strings.TrimSpace(ctx.ProgramInfoLog(program))
		Logger().Warn("program linking failed", "log", log)
		return 0, fmt.Errorf("%w: %s", ErrProgramLink, log)
	}

	for _, shader := range shaders {
		ctx.DetachShader(program, shader)
		ctx.DeleteShader(shader)
	}
	Logger().Debug("linked shader program", "program", program)
	return Program(program), nil
}

// MustCompileShader is like CompileShader but panics on error.
func MustCompileShader(ctx Context, vertexSource, fragmentSource string) Program {
	program, err := CompileShader(ctx, vertexSource, fragmentSource)
	if err != nil {
		panic(err)
	}
	return program
}
