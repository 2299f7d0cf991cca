//go:build cgo

package main

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/glshapes"
	"github.com/tdewolff/glshapes/opengl"
)

type Demo struct {
	Width      int    `default:"800" desc:"Window width"`
	Height     int    `default:"600" desc:"Window height"`
	Title      string `default:"glshapes" desc:"Window title"`
	Vertex     string `desc:"Vertex shader file"`
	Fragment   string `desc:"Fragment shader file for solid fills"`
	Gradient   string `desc:"Fragment shader file for radial gradients"`
	Background string `short:"b" default:"#2f4f4f" desc:"Background color, hexadecimal or SVG color name"`
	Verbose    bool   `short:"v" desc:"Log debug information"`
}

func init() {
	// GLFW event handling and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	root := argp.NewCmd(&Demo{}, "Draw shapes with OpenGL")
	root.Parse()
	root.PrintHelp()
}

func readSource(filename, fallback string) (string, error) {
	if filename == "" {
		return fallback, nil
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (cmd *Demo) Run() error {
	if cmd.Width <= 0 || cmd.Height <= 0 {
		fmt.Println("ERROR: window size must be positive")
		return argp.ShowUsage
	}
	background, err := glshapes.ParseColor(cmd.Background)
	if err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}
	if cmd.Verbose {
		glshapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	vertexSource, err := readSource(cmd.Vertex, glshapes.VertexShaderSource)
	if err != nil {
		return err
	}
	fragmentSource, err := readSource(cmd.Fragment, glshapes.FlatFragmentShaderSource)
	if err != nil {
		return err
	}
	gradientSource, err := readSource(cmd.Gradient, glshapes.RadialGradientFragmentShaderSource)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cmd.Width, cmd.Height, cmd.Title, nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()

	ctx, err := opengl.New()
	if err != nil {
		return err
	}
	fmt.Println("OpenGL version", ctx.Version)

	flat, err := glshapes.CompileShader(ctx, vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	defer flat.Delete(ctx)
	gradient, err := glshapes.CompileShader(ctx, vertexSource, gradientSource)
	if err != nil {
		return err
	}
	defer gradient.Delete(ctx)

	demo, err := newScene(ctx, cmd.Width)
	if err != nil {
		return err
	}
	defer demo.Close()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape, glfw.KeyQ:
			w.SetShouldClose(true)
		case glfw.KeyC:
			demo.ToggleCorners()
		}
	})

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	glshapes.SetClearColor(ctx, background)

	for !window.ShouldClose() {
		fbWidth, fbHeight := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		width, height := window.GetSize()
		if err := demo.Draw(flat, gradient, image.Pt(width, height), glfw.GetTime()); err != nil {
			return err
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

////////////////////////////////////////////////////////////////

const margin = 20.0

type scene struct {
	bar      *glshapes.Rectangle
	circle   *glshapes.Circle
	ring     *glshapes.OutlinedCircle
	glow     *glshapes.RadialGradient
	star     *glshapes.PathShape
	corner   glshapes.CornerType
	barWidth int
}

func newScene(ctx glshapes.Context, width int) (*scene, error) {
	s := &scene{corner: glshapes.RoundCorners, barWidth: width}
	var err error
	if s.bar, err = glshapes.NewRectangle(ctx, float32(width)-2.0*margin, 48.0, s.corner); err != nil {
		return nil, err
	}
	if s.circle, err = glshapes.NewCircle(ctx, 60.0); err != nil {
		s.Close()
		return nil, err
	}
	if s.ring, err = glshapes.NewOutlinedCircle(ctx, 50.0, 6.0); err != nil {
		s.Close()
		return nil, err
	}
	if s.glow, err = glshapes.NewRadialGradient(ctx, 120.0); err != nil {
		s.Close()
		return nil, err
	}
	star, err := glshapes.ParseSVGPath("M0 -50L11.8 -16.2L47.6 -15.5L19 6.2L29.4 40.5L0 20L-29.4 40.5L-19 6.2L-47.6 -15.5L-11.8 -16.2z")
	if err != nil {
		s.Close()
		return nil, err
	}
	if s.star, err = glshapes.NewPathShape(ctx, star); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *scene) ToggleCorners() {
	if s.corner == glshapes.RoundCorners {
		s.corner = glshapes.HardCorners
	} else {
		s.corner = glshapes.RoundCorners
	}
	s.barWidth = 0 // rebuild on next draw
}

func (s *scene) Draw(flat, gradient glshapes.Program, size image.Point, t float64) error {
	if s.barWidth != size.X && 2.0*margin < float64(size.X) {
		if err := s.bar.Update(float32(size.X)-2.0*margin, s.bar.Height, s.corner); err != nil {
			return err
		}
		s.barWidth = size.X
	}

	cx, cy := float32(size.X)/2.0, float32(size.Y)/2.0
	orbit := float32(math.Min(float64(cx), float64(cy)) / 2.0)
	sin, cos := math.Sincos(t)

	if err := s.glow.DrawWith(gradient, mgl32.Vec2{cx, cy}, glshapes.Orange, size); err != nil {
		return err
	}
	if err := s.bar.DrawWith(flat, mgl32.Vec2{margin, margin}, glshapes.Steelblue, size); err != nil {
		return err
	}
	if err := s.circle.DrawWith(flat, mgl32.Vec2{cx + orbit*float32(cos), cy + orbit*float32(sin)}, glshapes.Tomato, size); err != nil {
		return err
	}
	if err := s.ring.DrawWith(flat, mgl32.Vec2{cx - orbit*float32(cos), cy - orbit*float32(sin)}, glshapes.White, glshapes.Teal, size); err != nil {
		return err
	}
	return s.star.DrawWith(flat, mgl32.Vec2{cx, cy}, glshapes.Yellow, size)
}

func (s *scene) Close() {
	if s.bar != nil {
		s.bar.Close()
	}
	if s.circle != nil {
		s.circle.Close()
	}
	if s.ring != nil {
		s.ring.Close()
	}
	if s.glow != nil {
		s.glow.Close()
	}
	if s.star != nil {
		s.star.Close()
	}
}
