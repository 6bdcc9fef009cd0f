// Command gen renders each standard widget with sample content, captures
// the framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/compas"
	"github.com/go-theft-auto/compas/backend/opengl"
	"github.com/go-theft-auto/compas/standard"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                                           // filename without extension
	width  int                                              // viewport width
	height int                                              // viewport height
	build  func(f compas.ComponentFactory, s *compas.Stage) // scene setup
	frames int                                              // frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	factory, err := standard.NewFactory()
	if err != nil {
		return err
	}
	renderer.UploadAtlas(factory.Font().Atlas())

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, factory, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, factory compas.ComponentFactory, s screenshot, outDir string) error {
	// The hidden window stays at 800x600; only the projection follows the
	// screenshot size.
	renderer.Resize(s.width, s.height)

	stage := compas.NewStage(renderer)
	s.build(factory, stage)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := stage.Frame(nil); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "label", width: 400, height: 80,
			build: func(f compas.ComponentFactory, s *compas.Stage) {
				l := f.CreateLabel()
				l.SetText("Plain label")
				l.SetPos(12, 12)
				s.Add(l)
			},
		},
		{
			name: "button", width: 300, height: 80,
			build: func(f compas.ComponentFactory, s *compas.Stage) {
				b := f.CreateButton()
				b.SetText("Apply")
				b.SetPos(12, 12)
				s.Add(b)
			},
		},
		{
			name: "checkbox", width: 300, height: 100,
			build: func(f compas.ComponentFactory, s *compas.Stage) {
				on := f.CreateCheckbox()
				on.SetText("Enabled")
				on.SetChecked(true)
				on.SetPos(12, 12)
				off := f.CreateCheckbox()
				off.SetText("Disabled")
				off.SetPos(12, 52)
				s.Add(on)
				s.Add(off)
			},
		},
		{
			// Enough frames for the caret to reach the visible half of
			// its blink period.
			name: "text_field", width: 400, height: 160, frames: compas.DefaultBlinkPeriod/2 + 1,
			build: func(f compas.ComponentFactory, s *compas.Stage) {
				tf := f.CreateTextField()
				tf.SetPos(12, 12)
				tf.SetSize(360, 130)
				tf.SetText("Hello,\nworld!")
				tf.SetCaretIndex(5)
				s.Add(tf)
				if fc, ok := tf.(compas.Focusable); ok {
					s.Focus(fc)
				}
			},
		},
		{
			name: "panel", width: 360, height: 260,
			build: func(f compas.ComponentFactory, s *compas.Stage) {
				p := f.CreatePanel()
				p.SetPos(12, 12)
				p.SetSize(330, 230)

				title := f.CreateLabel()
				title.SetText("Settings")
				title.SetPos(12, 8)

				cb := f.CreateCheckbox()
				cb.SetText("Sound")
				cb.SetChecked(true)
				cb.SetPos(12, 70)

				b := f.CreateButton()
				b.SetText("Apply")
				b.SetPos(12, 160)

				p.AddComponent(title)
				p.AddComponent(cb)
				p.AddComponent(b)
				s.Add(p)
			},
		},
	}
}
