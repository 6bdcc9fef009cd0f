// Example opens a window with a panel holding a label, a button, a checkbox
// and a multiline text field built by the standard factory.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -theme theme.toml -v
//
// Click the text field to place the caret, type to insert, Tab to cycle
// focus and Escape to drop it.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/compas"
	"github.com/go-theft-auto/compas/backend/opengl"
	"github.com/go-theft-auto/compas/standard"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "compas example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	themePath := flag.String("theme", "", "TOML or YAML theme file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	compas.SetVerbose(*verbose)

	if err := run(*themePath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(themePath string) error {
	theme := standard.DefaultTheme()
	if themePath != "" {
		t, err := standard.LoadTheme(themePath)
		if err != nil {
			return err
		}
		theme = t
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	factory, err := standard.NewFactory(standard.WithTheme(theme))
	if err != nil {
		return err
	}
	renderer.UploadAtlas(factory.Font().Atlas())

	// HiDPI: scale the scene by framebuffer pixels per window unit.
	ww, _ := window.GetSize()
	scale := float32(fbw) / float32(ww)
	stage := compas.NewStage(renderer, compas.WithScale(scale, scale))

	input := opengl.NewGLFWInputAdapter(window)
	input.OnResize(stage.Resize)
	input.SetCursorScale(scale, scale)

	stage.Add(buildScene(factory))

	for !window.ShouldClose() {
		input.BeginFrame()
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := stage.Frame(input.Input()); err != nil {
			return fmt.Errorf("frame: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func buildScene(f compas.ComponentFactory) compas.Component {
	panel := f.CreatePanel()
	panel.SetPos(40, 40)
	panel.SetSize(460, 420)

	title := f.CreateLabel()
	title.SetText("Notes")
	title.SetPos(20, 16)

	field := f.CreateTextField()
	field.SetPos(20, 70)
	field.SetSize(420, 200)
	field.SetText("Click anywhere in this text")

	status := f.CreateLabel()
	status.SetPos(20, 360)
	status.SetText(fmt.Sprintf("%d characters", len([]rune(field.Text()))))
	field.OnChange(func(_ compas.TextField, text string) {
		status.SetText(fmt.Sprintf("%d characters", len([]rune(text))))
	})

	textColor := field.Color()
	red := f.CreateCheckbox()
	red.SetText("Red text")
	red.SetPos(20, 300)
	red.OnChange(func(_ compas.Checkbox, checked bool) {
		if checked {
			field.SetColor(compas.ColorRed)
		} else {
			field.SetColor(textColor)
		}
	})

	clearButton := f.CreateButton()
	clearButton.SetText("Clear")
	clearButton.SetPos(320, 290)
	clearButton.OnClick(func(compas.Button) {
		field.SetText("")
		status.SetText("0 characters")
	})

	panel.AddComponent(title)
	panel.AddComponent(field)
	panel.AddComponent(red)
	panel.AddComponent(clearButton)
	panel.AddComponent(status)
	return panel
}
