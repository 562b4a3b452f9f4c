package glg

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key identifies a keyboard key polled through a Surface.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyEscape
)

// Surface is the window a RenderLoop draws into.
type Surface interface {
	ShouldClose() bool
	SetShouldClose(bool)
	KeyPressed(key Key) bool
	FramebufferSize() (width, height int)
	SwapBuffers()
	PollEvents()
}

// WindowConfig describes the window and GL context requested by OpenWindow.
type WindowConfig struct {
	Width, Height int
	Title         string

	// Requested GL context version, core profile.
	GLMajor, GLMinor int
}

// Window is a GLFW window with a current GL context.
type Window struct {
	GLFWWindow *glfw.Window

	// OnResize is called with the new framebuffer size after the window is
	// resized.
	OnResize func(width, height int)
}

// OpenWindow initializes GLFW, creates a window and makes its GL context
// current on the calling thread, which must be locked to its OS thread.
func OpenWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %v", ErrWindowCreation, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	win.MakeContextCurrent()

	w := &Window{GLFWWindow: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.OnResize != nil {
			w.OnResize(width, height)
		}
	})

	return w, nil
}

func (w *Window) ShouldClose() bool {
	return w.GLFWWindow.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.GLFWWindow.SetShouldClose(v)
}

func (w *Window) KeyPressed(key Key) bool {
	var k glfw.Key
	switch key {
	case KeyLeft:
		k = glfw.KeyLeft
	case KeyRight:
		k = glfw.KeyRight
	case KeyEscape:
		k = glfw.KeyEscape
	default:
		return false
	}
	return w.GLFWWindow.GetKey(k) == glfw.Press
}

func (w *Window) FramebufferSize() (int, int) {
	return w.GLFWWindow.GetFramebufferSize()
}

func (w *Window) SwapBuffers() {
	w.GLFWWindow.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.GLFWWindow.Destroy()
	glfw.Terminate()
}
