// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package desktop provides a [gpu.Surface] that is a desktop window
// with an OpenGL core profile context, using glfw.
//
// glfw must be used from the main thread: call runtime.LockOSThread
// in an init function of the main package.
package desktop

import (
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a desktop window [gpu.Surface].
type Window struct {
	Options Options

	window    *glfw.Window
	destroyed bool
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// NewWindow initializes glfw and opens a new window with the given options.
// It must be called on the main thread.
func NewWindow(opts Options) (*Window, error) {
	if opts.Major == 0 {
		opts.Major, opts.Minor = 3, 3
	}
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(&gpu.SurfaceError{Op: "initialize glfw", Err: err})
	}
	glfw.WindowHint(glfw.ContextVersionMajor, opts.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))
	window, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(&gpu.SurfaceError{Op: "create window", Err: err})
	}
	w := &Window{Options: opts, window: window}
	window.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})
	if gpu.Debug {
		slog.Info("desktop.NewWindow", "title", opts.Title, "size", opts.Size, "version", [2]int{opts.Major, opts.Minor})
	}
	return w, nil
}

// MakeCurrent makes the GL context of the window current and
// sets the swap interval.
func (w *Window) MakeCurrent() {
	w.window.MakeContextCurrent()
	if w.Options.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *Window) ShouldClose() bool {
	return w.destroyed || w.window.ShouldClose()
}

// Close requests that the window close.
func (w *Window) Close() {
	w.window.SetShouldClose(true)
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Size returns the framebuffer size in pixels, which can differ
// from the window size on high DPI displays.
func (w *Window) Size() image.Point {
	width, height := w.window.GetFramebufferSize()
	return image.Point{width, height}
}

// Destroy destroys the window and terminates glfw.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.window.Destroy()
	glfw.Terminate()
}
