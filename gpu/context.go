// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
	"log/slog"
	"slices"
)

// Debug enables verbose logging of resource creation and release.
var Debug = false

// Context is the graphics context for one [Surface]: it owns
// the [Driver] used to issue GL calls, the current binding state
// (the one active program and the one active vertex array), and
// the list of live programs and geometry, so that everything can
// be released in reverse creation order.
//
// GL binding is global selection state, so a Context must only be
// used from the thread that made its surface current. It is not
// safe for concurrent use.
type Context struct {
	// Surface is the rendering surface we draw into.
	Surface Surface

	// Driver issues the GL calls.
	Driver Driver

	// Size is the viewport size, set from the Surface at creation.
	Size image.Point

	// program is the currently used program.
	program *Program

	// geometry is the geometry whose vertex array is bound.
	geometry *Geometry

	// vertex array handle currently bound, which can be
	// a geometry under construction.
	vertexArray uint32

	programs   []*Program
	geometries []*Geometry

	released bool
}

// NewContext returns a new Context for the given surface and driver.
// The surface is made current and the viewport is set to cover it.
// For a driver that loads GL entry points (gldriver), the surface
// must already be current when the driver is created.
func NewContext(sf Surface, drv Driver) (*Context, error) {
	if sf == nil {
		return nil, &SurfaceError{Op: "context", Err: ErrNoContext}
	}
	if drv == nil {
		return nil, &SurfaceError{Op: "driver", Err: ErrNoContext}
	}
	sf.MakeCurrent()
	ctx := &Context{Surface: sf, Driver: drv, Size: sf.Size()}
	drv.Viewport(0, 0, ctx.Size.X, ctx.Size.Y)
	if Debug {
		slog.Info("gpu.NewContext", "size", ctx.Size, "driver", drv.Version())
	}
	return ctx, nil
}

// check returns an error if the context cannot be used.
func (ctx *Context) check() error {
	if ctx == nil {
		return ErrNoContext
	}
	if ctx.released {
		return ErrReleased
	}
	return nil
}

// Released returns true if the context has been released.
func (ctx *Context) Released() bool {
	return ctx == nil || ctx.released
}

// CurrentProgram returns the program in use, or nil.
func (ctx *Context) CurrentProgram() *Program {
	return ctx.program
}

// CurrentGeometry returns the geometry that is bound, or nil.
func (ctx *Context) CurrentGeometry() *Geometry {
	return ctx.geometry
}

// Programs returns the live programs in creation order.
func (ctx *Context) Programs() []*Program {
	return slices.Clone(ctx.programs)
}

// Geometries returns the live geometry in creation order.
func (ctx *Context) Geometries() []*Geometry {
	return slices.Clone(ctx.geometries)
}

// SetClearColor sets the color that [Context.Clear] clears to.
// A [Color] is passed to the driver as is. A nil color is ignored.
func (ctx *Context) SetClearColor(c color.Color) {
	if c == nil {
		return
	}
	fc := ColorOf(c)
	ctx.Driver.ClearColor(fc[0], fc[1], fc[2], fc[3])
}

// Clear clears the surface to the clear color.
func (ctx *Context) Clear() {
	ctx.Driver.Clear()
}

// useProgram makes the program current, skipping the call when
// it already is.
func (ctx *Context) useProgram(pr *Program) {
	if ctx.program == pr {
		return
	}
	ctx.program = pr
	var handle uint32
	if pr != nil {
		handle = pr.handle
	}
	ctx.Driver.UseProgram(handle)
}

// bindVertexArray binds the vertex array, skipping the call when
// it already is bound.
func (ctx *Context) bindVertexArray(vao uint32) {
	if ctx.vertexArray == vao {
		return
	}
	ctx.vertexArray = vao
	ctx.Driver.BindVertexArray(vao)
}

// bindGeometry binds the vertex array of the given geometry (nil for none).
func (ctx *Context) bindGeometry(gm *Geometry) {
	ctx.geometry = gm
	var vao uint32
	if gm != nil {
		vao = gm.vao
	}
	ctx.bindVertexArray(vao)
}

// Release releases all live geometry and then all live programs,
// each in reverse creation order, and then destroys the surface.
// It is a no-op on a nil or already released context.
func (ctx *Context) Release() {
	if ctx == nil || ctx.released {
		return
	}
	for i := len(ctx.geometries) - 1; i >= 0; i-- {
		ctx.geometries[i].release(false)
	}
	ctx.geometries = nil
	for i := len(ctx.programs) - 1; i >= 0; i-- {
		ctx.programs[i].release(false)
	}
	ctx.programs = nil
	if ctx.Surface != nil {
		ctx.Surface.Destroy()
	}
	ctx.released = true
	if Debug {
		slog.Info("gpu.Context released")
	}
}

func (ctx *Context) removeProgram(pr *Program) {
	if i := slices.Index(ctx.programs, pr); i >= 0 {
		ctx.programs = slices.Delete(ctx.programs, i, i+1)
	}
}

func (ctx *Context) removeGeometry(gm *Geometry) {
	if i := slices.Index(ctx.geometries, gm); i >= 0 {
		ctx.geometries = slices.Delete(ctx.geometries, i, i+1)
	}
}
