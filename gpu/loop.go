// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/errors"
)

// LoopStates are the states of a [Loop].
type LoopStates int32 //enums:enum

const (
	// Idle is the state after setup, before any frame is rendered.
	Idle LoopStates = iota

	// Running is the state while frames are rendered and presented.
	Running

	// Closing is the state after the surface requested a close,
	// while the resources are released.
	Closing

	// Terminated is the final state, after everything was released.
	Terminated
)

// DefaultClearColor is the background color that a [Loop] clears to
// by default.
var DefaultClearColor = Color{0.07, 0.13, 0.17, 1}

// drawItem is one draw call issued every frame.
type drawItem struct {
	program  *Program
	geometry *Geometry
	prim     Primitives
	count    int
}

// Loop is the per-frame render loop for a [Context]: every frame
// clears the surface, draws each added item with its program and
// geometry, presents the frame and polls for events, until the
// surface requests a close. All resources of the context are then
// released in reverse creation order.
type Loop struct {
	// ClearColor is the color the surface is cleared to every frame.
	ClearColor color.Color

	ctx     *Context
	draws   []drawItem
	state   LoopStates
	frames  int
	onFrame func(frame int)
}

// NewLoop returns a new [Idle] Loop for the given context.
func NewLoop(ctx *Context) *Loop {
	return &Loop{ctx: ctx, ClearColor: DefaultClearColor}
}

// SetClearColor sets the color the surface is cleared to every frame.
// A nil color resets it to [DefaultClearColor].
func (lp *Loop) SetClearColor(c color.Color) *Loop {
	if c == nil {
		c = DefaultClearColor
	}
	lp.ClearColor = c
	return lp
}

// OnFrame sets a function that is called after every frame is
// presented, with the number of frames presented so far.
func (lp *Loop) OnFrame(fun func(frame int)) *Loop {
	lp.onFrame = fun
	return lp
}

// AddDraw adds a draw call, issued every frame in the order added.
// The count is checked against the geometry here, so that drawing
// cannot fail once the loop is running.
func (lp *Loop) AddDraw(pr *Program, gm *Geometry, prim Primitives, count int) error {
	if lp.state != Idle {
		return errors.New("gpu.Loop.AddDraw: loop is not idle")
	}
	if pr == nil || pr.handle == 0 {
		return errors.New("gpu.Loop.AddDraw: program is not linked")
	}
	if gm.Released() {
		return errors.New("gpu.Loop.AddDraw: geometry has been released")
	}
	if err := gm.CheckCount(count); err != nil {
		return err
	}
	lp.draws = append(lp.draws, drawItem{program: pr, geometry: gm, prim: prim, count: count})
	return nil
}

// State returns the current state.
func (lp *Loop) State() LoopStates {
	return lp.state
}

// Frames returns the number of frames presented.
func (lp *Loop) Frames() int {
	return lp.frames
}

// Run runs the loop until the surface requests a close, and then
// releases the context. It can only be run once.
func (lp *Loop) Run() error {
	if lp.state != Idle {
		return errors.New("gpu.Loop.Run: loop has already been run")
	}
	if err := lp.ctx.check(); err != nil {
		return err
	}
	sf := lp.ctx.Surface
	lp.state = Running
	if lp.ClearColor == nil {
		lp.ClearColor = DefaultClearColor
	}
	lp.ctx.SetClearColor(lp.ClearColor)
	for !sf.ShouldClose() {
		lp.renderFrame()
		sf.SwapBuffers()
		sf.PollEvents()
		lp.frames++
		if lp.onFrame != nil {
			lp.onFrame(lp.frames)
		}
	}
	lp.state = Closing
	if Debug {
		slog.Info("gpu.Loop closing", "frames", lp.frames)
	}
	lp.ctx.Release()
	lp.state = Terminated
	return nil
}

// renderFrame clears and issues all of the draw calls.
func (lp *Loop) renderFrame() {
	lp.ctx.Clear()
	for _, d := range lp.draws {
		d.program.Use()
		errors.Log(d.geometry.Draw(d.prim, d.count))
	}
}
