// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a [gpu.Surface] with no window,
// for headless rendering and tests. It requests a close after
// a fixed number of frames have been presented.
package offscreen

import (
	"fmt"
	"image"

	"cogentcore.org/glpipe/gpu"
)

// Surface is an offscreen [gpu.Surface].
type Surface struct {
	size      image.Point
	frames    int
	presented int
	current   bool
	closed    bool
	destroyed bool

	// OnPresent, if set, is called on each SwapBuffers with
	// the number of frames presented so far.
	OnPresent func(frame int)
}

// New returns a new offscreen surface of the given size, which requests
// a close once the given number of frames have been presented.
// A frames value of 0 requests a close right away, so that no frame
// is rendered.
func New(size image.Point, frames int) (*Surface, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, &gpu.SurfaceError{Op: "create offscreen surface", Err: fmt.Errorf("invalid size %v", size)}
	}
	if frames < 0 {
		return nil, &gpu.SurfaceError{Op: "create offscreen surface", Err: fmt.Errorf("invalid frame count %d", frames)}
	}
	return &Surface{size: size, frames: frames}, nil
}

func (sf *Surface) MakeCurrent() {
	sf.current = true
}

// Current returns true if MakeCurrent has been called and
// the surface has not been destroyed.
func (sf *Surface) Current() bool {
	return sf.current
}

func (sf *Surface) ShouldClose() bool {
	return sf.closed || sf.destroyed || sf.presented >= sf.frames
}

// Close requests a close, as a user closing a window does.
func (sf *Surface) Close() {
	sf.closed = true
}

func (sf *Surface) SwapBuffers() {
	sf.presented++
	if sf.OnPresent != nil {
		sf.OnPresent(sf.presented)
	}
}

func (sf *Surface) PollEvents() {}

func (sf *Surface) Size() image.Point {
	return sf.size
}

// Presented returns the number of frames presented.
func (sf *Surface) Presented() int {
	return sf.presented
}

func (sf *Surface) Destroy() {
	if sf.destroyed {
		return
	}
	sf.destroyed = true
	sf.current = false
}

// Destroyed returns true if the surface has been destroyed.
func (sf *Surface) Destroyed() bool {
	return sf.destroyed
}
