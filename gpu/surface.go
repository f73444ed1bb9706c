// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "image"

// Surface is the windowing collaborator that owns the rendering
// surface that a [Context] draws into. Creating a surface is
// specific to each implementation (see the desktop and offscreen
// packages) and fails with a [SurfaceError].
type Surface interface {
	// MakeCurrent makes the GL context of this surface current
	// on the calling thread.
	MakeCurrent()

	// ShouldClose reports whether a close has been requested,
	// e.g., by the user closing the window.
	ShouldClose() bool

	// SwapBuffers presents the frame that was just rendered.
	SwapBuffers()

	// PollEvents processes all pending window events.
	PollEvents()

	// Size returns the size of the drawable area in pixels.
	Size() image.Point

	// Destroy releases the surface; it must be a no-op when
	// called more than once.
	Destroy()
}
