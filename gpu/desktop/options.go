// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import "image"

// Options are the options for creating a window.
type Options struct {
	// Size is the size of the window in screen coordinates.
	Size image.Point

	// Title is the window title.
	Title string

	// Major and Minor are the requested OpenGL version,
	// 3.3 if unset. A core, forward compatible profile is always used.
	Major, Minor int

	// VSync waits for the vertical blank on each swap.
	VSync bool

	// Resizable allows the user to resize the window.
	Resizable bool
}
