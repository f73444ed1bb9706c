// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gpu manages the lifecycle of OpenGL 3.3 core resources for
drawing with a programmable pipeline: shader programs compiled and
linked from GLSL source, geometry uploaded into vertex and index
buffers with the attribute layout recorded in a vertex array, and
a render loop that clears, draws and presents each frame until the
surface is closed, then releases everything in reverse creation order.

All GL calls go through a [Driver], either gldriver for a real GL
context or softdriver for headless rendering, and the window system
is behind a [Surface] (see the desktop and offscreen packages).

Basic usage:

	ctx, err := gpu.NewContext(surface, driver)
	pr, err := gpu.NewProgram(ctx, "orange", vertexSrc, fragmentSrc)
	gm, err := gpu.NewGeometry(ctx, "triangle", vertices, gpu.PackedLayout(3), nil)
	lp := gpu.NewLoop(ctx)
	err = lp.AddDraw(pr, gm, gpu.Triangles, gm.Count())
	err = lp.Run() // releases ctx when the surface closes
*/
package gpu

//go:generate core generate
