// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"fmt"
	"image"
	"testing"

	"cogentcore.org/glpipe/gpu"
	"cogentcore.org/glpipe/gpu/offscreen"
	"cogentcore.org/glpipe/gpu/softdriver"
	"github.com/stretchr/testify/require"
)

const vertexSrc = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentSrc = `#version 330 core
out vec4 FragColor;
void main()
{
	FragColor = vec4(0.8f, 0.3f, 0.02f, 1.0f);
}
`

// recorder is a software driver that logs the binding and
// deletion calls and the surface destruction, and keeps the
// clear color.
type recorder struct {
	*softdriver.Driver
	log []string

	// clear is the last clear color set.
	clear [4]float32
}

func (rc *recorder) add(format string, args ...any) {
	rc.log = append(rc.log, fmt.Sprintf(format, args...))
}

func (rc *recorder) ClearColor(r, g, b, a float32) {
	rc.clear = [4]float32{r, g, b, a}
	rc.Driver.ClearColor(r, g, b, a)
}

func (rc *recorder) UseProgram(pr uint32) {
	rc.add("UseProgram %d", pr)
	rc.Driver.UseProgram(pr)
}

func (rc *recorder) BindVertexArray(vao uint32) {
	rc.add("BindVertexArray %d", vao)
	rc.Driver.BindVertexArray(vao)
}

func (rc *recorder) DeleteProgram(pr uint32) {
	rc.add("DeleteProgram %d", pr)
	rc.Driver.DeleteProgram(pr)
}

func (rc *recorder) DeleteVertexArray(vao uint32) {
	rc.add("DeleteVertexArray %d", vao)
	rc.Driver.DeleteVertexArray(vao)
}

func (rc *recorder) DeleteBuffer(buf uint32) {
	rc.add("DeleteBuffer %d", buf)
	rc.Driver.DeleteBuffer(buf)
}

// calls returns the logged calls with the given prefix.
func (rc *recorder) calls(prefix string) []string {
	var res []string
	for _, c := range rc.log {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			res = append(res, c)
		}
	}
	return res
}

type recordingSurface struct {
	*offscreen.Surface
	rc *recorder
}

func (sf *recordingSurface) Destroy() {
	if !sf.Destroyed() {
		sf.rc.add("Destroy")
	}
	sf.Surface.Destroy()
}

var testSize = image.Pt(32, 32)

// newContext returns a new context on a software driver and an
// offscreen surface closing after the given number of frames.
func newContext(t *testing.T, frames int) (*gpu.Context, *recorder, *recordingSurface) {
	osf, err := offscreen.New(testSize, frames)
	require.NoError(t, err)
	rc := &recorder{Driver: softdriver.New(testSize)}
	sf := &recordingSurface{Surface: osf, rc: rc}
	ctx, err := gpu.NewContext(sf, rc)
	require.NoError(t, err)
	return ctx, rc, sf
}

// triangleVertices are 6 packed vec3 records: a triangle and
// the midpoints of its sides.
var triangleVertices = []float32{
	-0.5, -0.288675, 0,
	0.5, -0.288675, 0,
	0, 0.57735, 0,
	-0.25, 0.144338, 0,
	0.25, 0.144338, 0,
	0, -0.288675, 0,
}

var triangleIndices = []uint32{0, 3, 5, 3, 2, 4, 5, 4, 1}
