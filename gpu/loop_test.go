// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"image/color"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop(t *testing.T) {
	ctx, rc, sf := newContext(t, 3)
	pr, err := gpu.NewProgram(ctx, "orange", vertexSrc, fragmentSrc)
	require.NoError(t, err)
	gm, err := gpu.NewGeometry(ctx, "indexed", triangleVertices, gpu.PackedLayout(3), triangleIndices)
	require.NoError(t, err)

	lp := gpu.NewLoop(ctx)
	assert.Equal(t, gpu.Idle, lp.State())
	assert.Equal(t, gpu.DefaultClearColor, lp.ClearColor)
	require.NoError(t, lp.AddDraw(pr, gm, gpu.Triangles, gm.Count()))

	var states []gpu.LoopStates
	var frames []int
	lp.OnFrame(func(frame int) {
		states = append(states, lp.State())
		frames = append(frames, frame)
	})
	require.NoError(t, lp.Run())
	assert.Equal(t, gpu.Terminated, lp.State())
	assert.Equal(t, 3, lp.Frames())
	assert.Equal(t, 3, sf.Presented())
	assert.Equal(t, []int{1, 2, 3}, frames)
	assert.Equal(t, []gpu.LoopStates{gpu.Running, gpu.Running, gpu.Running}, states)

	st := rc.Stats()
	assert.Equal(t, 3, st.Clears)
	assert.Len(t, st.Draws, 3)
	assert.Equal(t, 9, st.Triangles)
	assert.Equal(t, color.RGBA{18, 33, 43, 255}, rc.Image().RGBAAt(32/2, 32/2))

	// the program is used once, as the only one
	assert.Len(t, rc.calls("UseProgram"), 2, "use, then unuse on release")
	assert.True(t, ctx.Released())
	assert.True(t, sf.Destroyed())
	assert.Zero(t, rc.Objects().Total())
	require.NoError(t, rc.Err())

	assert.Error(t, lp.Run(), "a loop runs once")
	assert.Error(t, lp.AddDraw(pr, gm, gpu.Triangles, 3))
}

func TestLoopNoFrames(t *testing.T) {
	// a surface already requesting a close renders no frame
	ctx, rc, sf := newContext(t, 0)
	lp := gpu.NewLoop(ctx).SetClearColor(color.White)
	require.NoError(t, lp.Run())
	assert.Equal(t, gpu.Terminated, lp.State())
	assert.Zero(t, lp.Frames())
	assert.Zero(t, rc.Stats().Clears)
	assert.True(t, sf.Destroyed())
}

func TestLoopClearColor(t *testing.T) {
	ctx, rc, _ := newContext(t, 1)
	lp := gpu.NewLoop(ctx).SetClearColor(color.White).SetClearColor(nil)
	assert.Equal(t, gpu.DefaultClearColor, lp.ClearColor)
	require.NoError(t, lp.Run())
	assert.Equal(t, [4]float32(gpu.DefaultClearColor), rc.clear)

	ctx, rc, _ = newContext(t, 1)
	lp = gpu.NewLoop(ctx)
	lp.ClearColor = nil
	require.NoError(t, lp.Run())
	assert.Equal(t, 1, lp.Frames())
	assert.Equal(t, [4]float32{0.07, 0.13, 0.17, 1}, rc.clear)
}

func TestLoopClose(t *testing.T) {
	ctx, rc, sf := newContext(t, 100)
	lp := gpu.NewLoop(ctx).SetClearColor(color.RGBA{255, 0, 0, 255})
	lp.OnFrame(func(frame int) {
		if frame == 2 {
			sf.Close()
		}
	})
	require.NoError(t, lp.Run())
	assert.Equal(t, 2, lp.Frames())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rc.Image().RGBAAt(0, 0))
}

func TestLoopAddDraw(t *testing.T) {
	ctx, _, _ := newContext(t, 1)
	pr, err := gpu.NewProgram(ctx, "orange", vertexSrc, fragmentSrc)
	require.NoError(t, err)
	gm, err := gpu.NewGeometry(ctx, "sequential", triangleVertices, gpu.PackedLayout(3), nil)
	require.NoError(t, err)
	lp := gpu.NewLoop(ctx)

	var de *gpu.DrawRangeError
	assert.True(t, errors.As(lp.AddDraw(pr, gm, gpu.Triangles, 7), &de))
	assert.Error(t, lp.AddDraw(nil, gm, gpu.Triangles, 3))

	gm2, err := gpu.NewGeometry(ctx, "released", triangleVertices, gpu.PackedLayout(3), nil)
	require.NoError(t, err)
	gm2.Release()
	assert.Error(t, lp.AddDraw(pr, gm2, gpu.Triangles, 3))

	pr.Release()
	assert.Error(t, lp.AddDraw(pr, gm, gpu.Triangles, 3))
	ctx.Release()
}

func TestLoopStates(t *testing.T) {
	assert.Equal(t, "Idle", gpu.Idle.String())
	assert.Equal(t, "Running", gpu.Running.String())
	assert.Equal(t, "Closing", gpu.Closing.String())
	assert.Equal(t, "Terminated", gpu.Terminated.String())
	assert.Equal(t, "VertexShader", gpu.VertexShader.String())
	assert.Equal(t, "TriangleStrip", gpu.TriangleStrip.String())
	assert.Equal(t, "ElementArrayBuffer", gpu.ElementArrayBuffer.String())
	assert.Equal(t, 4, gpu.Uint32.Bytes())
}

func TestEnums(t *testing.T) {
	var ls gpu.LoopStates
	require.NoError(t, ls.SetString("Closing"))
	assert.Equal(t, gpu.Closing, ls)
	assert.Error(t, ls.SetString("Paused"))
	assert.Equal(t, gpu.Closing, ls)
	assert.Equal(t, []gpu.LoopStates{gpu.Idle, gpu.Running, gpu.Closing, gpu.Terminated}, gpu.LoopStatesValues())
	assert.Len(t, gpu.Idle.Values(), int(gpu.LoopStatesN))
	assert.Equal(t, "5", gpu.LoopStates(5).String())

	txt, err := gpu.TriangleStrip.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "TriangleStrip", string(txt))
	var pr gpu.Primitives
	require.NoError(t, pr.UnmarshalText([]byte("TriangleStrip")))
	assert.Equal(t, gpu.TriangleStrip, pr)

	assert.Equal(t, []gpu.ShaderTypes{gpu.VertexShader, gpu.FragmentShader}, gpu.ShaderTypesValues())
	assert.Contains(t, gpu.ElementArrayBuffer.Desc(), "vertex array state")
	assert.Equal(t, int64(1), gpu.Uint32.Int64())
}
