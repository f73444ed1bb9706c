// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"math"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackedLayout(t *testing.T) {
	ly := gpu.PackedLayout(3, 3, 2)
	assert.Equal(t, gpu.Layout{
		{Slot: 0, Components: 3, Type: gpu.Float32, Stride: 32, Offset: 0},
		{Slot: 1, Components: 3, Type: gpu.Float32, Stride: 32, Offset: 12},
		{Slot: 2, Components: 2, Type: gpu.Float32, Stride: 32, Offset: 24},
	}, ly)
	assert.Equal(t, 32, ly.Stride())
	assert.Equal(t, 3, ly.Records(96))
	assert.NoError(t, ly.Validate(96))
}

func TestLayoutValidate(t *testing.T) {
	pos := gpu.Attribute{Slot: 0, Components: 3, Type: gpu.Float32, Stride: 12}
	tests := []struct {
		name   string
		layout gpu.Layout
		bytes  int
		slot   int
	}{
		{"empty", gpu.Layout{}, 12, -1},
		{"no data", gpu.Layout{pos}, 0, -1},
		{"partial record", gpu.Layout{pos}, 16, -1},
		{"slot range", gpu.Layout{{Slot: 16, Components: 3, Type: gpu.Float32, Stride: 12}}, 12, 16},
		{"duplicate slot", gpu.Layout{pos, {Slot: 0, Components: 1, Type: gpu.Float32, Stride: 12, Offset: 8}}, 12, 0},
		{"uint32 components", gpu.Layout{{Slot: 1, Components: 3, Type: gpu.Uint32, Stride: 12}}, 12, 1},
		{"zero components", gpu.Layout{{Slot: 0, Type: gpu.Float32, Stride: 12}}, 12, 0},
		{"five components", gpu.Layout{{Slot: 0, Components: 5, Type: gpu.Float32, Stride: 20}}, 20, 0},
		{"zero stride", gpu.Layout{{Slot: 0, Components: 3, Type: gpu.Float32}}, 12, 0},
		{"mixed stride no record", gpu.Layout{pos, {Slot: 1, Components: 1, Type: gpu.Float32, Stride: 16, Offset: 12}}, 12, -1},
		{"unaligned offset", gpu.Layout{{Slot: 0, Components: 1, Type: gpu.Float32, Stride: 12, Offset: 2}}, 12, 0},
		{"past stride", gpu.Layout{{Slot: 0, Components: 3, Type: gpu.Float32, Stride: 12, Offset: 4}}, 12, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate(tt.bytes)
			var le *gpu.LayoutError
			require.True(t, errors.As(err, &le), "got %v", err)
			assert.Equal(t, tt.slot, le.Slot)
		})
	}
}

func TestMixedStrideLayout(t *testing.T) {
	ly := gpu.Layout{
		{Slot: 0, Components: 3, Type: gpu.Float32, Stride: 12},
		{Slot: 1, Components: 1, Type: gpu.Float32, Stride: 24, Offset: 8},
	}
	assert.Zero(t, ly.Stride())
	assert.Equal(t, 3, ly.Records(72))
	assert.Equal(t, 2, ly.Records(70), "stride × records stays within the data for every attribute")
	assert.NoError(t, ly.Validate(70))

	ctx, rc, _ := newContext(t, 1)
	defer ctx.Release()
	pr, err := gpu.NewProgram(ctx, "orange", vertexSrc, fragmentSrc)
	require.NoError(t, err)
	gm, err := gpu.NewGeometry(ctx, "mixed", triangleVertices, ly, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, gm.Records())
	assert.Equal(t, ly, gm.Layout())
	require.NoError(t, pr.Draw(gm, gpu.Triangles, 3))
	require.NoError(t, rc.Err())

	var de *gpu.DrawRangeError
	require.True(t, errors.As(gm.Draw(gpu.Triangles, 4), &de))
	assert.Equal(t, 3, de.Available)

	_, err = gpu.NewGeometry(ctx, "mixed indexed", triangleVertices, ly, []uint32{0, 1, 3})
	var ie *gpu.IndexRangeError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 3, ie.Records)
}

func TestGeometry(t *testing.T) {
	ctx, rc, _ := newContext(t, 1)
	defer ctx.Release()
	pr, err := gpu.NewProgram(ctx, "orange", vertexSrc, fragmentSrc)
	require.NoError(t, err)

	ly := gpu.PackedLayout(3)
	gm, err := gpu.NewGeometry(ctx, "sequential", triangleVertices, ly, nil)
	require.NoError(t, err)
	assert.Equal(t, ly, gm.Layout())
	assert.False(t, gm.Indexed())
	assert.Equal(t, 6, gm.Records())
	assert.Equal(t, 6, gm.Count())
	assert.Nil(t, ctx.CurrentGeometry(), "no geometry is left bound after creation")

	// changing the layout passed in does not change the geometry
	ly[0].Components = 2
	assert.Equal(t, 3, gm.Layout()[0].Components)

	require.NoError(t, pr.Draw(gm, gpu.Triangles, 6))
	require.NoError(t, pr.Draw(gm, gpu.Triangles, 3))
	require.NoError(t, rc.Err())
	draws := rc.Stats().Draws
	require.Len(t, draws, 2)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, draws[0].Records)
	assert.Equal(t, []int{0, 1, 2}, draws[1].Records)
	assert.False(t, draws[0].Indexed)
	assert.Equal(t, gm, ctx.CurrentGeometry())
	assert.Len(t, rc.calls("BindVertexArray"), 3, "bind on create, unbind, then bind once for both draws")

	gm.Unbind()
	assert.Nil(t, ctx.CurrentGeometry())
	assert.Zero(t, rc.CurrentVertexArray())
}

func TestIndexedGeometry(t *testing.T) {
	ctx, rc, _ := newContext(t, 1)
	defer ctx.Release()
	pr, err := gpu.NewProgram(ctx, "orange", vertexSrc, fragmentSrc)
	require.NoError(t, err)
	gm, err := gpu.NewGeometry(ctx, "indexed", triangleVertices, gpu.PackedLayout(3), triangleIndices)
	require.NoError(t, err)
	assert.True(t, gm.Indexed())
	assert.Equal(t, 9, gm.Indices())
	assert.Equal(t, 9, gm.Count())

	require.NoError(t, pr.Draw(gm, gpu.Triangles, 9))
	require.NoError(t, pr.Draw(gm, gpu.Triangles, 3))
	require.NoError(t, rc.Err())
	draws := rc.Stats().Draws
	require.Len(t, draws, 2)
	assert.True(t, draws[0].Indexed)
	assert.Equal(t, []int{0, 3, 5, 3, 2, 4, 5, 4, 1}, draws[0].Records)
	assert.Equal(t, []int{0, 3, 5}, draws[1].Records)
	assert.Equal(t, 4, rc.Stats().Triangles)
}

func TestGeometryErrors(t *testing.T) {
	ctx, rc, _ := newContext(t, 1)
	defer ctx.Release()

	_, err := gpu.NewGeometry(ctx, "bad index", triangleVertices, gpu.PackedLayout(3), []uint32{0, 1, 6})
	var ie *gpu.IndexRangeError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, gpu.IndexRangeError{Position: 2, Index: 6, Records: 6}, *ie)

	// the largest index must not wrap to a valid record on 32 bit platforms
	_, err = gpu.NewGeometry(ctx, "max index", triangleVertices, gpu.PackedLayout(3), []uint32{0, 1, math.MaxUint32})
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, gpu.IndexRangeError{Position: 2, Index: math.MaxUint32, Records: 6}, *ie)

	_, err = gpu.NewGeometry(ctx, "bad layout", triangleVertices[:4], gpu.PackedLayout(3), nil)
	var le *gpu.LayoutError
	assert.True(t, errors.As(err, &le))
	assert.Zero(t, rc.Objects().Total(), "nothing is created for invalid geometry")

	gm, err := gpu.NewGeometry(ctx, "indexed", triangleVertices, gpu.PackedLayout(3), triangleIndices)
	require.NoError(t, err)
	var de *gpu.DrawRangeError
	require.True(t, errors.As(gm.Draw(gpu.Triangles, 10), &de))
	assert.Equal(t, gpu.DrawRangeError{Count: 10, Available: 9, Indexed: true}, *de)
	assert.Error(t, gm.CheckCount(-1))
	assert.NoError(t, gm.CheckCount(0))

	sq, err := gpu.NewGeometry(ctx, "sequential", triangleVertices, gpu.PackedLayout(3), nil)
	require.NoError(t, err)
	require.True(t, errors.As(sq.Draw(gpu.Triangles, 7), &de))
	assert.False(t, de.Indexed)
	assert.Equal(t, 6, de.Available)
	assert.Empty(t, rc.Stats().Draws)
}

func TestGeometryRelease(t *testing.T) {
	ctx, rc, _ := newContext(t, 1)
	defer ctx.Release()
	first, err := gpu.NewGeometry(ctx, "first", triangleVertices, gpu.PackedLayout(3), nil)
	require.NoError(t, err)
	second, err := gpu.NewGeometry(ctx, "second", triangleVertices, gpu.PackedLayout(3), triangleIndices)
	require.NoError(t, err)
	second.Bind()
	second.Release()
	assert.True(t, second.Released())
	assert.Nil(t, ctx.CurrentGeometry())
	assert.Equal(t, []*gpu.Geometry{first}, ctx.Geometries())
	assert.Equal(t, 2, rc.Objects().Total())
	second.Release()
	assert.Equal(t, 2, rc.Objects().Total())
}
