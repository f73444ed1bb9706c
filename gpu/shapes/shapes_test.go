// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/glpipe/gpu"
	"cogentcore.org/glpipe/gpu/offscreen"
	"cogentcore.org/glpipe/gpu/softdriver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orange     = color.RGBA{204, 77, 5, 255}
	background = color.RGBA{18, 33, 43, 255}
)

// render draws one frame of the mesh and returns the driver.
func render(t *testing.T, ms *Mesh) *softdriver.Driver {
	sz := image.Pt(64, 64)
	sf, err := offscreen.New(sz, 1)
	require.NoError(t, err)
	drv := softdriver.New(sz)
	ctx, err := gpu.NewContext(sf, drv)
	require.NoError(t, err)
	pr, err := gpu.NewProgram(ctx, ms.Name, VertexShader, FragmentShader)
	require.NoError(t, err)
	gm, err := ms.Geometry(ctx)
	require.NoError(t, err)
	lp := gpu.NewLoop(ctx)
	require.NoError(t, lp.AddDraw(pr, gm, gpu.Triangles, ms.Count()))
	require.NoError(t, lp.Run())
	require.NoError(t, drv.Err())
	assert.Equal(t, 1, lp.Frames())
	return drv
}

func TestTriangle(t *testing.T) {
	ms := Triangle()
	assert.Equal(t, 3, ms.Count())
	drv := render(t, ms)
	st := drv.Stats()
	require.Len(t, st.Draws, 1)
	assert.False(t, st.Draws[0].Indexed)
	assert.Equal(t, []int{0, 1, 2}, st.Draws[0].Records)
	assert.Equal(t, 1, st.Triangles)

	img := drv.Image()
	assert.Equal(t, orange, img.RGBAAt(32, 32))
	assert.Equal(t, background, img.RGBAAt(2, 2))
	assert.Equal(t, background, img.RGBAAt(61, 61))
}

func TestSubdividedTriangle(t *testing.T) {
	ms := SubdividedTriangle()
	assert.Equal(t, 9, ms.Count())
	drv := render(t, ms)
	st := drv.Stats()
	require.Len(t, st.Draws, 1)
	assert.True(t, st.Draws[0].Indexed)
	assert.Equal(t, []int{0, 3, 5, 3, 2, 4, 5, 4, 1}, st.Draws[0].Records)
	assert.Equal(t, 3, st.Triangles)

	img := drv.Image()
	assert.Equal(t, background, img.RGBAAt(32, 32), "hole in the middle")
	assert.Equal(t, orange, img.RGBAAt(24, 36), "lower left")
	assert.Equal(t, orange, img.RGBAAt(40, 36), "lower right")
	assert.Equal(t, orange, img.RGBAAt(32, 22), "upper")
}

func TestMeshLayout(t *testing.T) {
	sz := image.Pt(8, 8)
	sf, err := offscreen.New(sz, 0)
	require.NoError(t, err)
	ctx, err := gpu.NewContext(sf, softdriver.New(sz))
	require.NoError(t, err)
	defer ctx.Release()

	ms := SubdividedTriangle()
	gm, err := ms.Geometry(ctx)
	require.NoError(t, err)
	assert.Equal(t, ms.Layout, gm.Layout())
	assert.Equal(t, 6, gm.Records())
	assert.Equal(t, 9, gm.Indices())
	for _, ix := range ms.Indices {
		assert.Less(t, int(ix), gm.Records())
	}
}
