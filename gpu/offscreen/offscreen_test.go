// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrames(t *testing.T) {
	sf, err := New(image.Pt(10, 20), 2)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(10, 20), sf.Size())
	var frames []int
	sf.OnPresent = func(frame int) { frames = append(frames, frame) }
	assert.False(t, sf.ShouldClose())
	sf.SwapBuffers()
	assert.False(t, sf.ShouldClose())
	sf.SwapBuffers()
	assert.True(t, sf.ShouldClose())
	assert.Equal(t, 2, sf.Presented())
	assert.Equal(t, []int{1, 2}, frames)
}

func TestClose(t *testing.T) {
	sf, err := New(image.Pt(4, 4), 100)
	require.NoError(t, err)
	sf.MakeCurrent()
	assert.True(t, sf.Current())
	sf.Close()
	assert.True(t, sf.ShouldClose())

	sf.Destroy()
	sf.Destroy()
	assert.True(t, sf.Destroyed())
	assert.False(t, sf.Current())

	zero, err := New(image.Pt(4, 4), 0)
	require.NoError(t, err)
	assert.True(t, zero.ShouldClose())
}

func TestInvalid(t *testing.T) {
	_, err := New(image.Point{}, 1)
	var se *gpu.SurfaceError
	assert.True(t, errors.As(err, &se))

	_, err = New(image.Pt(1, 1), -1)
	assert.True(t, errors.As(err, &se))
}
