// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/glpipe/config"
	"cogentcore.org/glpipe/gpu"
	"cogentcore.org/glpipe/gpu/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offscreenConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Offscreen = true
	cfg.Frames = 2
	cfg.Width, cfg.Height = 64, 64
	cfg.Output = filepath.Join(t.TempDir(), "frame.png")
	return cfg
}

func TestMainOffscreen(t *testing.T) {
	cfg := offscreenConfig(t)
	require.NoError(t, Main(cfg, shapes.SubdividedTriangle()))

	img, _, err := imagex.Open(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, color.RGBAModel.Convert(color.RGBA{18, 33, 43, 255}), color.RGBAModel.Convert(img.At(32, 32)))
	assert.Equal(t, color.RGBAModel.Convert(color.RGBA{204, 77, 5, 255}), color.RGBAModel.Convert(img.At(32, 22)))
}

func TestOpen(t *testing.T) {
	cfg := offscreenConfig(t)
	cfg.ClearColor = "white"
	cfg.Output = ""
	app, err := Open(cfg)
	require.NoError(t, err)
	assert.Equal(t, gpu.Idle, app.Loop.State())
	require.NoError(t, app.AddMesh(shapes.Triangle()))
	require.NoError(t, app.Run())
	assert.Equal(t, gpu.Terminated, app.Loop.State())
	assert.Equal(t, 2, app.Loop.Frames())
	assert.True(t, app.Context.Released())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, app.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{204, 77, 5, 255}, app.Image().RGBAAt(32, 32))
}

func TestOpenInvalid(t *testing.T) {
	cfg := offscreenConfig(t)
	cfg.Width = -1
	_, err := Open(cfg)
	assert.Error(t, err)
}

func TestWindowOnly(t *testing.T) {
	cfg := offscreenConfig(t)
	require.NoError(t, Main(cfg))
	img, _, err := imagex.Open(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, color.RGBAModel.Convert(color.RGBA{18, 33, 43, 255}), color.RGBAModel.Convert(img.At(10, 10)))
}

func TestDebug(t *testing.T) {
	t.Cleanup(func() { SetDebug(false) })
	cfg := offscreenConfig(t)
	cfg.Debug = true
	require.NoError(t, Main(cfg, shapes.Triangle()))
	assert.True(t, gpu.Debug)
	assert.FileExists(t, cfg.Output)
}
