// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package demo

import (
	"cogentcore.org/glpipe/config"
	"cogentcore.org/glpipe/gpu"
	"cogentcore.org/glpipe/gpu/desktop"
	"cogentcore.org/glpipe/gpu/gldriver"
)

// openWindow opens a desktop window, makes its context current
// and loads OpenGL for it.
func openWindow(cfg *config.Config) (gpu.Surface, gpu.Driver, error) {
	w, err := desktop.NewWindow(desktop.Options{
		Size:  cfg.Size(),
		Title: cfg.Title,
		Major: cfg.GLMajor,
		Minor: cfg.GLMinor,
		VSync: cfg.VSync,
	})
	if err != nil {
		return nil, nil, err
	}
	w.MakeCurrent()
	drv, err := gldriver.New()
	if err != nil {
		w.Destroy()
		return nil, nil, err
	}
	return w, drv, nil
}
