// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo sets up the demo programs from a [config.Config]:
// a desktop window drawn with OpenGL, or an offscreen surface
// drawn by the software driver, with a [gpu.Loop] to run.
package demo

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/glpipe/config"
	"cogentcore.org/glpipe/gpu"
	"cogentcore.org/glpipe/gpu/offscreen"
	"cogentcore.org/glpipe/gpu/shapes"
	"cogentcore.org/glpipe/gpu/softdriver"
	"github.com/mitchellh/go-homedir"
)

// App is an open demo.
type App struct {
	Config  *config.Config
	Context *gpu.Context
	Loop    *gpu.Loop

	// soft is the software driver when rendering offscreen.
	soft *softdriver.Driver
}

// Open validates the config and opens the surface and context
// that it selects, with a loop that clears to its clear color.
func Open(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Log(err)
	}
	SetDebug(cfg.Debug)
	bg := errors.Log1(cfg.Background())

	app := &App{Config: cfg}
	var sf gpu.Surface
	var drv gpu.Driver
	var err error
	if cfg.Offscreen {
		sf, err = offscreen.New(cfg.Size(), cfg.Frames)
		if err != nil {
			return nil, errors.Log(err)
		}
		app.soft = softdriver.New(cfg.Size())
		drv = app.soft
	} else {
		sf, drv, err = openWindow(cfg)
		if err != nil {
			return nil, err
		}
	}
	app.Context, err = gpu.NewContext(sf, drv)
	if err != nil {
		sf.Destroy()
		return nil, errors.Log(err)
	}
	app.Loop = gpu.NewLoop(app.Context).SetClearColor(bg)
	if cfg.Debug {
		app.Loop.OnFrame(frameLogger(drv))
	}
	return app, nil
}

// SetDebug turns verbose logging on or off.
func SetDebug(on bool) {
	gpu.Debug = on
	if on {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}
}

// errorer is a driver that reports the errors of its calls.
type errorer interface {
	Err() error
}

// frameLogger returns a frame function that logs the frame rate
// and any driver errors.
func frameLogger(drv gpu.Driver) func(frame int) {
	fps := fpsLogger()
	ed, _ := drv.(errorer)
	return func(frame int) {
		fps(frame)
		if ed == nil {
			return
		}
		if err := ed.Err(); err != nil {
			slog.Error("demo", "frame", frame, "err", err)
		}
	}
}

// fpsLogger returns a frame function that logs the frame rate
// about once a second.
func fpsLogger() func(frame int) {
	start := time.Now()
	last := 0
	return func(frame int) {
		el := time.Since(start)
		if el < time.Second {
			return
		}
		slog.Debug("demo", "frame", frame, "fps", float64(frame-last)/el.Seconds())
		start = time.Now()
		last = frame
	}
}

// AddMesh uploads the mesh and adds a full draw of it with the
// orange shader program to the loop.
func (app *App) AddMesh(ms *shapes.Mesh) error {
	pr, err := gpu.NewProgram(app.Context, ms.Name, shapes.VertexShader, shapes.FragmentShader)
	if err != nil {
		return err
	}
	gm, err := ms.Geometry(app.Context)
	if err != nil {
		return err
	}
	return app.Loop.AddDraw(pr, gm, gpu.Triangles, ms.Count())
}

// Run runs the loop until the surface closes, and then saves the
// last offscreen frame to the Output file, if set, in the image
// format of its extension.
func (app *App) Run() error {
	if err := app.Loop.Run(); err != nil {
		return err
	}
	if app.soft == nil || app.Config.Output == "" {
		return nil
	}
	if err := app.soft.Err(); err != nil {
		return errors.Log(err)
	}
	fn, err := homedir.Expand(app.Config.Output)
	if err != nil {
		return errors.Log(err)
	}
	if err := imagex.Save(app.soft.Image(), fn); err != nil {
		return errors.Log(err)
	}
	if gpu.Debug {
		slog.Info("demo saved", "file", fn)
	}
	return nil
}

// Release releases everything, for when a demo fails before
// it is run.
func (app *App) Release() {
	app.Context.Release()
}

// Image returns the offscreen frame, or nil for a window.
func (app *App) Image() *image.RGBA {
	if app.soft == nil {
		return nil
	}
	return app.soft.Image()
}

// Main runs a demo that draws the given meshes, which can be none.
// It is the command function of the demo programs.
func Main(cfg *config.Config, meshes ...*shapes.Mesh) error {
	app, err := Open(cfg)
	if err != nil {
		return err
	}
	for _, ms := range meshes {
		if err := app.AddMesh(ms); err != nil {
			app.Release()
			return err
		}
	}
	return app.Run()
}
