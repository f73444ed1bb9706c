// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command drawtri draws an orange triangle.
// Use -offscreen to render in software, and -output to save the frame.
package main

import (
	"runtime"

	"cogentcore.org/core/cli"
	"cogentcore.org/glpipe/config"
	"cogentcore.org/glpipe/gpu/demo"
	"cogentcore.org/glpipe/gpu/shapes"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("drawtri", "The Triangle demo draws an orange triangle.")
	cli.Run(opts, &config.Config{}, &cli.Cmd[*config.Config]{Func: run, Name: "drawtri", Root: true})
}

func run(cfg *config.Config) error {
	if cfg.Title == "" {
		cfg.Title = "Triangle"
	}
	return demo.Main(cfg, shapes.Triangle())
}
