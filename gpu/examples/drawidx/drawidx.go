// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command drawidx draws a triangle subdivided into three triangles with an index buffer.
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
	opts := cli.DefaultOptions("drawidx", "The Index Buffer demo draws a triangle subdivided into three triangles with an index buffer.")
	cli.Run(opts, &config.Config{}, &cli.Cmd[*config.Config]{Func: run, Name: "drawidx", Root: true})
}

func run(cfg *config.Config) error {
	if cfg.Title == "" {
		cfg.Title = "Index Buffer"
	}
	return demo.Main(cfg, shapes.SubdividedTriangle())
}
