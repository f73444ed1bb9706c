// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command window clears a window to the background color until it is closed.
// Use -offscreen to render in software, and -output to save the frame.
package main

import (
	"runtime"

	"cogentcore.org/core/cli"
	"cogentcore.org/glpipe/config"
	"cogentcore.org/glpipe/gpu/demo"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("window", "The Window demo clears a window to the background color until it is closed.")
	cli.Run(opts, &config.Config{}, &cli.Cmd[*config.Config]{Func: run, Name: "window", Root: true})
}

func run(cfg *config.Config) error {
	if cfg.Title == "" {
		cfg.Title = "Window"
	}
	return demo.Main(cfg)
}
