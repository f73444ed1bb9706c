// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package demo

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/config"
	"cogentcore.org/glpipe/gpu"
)

func openWindow(cfg *config.Config) (gpu.Surface, gpu.Driver, error) {
	return nil, nil, errors.Log(&gpu.SurfaceError{Op: "create window", Err: errors.New("no desktop windows in this build; use -offscreen")})
}
