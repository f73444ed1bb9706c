// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrNoContext is returned when an operation is given a nil [Context].
	ErrNoContext = errors.New("gpu: no graphics context")

	// ErrReleased is returned when an operation is attempted on
	// a [Context] that has already been released.
	ErrReleased = errors.New("gpu: graphics context has been released")
)

// SurfaceError is returned when a rendering surface or its
// GL context could not be created. There is nothing to render
// into, so it is fatal for the program.
type SurfaceError struct {
	// Op is the step that failed, e.g., "create window".
	Op string

	// Err is the underlying error.
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("gpu: surface %s: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// ShaderCompileError is returned when a shader stage fails to compile.
// Log is the diagnostic text reported by the shader compiler.
type ShaderCompileError struct {
	Stage ShaderTypes
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("gpu: %s failed to compile:\n%s", e.Stage, strings.TrimSpace(e.Log))
}

// ShaderLinkError is returned when two compiled stages fail to link,
// e.g., because a fragment input is not written by the vertex stage.
type ShaderLinkError struct {
	Program string
	Log     string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("gpu: program %q failed to link:\n%s", e.Program, strings.TrimSpace(e.Log))
}

// DrawRangeError is returned when a draw count exceeds the number of
// vertex records (non-indexed) or index entries (indexed) available.
// The underlying draw call would read out of bounds without reporting it.
type DrawRangeError struct {
	Count     int
	Available int
	Indexed   bool
}

func (e *DrawRangeError) Error() string {
	what := "vertices"
	if e.Indexed {
		what = "indices"
	}
	return fmt.Sprintf("gpu: draw count %d out of range: %d %s available", e.Count, e.Available, what)
}

// LayoutError is returned when an attribute layout does not fit
// the vertex data it describes.
type LayoutError struct {
	// Slot is the attribute slot at fault, or -1 for the layout as a whole.
	Slot   int
	Reason string
}

func (e *LayoutError) Error() string {
	if e.Slot < 0 {
		return "gpu: invalid attribute layout: " + e.Reason
	}
	return fmt.Sprintf("gpu: invalid attribute layout: slot %d: %s", e.Slot, e.Reason)
}

// IndexRangeError is returned when an index entry refers to
// a vertex record that does not exist.
type IndexRangeError struct {
	// Position is the position of the bad entry in the index data.
	Position int
	Index    uint32
	Records  int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("gpu: index %d at position %d out of range: %d vertex records", e.Index, e.Position, e.Records)
}
