// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
)

// Program is a linked, executable combination of a vertex and a
// fragment [Stage]. A Program is only created once both stages
// compiled and the link succeeded, so any Program that has not
// been released can be used for drawing.
type Program struct {
	// Name is the name of the program, used in diagnostics.
	Name string

	ctx    *Context
	handle uint32
}

// NewProgram compiles the given vertex and fragment shader source
// and links them into a new Program. Every intermediate shader
// object is released on every return path.
func NewProgram(ctx *Context, name, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := CompileStage(ctx, VertexShader, vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := CompileStage(ctx, FragmentShader, fragmentSrc)
	if err != nil {
		vs.Release()
		return nil, err
	}
	return LinkProgram(ctx, name, vs, fs)
}

// LinkProgram links the given compiled vertex and fragment stages
// into a new Program. It takes ownership of both stages: they are
// detached and released whether or not the link succeeds.
// A failed link returns a [ShaderLinkError] with the linker log.
func LinkProgram(ctx *Context, name string, vs, fs *Stage) (*Program, error) {
	defer vs.Release()
	defer fs.Release()
	if err := ctx.check(); err != nil {
		return nil, err
	}
	if err := checkStage(vs, VertexShader); err != nil {
		return nil, err
	}
	if err := checkStage(fs, FragmentShader); err != nil {
		return nil, err
	}
	drv := ctx.Driver
	handle := drv.CreateProgram()
	drv.AttachShader(handle, vs.handle)
	drv.AttachShader(handle, fs.handle)
	ok, log := drv.LinkProgram(handle)
	drv.DetachShader(handle, vs.handle)
	drv.DetachShader(handle, fs.handle)
	if !ok {
		drv.DeleteProgram(handle)
		if log == "" {
			log = "unknown link error"
		}
		return nil, &ShaderLinkError{Program: name, Log: log}
	}
	pr := &Program{Name: name, ctx: ctx, handle: handle}
	ctx.programs = append(ctx.programs, pr)
	if Debug {
		slog.Info("gpu.LinkProgram", "program", name, "handle", handle)
	}
	return pr, nil
}

// checkStage returns an error unless the stage is a live compiled
// stage of the given type.
func checkStage(st *Stage, typ ShaderTypes) error {
	if st == nil || st.handle == 0 {
		return fmt.Errorf("gpu.LinkProgram: %s has not been compiled", typ)
	}
	if st.Type != typ {
		return fmt.Errorf("gpu.LinkProgram: expected a %s but got a %s", typ, st.Type)
	}
	return nil
}

// Handle returns the GPU handle for this program, 0 once released.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Use makes this the active program for subsequent draw calls.
// There is only ever one active program.
func (pr *Program) Use() {
	pr.ctx.useProgram(pr)
}

// Release deletes the GPU program. It is a no-op on a nil
// or already released program.
func (pr *Program) Release() {
	if pr == nil {
		return
	}
	pr.release(true)
}

func (pr *Program) release(remove bool) {
	if pr.handle == 0 {
		return
	}
	ctx := pr.ctx
	if ctx.program == pr {
		ctx.useProgram(nil)
	}
	ctx.Driver.DeleteProgram(pr.handle)
	pr.handle = 0
	if remove {
		ctx.removeProgram(pr)
	}
	if Debug {
		slog.Info("gpu.Program released", "program", pr.Name)
	}
}

// Draw uses this program and draws the given geometry with it.
func (pr *Program) Draw(gm *Geometry, prim Primitives, count int) error {
	if pr == nil || pr.handle == 0 {
		return errors.New("gpu.Program.Draw: program has been released")
	}
	pr.Use()
	return gm.Draw(prim, count)
}
