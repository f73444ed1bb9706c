// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Stage is one compiled unit of shader source (a vertex or
// fragment shader) before linking. Stages are transient: once
// they are linked into a [Program] they are released.
type Stage struct {
	// Type is the shader stage.
	Type ShaderTypes

	// Source is the source code that was compiled.
	Source string

	ctx    *Context
	handle uint32
}

// CompileStage compiles the given source code as a shader of the given type.
// On failure a [ShaderCompileError] is returned with the compiler log,
// and the shader object has already been deleted.
func CompileStage(ctx *Context, typ ShaderTypes, src string) (*Stage, error) {
	if err := ctx.check(); err != nil {
		return nil, err
	}
	drv := ctx.Driver
	handle := drv.CreateShader(typ)
	ok, log := drv.CompileShader(handle, src)
	if !ok {
		drv.DeleteShader(handle)
		if log == "" {
			log = "unknown compile error"
		}
		return nil, &ShaderCompileError{Stage: typ, Log: log}
	}
	return &Stage{Type: typ, Source: src, ctx: ctx, handle: handle}, nil
}

// Handle returns the GPU handle for this stage, 0 once released.
func (st *Stage) Handle() uint32 {
	return st.handle
}

// Release deletes the shader object. It is a no-op on a nil
// or already released stage.
func (st *Stage) Release() {
	if st == nil || st.handle == 0 {
		return
	}
	if !st.ctx.Released() {
		st.ctx.Driver.DeleteShader(st.handle)
	}
	st.handle = 0
}
