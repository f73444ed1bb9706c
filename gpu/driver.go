// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Driver is the set of OpenGL-style calls that the resource layer
// is built on. Each method maps onto one (or a few) GL entry points
// and operates on the global selection state of the current context,
// so all calls must be made on the thread that owns the context.
// Handles are opaque non-zero ids; 0 always means "none".
//
// gldriver implements this on top of go-gl, and softdriver
// implements it in software for headless rendering and tests.
type Driver interface {
	// Version returns a human readable description of the
	// implementation, e.g., the GL_VERSION string.
	Version() string

	// CreateShader returns a new shader object of the given type.
	CreateShader(typ ShaderTypes) uint32

	// CompileShader sets the source of the shader and compiles it,
	// returning the compile status and the info log.
	CompileShader(shader uint32, src string) (ok bool, log string)

	// DeleteShader deletes the shader object.
	DeleteShader(shader uint32)

	// CreateProgram returns a new, empty program object.
	CreateProgram() uint32

	// AttachShader attaches a compiled shader to the program.
	AttachShader(program, shader uint32)

	// DetachShader detaches a shader from the program.
	DetachShader(program, shader uint32)

	// LinkProgram links the attached shaders, returning the
	// link status and the info log.
	LinkProgram(program uint32) (ok bool, log string)

	// UseProgram makes the program current (0 for none).
	UseProgram(program uint32)

	// DeleteProgram deletes the program object.
	DeleteProgram(program uint32)

	// GenVertexArray returns a new vertex array object, which records
	// attribute pointers and the element buffer binding.
	GenVertexArray() uint32

	// BindVertexArray makes the vertex array current (0 for none).
	BindVertexArray(vao uint32)

	// DeleteVertexArray deletes the vertex array object.
	DeleteVertexArray(vao uint32)

	// GenBuffer returns a new buffer object.
	GenBuffer() uint32

	// BindBuffer binds the buffer to the given target (0 for none).
	BindBuffer(target BufferTargets, buf uint32)

	// BufferData uploads data, for static use, into the buffer
	// currently bound to the given target.
	BufferData(target BufferTargets, data []byte)

	// DeleteBuffer deletes the buffer object.
	DeleteBuffer(buf uint32)

	// VertexAttribPointer records, in the current vertex array,
	// that the given attribute slot reads size components of typ
	// from the buffer currently bound to ArrayBuffer, starting at
	// the byte offset and advancing by the byte stride per record.
	VertexAttribPointer(slot uint32, size int, typ ComponentTypes, normalized bool, stride, offset int)

	// EnableVertexAttribArray enables the attribute slot in the
	// current vertex array.
	EnableVertexAttribArray(slot uint32)

	// Viewport sets the area of the surface that is rendered into.
	Viewport(x, y, width, height int)

	// ClearColor sets the color used by Clear.
	ClearColor(r, g, b, a float32)

	// Clear clears the color buffer to the clear color.
	Clear()

	// DrawArrays draws count vertices in order, starting at record first.
	DrawArrays(prim Primitives, first, count int)

	// DrawElements draws count index entries of type typ read from
	// the element buffer of the current vertex array, starting at
	// the given byte offset.
	DrawElements(prim Primitives, count int, typ ComponentTypes, offset int)
}
