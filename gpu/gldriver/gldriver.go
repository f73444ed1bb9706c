// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldriver provides a [gpu.Driver] for OpenGL 3.3 core profile,
// using github.com/go-gl/gl. A GL context must be current on the
// calling thread (see the desktop package) before calling [New],
// and all calls must then be made on that same thread.
package gldriver

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Driver is the OpenGL [gpu.Driver].
type Driver struct {
	version string
}

// New loads the OpenGL function pointers for the current context
// and returns a new Driver.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Log(&gpu.SurfaceError{Op: "load OpenGL", Err: err})
	}
	d := &Driver{version: gl.GoStr(gl.GetString(gl.VERSION))}
	if gpu.Debug {
		slog.Info("gldriver", "version", d.version, "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	}
	return d, nil
}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

var glPrimitives = map[gpu.Primitives]uint32{
	gpu.Triangles:     gl.TRIANGLES,
	gpu.TriangleStrip: gl.TRIANGLE_STRIP,
}

var glTypes = map[gpu.ComponentTypes]uint32{
	gpu.Float32: gl.FLOAT,
	gpu.Uint32:  gl.UNSIGNED_INT,
}

var glTargets = map[gpu.BufferTargets]uint32{
	gpu.ArrayBuffer:        gl.ARRAY_BUFFER,
	gpu.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
}

func (d *Driver) Version() string {
	return d.version
}

func (d *Driver) CreateShader(typ gpu.ShaderTypes) uint32 {
	return gl.CreateShader(glShaders[typ])
}

// CompileShader sets the source and compiles the shader.
// The source does not need to be null terminated.
func (d *Driver) CompileShader(shader uint32, src string) (bool, string) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csources, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	return false, infoLog(logLength, func(buf *uint8) {
		gl.GetShaderInfoLog(shader, logLength, nil, buf)
	})
}

// infoLog reads an info log of the given length with the given getter.
func infoLog(length int32, get func(buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	lg := strings.Repeat("\x00", int(length+1))
	get(gl.Str(lg))
	return strings.TrimRight(lg, "\x00")
}

func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (d *Driver) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	return false, infoLog(logLength, func(buf *uint8) {
		gl.GetProgramInfoLog(program, logLength, nil, buf)
	})
}

func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Driver) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Driver) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (d *Driver) BindBuffer(target gpu.BufferTargets, buf uint32) {
	gl.BindBuffer(glTargets[target], buf)
}

func (d *Driver) BufferData(target gpu.BufferTargets, data []byte) {
	if len(data) == 0 {
		gl.BufferData(glTargets[target], 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(glTargets[target], len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Driver) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (d *Driver) VertexAttribPointer(slot uint32, size int, typ gpu.ComponentTypes, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(slot, int32(size), glTypes[typ], normalized, int32(stride), uintptr(offset))
}

func (d *Driver) EnableVertexAttribArray(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (d *Driver) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Driver) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Driver) DrawArrays(prim gpu.Primitives, first, count int) {
	gl.DrawArrays(glPrimitives[prim], int32(first), int32(count))
}

func (d *Driver) DrawElements(prim gpu.Primitives, count int, typ gpu.ComponentTypes, offset int) {
	gl.DrawElementsWithOffset(glPrimitives[prim], int32(count), glTypes[typ], uintptr(offset))
}

// Err returns the current GL error, if any, as an error.
func (d *Driver) Err() error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	if name, ok := glErrorNames[code]; ok {
		return errors.New("gldriver: " + name)
	}
	return fmt.Errorf("gldriver: GL error 0x%x", code)
}

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}
