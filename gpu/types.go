// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "image/color"

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// ShaderTypes is a list of the shader stages that can be
// compiled and linked into a [Program].
type ShaderTypes int32 //enums:enum

const (
	// VertexShader runs once per vertex record and produces a position.
	VertexShader ShaderTypes = iota

	// FragmentShader runs once per covered pixel and produces a color.
	FragmentShader
)

// Primitives are the primitive kinds that a draw call assembles
// from the vertex stream.
type Primitives int32 //enums:enum

const (
	// Triangles draws one triangle per 3 vertices.
	Triangles Primitives = iota

	// TriangleStrip draws one triangle per vertex after the first two,
	// each sharing the previous two vertices.
	TriangleStrip
)

// ComponentTypes are the scalar types of vertex attribute
// components and index entries.
type ComponentTypes int32 //enums:enum

const (
	// Float32 is a 32 bit float, the only vertex component type.
	Float32 ComponentTypes = iota

	// Uint32 is a 32 bit unsigned int, used for index entries.
	Uint32
)

// Bytes returns the number of bytes for one component of this type.
func (ct ComponentTypes) Bytes() int {
	return 4
}

// BufferTargets are the binding points a buffer can be bound to.
type BufferTargets int32 //enums:enum

const (
	// ArrayBuffer holds vertex data (GL_ARRAY_BUFFER).
	ArrayBuffer BufferTargets = iota

	// ElementArrayBuffer holds index data (GL_ELEMENT_ARRAY_BUFFER).
	// Its binding is part of the currently bound vertex array state.
	ElementArrayBuffer
)

// Color is a straight (not premultiplied) alpha color with float32
// components from 0 to 1, in the form the driver takes them.
type Color [4]float32

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	al := clamp01(c[3])
	r = uint32(clamp01(c[0])*al*0xffff + 0.5)
	g = uint32(clamp01(c[1])*al*0xffff + 0.5)
	b = uint32(clamp01(c[2])*al*0xffff + 0.5)
	a = uint32(al*0xffff + 0.5)
	return
}

// ColorOf returns the given color as a [Color].
func ColorOf(c color.Color) Color {
	if fc, ok := c.(Color); ok {
		return fc
	}
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{float32(nc.R) / 0xffff, float32(nc.G) / 0xffff, float32(nc.B) / 0xffff, float32(nc.A) / 0xffff}
}

func clamp01(f float32) float32 {
	return min(max(f, 0), 1)
}
