// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"slices"
)

// MaxAttributes is the number of vertex attribute slots that are
// guaranteed to exist (GL_MAX_VERTEX_ATTRIBS in OpenGL 3.3).
const MaxAttributes = 16

// Attribute describes how one vertex shader input, bound by its
// explicit slot index (layout (location = N)), reads its components
// from each record of the raw vertex bytes.
type Attribute struct {
	// Slot is the shader input location.
	Slot uint32

	// Components is the number of components per record (1 to 4).
	Components int

	// Type is the component type, which must be Float32.
	Type ComponentTypes

	// Normalized is passed through to the driver; it has no effect
	// on float components.
	Normalized bool

	// Stride is the number of bytes from one record to the next.
	Stride int

	// Offset is the byte offset of the first component within a record.
	Offset int
}

// Bytes returns the number of bytes read per record.
func (at *Attribute) Bytes() int {
	return at.Components * at.Type.Bytes()
}

// Layout is the ordered list of attributes that carve up
// each vertex record. It is purely descriptive metadata:
// no error is reported by the GPU when it is wrong, only
// wrong-looking geometry, so [Layout.Validate] checks the
// arithmetic against the vertex data up front.
type Layout []Attribute

// PackedLayout returns a layout for tightly packed float32 records,
// with one attribute per entry of components, in slots 0, 1, ...
// For example, PackedLayout(3, 3) is a position followed by a color.
func PackedLayout(components ...int) Layout {
	stride := 0
	for _, n := range components {
		stride += n * Float32.Bytes()
	}
	ly := make(Layout, len(components))
	off := 0
	for i, n := range components {
		ly[i] = Attribute{Slot: uint32(i), Components: n, Type: Float32, Stride: stride, Offset: off}
		off += n * Float32.Bytes()
	}
	return ly
}

// Stride returns the stride shared by all of the attributes,
// or 0 for an empty layout or one whose attributes have
// different strides.
func (ly Layout) Stride() int {
	if len(ly) == 0 {
		return 0
	}
	st := ly[0].Stride
	for i := range ly {
		if ly[i].Stride != st {
			return 0
		}
	}
	return st
}

// Records returns the number of vertex records in the given number
// of vertex data bytes: the least number of records that any of the
// attributes can read, as stride × records must not exceed the data
// size for each of them.
func (ly Layout) Records(vertexBytes int) int {
	if len(ly) == 0 {
		return 0
	}
	n := -1
	for i := range ly {
		st := ly[i].Stride
		if st <= 0 {
			return 0
		}
		if r := vertexBytes / st; n < 0 || r < n {
			n = r
		}
	}
	return max(n, 0)
}

// Clone returns a copy of the layout.
func (ly Layout) Clone() Layout {
	return slices.Clone(ly)
}

// Validate checks that the layout describes well formed records
// of the given number of vertex data bytes: every attribute reads
// float32 components within its own stride, slots are unique, and
// the data holds at least one record for every attribute. When all
// attributes share one stride the data must also hold a whole number
// of records.
func (ly Layout) Validate(vertexBytes int) error {
	if len(ly) == 0 {
		return &LayoutError{Slot: -1, Reason: "no attributes"}
	}
	if len(ly) > MaxAttributes {
		return &LayoutError{Slot: -1, Reason: fmt.Sprintf("%d attributes exceeds the maximum of %d", len(ly), MaxAttributes)}
	}
	var used [MaxAttributes]bool
	for i := range ly {
		at := &ly[i]
		slot := int(at.Slot)
		switch {
		case at.Slot >= MaxAttributes:
			return &LayoutError{Slot: slot, Reason: fmt.Sprintf("slot must be less than %d", MaxAttributes)}
		case used[at.Slot]:
			return &LayoutError{Slot: slot, Reason: "slot is used more than once"}
		case at.Type != Float32:
			return &LayoutError{Slot: slot, Reason: fmt.Sprintf("component type %s is not supported for vertex data", at.Type)}
		case at.Components < 1 || at.Components > 4:
			return &LayoutError{Slot: slot, Reason: fmt.Sprintf("component count %d must be 1 to 4", at.Components)}
		case at.Stride <= 0:
			return &LayoutError{Slot: slot, Reason: fmt.Sprintf("stride %d must be positive", at.Stride)}
		case at.Offset < 0 || at.Offset%at.Type.Bytes() != 0:
			return &LayoutError{Slot: slot, Reason: fmt.Sprintf("offset %d must be a non-negative multiple of %d", at.Offset, at.Type.Bytes())}
		case at.Offset+at.Bytes() > at.Stride:
			return &LayoutError{Slot: slot, Reason: fmt.Sprintf("offset %d + %d bytes extends past the stride %d", at.Offset, at.Bytes(), at.Stride)}
		}
		used[at.Slot] = true
	}
	if vertexBytes <= 0 {
		return &LayoutError{Slot: -1, Reason: "no vertex data"}
	}
	if ly.Records(vertexBytes) == 0 {
		return &LayoutError{Slot: -1, Reason: fmt.Sprintf("%d vertex bytes holds no whole record", vertexBytes)}
	}
	if stride := ly.Stride(); stride > 0 && vertexBytes%stride != 0 {
		return &LayoutError{Slot: -1, Reason: fmt.Sprintf("%d vertex bytes is not a whole number of %d byte records", vertexBytes, stride)}
	}
	return nil
}
