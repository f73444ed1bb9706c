// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"
	"unsafe"
)

// Geometry owns GPU-side vertex data, optional index data, and the
// attribute layout that tells the pipeline how to interpret the raw
// vertex bytes, all recorded in one vertex array object.
// Geometry is created once with static data; there is no update.
type Geometry struct {
	// Name is the name of the geometry, used in diagnostics.
	Name string

	ctx *Context

	// vertex array, vertex buffer and element (index) buffer handles.
	vao, vbo, ebo uint32

	layout   Layout
	records  int
	nindices int
}

// NewGeometry uploads the given flat float32 vertex data, described by
// the given layout, and the optional index data (nil for sequential
// vertices) into a new Geometry. The layout is validated against the
// vertex data and every index must refer to an existing vertex record.
func NewGeometry(ctx *Context, name string, vertices []float32, layout Layout, indices []uint32) (*Geometry, error) {
	if err := ctx.check(); err != nil {
		return nil, err
	}
	nbytes := len(vertices) * Float32.Bytes()
	if err := layout.Validate(nbytes); err != nil {
		return nil, err
	}
	records := layout.Records(nbytes)
	for i, ix := range indices {
		if uint64(ix) >= uint64(records) {
			return nil, &IndexRangeError{Position: i, Index: ix, Records: records}
		}
	}

	drv := ctx.Driver
	gm := &Geometry{Name: name, ctx: ctx, layout: layout.Clone(), records: records, nindices: len(indices)}
	gm.vao = drv.GenVertexArray()
	gm.vbo = drv.GenBuffer()
	if len(indices) > 0 {
		gm.ebo = drv.GenBuffer()
	}

	ctx.bindVertexArray(gm.vao)
	drv.BindBuffer(ArrayBuffer, gm.vbo)
	drv.BufferData(ArrayBuffer, float32Bytes(vertices))
	if gm.ebo != 0 {
		drv.BindBuffer(ElementArrayBuffer, gm.ebo)
		drv.BufferData(ElementArrayBuffer, uint32Bytes(indices))
	}
	for _, at := range gm.layout {
		drv.VertexAttribPointer(at.Slot, at.Components, at.Type, at.Normalized, at.Stride, at.Offset)
		drv.EnableVertexAttribArray(at.Slot)
	}

	// the element buffer binding is vertex array state: unbind the
	// vertex array first so that it keeps its element buffer.
	drv.BindBuffer(ArrayBuffer, 0)
	ctx.bindGeometry(nil)
	if gm.ebo != 0 {
		drv.BindBuffer(ElementArrayBuffer, 0)
	}

	ctx.geometries = append(ctx.geometries, gm)
	if Debug {
		slog.Info("gpu.NewGeometry", "geometry", name, "records", records, "indices", len(indices))
	}
	return gm, nil
}

// float32Bytes returns the bytes of the given values in native byte order.
func float32Bytes(vals []float32) []byte {
	if len(vals) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*4)
}

// uint32Bytes returns the bytes of the given values in native byte order.
func uint32Bytes(vals []uint32) []byte {
	if len(vals) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*4)
}

// Layout returns a copy of the attribute layout that the geometry
// was created with.
func (gm *Geometry) Layout() Layout {
	return gm.layout.Clone()
}

// Records returns the number of vertex records.
func (gm *Geometry) Records() int {
	return gm.records
}

// Indices returns the number of index entries, 0 if not indexed.
func (gm *Geometry) Indices() int {
	return gm.nindices
}

// Indexed returns true if the geometry draws through index data.
func (gm *Geometry) Indexed() bool {
	return gm.ebo != 0
}

// Count returns the number of entries a full draw consumes:
// the index entries if indexed, else the vertex records.
func (gm *Geometry) Count() int {
	if gm.Indexed() {
		return gm.nindices
	}
	return gm.records
}

// Released returns true if the geometry has been released.
func (gm *Geometry) Released() bool {
	return gm == nil || gm.vao == 0
}

// Bind selects this geometry's vertex array, with its attribute
// layout and element buffer, as current for subsequent draws.
func (gm *Geometry) Bind() {
	gm.ctx.bindGeometry(gm)
}

// Unbind selects no geometry. This is not required between draws,
// as the next Bind always replaces the prior state.
func (gm *Geometry) Unbind() {
	if gm.ctx.geometry == gm {
		gm.ctx.bindGeometry(nil)
	}
}

// CheckCount returns a [DrawRangeError] if count is more than
// the number of entries available for a draw.
func (gm *Geometry) CheckCount(count int) error {
	n := gm.Count()
	if count < 0 || count > n {
		return &DrawRangeError{Count: count, Available: n, Indexed: gm.Indexed()}
	}
	return nil
}

// Draw binds the geometry and draws count entries with the current
// program as primitives of the given kind. Without index data, count
// vertex records are read in order from record 0; with index data,
// count index entries are read, each resolving to a vertex record.
func (gm *Geometry) Draw(prim Primitives, count int) error {
	if err := gm.CheckCount(count); err != nil {
		return err
	}
	gm.Bind()
	if gm.Indexed() {
		gm.ctx.Driver.DrawElements(prim, count, Uint32, 0)
	} else {
		gm.ctx.Driver.DrawArrays(prim, 0, count)
	}
	return nil
}

// Release deletes the vertex array and the vertex and index buffers.
// It is a no-op on nil or already released geometry.
func (gm *Geometry) Release() {
	if gm == nil {
		return
	}
	gm.release(true)
}

func (gm *Geometry) release(remove bool) {
	if gm.vao == 0 {
		return
	}
	ctx := gm.ctx
	if ctx.geometry == gm {
		ctx.bindGeometry(nil)
	}
	drv := ctx.Driver
	drv.DeleteVertexArray(gm.vao)
	drv.DeleteBuffer(gm.vbo)
	if gm.ebo != 0 {
		drv.DeleteBuffer(gm.ebo)
	}
	gm.vao, gm.vbo, gm.ebo = 0, 0, 0
	if remove {
		ctx.removeGeometry(gm)
	}
	if Debug {
		slog.Info("gpu.Geometry released", "geometry", gm.Name)
	}
}
