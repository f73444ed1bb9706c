// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package softdriver provides a [gpu.Driver] that renders in software
// into an [image.RGBA], with no GPU or window system required.
// It compiles and links a small subset of GLSL 330 core (see [Driver]),
// keeps OpenGL-style object and binding state, and rasterizes
// triangles. It also records every draw call, so that tests can
// check exactly which vertex records were fetched.
package softdriver

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/gpu"
)

// DrawCall records one draw call that was issued.
type DrawCall struct {
	Primitive gpu.Primitives

	// Indexed is true for DrawElements calls.
	Indexed bool

	// Records are the vertex records that were fetched, in order.
	Records []int
}

// Stats are counts of what has been rendered.
type Stats struct {
	// Clears is the number of Clear calls.
	Clears int

	// Draws are all the draw calls issued.
	Draws []DrawCall

	// Triangles is the number of triangles rasterized.
	Triangles int
}

// Objects are the numbers of live objects of each kind.
type Objects struct {
	Shaders      int
	Programs     int
	Buffers      int
	VertexArrays int
}

// Total returns the total number of live objects.
func (ob Objects) Total() int {
	return ob.Shaders + ob.Programs + ob.Buffers + ob.VertexArrays
}

type shader struct {
	typ      gpu.ShaderTypes
	code     *stageCode
	attached int
	deleted  bool
}

type program struct {
	attached []uint32
	linked   *linked
}

type buffer struct {
	data []byte
}

type attribPointer struct {
	enabled bool
	set     bool
	buffer  uint32
	size    int
	stride  int
	offset  int
}

type vertexArray struct {
	attribs  [gpu.MaxAttributes]attribPointer
	elements uint32
}

// Driver is a software [gpu.Driver]. It must be used from a single
// goroutine, like the GL context it stands in for.
//
// Invalid calls do not panic: as with glGetError, the first error
// is recorded and returned by [Driver.Err], and the call is ignored.
type Driver struct {
	img      *image.RGBA
	viewport image.Rectangle
	clear    color.RGBA

	nextID       uint32
	shaders      map[uint32]*shader
	programs     map[uint32]*program
	buffers      map[uint32]*buffer
	vertexArrays map[uint32]*vertexArray

	// current bindings
	program     uint32
	vertexArray uint32
	arrayBuffer uint32

	// element buffer bound with no vertex array bound, which
	// does not belong to any vertex array.
	looseElements uint32

	stats Stats
	err   error
}

// New returns a new software driver rendering into an image of the given size.
func New(size image.Point) *Driver {
	d := &Driver{
		img:          image.NewRGBA(image.Rectangle{Max: size}),
		viewport:     image.Rectangle{Max: size},
		clear:        color.RGBA{A: 255},
		shaders:      make(map[uint32]*shader),
		programs:     make(map[uint32]*program),
		buffers:      make(map[uint32]*buffer),
		vertexArrays: make(map[uint32]*vertexArray),
	}
	return d
}

// Image returns the image rendered into.
func (d *Driver) Image() *image.RGBA {
	return d.img
}

// Stats returns the rendering counts so far.
func (d *Driver) Stats() Stats {
	st := d.stats
	st.Draws = slices.Clone(st.Draws)
	return st
}

// ResetStats resets the rendering counts.
func (d *Driver) ResetStats() {
	d.stats = Stats{}
}

// Objects returns the numbers of live objects.
func (d *Driver) Objects() Objects {
	return Objects{Shaders: len(d.shaders), Programs: len(d.programs), Buffers: len(d.buffers), VertexArrays: len(d.vertexArrays)}
}

// CurrentProgram returns the handle of the program in use.
func (d *Driver) CurrentProgram() uint32 {
	return d.program
}

// CurrentVertexArray returns the handle of the bound vertex array.
func (d *Driver) CurrentVertexArray() uint32 {
	return d.vertexArray
}

// Err returns the first error recorded since the last call, and clears it.
func (d *Driver) Err() error {
	err := d.err
	d.err = nil
	return err
}

// fail records an error for the given call, if none is recorded yet.
func (d *Driver) fail(call, format string, args ...any) {
	if d.err != nil {
		return
	}
	d.err = fmt.Errorf("softdriver %s: %s", call, fmt.Sprintf(format, args...))
}

func (d *Driver) newID() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Driver) Version() string {
	return "3.3 (core profile) softdriver"
}

func (d *Driver) CreateShader(typ gpu.ShaderTypes) uint32 {
	if typ != gpu.VertexShader && typ != gpu.FragmentShader {
		d.fail("CreateShader", "invalid shader type %s", typ)
		return 0
	}
	id := d.newID()
	d.shaders[id] = &shader{typ: typ}
	return id
}

func (d *Driver) CompileShader(id uint32, src string) (bool, string) {
	sh, ok := d.shaders[id]
	if !ok {
		d.fail("CompileShader", "no shader %d", id)
		return false, ""
	}
	code, err := compile(sh.typ, src)
	if err != nil {
		sh.code = nil
		return false, err.Error() + "\n"
	}
	sh.code = code
	return true, ""
}

func (d *Driver) DeleteShader(id uint32) {
	sh, ok := d.shaders[id]
	if !ok {
		return
	}
	if sh.attached > 0 {
		sh.deleted = true
		return
	}
	delete(d.shaders, id)
}

func (d *Driver) CreateProgram() uint32 {
	id := d.newID()
	d.programs[id] = &program{}
	return id
}

func (d *Driver) AttachShader(pid, sid uint32) {
	pr, ok := d.programs[pid]
	sh, sok := d.shaders[sid]
	if !ok || !sok {
		d.fail("AttachShader", "no program %d or shader %d", pid, sid)
		return
	}
	if slices.Contains(pr.attached, sid) {
		d.fail("AttachShader", "shader %d is already attached", sid)
		return
	}
	pr.attached = append(pr.attached, sid)
	sh.attached++
}

func (d *Driver) DetachShader(pid, sid uint32) {
	pr, ok := d.programs[pid]
	if !ok {
		d.fail("DetachShader", "no program %d", pid)
		return
	}
	i := slices.Index(pr.attached, sid)
	if i < 0 {
		d.fail("DetachShader", "shader %d is not attached", sid)
		return
	}
	pr.attached = slices.Delete(pr.attached, i, i+1)
	d.detached(sid)
}

// detached updates the attachment count of a shader, deleting
// it when it was flagged for deletion while attached.
func (d *Driver) detached(sid uint32) {
	sh := d.shaders[sid]
	sh.attached--
	if sh.deleted && sh.attached == 0 {
		delete(d.shaders, sid)
	}
}

func (d *Driver) LinkProgram(pid uint32) (bool, string) {
	pr, ok := d.programs[pid]
	if !ok {
		d.fail("LinkProgram", "no program %d", pid)
		return false, ""
	}
	pr.linked = nil
	var vert, frag *stageCode
	var errs []string
	for _, sid := range pr.attached {
		sh := d.shaders[sid]
		if sh.code == nil {
			errs = append(errs, fmt.Sprintf("error: linking with uncompiled shader %d", sid))
			continue
		}
		switch {
		case sh.typ == gpu.VertexShader && vert == nil:
			vert = sh.code
		case sh.typ == gpu.FragmentShader && frag == nil:
			frag = sh.code
		default:
			errs = append(errs, fmt.Sprintf("error: more than one %s attached", sh.typ))
		}
	}
	if len(errs) > 0 {
		return false, strings.Join(errs, "\n") + "\n"
	}
	lk, log := link(vert, frag)
	if lk == nil {
		return false, log + "\n"
	}
	pr.linked = lk
	return true, ""
}

func (d *Driver) UseProgram(pid uint32) {
	if pid == 0 {
		d.program = 0
		return
	}
	pr, ok := d.programs[pid]
	if !ok || pr.linked == nil {
		d.fail("UseProgram", "program %d is not linked", pid)
		return
	}
	d.program = pid
}

func (d *Driver) DeleteProgram(pid uint32) {
	pr, ok := d.programs[pid]
	if !ok {
		return
	}
	for _, sid := range pr.attached {
		d.detached(sid)
	}
	delete(d.programs, pid)
	if d.program == pid {
		d.program = 0
	}
}

func (d *Driver) GenVertexArray() uint32 {
	id := d.newID()
	d.vertexArrays[id] = &vertexArray{}
	return id
}

func (d *Driver) BindVertexArray(id uint32) {
	if id != 0 {
		if _, ok := d.vertexArrays[id]; !ok {
			d.fail("BindVertexArray", "no vertex array %d", id)
			return
		}
	}
	d.vertexArray = id
}

func (d *Driver) DeleteVertexArray(id uint32) {
	if _, ok := d.vertexArrays[id]; !ok {
		return
	}
	delete(d.vertexArrays, id)
	if d.vertexArray == id {
		d.vertexArray = 0
	}
}

func (d *Driver) GenBuffer() uint32 {
	id := d.newID()
	d.buffers[id] = &buffer{}
	return id
}

func (d *Driver) BindBuffer(target gpu.BufferTargets, id uint32) {
	if id != 0 {
		if _, ok := d.buffers[id]; !ok {
			d.fail("BindBuffer", "no buffer %d", id)
			return
		}
	}
	switch target {
	case gpu.ArrayBuffer:
		d.arrayBuffer = id
	case gpu.ElementArrayBuffer:
		if va := d.vertexArrays[d.vertexArray]; va != nil {
			va.elements = id
		} else {
			d.looseElements = id
		}
	default:
		d.fail("BindBuffer", "invalid target %s", target)
	}
}

// bound returns the buffer bound to the given target.
func (d *Driver) bound(target gpu.BufferTargets) uint32 {
	if target == gpu.ArrayBuffer {
		return d.arrayBuffer
	}
	if va := d.vertexArrays[d.vertexArray]; va != nil {
		return va.elements
	}
	return d.looseElements
}

func (d *Driver) BufferData(target gpu.BufferTargets, data []byte) {
	buf := d.buffers[d.bound(target)]
	if buf == nil {
		d.fail("BufferData", "no buffer bound to %s", target)
		return
	}
	buf.data = slices.Clone(data)
}

func (d *Driver) DeleteBuffer(id uint32) {
	if _, ok := d.buffers[id]; !ok {
		return
	}
	delete(d.buffers, id)
	if d.arrayBuffer == id {
		d.arrayBuffer = 0
	}
	if d.looseElements == id {
		d.looseElements = 0
	}
	if va := d.vertexArrays[d.vertexArray]; va != nil && va.elements == id {
		va.elements = 0
	}
}

func (d *Driver) VertexAttribPointer(slot uint32, size int, typ gpu.ComponentTypes, normalized bool, stride, offset int) {
	va := d.vertexArrays[d.vertexArray]
	switch {
	case va == nil:
		d.fail("VertexAttribPointer", "no vertex array bound")
		return
	case d.arrayBuffer == 0:
		d.fail("VertexAttribPointer", "no buffer bound to %s", gpu.ArrayBuffer)
		return
	case slot >= gpu.MaxAttributes:
		d.fail("VertexAttribPointer", "invalid slot %d", slot)
		return
	case size < 1 || size > 4 || typ != gpu.Float32 || stride < 0 || offset < 0:
		d.fail("VertexAttribPointer", "invalid value for slot %d", slot)
		return
	}
	if stride == 0 {
		stride = size * typ.Bytes()
	}
	ap := &va.attribs[slot]
	ap.set = true
	ap.buffer = d.arrayBuffer
	ap.size = size
	ap.stride = stride
	ap.offset = offset
}

func (d *Driver) EnableVertexAttribArray(slot uint32) {
	va := d.vertexArrays[d.vertexArray]
	if va == nil || slot >= gpu.MaxAttributes {
		d.fail("EnableVertexAttribArray", "no vertex array bound or invalid slot %d", slot)
		return
	}
	va.attribs[slot].enabled = true
}

func (d *Driver) Viewport(x, y, width, height int) {
	if width < 0 || height < 0 {
		d.fail("Viewport", "negative size")
		return
	}
	d.viewport = image.Rect(x, y, x+width, y+height)
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.clear = color.RGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: toByte(a)}
}

func (d *Driver) Clear() {
	d.stats.Clears++
	pix := d.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = d.clear.R, d.clear.G, d.clear.B, d.clear.A
	}
}

func (d *Driver) DrawArrays(prim gpu.Primitives, first, count int) {
	if first < 0 || count < 0 {
		d.fail("DrawArrays", "negative first or count")
		return
	}
	records := make([]int, count)
	for i := range records {
		records[i] = first + i
	}
	d.draw("DrawArrays", prim, false, records)
}

func (d *Driver) DrawElements(prim gpu.Primitives, count int, typ gpu.ComponentTypes, offset int) {
	va := d.vertexArrays[d.vertexArray]
	if va == nil {
		d.fail("DrawElements", "no vertex array bound")
		return
	}
	buf := d.buffers[va.elements]
	switch {
	case buf == nil:
		d.fail("DrawElements", "no element buffer bound to vertex array %d", d.vertexArray)
		return
	case typ != gpu.Uint32:
		d.fail("DrawElements", "unsupported index type %s", typ)
		return
	case count < 0 || offset < 0 || offset+count*4 > len(buf.data):
		d.fail("DrawElements", "%d indices at offset %d out of range of %d bytes", count, offset, len(buf.data))
		return
	}
	records := make([]int, count)
	for i := range records {
		records[i] = int(nativeUint32(buf.data[offset+i*4:]))
	}
	d.draw("DrawElements", prim, true, records)
}

// draw runs the vertex stage on the given records and rasterizes
// the resulting primitives.
func (d *Driver) draw(call string, prim gpu.Primitives, indexed bool, records []int) {
	pr := d.programs[d.program]
	va := d.vertexArrays[d.vertexArray]
	switch {
	case pr == nil || pr.linked == nil:
		d.fail(call, "no program in use")
		return
	case va == nil:
		d.fail(call, "no vertex array bound")
		return
	case prim != gpu.Triangles && prim != gpu.TriangleStrip:
		d.fail(call, "unsupported primitive %s", prim)
		return
	}
	lk := pr.linked
	verts := make([]vertex, len(records))
	for i, rec := range records {
		v, err := d.shadeVertex(lk, va, rec)
		if err != nil {
			d.fail(call, "%v", err)
			return
		}
		verts[i] = v
	}
	d.stats.Draws = append(d.stats.Draws, DrawCall{Primitive: prim, Indexed: indexed, Records: records})
	r := newRasterizer(d, lk)
	switch prim {
	case gpu.Triangles:
		for i := 0; i+2 < len(verts); i += 3 {
			r.triangle(&verts[i], &verts[i+1], &verts[i+2])
		}
	case gpu.TriangleStrip:
		for i := 0; i+2 < len(verts); i++ {
			r.triangle(&verts[i], &verts[i+1], &verts[i+2])
		}
	}
}

// shadeVertex fetches the attributes of one vertex record and runs
// the vertex stage on them.
func (d *Driver) shadeVertex(lk *linked, va *vertexArray, rec int) (vertex, error) {
	regs := make([]vec, len(lk.vert.symbols))
	for slot, reg := range lk.attribs {
		if reg < 0 {
			continue
		}
		val := vec{v: [4]float32{0, 0, 0, 1}}
		ap := &va.attribs[slot]
		if ap.enabled && ap.set {
			buf := d.buffers[ap.buffer]
			if buf == nil {
				return vertex{}, errors.New("attribute buffer has been deleted")
			}
			off := ap.offset + rec*ap.stride
			if rec < 0 || off+ap.size*4 > len(buf.data) {
				return vertex{}, fmt.Errorf("vertex record %d of slot %d reads past the end of a %d byte buffer", rec, slot, len(buf.data))
			}
			for k := range ap.size {
				val.v[k] = nativeFloat32(buf.data[off+k*4:])
			}
		}
		val.n = lk.vert.symbols[reg].width
		regs[reg] = val
	}
	lk.vert.run(regs)
	v := vertex{pos: regs[lk.vert.position].v}
	if len(lk.varyings) > 0 {
		v.vary = make([]vec, len(lk.varyings))
		for i, vy := range lk.varyings {
			v.vary[i] = regs[vy.vreg]
		}
	}
	return v, nil
}

func toByte(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
