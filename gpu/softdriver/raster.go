// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softdriver

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/chewxy/math32"
)

func nativeFloat32(b []byte) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(b))
}

func nativeUint32(b []byte) uint32 {
	return binary.NativeEndian.Uint32(b)
}

// vertex is the output of the vertex stage for one vertex record.
type vertex struct {
	// pos is the clip space position.
	pos [4]float32

	// vary are the varying values, in linked order.
	vary []vec

	// window space position, computed by project.
	x, y, z, w float32
}

// rasterizer rasterizes triangles for one draw call.
type rasterizer struct {
	d    *Driver
	lk   *linked
	regs []vec
}

func newRasterizer(d *Driver, lk *linked) *rasterizer {
	return &rasterizer{d: d, lk: lk, regs: make([]vec, len(lk.frag.symbols))}
}

// project does the perspective divide and viewport transform,
// returning false if the vertex is at or behind the eye (w <= 0),
// as there is no clipping.
func (r *rasterizer) project(v *vertex) bool {
	w := v.pos[3]
	if w <= 0 {
		return false
	}
	vp := r.d.viewport
	nx, ny, nz := v.pos[0]/w, v.pos[1]/w, v.pos[2]/w
	v.x = float32(vp.Min.X) + (nx+1)*0.5*float32(vp.Dx())
	v.y = float32(vp.Min.Y) + (ny+1)*0.5*float32(vp.Dy())
	v.z = nz
	v.w = w
	return true
}

// edge returns twice the signed area of the triangle a, b, (px, py).
func edge(a, b *vertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// triangle rasterizes one filled triangle, regardless of winding.
// Window y runs up from the bottom of the image, as in OpenGL.
func (r *rasterizer) triangle(a, b, c *vertex) {
	if !r.project(a) || !r.project(b) || !r.project(c) {
		return
	}
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	r.d.stats.Triangles++
	img := r.d.img
	bounds := r.d.viewport.Intersect(img.Rect)
	x0 := max(int(math32.Floor(math32.Min(a.x, math32.Min(b.x, c.x)))), bounds.Min.X)
	x1 := min(int(math32.Ceil(math32.Max(a.x, math32.Max(b.x, c.x)))), bounds.Max.X)
	y0 := max(int(math32.Floor(math32.Min(a.y, math32.Min(b.y, c.y)))), bounds.Min.Y)
	y1 := min(int(math32.Ceil(math32.Max(a.y, math32.Max(b.y, c.y)))), bounds.Max.Y)
	h := img.Rect.Dy()
	for wy := y0; wy < y1; wy++ {
		py := float32(wy) + 0.5
		for wx := x0; wx < x1; wx++ {
			px := float32(wx) + 0.5
			l0 := edge(b, c, px, py) / area
			l1 := edge(c, a, px, py) / area
			l2 := edge(a, b, px, py) / area
			if l0 < 0 || l1 < 0 || l2 < 0 {
				continue
			}
			img.SetRGBA(wx, h-1-wy, r.shade(a, b, c, l0, l1, l2))
		}
	}
}

// shade interpolates the varyings at the given barycentric weights,
// with perspective correction, and runs the fragment stage.
func (r *rasterizer) shade(a, b, c *vertex, l0, l1, l2 float32) color.RGBA {
	lk := r.lk
	if len(lk.varyings) > 0 {
		p0, p1, p2 := l0/a.w, l1/b.w, l2/c.w
		norm := 1 / (p0 + p1 + p2)
		p0, p1, p2 = p0*norm, p1*norm, p2*norm
		for i, vy := range lk.varyings {
			val := vec{n: vy.width}
			for k := range vy.width {
				val.v[k] = p0*a.vary[i].v[k] + p1*b.vary[i].v[k] + p2*c.vary[i].v[k]
			}
			r.regs[vy.freg] = val
		}
	}
	lk.frag.run(r.regs)
	out := r.regs[lk.color]
	if lk.frag.symbols[lk.color].width < 4 {
		out.v[3] = 1
	}
	return color.RGBA{R: toByte(out.v[0]), G: toByte(out.v[1]), B: toByte(out.v[2]), A: toByte(out.v[3])}
}
