// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes has the demo geometry: position-only meshes in
// normalized device coordinates, and the shaders that draw them.
package shapes

import (
	_ "embed"

	"cogentcore.org/glpipe/gpu"
	"github.com/chewxy/math32"
)

var (
	// VertexShader passes vec3 positions in slot 0 through unchanged.
	//go:embed shaders/triangle.vert
	VertexShader string

	// FragmentShader fills with a solid orange.
	//go:embed shaders/orange.frag
	FragmentShader string
)

// Mesh is vertex data with its layout and optional index data,
// ready to be uploaded with [gpu.NewGeometry].
type Mesh struct {
	Name string

	// Vertices are the flat float32 vertex records.
	Vertices []float32

	// Indices are the index entries, nil to draw records in order.
	Indices []uint32

	Layout gpu.Layout
}

// Count returns the number of entries a full draw of the mesh consumes.
func (ms *Mesh) Count() int {
	if len(ms.Indices) > 0 {
		return len(ms.Indices)
	}
	return ms.Layout.Records(len(ms.Vertices) * gpu.Float32.Bytes())
}

// Geometry uploads the mesh to the given context.
func (ms *Mesh) Geometry(ctx *gpu.Context) (*gpu.Geometry, error) {
	return gpu.NewGeometry(ctx, ms.Name, ms.Vertices, ms.Layout, ms.Indices)
}

var sqrt3 = math32.Sqrt(3)

// Triangle returns an equilateral triangle with unit sides,
// centered on the origin.
func Triangle() *Mesh {
	return &Mesh{
		Name: "triangle",
		Vertices: []float32{
			-0.5, -0.5 * sqrt3 / 3, 0, // lower left
			0.5, -0.5 * sqrt3 / 3, 0, // lower right
			0, 0.5 * sqrt3 * 2 / 3, 0, // upper
		},
		Layout: gpu.PackedLayout(3),
	}
}

// SubdividedTriangle returns the [Triangle] split at the midpoints
// of its sides, drawn through index data as the three corner
// triangles, leaving the middle one empty.
func SubdividedTriangle() *Mesh {
	return &Mesh{
		Name: "subdivided triangle",
		Vertices: []float32{
			-0.5, -0.5 * sqrt3 / 3, 0, // lower left
			0.5, -0.5 * sqrt3 / 3, 0, // lower right
			0, 0.5 * sqrt3 * 2 / 3, 0, // upper
			-0.5 / 2, 0.5 * sqrt3 / 6, 0, // inner left
			0.5 / 2, 0.5 * sqrt3 / 6, 0, // inner right
			0, -0.5 * sqrt3 / 3, 0, // inner down
		},
		Indices: []uint32{
			0, 3, 5, // lower left triangle
			3, 2, 4, // upper triangle
			5, 4, 1, // lower right triangle
		},
		Layout: gpu.PackedLayout(3),
	}
}
