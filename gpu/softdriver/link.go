// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softdriver

import (
	"fmt"
	"strings"

	"cogentcore.org/glpipe/gpu"
)

// varying connects a vertex stage output to a fragment stage input.
type varying struct {
	vreg, freg int
	width      int
}

// linked is a linked program: a vertex and a fragment stage
// with their interface resolved to registers.
type linked struct {
	vert, frag *stageCode

	// attribs maps attribute slots to vertex input registers, -1 if unused.
	attribs [gpu.MaxAttributes]int

	varyings []varying

	// color is the fragment output register.
	color int
}

// link resolves the interface between the two stages, returning
// the linker log on failure.
func link(vert, frag *stageCode) (*linked, string) {
	var errs []string
	fail := func(format string, args ...any) {
		errs = append(errs, "error: "+fmt.Sprintf(format, args...))
	}
	if vert == nil {
		fail("program lacks a compiled vertex shader")
	}
	if frag == nil {
		fail("program lacks a compiled fragment shader")
	}
	if len(errs) > 0 {
		return nil, strings.Join(errs, "\n")
	}
	lk := &linked{vert: vert, frag: frag, color: -1}
	for i := range lk.attribs {
		lk.attribs[i] = -1
	}
	var auto []int
	for reg, s := range vert.symbols {
		if s.kind != symInput {
			continue
		}
		if s.location < 0 {
			auto = append(auto, reg)
			continue
		}
		lk.attribs[s.location] = reg
	}
	for _, reg := range auto {
		slot := -1
		for i, r := range lk.attribs {
			if r < 0 {
				slot = i
				break
			}
		}
		if slot < 0 {
			fail("too many vertex shader inputs")
			break
		}
		lk.attribs[slot] = reg
	}
	for freg, s := range frag.symbols {
		switch s.kind {
		case symInput:
			vreg := vert.lookup(s.name)
			if vreg < 0 || vert.symbols[vreg].kind != symOutput {
				fail("fragment shader input '%s' has no matching output in the vertex shader", s.name)
				continue
			}
			if vw := vert.symbols[vreg].width; vw != s.width {
				fail("'%s' is declared as type %s in the vertex shader and %s in the fragment shader", s.name, typeName(vw), typeName(s.width))
				continue
			}
			lk.varyings = append(lk.varyings, varying{vreg: vreg, freg: freg, width: s.width})
		case symOutput:
			if lk.color >= 0 {
				fail("fragment shader declares more than one output: '%s' and '%s'", frag.symbols[lk.color].name, s.name)
				continue
			}
			if s.location > 0 {
				fail("fragment shader output '%s' must use location 0", s.name)
				continue
			}
			lk.color = freg
		}
	}
	if lk.color < 0 {
		fail("fragment shader does not declare an output")
	}
	if len(errs) > 0 {
		return nil, strings.Join(errs, "\n")
	}
	return lk, ""
}
