// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softdriver

import "strings"

// vec is a shader value: a float or a vector of up to 4 components.
type vec struct {
	v [4]float32
	n int
}

func scalar(f float32) vec {
	return vec{v: [4]float32{f}, n: 1}
}

// at returns component i, broadcasting a scalar.
func (x vec) at(i int) float32 {
	if x.n == 1 {
		return x.v[0]
	}
	return x.v[i]
}

// expr is a compiled shader expression of fixed width.
type expr interface {
	width() int
	eval(regs []vec) vec
}

type constExpr struct {
	val vec
}

func (x *constExpr) width() int          { return x.val.n }
func (x *constExpr) eval(regs []vec) vec { return x.val }

type varExpr struct {
	reg int
	n   int
}

func (x *varExpr) width() int { return x.n }

func (x *varExpr) eval(regs []vec) vec {
	v := regs[x.reg]
	v.n = x.n
	return v
}

type negExpr struct {
	x expr
}

func (x *negExpr) width() int { return x.x.width() }

func (x *negExpr) eval(regs []vec) vec {
	v := x.x.eval(regs)
	for i := range v.n {
		v.v[i] = -v.v[i]
	}
	return v
}

type binaryExpr struct {
	op   byte
	x, y expr
	n    int
}

func newBinary(op token, x, y expr) (expr, error) {
	xn, yn := x.width(), y.width()
	if xn != yn && xn != 1 && yn != 1 {
		return nil, errorAt(op, "operands to arithmetic operator '%s' must have compatible types: %s and %s", op.text, typeName(xn), typeName(yn))
	}
	return &binaryExpr{op: op.text[0], x: x, y: y, n: max(xn, yn)}, nil
}

func (x *binaryExpr) width() int { return x.n }

func (x *binaryExpr) eval(regs []vec) vec {
	a, b := x.x.eval(regs), x.y.eval(regs)
	r := vec{n: x.n}
	for i := range x.n {
		av, bv := a.at(i), b.at(i)
		switch x.op {
		case '+':
			r.v[i] = av + bv
		case '-':
			r.v[i] = av - bv
		case '*':
			r.v[i] = av * bv
		case '/':
			r.v[i] = av / bv
		}
	}
	return r
}

type swizzleExpr struct {
	x   expr
	idx []int
}

var swizzleSets = []string{"xyzw", "rgba", "stpq"}

func newSwizzle(field token, x expr) (expr, error) {
	name := field.text
	if len(name) > 4 {
		return nil, errorAt(field, "invalid swizzle '%s'", name)
	}
	for _, set := range swizzleSets {
		if !strings.ContainsRune(set, rune(name[0])) {
			continue
		}
		idx := make([]int, len(name))
		for i, c := range name {
			k := strings.IndexRune(set, c)
			if k < 0 {
				return nil, errorAt(field, "invalid swizzle '%s': mixed component sets", name)
			}
			if k >= x.width() {
				return nil, errorAt(field, "invalid swizzle '%s' of a %s", name, typeName(x.width()))
			}
			idx[i] = k
		}
		return &swizzleExpr{x: x, idx: idx}, nil
	}
	return nil, errorAt(field, "invalid swizzle '%s'", name)
}

func (x *swizzleExpr) width() int { return len(x.idx) }

func (x *swizzleExpr) eval(regs []vec) vec {
	v := x.x.eval(regs)
	r := vec{n: len(x.idx)}
	for i, k := range x.idx {
		r.v[i] = v.v[k]
	}
	return r
}

type constructorExpr struct {
	n    int
	args []expr
}

func newConstructor(tk token, width int, args []expr) (expr, error) {
	if len(args) == 0 {
		return nil, errorAt(tk, "too few arguments to constructor of '%s'", typeName(width))
	}
	if width == 1 || (len(args) == 1 && args[0].width() == 1) {
		if len(args) > 1 {
			return nil, errorAt(tk, "too many arguments to constructor of '%s'", typeName(width))
		}
		return &constructorExpr{n: width, args: args}, nil
	}
	total := 0
	for i, a := range args {
		if total >= width {
			return nil, errorAt(tk, "too many arguments to constructor of '%s': argument %d is unused", typeName(width), i+1)
		}
		total += a.width()
	}
	if total < width {
		return nil, errorAt(tk, "too few components to construct '%s'", typeName(width))
	}
	return &constructorExpr{n: width, args: args}, nil
}

func (x *constructorExpr) width() int { return x.n }

func (x *constructorExpr) eval(regs []vec) vec {
	r := vec{n: x.n}
	if len(x.args) == 1 {
		a := x.args[0].eval(regs)
		if a.n == 1 {
			for i := range x.n {
				r.v[i] = a.v[0]
			}
			return r
		}
	}
	k := 0
	for _, arg := range x.args {
		a := arg.eval(regs)
		for i := 0; i < a.n && k < x.n; i++ {
			r.v[k] = a.v[i]
			k++
		}
	}
	return r
}
