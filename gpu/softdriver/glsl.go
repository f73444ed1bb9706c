// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softdriver

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"cogentcore.org/glpipe/gpu"
)

// This file implements the compiler for the small subset of
// GLSL 330 core that the software driver executes:
//
//	#version 330 core
//	layout (location = 0) in vec3 aPos;
//	in vec3 color;
//	out vec4 FragColor;
//	void main() {
//	    vec3 p = aPos * 0.5;
//	    gl_Position = vec4(p.x, p.y, p.z, 1.0);
//	}
//
// Types are float and vec2..vec4; expressions are float literals,
// variables, swizzles, constructors and + - * / arithmetic.

// tokenKinds are the kinds of lexical tokens.
type tokenKinds int32

const (
	tokEOF tokenKinds = iota
	tokIdent
	tokNumber
	tokPunct
	tokDirective
)

type token struct {
	kind tokenKinds
	text string
	line int
	col  int
}

// compileError is a diagnostic at a source position.
type compileError struct {
	line, col int
	msg       string
}

func (e *compileError) Error() string {
	return fmt.Sprintf("0:%d(%d): error: %s", e.line, e.col, e.msg)
}

func errorAt(tk token, format string, args ...any) *compileError {
	return &compileError{line: tk.line, col: tk.col, msg: fmt.Sprintf(format, args...)}
}

// lex splits the source into tokens. Preprocessor directives are
// returned as a single tokDirective token holding the whole line.
func lex(src string) ([]token, error) {
	if i := strings.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	var toks []token
	line, col := 1, 1
	rs := []rune(src)
	i := 0
	adv := func(n int) {
		for k := 0; k < n && i < len(rs); k++ {
			if rs[i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			i++
		}
	}
	lineStart := true
	for i < len(rs) {
		r := rs[i]
		switch {
		case r == '\n':
			adv(1)
			lineStart = true
			continue
		case unicode.IsSpace(r):
			adv(1)
			continue
		case r == '/' && i+1 < len(rs) && rs[i+1] == '/':
			for i < len(rs) && rs[i] != '\n' {
				adv(1)
			}
			continue
		case r == '/' && i+1 < len(rs) && rs[i+1] == '*':
			stl, stc := line, col
			adv(2)
			for i < len(rs) && !(rs[i] == '*' && i+1 < len(rs) && rs[i+1] == '/') {
				adv(1)
			}
			if i >= len(rs) {
				return nil, &compileError{line: stl, col: stc, msg: "unterminated comment"}
			}
			adv(2)
			continue
		}
		tk := token{line: line, col: col}
		switch {
		case r == '#':
			if !lineStart {
				return nil, errorAt(tk, "'#' must be the first character of a line")
			}
			st := i
			for i < len(rs) && rs[i] != '\n' {
				adv(1)
			}
			tk.kind = tokDirective
			tk.text = strings.TrimSpace(string(rs[st:i]))
		case unicode.IsLetter(r) || r == '_':
			st := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i]) || rs[i] == '_') {
				adv(1)
			}
			tk.kind = tokIdent
			tk.text = string(rs[st:i])
		case unicode.IsDigit(r) || (r == '.' && i+1 < len(rs) && unicode.IsDigit(rs[i+1])):
			st := i
			for i < len(rs) && (unicode.IsDigit(rs[i]) || rs[i] == '.') {
				adv(1)
			}
			if i < len(rs) && (rs[i] == 'e' || rs[i] == 'E') {
				adv(1)
				if i < len(rs) && (rs[i] == '+' || rs[i] == '-') {
					adv(1)
				}
				for i < len(rs) && unicode.IsDigit(rs[i]) {
					adv(1)
				}
			}
			if i < len(rs) && (rs[i] == 'f' || rs[i] == 'F') {
				adv(1)
			}
			tk.kind = tokNumber
			tk.text = string(rs[st:i])
		case strings.ContainsRune("(){};,=.+-*/", r):
			adv(1)
			tk.kind = tokPunct
			tk.text = string(r)
		default:
			return nil, errorAt(tk, "syntax error, unexpected character '%c'", r)
		}
		lineStart = false
		toks = append(toks, tk)
	}
	toks = append(toks, token{kind: tokEOF, line: line, col: col})
	return toks, nil
}

// symbolKinds are the storage kinds of variables.
type symbolKinds int32

const (
	symInput symbolKinds = iota
	symOutput
	symLocal
)

// symbol is a variable of a stage, stored in one register.
type symbol struct {
	name     string
	width    int
	kind     symbolKinds
	location int
	builtin  bool
}

// assign is a statement that stores an expression in a register.
type assign struct {
	reg  int
	expr expr
}

// stageCode is a compiled shader stage.
type stageCode struct {
	typ     gpu.ShaderTypes
	version int
	symbols []*symbol
	body    []assign

	// position is the gl_Position register of a vertex stage, else -1.
	position int
}

// lookup returns the register of the named symbol, or -1.
func (sc *stageCode) lookup(name string) int {
	for i, s := range sc.symbols {
		if s.name == name {
			return i
		}
	}
	return -1
}

// run executes the body of the stage on the given registers.
func (sc *stageCode) run(regs []vec) {
	for _, st := range sc.body {
		regs[st.reg] = st.expr.eval(regs)
	}
}

var typeWidths = map[string]int{"float": 1, "vec2": 2, "vec3": 3, "vec4": 4}

// typeName returns the GLSL type name for a width.
func typeName(width int) string {
	if width == 1 {
		return "float"
	}
	return fmt.Sprintf("vec%d", width)
}

var reserved = map[string]bool{
	"layout": true, "in": true, "out": true, "uniform": true, "void": true,
	"return": true, "if": true, "else": true, "for": true, "while": true,
	"const": true, "struct": true, "precision": true,
}

// parser is a recursive descent parser over the tokens of one stage.
type parser struct {
	toks []token
	pos  int
	code *stageCode
	main bool
}

// compile compiles the source of a shader of the given type.
func compile(typ gpu.ShaderTypes, src string) (*stageCode, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, code: &stageCode{typ: typ, position: -1}}
	if typ == gpu.VertexShader {
		p.code.symbols = append(p.code.symbols, &symbol{name: "gl_Position", width: 4, kind: symOutput, location: -1, builtin: true})
		p.code.position = 0
	}
	if err := p.version(); err != nil {
		return nil, err
	}
	for p.peek().kind != tokEOF {
		if err := p.external(); err != nil {
			return nil, err
		}
	}
	if !p.main {
		return nil, errorAt(p.peek(), "no function with name 'main' defined")
	}
	return p.code, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tk := p.toks[p.pos]
	if tk.kind != tokEOF {
		p.pos++
	}
	return tk
}

// is returns true if the next token is the given punctuation or identifier.
func (p *parser) is(text string) bool {
	tk := p.peek()
	return (tk.kind == tokPunct || tk.kind == tokIdent) && tk.text == text
}

func (p *parser) expect(text string) (token, error) {
	tk := p.next()
	if (tk.kind != tokPunct && tk.kind != tokIdent) || tk.text != text {
		return tk, errorAt(tk, "syntax error, unexpected %s, expecting '%s'", describe(tk), text)
	}
	return tk, nil
}

func (p *parser) ident() (token, error) {
	tk := p.next()
	if _, isType := typeWidths[tk.text]; tk.kind != tokIdent || reserved[tk.text] || isType {
		return tk, errorAt(tk, "syntax error, unexpected %s, expecting identifier", describe(tk))
	}
	return tk, nil
}

func describe(tk token) string {
	switch tk.kind {
	case tokEOF:
		return "end of file"
	case tokNumber:
		return "number " + tk.text
	case tokDirective:
		return "preprocessor directive"
	}
	return "'" + tk.text + "'"
}

// version parses the required leading #version directive.
func (p *parser) version() error {
	tk := p.peek()
	if tk.kind != tokDirective {
		return errorAt(tk, "missing #version directive: GLSL 3.30 core or later is required")
	}
	p.next()
	fields := strings.Fields(strings.TrimPrefix(tk.text, "#"))
	if len(fields) < 2 || fields[0] != "version" {
		return errorAt(tk, "unsupported preprocessor directive %q", tk.text)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return errorAt(tk, "invalid #version number %q", fields[1])
	}
	if v < 330 {
		return errorAt(tk, "GLSL %d.%02d is not supported: 3.30 core or later is required", v/100, v%100)
	}
	if len(fields) > 2 && fields[2] != "core" {
		return errorAt(tk, "unsupported #version profile %q", fields[2])
	}
	p.code.version = v
	return nil
}

// external parses one top level declaration.
func (p *parser) external() error {
	tk := p.peek()
	if tk.kind == tokDirective {
		if strings.HasPrefix(strings.TrimSpace(strings.TrimPrefix(tk.text, "#")), "version") {
			return errorAt(tk, "#version must occur on the first line of a shader")
		}
		return errorAt(tk, "unsupported preprocessor directive %q", tk.text)
	}
	if p.is("void") {
		return p.function()
	}
	location := -1
	if p.is("layout") {
		p.next()
		if _, err := p.expect("("); err != nil {
			return err
		}
		if _, err := p.expect("location"); err != nil {
			return err
		}
		if _, err := p.expect("="); err != nil {
			return err
		}
		num := p.next()
		n, err := strconv.Atoi(num.text)
		if num.kind != tokNumber || err != nil || n < 0 {
			return errorAt(num, "invalid location %s", describe(num))
		}
		if n >= gpu.MaxAttributes {
			return errorAt(num, "location %d exceeds the maximum of %d", n, gpu.MaxAttributes-1)
		}
		location = n
		if _, err := p.expect(")"); err != nil {
			return err
		}
	}
	qual := p.next()
	var kind symbolKinds
	switch {
	case qual.kind == tokIdent && qual.text == "in":
		kind = symInput
	case qual.kind == tokIdent && qual.text == "out":
		kind = symOutput
	case qual.kind == tokIdent && qual.text == "uniform":
		return errorAt(qual, "uniform variables are not supported")
	default:
		return errorAt(qual, "syntax error, unexpected %s, expecting 'in', 'out' or 'void'", describe(qual))
	}
	ttk := p.next()
	width, ok := typeWidths[ttk.text]
	if ttk.kind != tokIdent || !ok {
		return errorAt(ttk, "syntax error, unexpected %s, expecting a type", describe(ttk))
	}
	name, err := p.ident()
	if err != nil {
		return err
	}
	if _, err := p.expect(";"); err != nil {
		return err
	}
	if kind == symInput && location >= 0 && p.code.typ == gpu.FragmentShader {
		return errorAt(qual, "location qualifiers are not supported on fragment shader inputs")
	}
	return p.declare(name, &symbol{name: name.text, width: width, kind: kind, location: location})
}

func (p *parser) declare(name token, sym *symbol) error {
	if strings.HasPrefix(sym.name, "gl_") {
		return errorAt(name, "identifier '%s' uses reserved prefix 'gl_'", sym.name)
	}
	if ri := p.code.lookup(sym.name); ri >= 0 {
		return errorAt(name, "'%s' redeclared", sym.name)
	}
	if sym.location >= 0 {
		for _, s := range p.code.symbols {
			if s.kind == sym.kind && s.location == sym.location {
				return errorAt(name, "location %d is already used by '%s'", sym.location, s.name)
			}
		}
	}
	p.code.symbols = append(p.code.symbols, sym)
	return nil
}

// function parses the main function.
func (p *parser) function() error {
	p.next()
	name := p.next()
	if name.kind != tokIdent || name.text != "main" {
		return errorAt(name, "only the function 'main' is supported")
	}
	if p.main {
		return errorAt(name, "function 'main' redefined")
	}
	p.main = true
	if _, err := p.expect("("); err != nil {
		return err
	}
	if p.is("void") {
		p.next()
	}
	if _, err := p.expect(")"); err != nil {
		return err
	}
	if _, err := p.expect("{"); err != nil {
		return err
	}
	for !p.is("}") {
		if p.peek().kind == tokEOF {
			return errorAt(p.peek(), "syntax error, unexpected end of file, expecting '}'")
		}
		if err := p.statement(); err != nil {
			return err
		}
	}
	p.next()
	return nil
}

// statement parses a declaration or assignment.
func (p *parser) statement() error {
	if p.is(";") {
		p.next()
		return nil
	}
	tk := p.peek()
	if width, ok := typeWidths[tk.text]; ok && tk.kind == tokIdent && p.toks[p.pos+1].kind == tokIdent {
		p.next()
		name, err := p.ident()
		if err != nil {
			return err
		}
		if err := p.declare(name, &symbol{name: name.text, width: width, kind: symLocal, location: -1}); err != nil {
			return err
		}
		if p.is(";") {
			p.next()
			return nil
		}
		if _, err := p.expect("="); err != nil {
			return err
		}
		return p.assignment(name, len(p.code.symbols)-1)
	}
	name, err := p.ident()
	if err != nil {
		return err
	}
	reg := p.code.lookup(name.text)
	if reg < 0 {
		return errorAt(name, "'%s' undeclared", name.text)
	}
	if p.is(".") {
		return errorAt(p.peek(), "assignment to a swizzle is not supported")
	}
	if p.code.symbols[reg].kind == symInput {
		return errorAt(name, "assignment to read-only variable '%s'", name.text)
	}
	if _, err := p.expect("="); err != nil {
		return err
	}
	return p.assignment(name, reg)
}

func (p *parser) assignment(name token, reg int) error {
	x, err := p.expr()
	if err != nil {
		return err
	}
	if _, err := p.expect(";"); err != nil {
		return err
	}
	sym := p.code.symbols[reg]
	if x.width() != sym.width {
		return errorAt(name, "value of type %s cannot be assigned to variable '%s' of type %s", typeName(x.width()), sym.name, typeName(sym.width))
	}
	p.code.body = append(p.code.body, assign{reg: reg, expr: x})
	return nil
}

// expr parses an additive expression.
func (p *parser) expr() (expr, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.is("+") || p.is("-") {
		op := p.next()
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		if x, err = newBinary(op, x, y); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// term parses a multiplicative expression.
func (p *parser) term() (expr, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.is("*") || p.is("/") {
		op := p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		if x, err = newBinary(op, x, y); err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (p *parser) unary() (expr, error) {
	if p.is("-") {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &negExpr{x: x}, nil
	}
	if p.is("+") {
		p.next()
		return p.unary()
	}
	return p.postfix()
}

func (p *parser) postfix() (expr, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.is(".") {
		p.next()
		field := p.next()
		if field.kind != tokIdent {
			return nil, errorAt(field, "syntax error, unexpected %s, expecting a swizzle", describe(field))
		}
		if x, err = newSwizzle(field, x); err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (p *parser) primary() (expr, error) {
	tk := p.next()
	switch tk.kind {
	case tokNumber:
		f, err := strconv.ParseFloat(strings.TrimRight(tk.text, "fF"), 32)
		if err != nil {
			return nil, errorAt(tk, "invalid number %s", tk.text)
		}
		return &constExpr{val: scalar(float32(f))}, nil
	case tokIdent:
		if width, ok := typeWidths[tk.text]; ok {
			return p.constructor(tk, width)
		}
		reg := p.code.lookup(tk.text)
		if reg < 0 {
			return nil, errorAt(tk, "'%s' undeclared", tk.text)
		}
		sym := p.code.symbols[reg]
		if sym.kind == symOutput && sym.builtin {
			return nil, errorAt(tk, "reading '%s' is not supported", tk.text)
		}
		return &varExpr{reg: reg, n: sym.width}, nil
	case tokPunct:
		if tk.text == "(" {
			x, err := p.expr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(")"); err != nil {
				return nil, err
			}
			return x, nil
		}
	}
	return nil, errorAt(tk, "syntax error, unexpected %s", describe(tk))
}

func (p *parser) constructor(tk token, width int) (expr, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	var args []expr
	for !p.is(")") {
		if len(args) > 0 {
			if _, err := p.expect(","); err != nil {
				return nil, err
			}
		}
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, x)
	}
	p.next()
	return newConstructor(tk, width, args)
}
