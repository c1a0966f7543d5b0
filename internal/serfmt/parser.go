package serfmt

import (
	"fmt"

	"github.com/halvard-labs/serialcheck/program"
)

type parser struct {
	toks []token
	pos  int

	locals  map[string]bool
	globals []string
	seen    map[string]bool
}

// Parse reads src and returns the program.Request values declared in it, in
// source order.
func Parse(src string) ([]program.Request, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	var reqs []program.Request
	for p.peek().kind != tokEOF {
		req, err := p.parseRequest()
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}

	return reqs, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}

	return t
}

func (p *parser) expectKeyword(word string) error {
	t := p.next()
	if t.kind != tokKeyword || t.text != word {
		return fmt.Errorf("%w: expected %q, got %q at line %d", ErrUnexpectedToken, word, t.text, t.line)
	}

	return nil
}

func (p *parser) expectSymbol(sym string) error {
	t := p.next()
	if t.kind != tokSymbol || t.text != sym {
		return fmt.Errorf("%w: expected %q, got %q at line %d", ErrUnexpectedToken, sym, t.text, t.line)
	}

	return nil
}

func (p *parser) expectIdent() (string, error) {
	t := p.next()
	if t.kind != tokIdent {
		return "", fmt.Errorf("%w: expected identifier, got %q at line %d", ErrUnexpectedToken, t.text, t.line)
	}

	return t.text, nil
}

func (p *parser) parseRequest() (program.Request, error) {
	if err := p.expectKeyword("request"); err != nil {
		return program.Request{}, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return program.Request{}, err
	}
	if err := p.expectSymbol("{"); err != nil {
		return program.Request{}, err
	}

	p.locals = map[string]bool{}
	p.globals = nil
	p.seen = map[string]bool{}

	for p.peek().kind == tokKeyword && p.peek().text == "local" {
		p.next()
		v, err := p.expectIdent()
		if err != nil {
			return program.Request{}, err
		}
		if err := p.expectSymbol(";"); err != nil {
			return program.Request{}, err
		}
		p.locals[v] = true
	}

	var ret program.Expr = program.Const{Value: 0}
	var stmts []program.Stmt
	for {
		t := p.peek()
		if t.kind == tokSymbol && t.text == "}" {
			p.next()
			break
		}
		if t.kind == tokEOF {
			return program.Request{}, fmt.Errorf("%w: request %q missing closing brace", ErrUnterminatedInput, name)
		}
		if t.kind == tokKeyword && t.text == "return" {
			p.next()
			e, err := p.parseExpr()
			if err != nil {
				return program.Request{}, err
			}
			if err := p.expectSymbol(";"); err != nil {
				return program.Request{}, err
			}
			ret = e
			continue
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return program.Request{}, err
		}
		stmts = append(stmts, stmt)
	}

	locals := make([]string, 0, len(p.locals))
	for v := range p.locals {
		locals = append(locals, v)
	}

	return program.NewRequest(name, p.globals, locals, program.Seq{Stmts: stmts}, ret)
}

func (p *parser) noteVar(name string) {
	if p.locals[name] || p.seen[name] {
		return
	}
	p.seen[name] = true
	p.globals = append(p.globals, name)
}

func (p *parser) parseStmt() (program.Stmt, error) {
	t := p.peek()
	switch {
	case t.kind == tokKeyword && t.text == "yield":
		p.next()
		if err := p.expectSymbol(";"); err != nil {
			return nil, err
		}

		return program.Yield{}, nil
	case t.kind == tokKeyword && t.text == "if":
		return p.parseIf()
	case t.kind == tokKeyword && t.text == "while":
		return p.parseWhile()
	case t.kind == tokIdent:
		return p.parseAssign()
	default:
		return nil, fmt.Errorf("%w: unexpected %q at line %d", ErrUnexpectedToken, t.text, t.line)
	}
}

func (p *parser) parseAssign() (program.Stmt, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(":="); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(";"); err != nil {
		return nil, err
	}

	if p.locals[name] {
		return program.WriteLocal{Var: name, Value: value}, nil
	}
	p.noteVar(name)

	return program.WriteGlobal{Var: name, Value: value}, nil
}

func (p *parser) parseBlock() ([]program.Stmt, error) {
	if err := p.expectSymbol("{"); err != nil {
		return nil, err
	}
	var stmts []program.Stmt
	for {
		t := p.peek()
		if t.kind == tokSymbol && t.text == "}" {
			p.next()
			break
		}
		if t.kind == tokEOF {
			return nil, ErrUnterminatedInput
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

func (p *parser) parseIf() (program.Stmt, error) {
	p.next()
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	thenStmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseStmts []program.Stmt
	if p.peek().kind == tokKeyword && p.peek().text == "else" {
		p.next()
		elseStmts, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return program.If{Cond: cond, Then: program.Seq{Stmts: thenStmts}, Else: program.Seq{Stmts: elseStmts}}, nil
}

func (p *parser) parseWhile() (program.Stmt, error) {
	p.next()
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return program.While{Cond: cond, Body: program.Seq{Stmts: body}}, nil
}

func (p *parser) parseCond() (program.Cond, error) {
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	y, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return program.Eq{X: x, Y: y}, nil
}

func (p *parser) parseExpr() (program.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokSymbol || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if t.text == "+" {
			left = program.Add{X: left, Y: right}
		} else {
			left = program.Sub{X: left, Y: right}
		}
	}
}

func (p *parser) parseTerm() (program.Expr, error) {
	t := p.next()
	switch t.kind {
	case tokIdent:
		p.noteVar(t.text)

		return program.Read{Var: t.text}, nil
	case tokInt:
		v, err := parseInt(t.text)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid integer %q at line %d", ErrUnexpectedToken, t.text, t.line)
		}

		return program.Const{Value: v}, nil
	default:
		return nil, fmt.Errorf("%w: expected identifier or integer, got %q at line %d", ErrUnexpectedToken, t.text, t.line)
	}
}
