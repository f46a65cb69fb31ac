// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"rsharp/internal/ast"
	"rsharp/internal/source"
)

// CheckSpanInvariants checks the spans of a parsed program:
// every node span is non-empty, points at sf and lies within its content;
// binary operators sit between their operands; statements do not overlap
// and appear in source order.
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	c := spanChecker{file: sf.ID, limit: lenContent}

	prevEnd := uint32(0)
	for i, stmt := range prog.Stmts {
		var sp source.Span
		switch s := stmt.(type) {
		case *ast.DeclareStmt:
			if err := c.span("declared name", s.Name.Span); err != nil {
				return err
			}
			rhs, err := c.expr(s.Rhs)
			if err != nil {
				return err
			}
			if rhs.Start <= s.Name.Span.Start {
				return fmt.Errorf("statement %d: initializer %v precedes name %v", i, rhs, s.Name.Span)
			}
			sp = s.Name.Span.Cover(rhs)
		case *ast.ExprStmt:
			if sp, err = c.expr(s.X); err != nil {
				return err
			}
		default:
			return fmt.Errorf("statement %d: unexpected %T", i, stmt)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("statement %d span %v overlaps previous end %d", i, sp, prevEnd)
		}
		prevEnd = sp.End
	}
	return nil
}

type spanChecker struct {
	file  source.FileID
	limit uint32
}

func (c spanChecker) span(what string, sp source.Span) error {
	if sp.End <= sp.Start {
		return fmt.Errorf("%s: empty span %v", what, sp)
	}
	if sp.File != c.file {
		return fmt.Errorf("%s: span file mismatch: got=%d want=%d", what, sp.File, c.file)
	}
	if sp.End > c.limit {
		return fmt.Errorf("%s: span end beyond content: %d > %d", what, sp.End, c.limit)
	}
	return nil
}

// expr checks e and returns the span it covers in the source, including
// the keyword of a print and the parentheses of a group.
func (c spanChecker) expr(e ast.Expr) (source.Span, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		return e.Span, c.span("int literal", e.Span)
	case *ast.BoolLit:
		return e.Span, c.span("bool literal", e.Span)
	case *ast.StringLit:
		return e.Span, c.span("string literal", e.Span)
	case *ast.Ident:
		return e.Span, c.span("identifier", e.Span)
	case *ast.Binary:
		lhs, err := c.expr(e.Lhs)
		if err != nil {
			return source.Span{}, err
		}
		rhs, err := c.expr(e.Rhs)
		if err != nil {
			return source.Span{}, err
		}
		if err := c.span("operator", e.Op.Span); err != nil {
			return source.Span{}, err
		}
		if e.Op.Span.Start < lhs.End || e.Op.Span.End > rhs.Start {
			return source.Span{}, fmt.Errorf("operator %v not between %v and %v", e.Op.Span, lhs, rhs)
		}
		return lhs.Cover(rhs), nil
	case *ast.Paren:
		inner, err := c.expr(e.X)
		if err != nil {
			return source.Span{}, err
		}
		if err := c.span("group", e.Span); err != nil {
			return source.Span{}, err
		}
		if inner.Start < e.Span.Start || inner.End > e.Span.End {
			return source.Span{}, fmt.Errorf("group %v does not cover %v", e.Span, inner)
		}
		return e.Span, nil
	case *ast.Print:
		if err := c.span("print keyword", e.Span); err != nil {
			return source.Span{}, err
		}
		inner, err := c.expr(e.X)
		if err != nil {
			return source.Span{}, err
		}
		if inner.Start < e.Span.End {
			return source.Span{}, fmt.Errorf("print operand %v precedes keyword end %d", inner, e.Span.End)
		}
		return e.Span.Cover(inner), nil
	case nil:
		return source.Span{}, fmt.Errorf("nil expression")
	}
	return source.Span{}, fmt.Errorf("unexpected expression %T", e)
}
