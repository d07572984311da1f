// File: visitor.go
// Title: Monkey AST Visitor Pattern Implementation
// Description: Visitor interface with one method per node shape, a no-op base
//              visitor to embed, depth first traversal and a structural
//              validation visitor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"

	"github.com/msto63/monkey/foundation/lang/token"
)

// Visitor has one method per node shape
type Visitor interface {
	VisitProgram(p *Program) interface{}

	// Statements
	VisitLetStatement(s *LetStatement) interface{}
	VisitReturnStatement(s *ReturnStatement) interface{}
	VisitExpressionStatement(s *ExpressionStatement) interface{}
	VisitBlockStatement(s *BlockStatement) interface{}

	// Expressions
	VisitIdentifier(e *Identifier) interface{}
	VisitIntegerLiteral(e *IntegerLiteral) interface{}
	VisitBoolean(e *Boolean) interface{}
	VisitPrefixExpression(e *PrefixExpression) interface{}
	VisitInfixExpression(e *InfixExpression) interface{}
	VisitIfExpression(e *IfExpression) interface{}
	VisitFunctionLiteral(e *FunctionLiteral) interface{}
	VisitCallExpression(e *CallExpression) interface{}
}

// BaseVisitor returns nil for every node. Embed it in concrete visitors to
// only override the methods you need; use Inspect to reach children.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program) interface{}                         { return nil }
func (BaseVisitor) VisitLetStatement(*LetStatement) interface{}               { return nil }
func (BaseVisitor) VisitReturnStatement(*ReturnStatement) interface{}         { return nil }
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement) interface{} { return nil }
func (BaseVisitor) VisitBlockStatement(*BlockStatement) interface{}           { return nil }
func (BaseVisitor) VisitIdentifier(*Identifier) interface{}                   { return nil }
func (BaseVisitor) VisitIntegerLiteral(*IntegerLiteral) interface{}           { return nil }
func (BaseVisitor) VisitBoolean(*Boolean) interface{}                         { return nil }
func (BaseVisitor) VisitPrefixExpression(*PrefixExpression) interface{}       { return nil }
func (BaseVisitor) VisitInfixExpression(*InfixExpression) interface{}         { return nil }
func (BaseVisitor) VisitIfExpression(*IfExpression) interface{}               { return nil }
func (BaseVisitor) VisitFunctionLiteral(*FunctionLiteral) interface{}         { return nil }
func (BaseVisitor) VisitCallExpression(*CallExpression) interface{}           { return nil }

// Children returns the direct children of node in source order. Absent
// optional children (a missing else branch) are skipped.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if n != nil {
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			add(s)
		}
	case *LetStatement:
		out = append(out, &n.Name)
		add(n.Value)
	case *ReturnStatement:
		add(n.ReturnValue)
	case *ExpressionStatement:
		add(n.Expression)
	case *BlockStatement:
		for _, s := range n.Statements {
			add(s)
		}
	case *PrefixExpression:
		add(n.Right)
	case *InfixExpression:
		add(n.Left)
		add(n.Right)
	case *IfExpression:
		add(n.Condition)
		if n.Consequence != nil {
			out = append(out, n.Consequence)
		}
		if n.Alternative != nil {
			out = append(out, n.Alternative)
		}
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			if p != nil {
				out = append(out, p)
			}
		}
		if n.Body != nil {
			out = append(out, n.Body)
		}
	case *CallExpression:
		add(n.Function)
		for _, a := range n.Arguments {
			add(a)
		}
	}
	return out
}

// Inspect traverses the tree depth first in pre-order. If fn returns false
// the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, fn)
	}
}

// Walk calls node.Accept(v) for every node in pre-order
func Walk(v Visitor, node Node) {
	Inspect(node, func(n Node) bool {
		n.Accept(v)
		return true
	})
}

// ValidationVisitor checks structural invariants that the parser guarantees
// for every tree it returns, and collects violations
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{}
}

// Validate walks node and returns all violations
func Validate(node Node) []error {
	vv := NewValidationVisitor()
	Walk(vv, node)
	return vv.Errors()
}

// Errors returns all violations found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any violation was found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

func (vv *ValidationVisitor) addError(n Node, format string, args ...interface{}) {
	vv.errors = append(vv.errors, fmt.Errorf("%s: %s", n.Pos(), fmt.Sprintf(format, args...)))
}

func (vv *ValidationVisitor) VisitLetStatement(s *LetStatement) interface{} {
	if s.Token.Type != token.LET {
		vv.addError(s, "let statement built from %s token", s.Token.Type.Name())
	}
	if s.Name.Token.Type != token.IDENT {
		vv.addError(s, "let statement name built from %s token", s.Name.Token.Type.Name())
	}
	if s.Value == nil {
		vv.addError(s, "let statement %q has no value", s.Name.Value)
	}
	return nil
}

func (vv *ValidationVisitor) VisitReturnStatement(s *ReturnStatement) interface{} {
	if s.ReturnValue == nil {
		vv.addError(s, "return statement has no value")
	}
	return nil
}

func (vv *ValidationVisitor) VisitExpressionStatement(s *ExpressionStatement) interface{} {
	if s.Expression == nil {
		vv.addError(s, "expression statement has no expression")
	}
	return nil
}

func (vv *ValidationVisitor) VisitIdentifier(e *Identifier) interface{} {
	if e.Token.Type != token.IDENT || e.Value != e.Token.Literal {
		vv.addError(e, "identifier %q does not match its token %s", e.Value, e.Token)
	}
	return nil
}

func (vv *ValidationVisitor) VisitPrefixExpression(e *PrefixExpression) interface{} {
	if e.Right == nil {
		vv.addError(e, "prefix %s has no operand", e.Operator)
	}
	return nil
}

func (vv *ValidationVisitor) VisitInfixExpression(e *InfixExpression) interface{} {
	if e.Left == nil || e.Right == nil {
		vv.addError(e, "infix %s is missing an operand", e.Operator)
	}
	return nil
}

func (vv *ValidationVisitor) VisitIfExpression(e *IfExpression) interface{} {
	if e.Condition == nil || e.Consequence == nil {
		vv.addError(e, "if expression is incomplete")
	}
	return nil
}

func (vv *ValidationVisitor) VisitFunctionLiteral(e *FunctionLiteral) interface{} {
	if e.Body == nil {
		vv.addError(e, "function literal has no body")
	}
	return nil
}

func (vv *ValidationVisitor) VisitCallExpression(e *CallExpression) interface{} {
	if e.Function == nil {
		vv.addError(e, "call expression has no callee")
	}
	return nil
}
