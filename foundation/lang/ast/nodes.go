// File: nodes.go
// Title: Monkey AST Node Definitions
// Description: Defines the Program root and all statement and expression nodes
//              with their canonical string rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial AST node definitions

package ast

import (
	"strings"

	"github.com/msto63/monkey/foundation/lang/token"
)

// Node is implemented by every AST node
type Node interface {
	// TokenLiteral returns the literal of the token the node was built from
	TokenLiteral() string

	// String renders the node as canonical source
	String() string

	// Pos returns the position where the node starts
	Pos() token.Position

	// Accept dispatches to the matching Visitor method
	Accept(v Visitor) interface{}
}

// Statement is a node that appears in a statement list
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every AST
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{}
}

func (p *Program) Accept(v Visitor) interface{} { return v.VisitProgram(p) }

// Statements

// LetStatement binds a name: let <Name> = <Value>;
type LetStatement struct {
	Token token.Token // the LET token
	Name  Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) Pos() token.Position  { return ls.Token.Pos }

func (ls *LetStatement) String() string {
	var out strings.Builder
	out.WriteString(ls.TokenLiteral() + " ")
	out.WriteString(ls.Name.String())
	out.WriteString(" = ")
	if ls.Value != nil {
		out.WriteString(ls.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

func (ls *LetStatement) Accept(v Visitor) interface{} { return v.VisitLetStatement(ls) }

// ReturnStatement: return <ReturnValue>;
type ReturnStatement struct {
	Token       token.Token // the RETURN token
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Pos }

func (rs *ReturnStatement) String() string {
	var out strings.Builder
	out.WriteString(rs.TokenLiteral() + " ")
	if rs.ReturnValue != nil {
		out.WriteString(rs.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

func (rs *ReturnStatement) Accept(v Visitor) interface{} { return v.VisitReturnStatement(rs) }

// ExpressionStatement wraps an expression used as a statement, e.g. x + 10;
type ExpressionStatement struct {
	Token      token.Token // first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Position  { return es.Token.Pos }

func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

func (es *ExpressionStatement) Accept(v Visitor) interface{} { return v.VisitExpressionStatement(es) }

// BlockStatement is a braced statement list
type BlockStatement struct {
	Token      token.Token // the { token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() token.Position  { return bs.Token.Pos }

func (bs *BlockStatement) String() string {
	var out strings.Builder
	for _, s := range bs.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (bs *BlockStatement) Accept(v Visitor) interface{} { return v.VisitBlockStatement(bs) }

// Expressions

// Identifier is a name reference
type Identifier struct {
	Token token.Token // the IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() token.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Value }

func (i *Identifier) Accept(v Visitor) interface{} { return v.VisitIdentifier(i) }

// IntegerLiteral is a decimal integer constant
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

func (il *IntegerLiteral) Accept(v Visitor) interface{} { return v.VisitIntegerLiteral(il) }

// Boolean is true or false
type Boolean struct {
	Token token.Token
	Value bool
}

func (b *Boolean) expressionNode()      {}
func (b *Boolean) TokenLiteral() string { return b.Token.Literal }
func (b *Boolean) Pos() token.Position  { return b.Token.Pos }
func (b *Boolean) String() string       { return b.Token.Literal }

func (b *Boolean) Accept(v Visitor) interface{} { return v.VisitBoolean(b) }

// PrefixExpression: <Operator><Right>, e.g. !ok or -5
type PrefixExpression struct {
	Token    token.Token // the prefix operator
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) Pos() token.Position  { return pe.Token.Pos }

func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + nodeString(pe.Right) + ")"
}

func (pe *PrefixExpression) Accept(v Visitor) interface{} { return v.VisitPrefixExpression(pe) }

// InfixExpression: <Left> <Operator> <Right>
type InfixExpression struct {
	Token    token.Token // the operator
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }

// Pos returns the start of the left operand
func (ie *InfixExpression) Pos() token.Position {
	if ie.Left != nil {
		return ie.Left.Pos()
	}
	return ie.Token.Pos
}

func (ie *InfixExpression) String() string {
	return "(" + nodeString(ie.Left) + " " + ie.Operator + " " + nodeString(ie.Right) + ")"
}

func (ie *InfixExpression) Accept(v Visitor) interface{} { return v.VisitInfixExpression(ie) }

// IfExpression: if (<Condition>) <Consequence> else <Alternative>
type IfExpression struct {
	Token       token.Token // the IF token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil without else
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfExpression) Pos() token.Position  { return ie.Token.Pos }

func (ie *IfExpression) String() string {
	var out strings.Builder
	out.WriteString("if")
	out.WriteString(nodeString(ie.Condition))
	out.WriteString(" ")
	if ie.Consequence != nil {
		out.WriteString(ie.Consequence.String())
	}
	if ie.Alternative != nil {
		out.WriteString("else ")
		out.WriteString(ie.Alternative.String())
	}
	return out.String()
}

func (ie *IfExpression) Accept(v Visitor) interface{} { return v.VisitIfExpression(ie) }

// FunctionLiteral: fn(<Parameters>) <Body>
type FunctionLiteral struct {
	Token      token.Token // the FUNCTION token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) Pos() token.Position  { return fl.Token.Pos }

func (fl *FunctionLiteral) String() string {
	params := make([]string, 0, len(fl.Parameters))
	for _, p := range fl.Parameters {
		params = append(params, p.String())
	}

	var out strings.Builder
	out.WriteString(fl.TokenLiteral())
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	if fl.Body != nil {
		out.WriteString(fl.Body.String())
	}
	return out.String()
}

func (fl *FunctionLiteral) Accept(v Visitor) interface{} { return v.VisitFunctionLiteral(fl) }

// CallExpression: <Function>(<Arguments>)
type CallExpression struct {
	Token     token.Token // the ( token
	Function  Expression  // Identifier or FunctionLiteral
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }

// Pos returns the start of the callee
func (ce *CallExpression) Pos() token.Position {
	if ce.Function != nil {
		return ce.Function.Pos()
	}
	return ce.Token.Pos
}

func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, nodeString(a))
	}
	return nodeString(ce.Function) + "(" + strings.Join(args, ", ") + ")"
}

func (ce *CallExpression) Accept(v Visitor) interface{} { return v.VisitCallExpression(ce) }

func nodeString(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}
