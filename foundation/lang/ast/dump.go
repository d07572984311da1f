// File: dump.go
// Title: AST Dump
// Description: Converts a tree into nested maps and slices of plain values so
//              it can be encoded as JSON or YAML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package ast

// Dump returns a plain value tree for node. Every node becomes a map with a
// "node" key naming its shape and a "pos" key holding "line:column".
func Dump(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}
	out, _ := node.Accept(dumpVisitor{}).(map[string]interface{})
	return out
}

type dumpVisitor struct{}

func entry(kind string, n Node) map[string]interface{} {
	return map[string]interface{}{
		"node": kind,
		"pos":  n.Pos().String(),
	}
}

func dumpOptional(n Node) interface{} {
	if n == nil {
		return nil
	}
	return Dump(n)
}

func dumpStatements(stmts []Statement) []interface{} {
	out := make([]interface{}, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, Dump(s))
	}
	return out
}

func (dumpVisitor) VisitProgram(p *Program) interface{} {
	return map[string]interface{}{
		"node":       "Program",
		"statements": dumpStatements(p.Statements),
	}
}

func (dumpVisitor) VisitLetStatement(s *LetStatement) interface{} {
	m := entry("LetStatement", s)
	m["name"] = s.Name.Value
	m["value"] = dumpOptional(s.Value)
	return m
}

func (dumpVisitor) VisitReturnStatement(s *ReturnStatement) interface{} {
	m := entry("ReturnStatement", s)
	m["value"] = dumpOptional(s.ReturnValue)
	return m
}

func (dumpVisitor) VisitExpressionStatement(s *ExpressionStatement) interface{} {
	m := entry("ExpressionStatement", s)
	m["expression"] = dumpOptional(s.Expression)
	return m
}

func (dumpVisitor) VisitBlockStatement(s *BlockStatement) interface{} {
	m := entry("BlockStatement", s)
	m["statements"] = dumpStatements(s.Statements)
	return m
}

func (dumpVisitor) VisitIdentifier(e *Identifier) interface{} {
	m := entry("Identifier", e)
	m["value"] = e.Value
	return m
}

func (dumpVisitor) VisitIntegerLiteral(e *IntegerLiteral) interface{} {
	m := entry("IntegerLiteral", e)
	m["value"] = e.Value
	return m
}

func (dumpVisitor) VisitBoolean(e *Boolean) interface{} {
	m := entry("Boolean", e)
	m["value"] = e.Value
	return m
}

func (dumpVisitor) VisitPrefixExpression(e *PrefixExpression) interface{} {
	m := entry("PrefixExpression", e)
	m["operator"] = e.Operator
	m["right"] = dumpOptional(e.Right)
	return m
}

func (dumpVisitor) VisitInfixExpression(e *InfixExpression) interface{} {
	m := entry("InfixExpression", e)
	m["operator"] = e.Operator
	m["left"] = dumpOptional(e.Left)
	m["right"] = dumpOptional(e.Right)
	return m
}

func (dumpVisitor) VisitIfExpression(e *IfExpression) interface{} {
	m := entry("IfExpression", e)
	m["condition"] = dumpOptional(e.Condition)
	if e.Consequence != nil {
		m["consequence"] = Dump(e.Consequence)
	}
	if e.Alternative != nil {
		m["alternative"] = Dump(e.Alternative)
	}
	return m
}

func (dumpVisitor) VisitFunctionLiteral(e *FunctionLiteral) interface{} {
	m := entry("FunctionLiteral", e)
	params := make([]interface{}, 0, len(e.Parameters))
	for _, p := range e.Parameters {
		params = append(params, p.Value)
	}
	m["parameters"] = params
	if e.Body != nil {
		m["body"] = Dump(e.Body)
	}
	return m
}

func (dumpVisitor) VisitCallExpression(e *CallExpression) interface{} {
	m := entry("CallExpression", e)
	m["function"] = dumpOptional(e.Function)
	args := make([]interface{}, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		args = append(args, Dump(a))
	}
	m["arguments"] = args
	return m
}
