package ast

import (
	"fmt"
)

// Node represents any node of the syntax tree
type Node interface {
	Kind() NodeType
}

// Expr is either an application or a closed expression
type Expr interface {
	Node
	exprNode()
}

// ClosedExpr is an expression that needs no delimiter to know where it ends
type ClosedExpr interface {
	Expr
	closedExprNode()
}

// Statement is either a definition or an expression
type Statement interface {
	Node
	stmtNode()
}

// Quote holds the raw bytes between double quotes. Escapes are not decoded.
type Quote struct {
	Quote []byte
}

// Tag is an identifier made of letters, digits and underscores
type Tag struct {
	Tag string
}

// Abstraction is a function body: $ (first; second; last)
type Abstraction struct {
	Sequence []Statement
}

// ExponentialType is a function type: {domain -> codomain}
type ExponentialType struct {
	Domain   Expr
	Codomain Expr
}

// OrdinalType is an enumeration type: <a, b, c>
type OrdinalType struct {
	Labels []*Tag
}

// Application applies an operator to one argument: operator.argument
type Application struct {
	Operator ClosedExpr
	Argument ClosedExpr
}

// Definition binds a tag: | [~] tag : type = value
type Definition struct {
	Extent Extent
	Tag    *Tag
	Type   Expr
	Value  Expr
}

// ExprStatement is an expression used as a statement of an abstraction
type ExprStatement struct {
	X Expr
}

// File is the top level program unit
type File struct {
	Definitions []*Definition
}

// NewQuote creates a quote node, the payload is copied
func NewQuote(quote []byte) *Quote {
	return &Quote{Quote: append([]byte{}, quote...)}
}

// NewTag creates a tag node
func NewTag(tag string) *Tag {
	return &Tag{Tag: tag}
}

func (*Quote) Kind() NodeType           { return NodeTypeQuote }
func (*Tag) Kind() NodeType             { return NodeTypeTag }
func (*Abstraction) Kind() NodeType     { return NodeTypeAbstraction }
func (*ExponentialType) Kind() NodeType { return NodeTypeExponentialType }
func (*OrdinalType) Kind() NodeType     { return NodeTypeOrdinalType }
func (*Application) Kind() NodeType     { return NodeTypeApplication }
func (*Definition) Kind() NodeType      { return NodeTypeDefinition }
func (*ExprStatement) Kind() NodeType   { return NodeTypeExprStatement }
func (*File) Kind() NodeType            { return NodeTypeFile }

func (*Quote) exprNode()           {}
func (*Tag) exprNode()             {}
func (*Abstraction) exprNode()     {}
func (*ExponentialType) exprNode() {}
func (*OrdinalType) exprNode()     {}
func (*Application) exprNode()     {}

func (*Quote) closedExprNode()           {}
func (*Tag) closedExprNode()             {}
func (*Abstraction) closedExprNode()     {}
func (*ExponentialType) closedExprNode() {}
func (*OrdinalType) closedExprNode()     {}

func (*Definition) stmtNode()    {}
func (*ExprStatement) stmtNode() {}

func (q Quote) String() string {
	return fmt.Sprintf("(quote): %q", q.Quote)
}

func (t Tag) String() string {
	return fmt.Sprintf("(tag): %s", t.Tag)
}

func (d Definition) String() string {
	return fmt.Sprintf("(definition)[%v %s]", d.Extent, d.Tag.Tag)
}

// Children returns the direct descendants of a node, in source order
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Abstraction:
		nodes := make([]Node, 0, len(n.Sequence))
		for i := range n.Sequence {
			nodes = append(nodes, n.Sequence[i])
		}
		return nodes
	case *ExponentialType:
		return []Node{n.Domain, n.Codomain}
	case *OrdinalType:
		nodes := make([]Node, 0, len(n.Labels))
		for i := range n.Labels {
			nodes = append(nodes, n.Labels[i])
		}
		return nodes
	case *Application:
		return []Node{n.Operator, n.Argument}
	case *Definition:
		return []Node{n.Tag, n.Type, n.Value}
	case *ExprStatement:
		return []Node{n.X}
	case *File:
		nodes := make([]Node, 0, len(n.Definitions))
		for i := range n.Definitions {
			nodes = append(nodes, n.Definitions[i])
		}
		return nodes
	}
	return nil
}

// Walk traverses the tree depth first, calling f for each node. Children of
// a node are skipped when f returns false.
func Walk(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, f)
	}
}
