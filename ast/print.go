package ast

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}

	switch n := n.(type) {
	case *Quote:
		fmt.Fprintf(w, "%s(%s): %q\n", indent, n.Kind(), n.Quote)
		return
	case *Tag:
		fmt.Fprintf(w, "%s(%s): %s\n", indent, n.Kind(), n.Tag)
		return
	case *Definition:
		fmt.Fprintf(w, "%s(%s): %v\n", indent, n.Kind(), n.Extent)
	default:
		fmt.Fprintf(w, "%s(%s)\n", indent, n.Kind())
	}

	children := Children(n)
	for i := range children {
		printLevel(w, children[i], level+1)
	}
}

// Encode transforms a node into its canonical text representation. Lexing
// and parsing the result yields an equal tree. Definitions with the
// nondynamic extent have no spelling and are encoded as universal ones.
func Encode(n Node) []byte {
	var buf bytes.Buffer
	encodeNode(&buf, n)
	return buf.Bytes()
}

func encodeNode(buf *bytes.Buffer, n Node) {
	switch n := n.(type) {
	case *Quote:
		buf.WriteByte('"')
		buf.Write(n.Quote)
		buf.WriteByte('"')

	case *Tag:
		buf.WriteString(n.Tag)

	case *Abstraction:
		buf.WriteString("$(")
		for i := range n.Sequence {
			if i > 0 {
				buf.WriteString("; ")
			}
			encodeNode(buf, n.Sequence[i])
		}
		buf.WriteByte(')')

	case *ExponentialType:
		buf.WriteByte('{')
		encodeNode(buf, n.Domain)
		buf.WriteString(" -> ")
		encodeNode(buf, n.Codomain)
		buf.WriteByte('}')

	case *OrdinalType:
		buf.WriteByte('<')
		for i := range n.Labels {
			if i > 0 {
				buf.WriteString(", ")
			}
			encodeNode(buf, n.Labels[i])
		}
		buf.WriteByte('>')

	case *Application:
		encodeNode(buf, n.Operator)
		buf.WriteByte('.')
		encodeNode(buf, n.Argument)

	case *Definition:
		buf.WriteString("| ")
		if n.Extent == ExtentNonstatic {
			buf.WriteString("~ ")
		}
		encodeNode(buf, n.Tag)
		buf.WriteString(" : ")
		encodeNode(buf, n.Type)
		buf.WriteString(" = ")
		encodeNode(buf, n.Value)

	case *ExprStatement:
		encodeNode(buf, n.X)

	case *File:
		for i := range n.Definitions {
			encodeNode(buf, n.Definitions[i])
			buf.WriteByte('\n')
		}

	default:
		panic("unknown node type")
	}
}
