package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lazy/ast"
	"github.com/xiam/lazy/parser"
)

func printTree(node ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	switch n := node.(type) {
	case *ast.Tag:
		fmt.Printf("%s<%s>%s</%s>\n", indent, n.Kind(), n.Tag, n.Kind())
		return
	case *ast.Quote:
		fmt.Printf("%s<%s>%s</%s>\n", indent, n.Kind(), n.Quote, n.Kind())
		return
	}

	fmt.Printf("%s<%s>\n", indent, node.Kind())
	children := ast.Children(node)
	for i := range children {
		printIndentedTree(children[i], indentationLevel+1)
	}
	fmt.Printf("%s</%s>\n", indent, node.Kind())
}

func main() {
	input := `| ~ fn_a : {<yes, no> -> t} = $(| fn_b : t = "Hello world!"; fn_b.fn_c)`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
