package main

import (
	"log"

	"github.com/xiam/lazy/ast"
	"github.com/xiam/lazy/parser"
)

func main() {
	input := `| ~ fn_a : {<yes, no> -> t} = $(| fn_b : t = "Hello world!"; fn_b.fn_c)`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
