package main

import (
	"fmt"
	"log"

	"github.com/xiam/lazy/lexer"
)

func main() {
	input := `
		| ~ fn_a : {<yes, no> -> t} = $(
			| fn_b : t = "Hello \"world\"";
			fn_b.fn_c
		)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v, offset: %d)\n\t-> %q\n\n", i, tok.Type(), tok.Pos(), tok.Text())
	}
}
