package parser

import (
	"log"

	"github.com/xiam/lazy/ast"
	"github.com/xiam/lazy/lexer"
)

// TokenSource produces tokens on demand. It must keep returning a sentinel
// once the end of input is reached.
type TokenSource interface {
	Next() lexer.Token
}

// Options modifies the behavior of a parser
type Options struct {
	// Trace receives one line per consumed token when not nil.
	Trace *log.Logger
}

// Parser holds a token source and exactly one buffered token
type Parser struct {
	lx  TokenSource
	tok lexer.Token

	opts Options
}

// New creates a parser and buffers the first token of lx
func New(lx TokenSource) *Parser {
	return &Parser{
		lx:  lx,
		tok: lx.Next(),
	}
}

// SetOptions replaces the options of the parser
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

// Token returns the token the parser is looking at. After a failed parse
// this is the offending token.
func (p *Parser) Token() lexer.Token {
	return p.tok
}

// ParseFile parses a sequence of definitions up to the end of input
func (p *Parser) ParseFile() (*ast.File, error) {
	file, err := tryParseFile(p)
	if err != nil {
		return nil, &SyntaxError{Err: err, Token: p.tok}
	}
	return file, nil
}

// ParseExpr parses a single expression that must span the whole input
func (p *Parser) ParseExpr() (ast.Expr, error) {
	expr, err := tryParseExpr(p)
	if err == nil && !p.curr().Is(lexer.TokenSentinel) {
		err = &ExpectedError{What: "Sentinel following expression"}
	}
	if err != nil {
		return nil, &SyntaxError{Err: err, Token: p.tok}
	}
	return expr, nil
}

func (p *Parser) curr() lexer.Token {
	return p.tok
}

func (p *Parser) step() {
	if p.opts.Trace != nil {
		p.opts.Trace.Printf("consume %v", p.tok)
	}
	p.tok = p.lx.Next()
}

// Parse parses a whole file held in memory
func Parse(in []byte) (*ast.File, error) {
	lx, err := lexer.New(in)
	if err != nil {
		return nil, err
	}
	return New(lx).ParseFile()
}

// ParseExpr parses a single expression held in memory
func ParseExpr(in []byte) (ast.Expr, error) {
	lx, err := lexer.New(in)
	if err != nil {
		return nil, err
	}
	return New(lx).ParseExpr()
}
