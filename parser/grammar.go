package parser

import (
	"github.com/xiam/lazy/ast"
	"github.com/xiam/lazy/lexer"
)

// Rules come in three shapes. A maybe rule reports whether its first token
// matched and never consumes anything otherwise. A try-maybe rule does the
// same, but once its first token matched any mismatch is an error. A try
// rule must match.

func required[T any](p *Parser, rule func(*Parser) (T, bool)) (T, error) {
	v, ok := rule(p)
	if !ok {
		return v, ErrInvalid
	}
	return v, nil
}

func tryRequired[T any](p *Parser, rule func(*Parser) (T, bool, error)) (T, error) {
	v, ok, err := rule(p)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, ErrInvalid
	}
	return v, nil
}

func expect(p *Parser, tt lexer.TokenType, what string) error {
	if !p.curr().Is(tt) {
		return &ExpectedError{What: what}
	}
	p.step()
	return nil
}

func maybeQuote(p *Parser) (*ast.Quote, bool) {
	tok := p.curr()
	if !tok.Is(lexer.TokenQuote) {
		return nil, false
	}
	p.step()
	return &ast.Quote{Quote: tok.Bytes()}, true
}

func maybeTag(p *Parser) (*ast.Tag, bool) {
	tok := p.curr()
	if !tok.Is(lexer.TokenTag) {
		return nil, false
	}
	p.step()
	return &ast.Tag{Tag: tok.Text()}, true
}

func parseExtent(p *Parser) ast.Extent {
	switch p.curr().Type() {
	case lexer.TokenDynamic:
		p.step()
		return ast.ExtentNonstatic
	case lexer.TokenStatic:
		p.step()
		return ast.ExtentNondynamic
	}
	return ast.ExtentUniversal
}

func tryMaybeAbstraction(p *Parser) (*ast.Abstraction, bool, error) {
	if !p.curr().Is(lexer.TokenAbstract) {
		return nil, false, nil
	}
	p.step()

	if err := expect(p, lexer.TokenLeftParen, "LeftParen in abstraction"); err != nil {
		return nil, true, err
	}

	sequence := []ast.Statement{}
	if !p.curr().Is(lexer.TokenRightParen) {
	loop:
		for {
			statement, err := tryParseStatement(p)
			if err != nil {
				return nil, true, err
			}
			sequence = append(sequence, statement)

			switch p.curr().Type() {
			case lexer.TokenRightParen:
				break loop
			case lexer.TokenSemicolon:
				p.step()
			default:
				return nil, true, &ExpectedError{What: "RightParen or Semicolon following statement in abstraction"}
			}
		}
	}
	p.step()

	return &ast.Abstraction{Sequence: sequence}, true, nil
}

func tryMaybeExponentialType(p *Parser) (*ast.ExponentialType, bool, error) {
	if !p.curr().Is(lexer.TokenLeftBrace) {
		return nil, false, nil
	}
	p.step()

	domain, err := tryParseExpr(p)
	if err != nil {
		return nil, true, err
	}
	if err := expect(p, lexer.TokenIntoLazy, "IntoLazy in exponential"); err != nil {
		return nil, true, err
	}

	codomain, err := tryParseExpr(p)
	if err != nil {
		return nil, true, err
	}
	if err := expect(p, lexer.TokenRightBrace, "RightBrace in exponential"); err != nil {
		return nil, true, err
	}

	return &ast.ExponentialType{Domain: domain, Codomain: codomain}, true, nil
}

func tryMaybeOrdinalType(p *Parser) (*ast.OrdinalType, bool, error) {
	if !p.curr().Is(lexer.TokenLeftAngle) {
		return nil, false, nil
	}
	p.step()

	labels := []*ast.Tag{}
	if !p.curr().Is(lexer.TokenRightAngle) {
	loop:
		for {
			tag, err := required(p, maybeTag)
			if err != nil {
				return nil, true, err
			}
			labels = append(labels, tag)

			switch p.curr().Type() {
			case lexer.TokenRightAngle:
				break loop
			case lexer.TokenComma:
				p.step()
			default:
				return nil, true, &ExpectedError{What: "RightAngle or Comma following tag in ordinal"}
			}
		}
	}
	p.step()

	return &ast.OrdinalType{Labels: labels}, true, nil
}

func tryMaybeClosedExpr(p *Parser) (ast.ClosedExpr, bool, error) {
	if quote, ok := maybeQuote(p); ok {
		return quote, true, nil
	}
	if tag, ok := maybeTag(p); ok {
		return tag, true, nil
	}
	if abstraction, ok, err := tryMaybeAbstraction(p); ok {
		return abstraction, true, err
	}
	if exponential, ok, err := tryMaybeExponentialType(p); ok {
		return exponential, true, err
	}
	if ordinal, ok, err := tryMaybeOrdinalType(p); ok {
		return ordinal, true, err
	}
	return nil, false, nil
}

func tryParseExpr(p *Parser) (ast.Expr, error) {
	operator, err := tryRequired(p, tryMaybeClosedExpr)
	if err != nil {
		return nil, err
	}

	if !p.curr().Is(lexer.TokenApply) {
		return operator, nil
	}
	p.step()

	argument, err := tryRequired(p, tryMaybeClosedExpr)
	if err != nil {
		return nil, err
	}
	return &ast.Application{Operator: operator, Argument: argument}, nil
}

func tryMaybeDefinition(p *Parser) (*ast.Definition, bool, error) {
	if !p.curr().Is(lexer.TokenDefine) {
		return nil, false, nil
	}
	p.step()

	extent := parseExtent(p)

	tag, err := required(p, maybeTag)
	if err != nil {
		return nil, true, err
	}

	if err := expect(p, lexer.TokenTypify, "Typify in definition"); err != nil {
		return nil, true, err
	}
	typ, err := tryParseExpr(p)
	if err != nil {
		return nil, true, err
	}

	if err := expect(p, lexer.TokenEqual, "Equal in definition"); err != nil {
		return nil, true, err
	}
	value, err := tryParseExpr(p)
	if err != nil {
		return nil, true, err
	}

	return &ast.Definition{
		Extent: extent,
		Tag:    tag,
		Type:   typ,
		Value:  value,
	}, true, nil
}

func tryParseStatement(p *Parser) (ast.Statement, error) {
	if definition, ok, err := tryMaybeDefinition(p); ok {
		if err != nil {
			return nil, err
		}
		return definition, nil
	}

	expr, err := tryParseExpr(p)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStatement{X: expr}, nil
}

func tryParseFile(p *Parser) (*ast.File, error) {
	definitions := []*ast.Definition{}
	for {
		if p.curr().Is(lexer.TokenSentinel) {
			break
		}

		definition, ok, err := tryMaybeDefinition(p)
		if !ok {
			return nil, &ExpectedError{What: "Definition or Sentinel in file"}
		}
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}
	return &ast.File{Definitions: definitions}, nil
}
