package lexer

import (
	"fmt"
)

// Token represents a classified and located lexical unit
type Token struct {
	tt      TokenType
	payload []byte

	offset int
}

// NewToken creates a lexical unit. The payload is copied and only kept for
// tags and quotes.
func NewToken(tt TokenType, payload []byte, offset int) Token {
	tok := Token{
		tt:     tt,
		offset: offset,
	}
	if tt.HasPayload() {
		tok.payload = append([]byte{}, payload...)
	}
	return tok
}

// Type returns the class of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the byte offset of the first byte of the lexical unit
func (t Token) Pos() int {
	return t.offset
}

// Text returns the payload of a tag or a quote as a string
func (t Token) Text() string {
	return string(t.payload)
}

// Bytes returns a copy of the payload of a tag or a quote
func (t Token) Bytes() []byte {
	if t.payload == nil {
		return nil
	}
	return append([]byte{}, t.payload...)
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	if t.tt.HasPayload() {
		return fmt.Sprintf("(:%v %q @%d)", t.tt, t.payload, t.offset)
	}
	return fmt.Sprintf("(:%v @%d)", t.tt, t.offset)
}
