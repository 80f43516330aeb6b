package lexer

import (
	"errors"
	"math"
)

// ErrInputTooLarge is returned when the input is so large that the cursor
// could overflow while scanning it.
var ErrInputTooLarge = errors.New("input too large")

type lexState func(*Lexer) lexState

// New initializes a Lexer over the given input. The input is not copied and
// must not be modified while the lexer is in use.
func New(in []byte) (*Lexer, error) {
	if len(in) == math.MaxInt {
		return nil, ErrInputTooLarge
	}
	return &Lexer{
		in: in,
	}, nil
}

// Lexer represents a lexical analyzer that produces one token at a time, on
// demand.
type Lexer struct {
	in []byte

	tok Token

	start  int
	offset int
}

// Next scans and returns the next token. Once the end of input is reached
// every call returns a TokenSentinel located at the end of input.
func (lx *Lexer) Next() Token {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.tok
}

// Offset returns the position of the byte the next call to Next will start
// scanning at.
func (lx *Lexer) Offset() int {
	return lx.offset
}

func (lx *Lexer) emit(tt TokenType) {
	lx.emitPayload(tt, lx.in[lx.start:lx.offset])
}

func (lx *Lexer) emitPayload(tt TokenType, payload []byte) {
	lx.tok = NewToken(tt, payload, lx.start)
}

func (lx *Lexer) peek() (byte, bool) {
	if lx.offset >= len(lx.in) {
		return 0, false
	}
	return lx.in[lx.offset], true
}

func (lx *Lexer) next() (byte, bool) {
	b, ok := lx.peek()
	if ok {
		lx.offset++
	}
	return b, ok
}

func lexDefaultState(lx *Lexer) lexState {
	lx.start = lx.offset

	b, ok := lx.next()
	if !ok {
		return lexEmit(TokenSentinel)
	}

	switch {
	case isWhitespace(b):
		return lexDefaultState
	case isTag(b):
		return lexTag
	case isQuote(b):
		return lexQuote
	case isHyphen(b):
		return lexHyphen
	}

	if tt, ok := tokenValues[b]; ok {
		return lexEmit(tt)
	}
	return lexEmit(TokenInvalid)
}

func lexTag(lx *Lexer) lexState {
	for {
		b, ok := lx.peek()
		if !ok || !isTag(b) {
			break
		}
		lx.next()
	}
	lx.emit(TokenTag)
	return nil
}

func lexQuote(lx *Lexer) lexState {
	for {
		b, ok := lx.next()
		if !ok {
			return lexEmit(TokenInvalid)
		}

		switch {
		case isQuote(b):
			lx.emitPayload(TokenQuote, lx.in[lx.start+1:lx.offset-1])
			return nil
		case isBackslash(b):
			// the escaped byte is kept verbatim
			if _, ok := lx.next(); !ok {
				return lexEmit(TokenInvalid)
			}
		}
	}
}

func lexHyphen(lx *Lexer) lexState {
	if b, ok := lx.peek(); ok && b == '>' {
		lx.next()
		return lexEmit(TokenIntoLazy)
	}
	return lexEmit(TokenInvalid)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, up
// to and including the sentinel.
func Tokenize(in []byte) ([]Token, error) {
	lx, err := New(in)
	if err != nil {
		return nil, err
	}

	tokens := []Token{}
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Is(TokenSentinel) {
			return tokens, nil
		}
	}
}
