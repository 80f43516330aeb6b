package lexer

// TokenType represents all the possible classes of a lexical unit
type TokenType uint8

// List of classes of lexical units
const (
	TokenInvalid    TokenType = iota // Anything that could not be lexed
	TokenDefine                      // Bar: "|"
	TokenIntoLazy                    // Arrow: "->"
	TokenTag                         // Letters, digits and underscore: [A-Za-z0-9_]+
	TokenQuote                       // Double quoted bytes: "..."
	TokenTypify                      // Colon: ":"
	TokenDynamic                     // Tilde: "~"
	TokenStatic                      // No spelling, only produced by custom token sources
	TokenAbstract                    // Dollar: "$"
	TokenEqual                       // Equal sign: "="
	TokenApply                       // Dot: "."
	TokenLeftParen                   // Open parenthesis: "("
	TokenRightParen                  // Close parenthesis: ")"
	TokenLeftBrace                   // Open curly bracket: "{"
	TokenRightBrace                  // Close curly bracket: "}"
	TokenLeftAngle                   // Less than: "<"
	TokenRightAngle                  // Greater than: ">"
	TokenComma                       // Comma: ","
	TokenSemicolon                   // Semicolon: ";"
	TokenSentinel                    // End of input
)

var tokenValues = map[byte]TokenType{
	'|': TokenDefine,
	'~': TokenDynamic,
	':': TokenTypify,
	'=': TokenEqual,
	'$': TokenAbstract,
	'.': TokenApply,
	'(': TokenLeftParen,
	')': TokenRightParen,
	'{': TokenLeftBrace,
	'}': TokenRightBrace,
	'<': TokenLeftAngle,
	'>': TokenRightAngle,
	',': TokenComma,
	';': TokenSemicolon,
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "Invalid",
	TokenDefine:     "Define",
	TokenIntoLazy:   "IntoLazy",
	TokenTag:        "Tag",
	TokenQuote:      "Quote",
	TokenTypify:     "Typify",
	TokenDynamic:    "Dynamic",
	TokenStatic:     "Static",
	TokenAbstract:   "Abstract",
	TokenEqual:      "Equal",
	TokenApply:      "Apply",
	TokenLeftParen:  "LeftParen",
	TokenRightParen: "RightParen",
	TokenLeftBrace:  "LeftBrace",
	TokenRightBrace: "RightBrace",
	TokenLeftAngle:  "LeftAngle",
	TokenRightAngle: "RightAngle",
	TokenComma:      "Comma",
	TokenSemicolon:  "Semicolon",
	TokenSentinel:   "Sentinel",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// HasPayload returns true for the classes that carry the bytes they were
// lexed from.
func (tt TokenType) HasPayload() bool {
	return tt == TokenTag || tt == TokenQuote
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

func isTag(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	}
	return false
}

func isQuote(b byte) bool {
	return b == '"'
}

func isBackslash(b byte) bool {
	return b == '\\'
}

func isHyphen(b byte) bool {
	return b == '-'
}
