package cfg

import "fmt"

// CommentChar starts a line comment in cfg source text.
const CommentChar = '#'

// TokenType represents the type of a lexical token in cfg source text.
type TokenType int

const (
	// Value-carrying tokens.
	TokenIdentifier TokenType = iota
	TokenString
	TokenInteger
	TokenUnsigned
	TokenFloat

	// Structural tokens.
	TokenEquals       // =
	TokenSeparator    // ,
	TokenOpenBracket  // [
	TokenCloseBracket // ]
	TokenOpenBrace    // {
	TokenCloseBrace   // }
	TokenOpenParen    // (
	TokenCloseParen   // )

	// Arithmetic operator tokens. Recognized by the tokenizer but never
	// consumed by the value grammar; reserved.
	TokenAdd      // +
	TokenSubtract // -
	TokenMultiply // *
	TokenDivide   // /
	TokenModulo   // %
)

// Token is a lexical token produced by Tokenize. Type indicates which of the
// payload fields has meaning: Text for identifiers and strings, Int for
// integers, Uint for unsigned integers, Float for floats. Tokens are
// immutable once produced.
type Token struct {
	Type  TokenType
	Text  string
	Int   int64
	Uint  uint64
	Float float64
}

// String returns the token rendered as cfg source text.
func (t Token) String() string {
	switch t.Type {
	case TokenIdentifier:
		return t.Text
	case TokenString:
		return fmt.Sprintf("%q", t.Text)
	case TokenInteger:
		return fmt.Sprintf("%d", t.Int)
	case TokenUnsigned:
		return fmt.Sprintf("%d", t.Uint)
	case TokenFloat:
		return fmt.Sprintf("%v", t.Float)
	case TokenEquals:
		return "="
	case TokenSeparator:
		return ","
	case TokenOpenBracket:
		return "["
	case TokenCloseBracket:
		return "]"
	case TokenOpenBrace:
		return "{"
	case TokenCloseBrace:
		return "}"
	case TokenOpenParen:
		return "("
	case TokenCloseParen:
		return ")"
	case TokenAdd:
		return "+"
	case TokenSubtract:
		return "-"
	case TokenMultiply:
		return "*"
	case TokenDivide:
		return "/"
	case TokenModulo:
		return "%"
	default:
		return fmt.Sprintf("Unknown(%d)", t.Type)
	}
}
