package cfg

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// numberType is the scalar type a numeric literal resolves to, either
// inferred from its shape or forced by a trailing suffix letter.
type numberType int

const (
	numberInteger numberType = iota
	numberUnsigned
	numberFloat
)

// TokenStream is an ordered, front-poppable queue of tokens produced by
// Tokenize. Consumption is strictly left to right; a consumed token cannot
// be revisited. Peek and PeekTo provide bounded lookahead.
type TokenStream struct {
	tokens []Token
	pos    int
}

// Len returns the number of tokens remaining in the stream.
func (s *TokenStream) Len() int {
	return len(s.tokens) - s.pos
}

// IsEmpty reports whether the stream has no tokens remaining.
func (s *TokenStream) IsEmpty() bool {
	return s.pos >= len(s.tokens)
}

// Pop removes and returns the front token. The second return value is false
// if the stream is empty.
func (s *TokenStream) Pop() (Token, bool) {
	if s.IsEmpty() {
		return Token{}, false
	}

	tk := s.tokens[s.pos]
	s.pos++
	return tk, true
}

// Peek returns the front token without consuming it.
func (s *TokenStream) Peek() (Token, bool) {
	if s.IsEmpty() {
		return Token{}, false
	}

	return s.tokens[s.pos], true
}

// PeekTo returns up to count tokens from the front of the stream without
// consuming them.
func (s *TokenStream) PeekTo(count int) []Token {
	if count > s.Len() {
		count = s.Len()
	}

	return s.tokens[s.pos : s.pos+count]
}

// Tokenize scans src and returns its token stream. Whitespace is skipped and
// '#' line comments are discarded. Source text containing multi-byte
// characters is rejected up front; the scanner is byte-wise. Any failure
// aborts the whole call, no partial stream is returned.
func Tokenize(src string) (*TokenStream, error) {
	if utf8.RuneCountInString(src) != len(src) {
		return nil, lexErrorf("unable to tokenize source containing multi-byte characters")
	}

	var (
		tokens []Token
		n      = len(src)
		i      = 0
	)

	push := func(t TokenType) {
		tokens = append(tokens, Token{Type: t})
	}

	for i < n {
		c := src[i]

		if isSpace(c) {
			i++
			continue
		}

		if c == CommentChar {
			// Discard up to and including the next line terminator.
			if e := strings.IndexByte(src[i+1:], '\n'); e >= 0 {
				i += e + 2
			} else {
				i = n
			}
			continue
		}

		// A numeric literal begins at a digit, or at '.' immediately
		// followed by a digit.
		numDot := c == '.' && i+1 < n && isDigit(src[i+1])
		switch {
		case numDot || isDigit(c):
			tk, end, err := scanNumber(src, i, numDot)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tk)
			i = end
			continue

		case isAlpha(c) || c == '_':
			end := i + 1
			for end < n && (isAlphaNum(src[end]) || src[end] == '_') {
				end++
			}
			tokens = append(tokens, Token{Type: TokenIdentifier, Text: src[i:end]})
			i = end
			continue

		case c == '"':
			e := strings.IndexByte(src[i+1:], '"')
			if e < 0 {
				return nil, lexErrorf("string has no ending quote")
			}
			end := i + 1 + e
			val := src[i+1 : end]

			// Adjacent string literals merge into the previously
			// emitted token.
			if last := len(tokens) - 1; last >= 0 && tokens[last].Type == TokenString {
				tokens[last].Text += val
			} else {
				tokens = append(tokens, Token{Type: TokenString, Text: val})
			}
			i = end + 1
			continue

		case c == '=':
			push(TokenEquals)
		case c == ',':
			push(TokenSeparator)
		case c == '+':
			push(TokenAdd)
		case c == '-':
			push(TokenSubtract)
		case c == '*':
			push(TokenMultiply)
		case c == '/':
			push(TokenDivide)
		case c == '%':
			push(TokenModulo)
		case c == '[':
			push(TokenOpenBracket)
		case c == ']':
			push(TokenCloseBracket)
		case c == '{':
			push(TokenOpenBrace)
		case c == '}':
			push(TokenCloseBrace)
		case c == '(':
			push(TokenOpenParen)
		case c == ')':
			push(TokenCloseParen)
		default:
			return nil, lexErrorf("unrecognized token: %c", c)
		}

		i++
	}

	return &TokenStream{tokens: tokens}, nil
}

// scanNumber scans the numeric literal starting at src[start] and returns
// its token along with the position just past it. numDot marks a literal
// that begins with a leading decimal point, which is read as if it were
// written with a zero in front ('.5' is '0.5').
func scanNumber(src string, start int, numDot bool) (Token, int, error) {
	var (
		n       = len(src)
		hasDot  = numDot
		end     = start + 1
		numType = numberInteger
		forced  = false
	)

	for end < n {
		c := src[end]

		if c == '.' {
			if hasDot {
				return Token{}, 0, lexErrorf("number has multiple decimal points")
			}
			hasDot = true
			end++
			continue
		}

		if !isDigit(c) {
			switch c {
			case 'i', 'I':
				numType, forced = numberInteger, true
			case 'u', 'U':
				numType, forced = numberUnsigned, true
			case 'f', 'F':
				numType, forced = numberFloat, true
			}
			break
		}

		end++
	}

	if !forced && hasDot {
		numType = numberFloat
	}

	text := src[start:end]
	if numDot {
		text = "0" + text
	}

	after := end
	if forced {
		// Skip the suffix letter.
		after++
	}

	switch numType {
	case numberInteger:
		// A suffix can force integer onto dotted text; the magnitude is
		// then read as a float and truncated toward zero.
		if hasDot {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return Token{}, 0, lexErrorf("failed parsing float %q: %v", text, err)
			}
			return Token{Type: TokenInteger, Int: int64(f)}, after, nil
		}

		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, 0, lexErrorf("failed parsing integer %q: %v", text, err)
		}
		return Token{Type: TokenInteger, Int: v}, after, nil

	case numberUnsigned:
		if hasDot {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return Token{}, 0, lexErrorf("failed parsing float %q: %v", text, err)
			}
			return Token{Type: TokenUnsigned, Uint: uint64(f)}, after, nil
		}

		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return Token{}, 0, lexErrorf("failed parsing unsigned integer %q: %v", text, err)
		}
		return Token{Type: TokenUnsigned, Uint: v}, after, nil

	default:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, 0, lexErrorf("failed parsing float %q: %v", text, err)
		}
		return Token{Type: TokenFloat, Float: f}, after, nil
	}
}

// Helper functions for character classification.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
