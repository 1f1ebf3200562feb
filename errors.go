package cfg

import "fmt"

// LexError describes malformed source text found during tokenization: a bad
// encoding, an unterminated string, a malformed number, or an unrecognized
// character. It aborts the Tokenize call that raised it.
type LexError struct {
	msg string
}

func (e *LexError) Error() string { return e.msg }

func lexErrorf(format string, args ...any) *LexError {
	return &LexError{msg: fmt.Sprintf(format, args...)}
}

// ParseError describes a grammar violation found while parsing tokens: an
// unexpected token, a missing closing delimiter, an array element kind
// mismatch, a duplicate name, or a premature end of the stream. It aborts the
// parse call that raised it.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}
