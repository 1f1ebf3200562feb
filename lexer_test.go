package cfg

import "testing"

func TestTokenize(t *testing.T) {
	f := func(name, input string, errorExpected bool) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			_, err := Tokenize(input)
			if errorExpected && err == nil {
				t.Errorf("expected error but got none")
			}
			if !errorExpected && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	f("empty_input", "", false)
	f("whitespace_only", "  \t \n \r ", false)
	f("comment_only", "# just a comment", false)
	f("comment_no_newline", "# comment at eof", false)

	// Numbers.
	f("integer", "500", false)
	f("float", "0.67", false)
	f("leading_dot_float", ".5", false)
	f("forced_integer", "400i", false)
	f("forced_integer_uppercase", "400I", false)
	f("forced_unsigned", "300u", false)
	f("forced_float", "200f", false)
	f("dotted_forced_integer", "3.9i", false)
	f("second_decimal_point", "1.2.3", true)
	f("integer_overflow", "99999999999999999999", true)

	// Strings.
	f("string", `"hello"`, false)
	f("empty_string", `""`, false)
	f("adjacent_strings", `"Ban" "ana"`, false)
	f("unterminated_string", `"hello`, true)

	// Identifiers and structure.
	f("identifier", "some_name1", false)
	f("structural_run", "= , [ ] { } ( )", false)
	f("arithmetic_run", "+ - * / %", false)
	f("key_line", `speed = 5`, false)

	// Anything outside ASCII is rejected before scanning starts.
	f("multi_byte_source", `name = "héllo"`, true)
	f("multi_byte_identifier", "naïve = 1", true)

	// Bytes no token starts with.
	f("unrecognized_at", "@", true)
	f("unrecognized_semicolon", "a = 1;", true)
}

func TestTokenizeScalars(t *testing.T) {
	f := func(name, input string, expected Token) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			ts, err := Tokenize(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ts.Len() != 1 {
				t.Fatalf("expected a single token, got %d", ts.Len())
			}

			tk, _ := ts.Pop()
			if tk != expected {
				t.Errorf("expected %+v, got %+v", expected, tk)
			}
		})
	}

	f("integer", "500", Token{Type: TokenInteger, Int: 500})
	f("float", "0.67", Token{Type: TokenFloat, Float: 0.67})
	f("leading_dot_is_zero_dot", ".5", Token{Type: TokenFloat, Float: 0.5})
	f("forced_integer", "400i", Token{Type: TokenInteger, Int: 400})
	f("forced_integer_uppercase", "400I", Token{Type: TokenInteger, Int: 400})
	f("forced_unsigned", "300u", Token{Type: TokenUnsigned, Uint: 300})
	f("forced_unsigned_uppercase", "300U", Token{Type: TokenUnsigned, Uint: 300})
	f("forced_float", "200f", Token{Type: TokenFloat, Float: 200})
	f("forced_float_uppercase", "200F", Token{Type: TokenFloat, Float: 200})

	// A suffix forcing an integer kind onto dotted text truncates toward
	// zero.
	f("dotted_forced_integer", "3.9i", Token{Type: TokenInteger, Int: 3})
	f("dotted_forced_unsigned", "1.5u", Token{Type: TokenUnsigned, Uint: 1})

	f("identifier", "foo_bar1", Token{Type: TokenIdentifier, Text: "foo_bar1"})
	f("string", `"hello world"`, Token{Type: TokenString, Text: "hello world"})

	// Adjacent string literals merge into one token at lex time.
	f("adjacent_strings", `"Ban" "ana"`, Token{Type: TokenString, Text: "Banana"})
	f("adjacent_strings_across_lines", "\"Ban\"\n\"ana\"", Token{Type: TokenString, Text: "Banana"})
}

func TestTokenizeSequence(t *testing.T) {
	f := func(name, input string, expected []TokenType) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			ts, err := Tokenize(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ts.Len() != len(expected) {
				t.Fatalf("expected %d tokens, got %d", len(expected), ts.Len())
			}

			for i, want := range expected {
				tk, _ := ts.Pop()
				if tk.Type != want {
					t.Errorf("token %d: expected type %d, got %d (%s)", i, want, tk.Type, tk)
				}
			}
		})
	}

	f("key_line", `speed = 5`,
		[]TokenType{TokenIdentifier, TokenEquals, TokenInteger})
	f("section_header", "[Size]",
		[]TokenType{TokenOpenBracket, TokenIdentifier, TokenCloseBracket})
	f("array", "[1, 2]",
		[]TokenType{TokenOpenBracket, TokenInteger, TokenSeparator, TokenInteger, TokenCloseBracket})
	f("tuple", `("x", 4f)`,
		[]TokenType{TokenOpenParen, TokenString, TokenSeparator, TokenFloat, TokenCloseParen})
	f("table", "{a = 1}",
		[]TokenType{TokenOpenBrace, TokenIdentifier, TokenEquals, TokenInteger, TokenCloseBrace})
	f("arithmetic", "+ - * / %",
		[]TokenType{TokenAdd, TokenSubtract, TokenMultiply, TokenDivide, TokenModulo})
	f("comment_stripped", "a = 1 # one\nb = 2",
		[]TokenType{TokenIdentifier, TokenEquals, TokenInteger, TokenIdentifier, TokenEquals, TokenInteger})
	f("comment_only", "# nothing here", nil)
	f("number_then_identifier", "12abc",
		[]TokenType{TokenInteger, TokenIdentifier})
}

func TestTokenStream(t *testing.T) {
	ts, err := Tokenize("a = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ts.Len() != 3 || ts.IsEmpty() {
		t.Fatalf("expected 3 tokens, got %d", ts.Len())
	}

	// Peeking does not consume.
	pk, ok := ts.Peek()
	if !ok || pk.Type != TokenIdentifier {
		t.Errorf("expected identifier from Peek, got %s", pk)
	}
	if ts.Len() != 3 {
		t.Errorf("Peek consumed a token")
	}

	peeks := ts.PeekTo(5)
	if len(peeks) != 3 {
		t.Errorf("expected PeekTo to cap at 3 tokens, got %d", len(peeks))
	}
	if ts.Len() != 3 {
		t.Errorf("PeekTo consumed tokens")
	}

	for i := 0; i < 3; i++ {
		if _, ok := ts.Pop(); !ok {
			t.Fatalf("Pop %d failed", i)
		}
	}

	if !ts.IsEmpty() || ts.Len() != 0 {
		t.Errorf("expected an exhausted stream")
	}
	if _, ok := ts.Pop(); ok {
		t.Errorf("Pop on an empty stream reported ok")
	}
	if _, ok := ts.Peek(); ok {
		t.Errorf("Peek on an empty stream reported ok")
	}
	if peeks := ts.PeekTo(2); len(peeks) != 0 {
		t.Errorf("PeekTo on an empty stream returned %d tokens", len(peeks))
	}
}

func TestTokenString(t *testing.T) {
	f := func(name, input, expected string) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			ts, err := Tokenize(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tk, _ := ts.Pop()
			if got := tk.String(); got != expected {
				t.Errorf("expected %q, got %q", expected, got)
			}
		})
	}

	f("identifier", "abc", "abc")
	f("string", `"abc"`, `"abc"`)
	f("integer", "42", "42")
	f("unsigned", "42u", "42")
	f("float", "4.5", "4.5")
	f("equals", "=", "=")
	f("separator", ",", ",")
	f("open_bracket", "[", "[")
	f("modulo", "%", "%")
}
