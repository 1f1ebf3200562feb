package cfg

import "strings"

// ParseValue consumes exactly the tokens that make up one value from the
// front of the stream and returns it, leaving the stream positioned
// immediately after. A value is a scalar, a homogeneous array of scalars, a
// tuple, or a table.
func ParseValue(ts *TokenStream) (Value, error) {
	tk, ok := ts.Pop()
	if !ok {
		return Value{}, parseErrorf("trying to parse a value from an empty token stream")
	}

	switch tk.Type {
	case TokenString:
		return StringValue(tk.Text), nil
	case TokenInteger:
		return IntegerValue(tk.Int), nil
	case TokenUnsigned:
		return UnsignedValue(tk.Uint), nil
	case TokenFloat:
		return FloatValue(tk.Float), nil
	case TokenOpenBracket:
		return parseArray(ts)
	case TokenOpenParen:
		return parseTuple(ts)
	case TokenOpenBrace:
		return parseTable(ts)
	default:
		return Value{}, parseErrorf("unexpected token %s when parsing value", tk)
	}
}

// ParseKey parses an "identifier = value" sequence from the front of the
// stream. It fails fast when fewer than three tokens remain, the minimum a
// key can occupy. The identifier becomes the key's name after sanitization;
// whether the result is valid is the caller's check.
func ParseKey(ts *TokenStream) (Key, error) {
	if ts.Len() < 3 {
		return Key{}, parseErrorf("not enough tokens left to parse a key")
	}

	id, _ := ts.Pop()
	if id.Type != TokenIdentifier {
		return Key{}, parseErrorf("unexpected token %s; expected an identifier", id)
	}

	eq, _ := ts.Pop()
	if eq.Type != TokenEquals {
		return Key{}, parseErrorf("unexpected token %s; expected '='", eq)
	}

	val, err := ParseValue(ts)
	if err != nil {
		return Key{}, parseErrorf("failed parsing value of key %q: %v", id.Text, err)
	}

	return NewKey(id.Text, val), nil
}

// scalarKindName names a scalar token type in error messages.
func scalarKindName(t TokenType) string {
	switch t {
	case TokenString:
		return "string"
	case TokenInteger:
		return "integer"
	case TokenUnsigned:
		return "unsigned"
	default:
		return "float"
	}
}

// parseArray parses a homogeneous array after the opening bracket has been
// consumed. The first element fixes the array's scalar kind; every further
// element must lex to that exact token type, no widening. An immediate close
// bracket yields an empty string array.
func parseArray(ts *TokenStream) (Value, error) {
	first, ok := ts.Pop()
	if !ok {
		return Value{}, parseErrorf("unexpected end of tokens: incomplete array")
	}

	if first.Type == TokenCloseBracket {
		return StringArrayValue([]string{}), nil
	}

	switch first.Type {
	case TokenString, TokenInteger, TokenUnsigned, TokenFloat:
	default:
		return Value{}, parseErrorf("unexpected token %s; expected a scalar or close bracket", first)
	}

	var (
		elemType = first.Type
		elems    = []Token{first}
		ready    = false
		closed   = false
	)

	for !ts.IsEmpty() {
		tk, _ := ts.Pop()

		switch tk.Type {
		case elemType:
			if !ready {
				return Value{}, parseErrorf("unexpected token %s; expected separator or close bracket", tk)
			}
			elems = append(elems, tk)
			ready = false

		case TokenSeparator:
			if ready {
				return Value{}, parseErrorf("unexpected separator; expected %s element", scalarKindName(elemType))
			}
			ready = true

		case TokenCloseBracket:
			if ready {
				return Value{}, parseErrorf("trailing separator in %s array; expected another element", scalarKindName(elemType))
			}
			closed = true

		case TokenString, TokenInteger, TokenUnsigned, TokenFloat:
			return Value{}, parseErrorf("mismatched element in %s array: got %s %s",
				scalarKindName(elemType), scalarKindName(tk.Type), tk)

		default:
			return Value{}, parseErrorf("unexpected token %s in %s array", tk, scalarKindName(elemType))
		}

		if closed {
			break
		}
	}

	if !closed {
		return Value{}, parseErrorf("%s array missing closing square bracket", scalarKindName(elemType))
	}

	switch elemType {
	case TokenString:
		out := make([]string, len(elems))
		for i, e := range elems {
			out[i] = e.Text
		}
		return StringArrayValue(out), nil
	case TokenInteger:
		out := make([]int64, len(elems))
		for i, e := range elems {
			out[i] = e.Int
		}
		return IntegerArrayValue(out), nil
	case TokenUnsigned:
		out := make([]uint64, len(elems))
		for i, e := range elems {
			out[i] = e.Uint
		}
		return UnsignedArrayValue(out), nil
	default:
		out := make([]float64, len(elems))
		for i, e := range elems {
			out[i] = e.Float
		}
		return FloatArrayValue(out), nil
	}
}

// parseTuple parses a tuple after the opening parenthesis has been consumed.
// Elements may be values of any kind, recursively.
func parseTuple(ts *TokenStream) (Value, error) {
	var (
		result []Value
		ready  = true
		closed = false
	)

	for !ts.IsEmpty() {
		tk, _ := ts.Peek()

		if tk.Type == TokenCloseParen {
			if ready && len(result) > 0 {
				return Value{}, parseErrorf("trailing separator in tuple; expected another value")
			}
			ts.Pop()
			closed = true
			break
		}

		if !ready {
			if tk.Type == TokenSeparator {
				ts.Pop()
				ready = true
				continue
			}
			return Value{}, parseErrorf("unexpected token %s in tuple; expected comma", tk)
		}

		val, err := ParseValue(ts)
		if err != nil {
			return Value{}, err
		}

		result = append(result, val)
		ready = false
	}

	if !closed {
		return Value{}, parseErrorf("tuple missing closing parenthesis")
	}

	return TupleValue(result), nil
}

// parseTable parses a table after the opening brace has been consumed. Keys
// are checked for validity and for case-insensitive uniqueness as they are
// collected.
func parseTable(ts *TokenStream) (Value, error) {
	var (
		result []Key
		ready  = true
		closed = false
	)

	for !ts.IsEmpty() {
		tk, _ := ts.Peek()

		if tk.Type == TokenCloseBrace {
			if ready && len(result) > 0 {
				return Value{}, parseErrorf("trailing separator in table; expected another key")
			}
			ts.Pop()
			closed = true
			break
		}

		if !ready {
			if tk.Type == TokenSeparator {
				ts.Pop()
				ready = true
				continue
			}
			return Value{}, parseErrorf("unexpected token %s in table; expected comma", tk)
		}

		key, err := ParseKey(ts)
		if err != nil {
			return Value{}, err
		}

		if !key.IsValid() {
			return Value{}, parseErrorf("parsed key %q is invalid in table", key.Name())
		}

		for _, k := range result {
			if strings.EqualFold(k.Name(), key.Name()) {
				return Value{}, parseErrorf("a key with the name %q already exists in table", k.Name())
			}
		}

		result = append(result, key)
		ready = false
	}

	if !closed {
		return Value{}, parseErrorf("table missing closing brace")
	}

	return TableValue(result), nil
}
