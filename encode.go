package cfg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Marshal returns the cfg text encoding of the document.
//
// Scalar kinds survive a render/re-parse round trip: unsigned integers carry
// a 'u' suffix and floats always keep a decimal point, in fixed notation.
// Comments are not represented in a Document and are therefore lost.
//
// The format has no signed numeric literals, so a value constructed
// programmatically with a negative magnitude renders with a leading minus
// sign that Tokenize will not accept back. Non-finite floats cannot be
// rendered at all and make Marshal fail.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// An Encoder writes cfg documents to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the cfg encoding of the document to the stream, followed by
// a newline. See the documentation for Marshal for details.
func (enc *Encoder) Encode(doc *Document) error {
	s := &state{w: enc.w}
	s.writeDocument(doc)
	if s.err == nil {
		s.write("\n")
	}

	return s.err
}

// state holds the encoding state for a single Encode call, so an error stops
// all further writes without threading it through every call site.
type state struct {
	w   io.Writer
	err error
}

// write writes a string to the output, stopping once an error has occurred.
func (s *state) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *state) writeDocument(d *Document) {
	for i, sect := range d.Sections() {
		if i > 0 {
			s.write("\n\n")
		}
		s.writeSection(sect)
	}
}

func (s *state) writeSection(sec *Section) {
	s.write("[")
	s.write(sec.Name())
	s.write("]")

	for _, k := range sec.Keys() {
		s.write("\n")
		s.writeKey(k, 0)
	}
}

// writeKey writes "name = value". The caller writes any indentation prefix;
// indent is the level nested containers in the value continue from.
func (s *state) writeKey(k Key, indent int) {
	s.write(k.Name())
	s.write(" = ")
	s.writeValue(k.Value, indent)
}

func (s *state) writeValue(v Value, indent int) {
	switch v.Kind() {
	case KindString:
		s.write("\"")
		s.write(v.str)
		s.write("\"")

	case KindInteger:
		s.write(strconv.FormatInt(v.num, 10))

	case KindUnsigned:
		s.write(strconv.FormatUint(v.unum, 10))
		s.write("u")

	case KindFloat:
		s.writeFloat(v.fnum)

	case KindStringArray:
		s.writeArray(indent, len(v.strs), func(i int) {
			s.write("\"")
			s.write(v.strs[i])
			s.write("\"")
		})

	case KindIntegerArray:
		s.writeArray(indent, len(v.ints), func(i int) {
			s.write(strconv.FormatInt(v.ints[i], 10))
		})

	case KindUnsignedArray:
		s.writeArray(indent, len(v.uints), func(i int) {
			s.write(strconv.FormatUint(v.uints[i], 10))
			s.write("u")
		})

	case KindFloatArray:
		s.writeArray(indent, len(v.floats), func(i int) {
			s.writeFloat(v.floats[i])
		})

	case KindTuple:
		if len(v.tuple) == 0 {
			s.write("()")
			return
		}

		s.write("(\n")
		for i, e := range v.tuple {
			if i > 0 {
				s.write(",\n")
			}
			s.write(tabs(indent + 1))
			s.writeValue(e, indent+1)
		}
		s.write("\n")
		s.write(tabs(indent))
		s.write(")")

	case KindTable:
		if len(v.table) == 0 {
			s.write("{}")
			return
		}

		s.write("{\n")
		for i, k := range v.table {
			if i > 0 {
				s.write(",\n")
			}
			s.write(tabs(indent + 1))
			s.writeKey(k, indent+1)
		}
		s.write("\n")
		s.write(tabs(indent))
		s.write("}")

	default:
		s.err = fmt.Errorf("cfg: cannot render value of unknown kind %d", v.Kind())
	}
}

// writeArray writes a homogeneous array, one element per line, no trailing
// comma so the output re-parses.
func (s *state) writeArray(indent, n int, elem func(i int)) {
	if n == 0 {
		s.write("[]")
		return
	}

	s.write("[\n")
	for i := 0; i < n; i++ {
		if i > 0 {
			s.write(",\n")
		}
		s.write(tabs(indent + 1))
		elem(i)
	}
	s.write("\n")
	s.write(tabs(indent))
	s.write("]")
}

// writeFloat renders a float in fixed notation with at least one decimal
// point, the only float shape the tokenizer reads back as a float.
func (s *state) writeFloat(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		s.err = fmt.Errorf("cfg: cannot render non-finite float %v", f)
		return
	}

	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	s.write(out)
}

func tabs(n int) string {
	return strings.Repeat("\t", n)
}

// render returns the text produced by fn, for the String methods below.
func render(fn func(s *state)) string {
	var b strings.Builder
	fn(&state{w: &b})
	return b.String()
}

// String returns the value rendered as cfg source text.
func (v Value) String() string {
	return render(func(s *state) { s.writeValue(v, 0) })
}

// String returns the key rendered as cfg source text.
func (k Key) String() string {
	return render(func(s *state) { s.writeKey(k, 0) })
}

// String returns the section rendered as cfg source text.
func (s *Section) String() string {
	return render(func(st *state) { st.writeSection(s) })
}

// String returns the document rendered as cfg source text.
func (d *Document) String() string {
	return render(func(st *state) { st.writeDocument(d) })
}
