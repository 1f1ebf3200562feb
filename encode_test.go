package cfg

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshalDocument(t *testing.T) {
	src := `
[Size]
width = 1920u # comments are dropped
height = 1080u

[Position]
x = 0.0
y = 0.0
monitor = "HDMI1"
`
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "[Size]\n" +
		"width = 1920u\n" +
		"height = 1080u\n" +
		"\n" +
		"[Position]\n" +
		"x = 0.0\n" +
		"y = 0.0\n" +
		"monitor = \"HDMI1\"\n"
	assert.Equal(t, expected, string(out))
}

func TestEncoder(t *testing.T) {
	doc := NewDocument([]*Section{
		NewSection("Main", []Key{NewKey("a", IntegerValue(1))}),
	})

	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(doc)
	assert.NoError(t, err)
	assert.Equal(t, "[Main]\na = 1\n", buf.String())
}

func TestValueString(t *testing.T) {
	f := func(name string, v Value, expected string) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			if got := v.String(); got != expected {
				t.Errorf("expected %q, got %q", expected, got)
			}
		})
	}

	f("string", StringValue("hi"), `"hi"`)
	f("integer", IntegerValue(-3), "-3")
	f("unsigned", UnsignedValue(7), "7u")
	f("float", FloatValue(1.5), "1.5")
	f("whole_float_keeps_point", FloatValue(200), "200.0")

	f("empty_string_array", StringArrayValue(nil), "[]")
	f("integer_array", IntegerArrayValue([]int64{1, 2}), "[\n\t1,\n\t2\n]")
	f("unsigned_array", UnsignedArrayValue([]uint64{1}), "[\n\t1u\n]")
	f("float_array", FloatArrayValue([]float64{0.5, 2}), "[\n\t0.5,\n\t2.0\n]")
	f("string_array", StringArrayValue([]string{"a"}), "[\n\t\"a\"\n]")

	f("empty_tuple", TupleValue(nil), "()")
	f("tuple", TupleValue([]Value{StringValue("x"), FloatValue(4)}), "(\n\t\"x\",\n\t4.0\n)")

	f("empty_table", TableValue(nil), "{}")
	f("table", TableValue([]Key{NewKey("a", IntegerValue(1))}), "{\n\ta = 1\n}")
	f("nested_table", TableValue([]Key{
		NewKey("outer", TableValue([]Key{NewKey("inner", IntegerValue(2))})),
	}), "{\n\touter = {\n\t\tinner = 2\n\t}\n}")
}

func TestKeySectionString(t *testing.T) {
	k := NewKey("speed", FloatValue(0.5))
	assert.Equal(t, "speed = 0.5", k.String())

	s := NewSection("Main", []Key{k})
	assert.Equal(t, "[Main]\nspeed = 0.5", s.String())

	d := NewDocument([]*Section{s, NewSection("Other", nil)})
	assert.Equal(t, "[Main]\nspeed = 0.5\n\n[Other]", d.String())
}

// Scalar kinds survive a render and re-parse round trip: the 'u' suffix and
// the decimal point keep unsigned and float values from collapsing into
// plain integers.
func TestMarshalRoundTrip(t *testing.T) {
	src := `
[Kinds]
s = "text"
i = 42
u = 7u
fl = 200f
sa = ["a", "b"]
ua = [1u, 2u]
fa = [0.5, 2f]
tp = (1, "two", 3.0, {x = 1u})
tb = {x = 1, y = {z = 0.5}}
`
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc2, err := Parse(string(out))
	if err != nil {
		t.Fatalf("re-parse failed: %v\nrendered:\n%s", err, out)
	}

	sec := doc.Get("Kinds")
	sec2 := doc2.Get("Kinds")
	if sec2 == nil {
		t.Fatalf("re-parsed document lost the section")
	}

	assert.Equal(t, sec.Len(), sec2.Len())
	for _, k := range sec.Keys() {
		k2 := sec2.Get(k.Name())
		if k2 == nil {
			t.Errorf("re-parsed document lost key %q", k.Name())
			continue
		}
		assert.True(t, k.Value.Equal(k2.Value), "key %q: %s != %s", k.Name(), k.Value, k2.Value)
	}
}

func TestMarshalNonFiniteFloat(t *testing.T) {
	f := func(name string, v float64) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			doc := NewDocument([]*Section{
				NewSection("Main", []Key{NewKey("f", FloatValue(v))}),
			})
			if _, err := Marshal(doc); err == nil {
				t.Errorf("expected error but got none")
			}
		})
	}

	f("nan", math.NaN())
	f("positive_infinity", math.Inf(1))
	f("negative_infinity", math.Inf(-1))
}
