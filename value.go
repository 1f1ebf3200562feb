package cfg

// ValueKind represents the variant a Value holds.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInteger
	KindUnsigned
	KindFloat
	KindStringArray
	KindIntegerArray
	KindUnsignedArray
	KindFloatArray
	KindTuple
	KindTable
)

// String returns the kind's name.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	case KindStringArray:
		return "string array"
	case KindIntegerArray:
		return "integer array"
	case KindUnsignedArray:
		return "unsigned array"
	case KindFloatArray:
		return "float array"
	case KindTuple:
		return "tuple"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Value is the tagged union a Key can contain: a scalar (string, integer,
// unsigned, float), a homogeneous array of one scalar kind, a tuple of
// arbitrary values, or a table of uniquely named keys. The kind tag
// indicates which payload field has meaning. A Value owns its children
// exclusively; the tree is acyclic and is not mutated by the parser after
// construction.
type Value struct {
	kind ValueKind

	str    string
	num    int64
	unum   uint64
	fnum   float64
	strs   []string
	ints   []int64
	uints  []uint64
	floats []float64
	tuple  []Value
	table  []Key
}

// StringValue returns a Value holding the string s.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntegerValue returns a Value holding the signed integer v.
func IntegerValue(v int64) Value {
	return Value{kind: KindInteger, num: v}
}

// UnsignedValue returns a Value holding the unsigned integer v.
func UnsignedValue(v uint64) Value {
	return Value{kind: KindUnsigned, unum: v}
}

// FloatValue returns a Value holding the float v.
func FloatValue(v float64) Value {
	return Value{kind: KindFloat, fnum: v}
}

// StringArrayValue returns a Value holding a string array.
func StringArrayValue(vs []string) Value {
	return Value{kind: KindStringArray, strs: vs}
}

// IntegerArrayValue returns a Value holding a signed integer array.
func IntegerArrayValue(vs []int64) Value {
	return Value{kind: KindIntegerArray, ints: vs}
}

// UnsignedArrayValue returns a Value holding an unsigned integer array.
func UnsignedArrayValue(vs []uint64) Value {
	return Value{kind: KindUnsignedArray, uints: vs}
}

// FloatArrayValue returns a Value holding a float array.
func FloatArrayValue(vs []float64) Value {
	return Value{kind: KindFloatArray, floats: vs}
}

// TupleValue returns a Value holding an ordered, possibly heterogeneous
// tuple of values.
func TupleValue(vs []Value) Value {
	return Value{kind: KindTuple, tuple: vs}
}

// TableValue returns a Value holding an ordered table of keys. The caller is
// responsible for name uniqueness; tables built by the parser reject
// duplicates case-insensitively.
func TableValue(keys []Key) Value {
	return Value{kind: KindTable, table: keys}
}

// Kind returns the variant tag of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Str returns the string payload. The second return value is false if the
// value is not a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Int returns the signed integer payload.
func (v Value) Int() (int64, bool) {
	return v.num, v.kind == KindInteger
}

// Uint returns the unsigned integer payload.
func (v Value) Uint() (uint64, bool) {
	return v.unum, v.kind == KindUnsigned
}

// Float returns the float payload.
func (v Value) Float() (float64, bool) {
	return v.fnum, v.kind == KindFloat
}

// Strings returns the string array payload.
func (v Value) Strings() ([]string, bool) {
	return v.strs, v.kind == KindStringArray
}

// Ints returns the signed integer array payload.
func (v Value) Ints() ([]int64, bool) {
	return v.ints, v.kind == KindIntegerArray
}

// Uints returns the unsigned integer array payload.
func (v Value) Uints() ([]uint64, bool) {
	return v.uints, v.kind == KindUnsignedArray
}

// Floats returns the float array payload.
func (v Value) Floats() ([]float64, bool) {
	return v.floats, v.kind == KindFloatArray
}

// Tuple returns the tuple payload.
func (v Value) Tuple() ([]Value, bool) {
	return v.tuple, v.kind == KindTuple
}

// Table returns the table payload.
func (v Value) Table() ([]Key, bool) {
	return v.table, v.kind == KindTable
}

// Interface returns the value as a plain Go value: string, int64, uint64,
// float64, the corresponding slice types for arrays, []any for tuples, and
// map[string]any for tables. Table key order is not preserved in the map.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return v.num
	case KindUnsigned:
		return v.unum
	case KindFloat:
		return v.fnum
	case KindStringArray:
		return v.strs
	case KindIntegerArray:
		return v.ints
	case KindUnsignedArray:
		return v.uints
	case KindFloatArray:
		return v.floats
	case KindTuple:
		out := make([]any, len(v.tuple))
		for i, e := range v.tuple {
			out[i] = e.Interface()
		}
		return out
	case KindTable:
		out := make(map[string]any, len(v.table))
		for _, k := range v.table {
			out[k.Name()] = k.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and payload, comparing
// nested tuples and tables element by element.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInteger:
		return v.num == other.num
	case KindUnsigned:
		return v.unum == other.unum
	case KindFloat:
		return v.fnum == other.fnum
	case KindStringArray:
		if len(v.strs) != len(other.strs) {
			return false
		}
		for i := range v.strs {
			if v.strs[i] != other.strs[i] {
				return false
			}
		}
	case KindIntegerArray:
		if len(v.ints) != len(other.ints) {
			return false
		}
		for i := range v.ints {
			if v.ints[i] != other.ints[i] {
				return false
			}
		}
	case KindUnsignedArray:
		if len(v.uints) != len(other.uints) {
			return false
		}
		for i := range v.uints {
			if v.uints[i] != other.uints[i] {
				return false
			}
		}
	case KindFloatArray:
		if len(v.floats) != len(other.floats) {
			return false
		}
		for i := range v.floats {
			if v.floats[i] != other.floats[i] {
				return false
			}
		}
	case KindTuple:
		if len(v.tuple) != len(other.tuple) {
			return false
		}
		for i := range v.tuple {
			if !v.tuple[i].Equal(other.tuple[i]) {
				return false
			}
		}
	case KindTable:
		if len(v.table) != len(other.table) {
			return false
		}
		for i := range v.table {
			if v.table[i].Name() != other.table[i].Name() ||
				!v.table[i].Value.Equal(other.table[i].Value) {
				return false
			}
		}
	}

	return true
}
