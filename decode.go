package cfg

import (
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"
)

// Decoder reads and decodes a cfg document from an input stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the cfg document from the input stream and stores the result
// in the value pointed to by v.
func (dec *Decoder) Decode(v any) error {
	data, err := io.ReadAll(dec.r)
	if err != nil {
		return err
	}

	return Unmarshal(data, v)
}

// Unmarshal parses cfg data and stores the result in the value pointed to by
// v. If v is nil or not a pointer, it returns an error.
//
// Sections map to the fields of a top-level struct, and the keys of a
// section map to the fields of that field's struct, matched by name
// case-insensitively or through a `cfg:"name"` struct tag ("-" skips the
// field). Key values convert as follows:
//   - string values into string fields
//   - integer, unsigned and float values into the corresponding numeric
//     kinds, with overflow and sign checks
//   - arrays into slices of a matching element type
//   - tuples into []any or a slice the elements convert to
//   - tables into structs or string-keyed maps
//
// A map[string]any or any destination receives the generic form of the tree
// instead: map[section]map[key]value, with Value.Interface conversions at
// the leaves.
func Unmarshal(data []byte, v any) error {
	doc, err := Parse(string(data))
	if err != nil {
		return err
	}

	return doc.Decode(v)
}

// Decode stores the document in the value pointed to by v; see Unmarshal.
func (d *Document) Decode(v any) error {
	if v == nil {
		return errors.New("cfg: cannot decode into a nil value")
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return errors.New("cfg: destination is not a pointer")
	}
	if rv.IsNil() {
		return errors.New("cfg: destination pointer is nil")
	}

	dst := rv.Elem()

	switch dst.Kind() {
	case reflect.Struct:
		for _, sec := range d.Sections() {
			field, ok := fieldByName(dst, sec.Name())
			if !ok {
				continue
			}
			if err := decodeSection(sec, field); err != nil {
				return fmt.Errorf("section %s: %w", sec.Name(), err)
			}
		}
		return nil

	case reflect.Map, reflect.Interface:
		return setValueReflect(dst, d.interfaceTree())

	default:
		return fmt.Errorf("cfg: cannot decode document into %s", dst.Type())
	}
}

// interfaceTree returns the document as nested maps of plain Go values.
func (d *Document) interfaceTree() map[string]any {
	out := make(map[string]any, len(d.sections))
	for _, sec := range d.sections {
		keys := make(map[string]any, sec.Len())
		for _, k := range sec.Keys() {
			keys[k.Name()] = k.Value.Interface()
		}
		out[sec.Name()] = keys
	}

	return out
}

// decodeSection stores a section's keys into a struct, map or interface
// destination.
func decodeSection(sec *Section, dst reflect.Value) error {
	if dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		dst = dst.Elem()
	}

	switch dst.Kind() {
	case reflect.Struct:
		for _, k := range sec.Keys() {
			field, ok := fieldByName(dst, k.Name())
			if !ok {
				continue
			}
			if err := setValueReflect(field, k.Value.Interface()); err != nil {
				return fmt.Errorf("key %s: %w", k.Name(), err)
			}
		}
		return nil

	case reflect.Map, reflect.Interface:
		keys := make(map[string]any, sec.Len())
		for _, k := range sec.Keys() {
			keys[k.Name()] = k.Value.Interface()
		}
		return setValueReflect(dst, keys)

	default:
		return fmt.Errorf("cannot decode section into %s", dst.Type())
	}
}

// fieldByName finds the settable struct field matching name, honoring `cfg`
// tags and falling back to a case-insensitive field name match.
func fieldByName(dst reflect.Value, name string) (reflect.Value, bool) {
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("cfg")
		if tag == "-" {
			continue
		}

		fieldName := tag
		if fieldName == "" {
			fieldName = field.Name
		}

		if strings.EqualFold(fieldName, name) {
			return dst.Field(i), true
		}
	}

	return reflect.Value{}, false
}

// setValueReflect recursively sets dst from a plain Go value produced by
// Value.Interface or Document.interfaceTree.
func setValueReflect(dst reflect.Value, src any) error {
	if src == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	s := reflect.ValueOf(src)

	// An interface destination takes the value as is.
	if dst.Kind() == reflect.Interface {
		dst.Set(s)
		return nil
	}

	if s.Type().AssignableTo(dst.Type()) {
		dst.Set(s)
		return nil
	}

	switch dst.Kind() {
	case reflect.Struct:
		return setStruct(dst, src)
	case reflect.Slice:
		return setSlice(dst, src)
	case reflect.Map:
		return setMap(dst, src)
	case reflect.Ptr:
		return setPtr(dst, src)
	case reflect.String:
		return setString(dst, src)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(dst, src)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(dst, src)
	case reflect.Float32, reflect.Float64:
		return setFloat(dst, src)
	default:
		return fmt.Errorf("cannot decode %T into %s", src, dst.Type())
	}
}

// setStruct decodes a table's map form into a struct.
func setStruct(dst reflect.Value, src any) error {
	srcMap, ok := src.(map[string]any)
	if !ok {
		return fmt.Errorf("cannot decode %T into struct", src)
	}

	for name, srcValue := range srcMap {
		field, ok := fieldByName(dst, name)
		if !ok {
			continue
		}
		if err := setValueReflect(field, srcValue); err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
	}

	return nil
}

// setSlice decodes any of the array slice forms, or a tuple's []any, into a
// slice of the destination's element type.
func setSlice(dst reflect.Value, src any) error {
	s := reflect.ValueOf(src)
	if s.Kind() != reflect.Slice {
		return fmt.Errorf("cannot decode %T into slice", src)
	}

	out := reflect.MakeSlice(dst.Type(), s.Len(), s.Len())
	for i := 0; i < s.Len(); i++ {
		if err := setValueReflect(out.Index(i), s.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	dst.Set(out)
	return nil
}

// setMap decodes a table's map form into a string-keyed map.
func setMap(dst reflect.Value, src any) error {
	srcMap, ok := src.(map[string]any)
	if !ok {
		return fmt.Errorf("cannot decode %T into map", src)
	}

	mapType := dst.Type()
	if mapType.Key().Kind() != reflect.String {
		return errors.New("maps with non-string keys are not supported")
	}

	out := reflect.MakeMap(mapType)
	for key, srcValue := range srcMap {
		elem := reflect.New(mapType.Elem()).Elem()
		if err := setValueReflect(elem, srcValue); err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}
		out.SetMapIndex(reflect.ValueOf(key), elem)
	}

	dst.Set(out)
	return nil
}

func setPtr(dst reflect.Value, src any) error {
	out := reflect.New(dst.Type().Elem())
	if err := setValueReflect(out.Elem(), src); err != nil {
		return err
	}

	dst.Set(out)
	return nil
}

func setString(dst reflect.Value, src any) error {
	v, ok := src.(string)
	if !ok {
		return fmt.Errorf("cannot decode %T into string", src)
	}

	dst.SetString(v)
	return nil
}

func setInt(dst reflect.Value, src any) error {
	switch v := src.(type) {
	case int64:
		if dst.OverflowInt(v) {
			return fmt.Errorf("value %d overflows %s", v, dst.Type())
		}
		dst.SetInt(v)
		return nil
	case uint64:
		if v > math.MaxInt64 || dst.OverflowInt(int64(v)) {
			return fmt.Errorf("value %d overflows %s", v, dst.Type())
		}
		dst.SetInt(int64(v))
		return nil
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("cannot decode float %g into integer type", v)
		}
		if dst.OverflowInt(int64(v)) {
			return fmt.Errorf("value %g overflows %s", v, dst.Type())
		}
		dst.SetInt(int64(v))
		return nil
	default:
		return fmt.Errorf("cannot decode %T into integer", src)
	}
}

func setUint(dst reflect.Value, src any) error {
	switch v := src.(type) {
	case uint64:
		if dst.OverflowUint(v) {
			return fmt.Errorf("value %d overflows %s", v, dst.Type())
		}
		dst.SetUint(v)
		return nil
	case int64:
		if v < 0 {
			return fmt.Errorf("cannot decode negative value %d into unsigned integer", v)
		}
		if dst.OverflowUint(uint64(v)) {
			return fmt.Errorf("value %d overflows %s", v, dst.Type())
		}
		dst.SetUint(uint64(v))
		return nil
	case float64:
		if v < 0 {
			return fmt.Errorf("cannot decode negative value %g into unsigned integer", v)
		}
		if v != math.Trunc(v) {
			return fmt.Errorf("cannot decode float %g into integer type", v)
		}
		if dst.OverflowUint(uint64(v)) {
			return fmt.Errorf("value %g overflows %s", v, dst.Type())
		}
		dst.SetUint(uint64(v))
		return nil
	default:
		return fmt.Errorf("cannot decode %T into unsigned integer", src)
	}
}

func setFloat(dst reflect.Value, src any) error {
	switch v := src.(type) {
	case float64:
		if dst.OverflowFloat(v) {
			return fmt.Errorf("value %g overflows %s", v, dst.Type())
		}
		dst.SetFloat(v)
		return nil
	case int64:
		dst.SetFloat(float64(v))
		return nil
	case uint64:
		dst.SetFloat(float64(v))
		return nil
	default:
		return fmt.Errorf("cannot decode %T into float", src)
	}
}
