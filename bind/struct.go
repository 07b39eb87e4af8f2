package bind

import (
	"fmt"
	"reflect"
	"strings"

	treedec "github.com/treedec/treedec"
)

// ResolveKey applies the repository-wide rule to resolve a struct field's
// external key and optionality.
// Priority: treedec:"name,..." > json tag name > field name; "-" disables the
// field; the treedec tag flag "optional" marks a required-kind field optional.
func ResolveKey(sf reflect.StructField) (name string, optional bool) {
	name = sf.Name
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-", false
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] != "" {
				name = jt[:i]
			}
		} else {
			name = jt
		}
	}
	if tt := sf.Tag.Get("treedec"); tt != "" {
		parts := strings.Split(tt, ",")
		if parts[0] == "-" {
			return "-", false
		}
		if parts[0] != "" {
			name = parts[0]
		}
		for _, p := range parts[1:] {
			if strings.TrimSpace(p) == "optional" {
				optional = true
			}
		}
	}
	return name, optional
}

// Struct populates target (a non-nil pointer) from the decoder's value using
// reflection. Struct fields map to keyed entries via ResolveKey; pointer,
// slice, map, and interface fields are optional by nature, every other field
// is required unless its tag says otherwise. Types implementing
// treedec.Unmarshaler take precedence over reflection at every level.
func Struct(d *treedec.Decoder, target any) error {
	if u, ok := target.(treedec.Unmarshaler); ok {
		return u.UnmarshalValue(d)
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("bind: target must be a non-nil pointer, got %T", target)
	}
	return decodeInto(d, rv.Elem())
}

func decodeInto(d *treedec.Decoder, rv reflect.Value) error {
	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(treedec.Unmarshaler); ok {
			return u.UnmarshalValue(d)
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		b, err := d.Scalar().Bool()
		if err != nil {
			return err
		}
		rv.SetBool(b)
		return nil
	case reflect.String:
		s, err := d.Scalar().String()
		if err != nil {
			return err
		}
		rv.SetString(s)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := d.Scalar().Int64()
		if err != nil {
			return err
		}
		if rv.OverflowInt(i) {
			return overflowErr(d, rv.Type())
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := d.Scalar().Int64()
		if err != nil {
			return err
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return overflowErr(d, rv.Type())
		}
		rv.SetUint(uint64(i))
		return nil
	case reflect.Float64:
		f, err := d.Scalar().Float64()
		if err != nil {
			return err
		}
		rv.SetFloat(f)
		return nil
	case reflect.Float32:
		f, err := d.Scalar().Float32()
		if err != nil {
			return err
		}
		rv.SetFloat(float64(f))
		return nil
	case reflect.Pointer:
		if d.Scalar().Null() {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		elem := reflect.New(rv.Type().Elem())
		if err := decodeInto(d, elem.Elem()); err != nil {
			return err
		}
		rv.Set(elem)
		return nil
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return fmt.Errorf("bind: cannot decode into non-empty interface %s", rv.Type())
		}
		if d.Scalar().Null() {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		rv.Set(reflect.ValueOf(d.Value().Interface()))
		return nil
	case reflect.Slice:
		return decodeSlice(d, rv)
	case reflect.Map:
		return decodeMap(d, rv)
	case reflect.Struct:
		return decodeStruct(d, rv)
	default:
		return fmt.Errorf("bind: unsupported target kind %s", rv.Kind())
	}
}

func decodeSlice(d *treedec.Decoder, rv reflect.Value) error {
	if d.Scalar().Null() {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}
	oc, err := d.Ordered()
	if err != nil {
		return err
	}
	out := reflect.MakeSlice(rv.Type(), 0, oc.Count())
	for !oc.IsAtEnd() {
		ed, err := oc.NextDecoder()
		if err != nil {
			return err
		}
		ev := reflect.New(rv.Type().Elem()).Elem()
		if err := decodeInto(ed, ev); err != nil {
			return err
		}
		out = reflect.Append(out, ev)
	}
	rv.Set(out)
	return nil
}

func decodeMap(d *treedec.Decoder, rv reflect.Value) error {
	if d.Scalar().Null() {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}
	kt := rv.Type().Key()
	if kt.Kind() != reflect.String {
		return fmt.Errorf("bind: map key type %s is not a string type", kt)
	}
	kc, err := d.Keyed()
	if err != nil {
		return err
	}
	out := reflect.MakeMapWithSize(rv.Type(), kc.Len())
	for _, k := range kc.Keys() {
		vd, err := kc.NestedDecoder(k)
		if err != nil {
			return err
		}
		vv := reflect.New(rv.Type().Elem()).Elem()
		if err := decodeInto(vd, vv); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(kt), vv)
	}
	rv.Set(out)
	return nil
}

func decodeStruct(d *treedec.Decoder, rv reflect.Value) error {
	rt := rv.Type()
	known := make([]string, 0, rt.NumField())
	type boundField struct {
		idx      int
		key      string
		optional bool
	}
	fields := make([]boundField, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key, optional := ResolveKey(sf)
		if key == "-" || key == "" {
			continue
		}
		if !optional {
			optional = nillable(sf.Type.Kind())
		}
		known = append(known, key)
		fields = append(fields, boundField{idx: i, key: key, optional: optional})
	}
	kc, err := d.Keyed(known...)
	if err != nil {
		return err
	}
	for _, bf := range fields {
		if !kc.Contains(bf.key) {
			if bf.optional {
				continue
			}
			// surfaces key_not_found at the enclosing structure's path
			if _, err := kc.NestedDecoder(bf.key); err != nil {
				return err
			}
			continue
		}
		fd, err := kc.NestedDecoder(bf.key)
		if err != nil {
			return err
		}
		if err := decodeInto(fd, rv.Field(bf.idx)); err != nil {
			return err
		}
	}
	return nil
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	default:
		return false
	}
}

// overflowErr reports an out-of-range width as an ordinary type mismatch at
// the same path.
func overflowErr(d *treedec.Decoder, t reflect.Type) error {
	return &treedec.DecodeError{
		Path:    d.Path(),
		Code:    treedec.CodeTypeMismatch,
		Message: "value overflows " + t.String(),
		Params:  map[string]any{"expected": t.String(), "found": d.Value().Kind().String()},
	}
}
