package bind

import (
	treedec "github.com/treedec/treedec"
)

// Bool is an element decode func for boolean elements.
func Bool(d *treedec.Decoder) (bool, error) { return d.Scalar().Bool() }

// String is an element decode func for string elements.
func String(d *treedec.Decoder) (string, error) { return d.Scalar().String() }

// Int is an element decode func for native int elements.
func Int(d *treedec.Decoder) (int, error) { return d.Scalar().Int() }

// Uint is an element decode func for native uint elements.
func Uint(d *treedec.Decoder) (uint, error) { return d.Scalar().Uint() }

// Float64 is an element decode func for float64 elements.
func Float64(d *treedec.Decoder) (float64, error) { return d.Scalar().Float64() }

// Float32 is an element decode func for float32 elements.
func Float32(d *treedec.Decoder) (float32, error) { return d.Scalar().Float32() }

// Of is an element decode func for elements whose pointer type implements
// treedec.Unmarshaler.
func Of[E any, PE interface {
	*E
	treedec.Unmarshaler
}](d *treedec.Decoder) (E, error) {
	var out E
	if err := PE(&out).UnmarshalValue(d); err != nil {
		var zero E
		return zero, err
	}
	return out, nil
}

// SliceFunc drives the ordered walker over d, decoding every element with
// elem in declaration order.
func SliceFunc[E any](d *treedec.Decoder, elem func(*treedec.Decoder) (E, error)) ([]E, error) {
	oc, err := d.Ordered()
	if err != nil {
		return nil, err
	}
	out := make([]E, 0, oc.Count())
	for !oc.IsAtEnd() {
		ed, err := oc.NextDecoder()
		if err != nil {
			return nil, err
		}
		ev, err := elem(ed)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// Slice decodes an ordered container into []E where *E implements
// treedec.Unmarshaler.
func Slice[E any, PE interface {
	*E
	treedec.Unmarshaler
}](d *treedec.Decoder) ([]E, error) {
	return SliceFunc(d, Of[E, PE])
}

// MapFunc drives the keyed walker over d, decoding every entry's value with
// elem. Keys are visited in ascending order for deterministic failure
// selection.
func MapFunc[V any](d *treedec.Decoder, elem func(*treedec.Decoder) (V, error)) (map[string]V, error) {
	kc, err := d.Keyed()
	if err != nil {
		return nil, err
	}
	out := make(map[string]V, kc.Len())
	for _, k := range kc.Keys() {
		vd, err := kc.NestedDecoder(k)
		if err != nil {
			return nil, err
		}
		vv, err := elem(vd)
		if err != nil {
			return nil, err
		}
		out[k] = vv
	}
	return out, nil
}

// Map decodes a keyed container into map[string]V where *V implements
// treedec.Unmarshaler.
func Map[V any, PV interface {
	*V
	treedec.Unmarshaler
}](d *treedec.Decoder) (map[string]V, error) {
	return MapFunc(d, Of[V, PV])
}
