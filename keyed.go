package treedec

// KeyedContainer walks one keyed Value. Key resolution is exact string match:
// no case folding, no aliasing. The view is scoped to one decode step and
// holds only a read-only reference to the underlying value.
type KeyedContainer struct {
	v     Value
	path  Path
	known []string
}

// Path returns the route at which this container was reached.
func (k *KeyedContainer) Path() Path { return k.path }

// Len returns the number of entries in the container.
func (k *KeyedContainer) Len() int { return len(k.v.keyed) }

// Keys returns the container's keys in ascending order.
func (k *KeyedContainer) Keys() []string { return k.v.sortedKeys() }

// Contains reports whether a value exists at the given field, without
// decoding it. A present null still counts as present.
func (k *KeyedContainer) Contains(field string) bool {
	_, ok := k.v.keyed[field]
	return ok
}

// IsNull reports whether the value at field is null. It fails with
// key_not_found when the field is absent; callers distinguishing optional
// absence from present null should check Contains first.
func (k *KeyedContainer) IsNull(field string) (bool, error) {
	child, ok := k.v.keyed[field]
	if !ok {
		return false, keyNotFound(k.path, field, k.known)
	}
	return child.kind == KindNull, nil
}

func (k *KeyedContainer) get(field string) (Value, error) {
	child, ok := k.v.keyed[field]
	if !ok {
		return Value{}, keyNotFound(k.path, field, k.known)
	}
	return child, nil
}

// Bool decodes the value at field as a boolean.
func (k *KeyedContainer) Bool(field string) (bool, error) {
	child, err := k.get(field)
	if err != nil {
		return false, err
	}
	return (&Scalar{v: child, path: k.path.WithField(field)}).Bool()
}

// String decodes the value at field as a string.
func (k *KeyedContainer) String(field string) (string, error) {
	child, err := k.get(field)
	if err != nil {
		return "", err
	}
	return (&Scalar{v: child, path: k.path.WithField(field)}).String()
}

// Float64 decodes the value at field as a float64.
func (k *KeyedContainer) Float64(field string) (float64, error) {
	child, err := k.get(field)
	if err != nil {
		return 0, err
	}
	return (&Scalar{v: child, path: k.path.WithField(field)}).Float64()
}

// Float32 decodes the value at field as a float32.
func (k *KeyedContainer) Float32(field string) (float32, error) {
	child, err := k.get(field)
	if err != nil {
		return 0, err
	}
	return (&Scalar{v: child, path: k.path.WithField(field)}).Float32()
}

// Int decodes the value at field as a native int.
func (k *KeyedContainer) Int(field string) (int, error) {
	child, err := k.get(field)
	if err != nil {
		return 0, err
	}
	return (&Scalar{v: child, path: k.path.WithField(field)}).Int()
}

// Uint decodes the value at field as a native uint.
func (k *KeyedContainer) Uint(field string) (uint, error) {
	child, err := k.get(field)
	if err != nil {
		return 0, err
	}
	return (&Scalar{v: child, path: k.path.WithField(field)}).Uint()
}

// Decode recurses into the value at field through a fresh Decoder scoped to
// the child and the extended path.
func (k *KeyedContainer) Decode(field string, target Unmarshaler) error {
	child, err := k.get(field)
	if err != nil {
		return err
	}
	return target.UnmarshalValue(newDecoderAt(child, k.path.WithField(field)))
}

// NestedDecoder returns a Decoder positioned at the value under field.
func (k *KeyedContainer) NestedDecoder(field string) (*Decoder, error) {
	child, err := k.get(field)
	if err != nil {
		return nil, err
	}
	return newDecoderAt(child, k.path.WithField(field)), nil
}

// NestedKeyed yields a keyed view over the value at field, failing with
// type_mismatch when the child is not a keyed container.
func (k *KeyedContainer) NestedKeyed(field string, known ...string) (*KeyedContainer, error) {
	child, err := k.get(field)
	if err != nil {
		return nil, err
	}
	childPath := k.path.WithField(field)
	if child.kind != KindKeyed {
		return nil, typeMismatch(childPath, KindKeyed.String(), child)
	}
	return &KeyedContainer{v: child, path: childPath, known: known}, nil
}

// NestedOrdered yields an ordered view over the value at field, failing with
// type_mismatch when the child is not an ordered container.
func (k *KeyedContainer) NestedOrdered(field string) (*OrderedContainer, error) {
	child, err := k.get(field)
	if err != nil {
		return nil, err
	}
	childPath := k.path.WithField(field)
	if child.kind != KindOrdered {
		return nil, typeMismatch(childPath, KindOrdered.String(), child)
	}
	return &OrderedContainer{v: child, path: childPath}, nil
}

// SuperDecoder would decode a shared base type through this container.
// Polymorphic decoding is unsupported: it always returns a UsageError so the
// request fails loudly instead of guessing.
func (k *KeyedContainer) SuperDecoder() (*Decoder, error) {
	return nil, &UsageError{Feature: "super decoder", Path: k.path}
}
