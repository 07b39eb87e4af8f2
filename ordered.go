package treedec

// OrderedContainer walks one ordered Value with a 0-based cursor. The cursor
// advances exactly once per decode attempt at the current position, whether
// or not the attempt succeeds; retrying a failed position is not supported
// because decoding is abandoned on the first error.
type OrderedContainer struct {
	v      Value
	path   Path
	cursor int
}

// Path returns the route at which this container was reached.
func (o *OrderedContainer) Path() Path { return o.path }

// Count returns the element count, fixed at construction.
func (o *OrderedContainer) Count() int { return len(o.v.ordered) }

// Index returns the current cursor position.
func (o *OrderedContainer) Index() int { return o.cursor }

// IsAtEnd reports whether the cursor has passed the last element.
func (o *OrderedContainer) IsAtEnd() bool { return o.cursor >= len(o.v.ordered) }

// next yields the element at the cursor and advances it. Out-of-bounds access
// reports element_out_of_bounds at the container's own path.
func (o *OrderedContainer) next() (Value, Path, error) {
	if o.IsAtEnd() {
		return Value{}, nil, outOfBounds(o.path, o.cursor, len(o.v.ordered))
	}
	child := o.v.ordered[o.cursor]
	childPath := o.path.WithIndex(o.cursor)
	o.cursor++
	return child, childPath, nil
}

// NextBool decodes the next element as a boolean.
func (o *OrderedContainer) NextBool() (bool, error) {
	child, childPath, err := o.next()
	if err != nil {
		return false, err
	}
	return (&Scalar{v: child, path: childPath}).Bool()
}

// NextString decodes the next element as a string.
func (o *OrderedContainer) NextString() (string, error) {
	child, childPath, err := o.next()
	if err != nil {
		return "", err
	}
	return (&Scalar{v: child, path: childPath}).String()
}

// NextFloat64 decodes the next element as a float64.
func (o *OrderedContainer) NextFloat64() (float64, error) {
	child, childPath, err := o.next()
	if err != nil {
		return 0, err
	}
	return (&Scalar{v: child, path: childPath}).Float64()
}

// NextFloat32 decodes the next element as a float32.
func (o *OrderedContainer) NextFloat32() (float32, error) {
	child, childPath, err := o.next()
	if err != nil {
		return 0, err
	}
	return (&Scalar{v: child, path: childPath}).Float32()
}

// NextInt decodes the next element as a native int.
func (o *OrderedContainer) NextInt() (int, error) {
	child, childPath, err := o.next()
	if err != nil {
		return 0, err
	}
	return (&Scalar{v: child, path: childPath}).Int()
}

// NextUint decodes the next element as a native uint.
func (o *OrderedContainer) NextUint() (uint, error) {
	child, childPath, err := o.next()
	if err != nil {
		return 0, err
	}
	return (&Scalar{v: child, path: childPath}).Uint()
}

// NextDecode recurses into the next element through a fresh Decoder scoped to
// the element and the extended path.
func (o *OrderedContainer) NextDecode(target Unmarshaler) error {
	child, childPath, err := o.next()
	if err != nil {
		return err
	}
	return target.UnmarshalValue(newDecoderAt(child, childPath))
}

// NextDecoder returns a Decoder positioned at the next element.
func (o *OrderedContainer) NextDecoder() (*Decoder, error) {
	child, childPath, err := o.next()
	if err != nil {
		return nil, err
	}
	return newDecoderAt(child, childPath), nil
}

// NextKeyed yields a keyed view over the next element, failing with
// type_mismatch when the element is not a keyed container.
func (o *OrderedContainer) NextKeyed(known ...string) (*KeyedContainer, error) {
	child, childPath, err := o.next()
	if err != nil {
		return nil, err
	}
	if child.kind != KindKeyed {
		return nil, typeMismatch(childPath, KindKeyed.String(), child)
	}
	return &KeyedContainer{v: child, path: childPath, known: known}, nil
}

// NextOrdered yields an ordered view over the next element, failing with
// type_mismatch when the element is not an ordered container.
func (o *OrderedContainer) NextOrdered() (*OrderedContainer, error) {
	child, childPath, err := o.next()
	if err != nil {
		return nil, err
	}
	if child.kind != KindOrdered {
		return nil, typeMismatch(childPath, KindOrdered.String(), child)
	}
	return &OrderedContainer{v: child, path: childPath}, nil
}

// SuperDecoder would decode a shared base type through this container.
// Polymorphic decoding is unsupported: it always returns a UsageError.
func (o *OrderedContainer) SuperDecoder() (*Decoder, error) {
	return nil, &UsageError{Feature: "super decoder", Path: o.path}
}
