package treedec

// Unmarshaler is the interface through which target types consume a Decoder.
// An implementation acquires one of the three views (keyed, ordered, scalar)
// matching the shape it expects and populates itself from it, recursing
// through nested decoders for structured fields.
type Unmarshaler interface {
	UnmarshalValue(d *Decoder) error
}

// Decoder dispatches one Value at one Path into keyed, ordered, or scalar
// views. It is a pure function of (value, path): acquiring a view performs no
// side effects beyond allocation, and the underlying tree is never mutated.
type Decoder struct {
	v    Value
	path Path
}

// NewDecoder returns a Decoder positioned at root with an empty path.
func NewDecoder(root Value) *Decoder { return &Decoder{v: root} }

func newDecoderAt(v Value, path Path) *Decoder { return &Decoder{v: v, path: path} }

// Path returns the route from the decode root to the current value.
func (d *Decoder) Path() Path { return d.path }

// Value returns the value under the decoder.
func (d *Decoder) Value() Value { return d.v }

// Keyed acquires a keyed view over the current value. It fails with
// shape_mismatch when the value is not a keyed container. The optional known
// field names are the keys the caller's schema declares; they are only used
// to enrich key_not_found diagnostics.
func (d *Decoder) Keyed(known ...string) (*KeyedContainer, error) {
	if d.v.kind != KindKeyed {
		return nil, shapeMismatch(d.path, KindKeyed, d.v)
	}
	return &KeyedContainer{v: d.v, path: d.path, known: known}, nil
}

// Ordered acquires an ordered view over the current value, failing with
// shape_mismatch when the value is not an ordered container.
func (d *Decoder) Ordered() (*OrderedContainer, error) {
	if d.v.kind != KindOrdered {
		return nil, shapeMismatch(d.path, KindOrdered, d.v)
	}
	return &OrderedContainer{v: d.v, path: d.path}, nil
}

// Scalar acquires a scalar view over the current value. Acquisition always
// succeeds; a type mismatch surfaces only when a specific primitive is
// requested from the view.
func (d *Decoder) Scalar() *Scalar { return &Scalar{v: d.v, path: d.path} }

// Decode populates target from root. It is the sole entry point: errors from
// the deepest failure site propagate to the caller unchanged, carrying the
// full path from root.
func Decode(root Value, target Unmarshaler) error {
	return target.UnmarshalValue(NewDecoder(root))
}

// As decodes root into a freshly allocated T whose pointer type implements
// Unmarshaler.
func As[T any, PT interface {
	*T
	Unmarshaler
}](root Value) (T, error) {
	var out T
	if err := Decode(root, PT(&out)); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
