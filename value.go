package treedec

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Kind is the structural category of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindKeyed
	KindOrdered
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNull:    "null",
		KindBool:    "bool",
		KindInt:     "int",
		KindFloat:   "float",
		KindString:  "string",
		KindKeyed:   "keyed",
		KindOrdered: "ordered",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"null":    KindNull,
		"bool":    KindBool,
		"int":     KindInt,
		"float":   KindFloat,
		"string":  KindString,
		"keyed":   KindKeyed,
		"ordered": KindOrdered,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// IsScalar reports whether the kind carries no children.
func (k Kind) IsScalar() bool {
	switch k {
	case KindKeyed, KindOrdered:
		return false
	default:
		return true
	}
}

// Value is one node of the input tree: a closed variant over the seven kinds.
// The zero Value is Null. Values are read-only once built; decoding only
// traverses them and copies scalars out.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	keyed   map[string]Value
	ordered []Value
}

// Kind returns the structural category of the value.
func (v Value) Kind() Kind { return v.kind }

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Keyed returns a keyed container Value over the given entries. The map is
// referenced, not copied; callers must not mutate it afterwards.
func Keyed(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{kind: KindKeyed, keyed: entries}
}

// Ordered returns an ordered container Value over the given elements.
func Ordered(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindOrdered, ordered: elems}
}

// FromAny converts a loosely-typed Go tree (the shape produced by generic
// JSON/YAML unmarshalling: map[string]any, []any, scalars, json.Number) into
// a Value. Unsupported leaf types yield an error naming the Go type.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Int(int64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return Value{}, fmt.Errorf("treedec: uint64 value %d overflows int", t)
		}
		return Int(int64(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("treedec: bad number %q: %w", string(t), err)
		}
		return Float(f), nil
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, child := range t {
			cv, err := FromAny(child)
			if err != nil {
				return Value{}, err
			}
			m[k] = cv
		}
		return Keyed(m), nil
	case []any:
		elems := make([]Value, 0, len(t))
		for _, child := range t {
			cv, err := FromAny(child)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, cv)
		}
		return Ordered(elems...), nil
	default:
		return Value{}, fmt.Errorf("treedec: unsupported value type %T", v)
	}
}

// MustFromAny is like FromAny but panics on error. Intended for fixtures and
// tests where the input shape is known.
func MustFromAny(v any) Value {
	val, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Interface projects the value back into a plain Go tree: nil, bool, int64,
// float64, string, map[string]any, []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindKeyed:
		m := make(map[string]any, len(v.keyed))
		for k, child := range v.keyed {
			m[k] = child.Interface()
		}
		return m
	case KindOrdered:
		out := make([]any, 0, len(v.ordered))
		for _, child := range v.ordered {
			out = append(out, child.Interface())
		}
		return out
	default:
		return nil
	}
}

// sortedKeys returns the keyed entries' keys in ascending order for
// deterministic iteration.
func (v Value) sortedKeys() []string {
	ks := make([]string, 0, len(v.keyed))
	for k := range v.keyed {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
