package treedec

import "math"

// Scalar reinterprets one Value as a requested primitive. There is no
// coercion between primitive kinds: a string value requested as an int fails
// rather than attempting string-to-number parsing, and a null value requested
// as any primitive fails. Only Null never fails.
//
// Fixed-width variants narrower than the native int/uint are not provided;
// the native-width accessors are the only integer entry points.
type Scalar struct {
	v    Value
	path Path
}

// Path returns the route at which this scalar was reached.
func (s *Scalar) Path() Path { return s.path }

// Null reports whether the value is null. It never fails.
func (s *Scalar) Null() bool { return s.v.kind == KindNull }

// Bool reinterprets the value as a boolean.
func (s *Scalar) Bool() (bool, error) {
	if s.v.kind != KindBool {
		return false, typeMismatch(s.path, KindBool.String(), s.v)
	}
	return s.v.b, nil
}

// String reinterprets the value as a string.
func (s *Scalar) String() (string, error) {
	if s.v.kind != KindString {
		return "", typeMismatch(s.path, KindString.String(), s.v)
	}
	return s.v.s, nil
}

// Float64 reinterprets the value as a float64.
func (s *Scalar) Float64() (float64, error) {
	if s.v.kind != KindFloat {
		return 0, typeMismatch(s.path, KindFloat.String(), s.v)
	}
	return s.v.f, nil
}

// Float32 reinterprets the value as a float32. Magnitudes outside the
// float32 range fail rather than rounding to infinity.
func (s *Scalar) Float32() (float32, error) {
	if s.v.kind != KindFloat {
		return 0, typeMismatch(s.path, "float32", s.v)
	}
	f := s.v.f
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, typeMismatch(s.path, "float32", s.v)
	}
	return float32(f), nil
}

// Int reinterprets the value as a native int.
func (s *Scalar) Int() (int, error) {
	if s.v.kind != KindInt {
		return 0, typeMismatch(s.path, KindInt.String(), s.v)
	}
	i := s.v.i
	if int64(int(i)) != i {
		return 0, typeMismatch(s.path, KindInt.String(), s.v)
	}
	return int(i), nil
}

// Uint reinterprets the value as a native uint. Negative integers fail: they
// cannot be reinterpreted as an unsigned width without changing the value.
func (s *Scalar) Uint() (uint, error) {
	if s.v.kind != KindInt {
		return 0, typeMismatch(s.path, "uint", s.v)
	}
	if s.v.i < 0 {
		return 0, typeMismatch(s.path, "uint", s.v)
	}
	return uint(s.v.i), nil
}

// Int64 reinterprets the value as an int64.
func (s *Scalar) Int64() (int64, error) {
	if s.v.kind != KindInt {
		return 0, typeMismatch(s.path, KindInt.String(), s.v)
	}
	return s.v.i, nil
}
