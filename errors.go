package treedec

import (
	"errors"
	"fmt"

	"github.com/treedec/treedec/i18n"
)

// Failure codes (exported consts for IDE completion and type safety by convention)
const (
	CodeShapeMismatch = "shape_mismatch"
	CodeKeyNotFound   = "key_not_found"
	CodeTypeMismatch  = "type_mismatch"
	CodeOutOfBounds   = "element_out_of_bounds"
)

// DecodeError is the single failure type surfaced by decoding. It always
// carries the Path of the deepest point of failure and one of the codes
// listed above.
type DecodeError struct {
	Path    Path   // Route from the decode root (renders as a JSON Pointer).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: known keys, expected shapes, etc.
	// Params carries structured parameters (e.g., {"expected":"int",
	// "found":"string"}) for i18n and observability.
	Params map[string]any
}

func (e *DecodeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at %s", e.Code, e.Path)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

// AsDecodeError extracts a *DecodeError using errors.As internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// UsageError reports that the schema requested an unimplemented decoding
// feature. It is deliberately not a DecodeError: it signals a programming
// error in the target's decoding logic, not malformed input data.
type UsageError struct {
	Feature string
	Path    Path
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("treedec: unsupported feature %q requested at %s", e.Feature, e.Path)
}

// IsUsageError reports whether err (or anything it wraps) is a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

func shapeMismatch(path Path, expected Kind, found Value) *DecodeError {
	return &DecodeError{
		Path:    path,
		Code:    CodeShapeMismatch,
		Message: i18n.T(CodeShapeMismatch, nil),
		Hint:    "expected " + expected.String() + " container",
		Params:  map[string]any{"expected": expected.String(), "found": found.Kind().String()},
	}
}

func keyNotFound(path Path, field string, known []string) *DecodeError {
	e := &DecodeError{
		Path:    path,
		Code:    CodeKeyNotFound,
		Message: i18n.T(CodeKeyNotFound, map[string]string{"key": field}),
		Params:  map[string]any{"key": field},
	}
	if len(known) > 0 {
		e.Hint = fmt.Sprintf("known keys: %v", known)
	}
	return e
}

func typeMismatch(path Path, expected string, found Value) *DecodeError {
	return &DecodeError{
		Path:    path,
		Code:    CodeTypeMismatch,
		Message: i18n.T(CodeTypeMismatch, map[string]string{"expected": expected}),
		Params:  map[string]any{"expected": expected, "found": found.Kind().String()},
	}
}

func outOfBounds(path Path, index, count int) *DecodeError {
	return &DecodeError{
		Path:    path,
		Code:    CodeOutOfBounds,
		Message: i18n.T(CodeOutOfBounds, nil),
		Params:  map[string]any{"index": index, "count": count},
	}
}
