package treedec_test

import (
	"testing"

	treedec "github.com/treedec/treedec"
)

func TestDecoder_KeyedOverNonKeyedIsShapeMismatch(t *testing.T) {
	d := treedec.NewDecoder(treedec.String("hello"))
	_, err := d.Keyed()
	de, ok := treedec.AsDecodeError(err)
	if !ok || de.Code != treedec.CodeShapeMismatch {
		t.Fatalf("expected shape_mismatch, got %v", err)
	}
	if de.Params["expected"] != "keyed" || de.Params["found"] != "string" {
		t.Fatalf("unexpected params: %v", de.Params)
	}
}

func TestDecoder_OrderedOverNonOrderedIsShapeMismatch(t *testing.T) {
	d := treedec.NewDecoder(treedec.Keyed(nil))
	_, err := d.Ordered()
	de, ok := treedec.AsDecodeError(err)
	if !ok || de.Code != treedec.CodeShapeMismatch {
		t.Fatalf("expected shape_mismatch, got %v", err)
	}
}

// Scalar acquisition is structurally deferred: it succeeds over any value and
// mismatches surface only per requested primitive.
func TestDecoder_ScalarAcquisitionNeverFails(t *testing.T) {
	s := treedec.NewDecoder(treedec.Ordered()).Scalar()
	if s == nil {
		t.Fatalf("scalar view must always be acquirable")
	}
	_, err := s.Bool()
	de, ok := treedec.AsDecodeError(err)
	if !ok || de.Code != treedec.CodeTypeMismatch {
		t.Fatalf("expected deferred type_mismatch, got %v", err)
	}
}

func TestDecoder_ViewsCarryAcquisitionPath(t *testing.T) {
	root := treedec.MustFromAny(map[string]any{
		"outer": map[string]any{"inner": []any{true}},
	})
	kc, err := treedec.NewDecoder(root).Keyed()
	if err != nil {
		t.Fatalf("keyed: %v", err)
	}
	inner, err := kc.NestedKeyed("outer")
	if err != nil {
		t.Fatalf("nested: %v", err)
	}
	if got := inner.Path().String(); got != "/outer" {
		t.Fatalf("inner path %q", got)
	}
	oc, err := inner.NestedOrdered("inner")
	if err != nil {
		t.Fatalf("nested ordered: %v", err)
	}
	if got := oc.Path().String(); got != "/outer/inner" {
		t.Fatalf("ordered path %q", got)
	}
}
