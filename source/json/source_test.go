package json_test

import (
	"strings"
	"testing"

	treedec "github.com/treedec/treedec"
	jsonsrc "github.com/treedec/treedec/source/json"
)

func TestBytes_BuildsTree(t *testing.T) {
	v, err := jsonsrc.Bytes([]byte(`{"name":"a","n":3,"f":1.5,"ok":true,"nil":null,"seq":[1,2]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	kc, err := treedec.NewDecoder(v).Keyed()
	if err != nil {
		t.Fatalf("keyed: %v", err)
	}
	if s, err := kc.String("name"); err != nil || s != "a" {
		t.Fatalf("name: %q, %v", s, err)
	}
	// integers survive without a float round trip
	if n, err := kc.Int("n"); err != nil || n != 3 {
		t.Fatalf("n: %d, %v", n, err)
	}
	if f, err := kc.Float64("f"); err != nil || f != 1.5 {
		t.Fatalf("f: %v, %v", f, err)
	}
	if null, err := kc.IsNull("nil"); err != nil || !null {
		t.Fatalf("nil: %v, %v", null, err)
	}
	oc, err := kc.NestedOrdered("seq")
	if err != nil || oc.Count() != 2 {
		t.Fatalf("seq: %v", err)
	}
}

func TestBytes_SyntaxError(t *testing.T) {
	if _, err := jsonsrc.Bytes([]byte(`{"broken"`)); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestReader(t *testing.T) {
	v, err := jsonsrc.Reader(strings.NewReader(`[true]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v.Kind() != treedec.KindOrdered {
		t.Fatalf("kind: %s", v.Kind())
	}
}
