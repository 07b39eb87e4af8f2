package treedec_test

import (
	"testing"

	treedec "github.com/treedec/treedec"
)

func TestPath_Rendering(t *testing.T) {
	var p treedec.Path
	if got := p.String(); got != "/" {
		t.Fatalf("root path renders %q, want /", got)
	}
	p = p.WithField("items").WithIndex(2).WithField("price")
	if got := p.String(); got != "/items/2/price" {
		t.Fatalf("got %q", got)
	}
}

func TestPath_EscapesPointerCharacters(t *testing.T) {
	p := treedec.Path{}.WithField("a/b").WithField("c~d")
	if got := p.String(); got != "/a~1b/c~0d" {
		t.Fatalf("got %q", got)
	}
}

// Extending a parent path for one sibling must never leak into another
// sibling's extension of the same parent.
func TestPath_SiblingExtensionsDoNotAlias(t *testing.T) {
	parent := treedec.Path{}.WithField("root")
	left := parent.WithIndex(0)
	right := parent.WithIndex(1)
	if got := left.String(); got != "/root/0" {
		t.Fatalf("left corrupted: %q", got)
	}
	if got := right.String(); got != "/root/1" {
		t.Fatalf("right corrupted: %q", got)
	}
	if got := parent.String(); got != "/root" {
		t.Fatalf("parent mutated: %q", got)
	}
}

func TestSegment_Accessors(t *testing.T) {
	f := treedec.Field("name")
	if !f.IsField() || f.FieldName() != "name" {
		t.Fatalf("field segment accessors broken: %+v", f)
	}
	i := treedec.Index(3)
	if i.IsField() || i.Position() != 3 {
		t.Fatalf("index segment accessors broken: %+v", i)
	}
}
