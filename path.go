package treedec

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a field name in a keyed container or
// a position in an ordered container.
type Segment struct {
	name  string
	index int
	keyed bool
}

// Field returns a field-name segment.
func Field(name string) Segment { return Segment{name: name, keyed: true} }

// Index returns a positional segment.
func Index(i int) Segment { return Segment{index: i} }

// IsField reports whether the segment names a keyed field.
func (s Segment) IsField() bool { return s.keyed }

// FieldName returns the field name; empty for index segments.
func (s Segment) FieldName() string { return s.name }

// Position returns the positional index; 0 for field segments.
func (s Segment) Position() int { return s.index }

func (s Segment) String() string {
	if s.keyed {
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		return strings.ReplaceAll(strings.ReplaceAll(s.name, "~", "~0"), "/", "~1")
	}
	return strconv.Itoa(s.index)
}

// Path is the route from the decode root to the value under examination.
// Paths are extended by copy, never in place: a parent path handed to two
// sibling traversals is never aliased by either extension.
type Path []Segment

// WithField returns a copy of p extended by a field segment.
func (p Path) WithField(name string) Path { return p.with(Field(name)) }

// WithIndex returns a copy of p extended by an index segment.
func (p Path) WithIndex(i int) Path { return p.with(Index(i)) }

func (p Path) with(seg Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// String renders the path as a JSON Pointer; the root path renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(seg.String())
	}
	return b.String()
}
