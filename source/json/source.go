// Package json builds treedec value trees from JSON input using goccy/go-json.
// Numbers are read in number-preserving mode so integers survive without a
// float round trip.
package json

import (
	"bytes"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	treedec "github.com/treedec/treedec"
)

// Bytes parses one JSON document from b into a Value.
func Bytes(b []byte) (treedec.Value, error) {
	return Reader(bytes.NewReader(b))
}

// Reader parses one JSON document from r into a Value.
func Reader(r io.Reader) (treedec.Value, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return treedec.Value{}, fmt.Errorf("json source: %w", err)
	}
	return treedec.FromAny(raw)
}
