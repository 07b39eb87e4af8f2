package treedec

// Package treedec decodes dynamically-typed value trees into statically-typed
// Go values, with precise path-annotated errors:
//
// - A closed Value variant (Null/Bool/Int/Float/String/Keyed/Ordered) for the
//   input tree, built from loose Go values via FromAny or the source drivers
// - A Decoder that offers keyed, ordered, and scalar views over one Value
// - A stable error model via DecodeError (JSON Pointer path, code, message)
// - An Unmarshaler interface through which target types consume the views
//
// Design policy:
// - Keep the decoding protocol in the root package; put binding helpers under
//   bind/, input drivers under source/, and the CLI under cmd/treedec.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsonsrc.Bytes(data)
//	var u User
//	err = treedec.Decode(v, &u)
//
//	u, err := treedec.As[User](v)
//
