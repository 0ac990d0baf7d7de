// Package codec decodes CBOR and JSON documents into Go values of any type
// a plan can be built for.
//
// The wire formats are first read into their generic form (nil, bool,
// numbers, strings, []byte, []any and map[string]any), then converted by the
// plan built for the (schema, destination type) pair.
package codec
