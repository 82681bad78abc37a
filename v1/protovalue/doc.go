// Package protovalue decodes raw protobuf payloads into an untyped,
// schema-described value tree.
//
// Given a message descriptor (typically obtained from a compiled schema
// closure, see the protodecode package) and the serialized bytes of a
// message of that type, DecodeMessage produces a tree of Value nodes:
// scalar leaves, byte strings, enums with their symbolic names, nested
// messages as ordered field lists, and repeated fields as lists. The tree is
// plain data with no retained references to the descriptor machinery, so it
// can be passed across API boundaries and inspected with a type switch.
//
// Decoding is driven by google.golang.org/protobuf: the payload is
// unmarshaled into a dynamicpb message and the reflected field values are
// converted leaf by leaf.
package protovalue
