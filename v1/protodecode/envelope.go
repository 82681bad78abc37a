package protodecode

import (
	"encoding/binary"
	"fmt"
)

// splitIndexPath reads the message-index envelope that precedes the protobuf
// body in a registry-framed payload (after the magic byte and schema
// identifier have been stripped).
//
// The envelope is either the single byte 0x00, shorthand for the one-element
// path [0], or a zigzag-varint element count followed by that many
// zigzag-varint indexes. Everything after the envelope is the protobuf body.
func splitIndexPath(b []byte) ([]int64, []byte, error) {
	if len(b) == 0 {
		return nil, nil, newNonRetryable("empty message payload", ErrInvalidWirePayload)
	}
	if b[0] == 0 {
		return []int64{0}, b[1:], nil
	}

	count, n := binary.Varint(b)
	if n <= 0 || count < 0 {
		return nil, nil, newNonRetryable("malformed message index count", ErrInvalidWirePayload)
	}
	rest := b[n:]
	// Each index occupies at least one byte, so a count larger than the
	// remaining payload cannot be honest.
	if count > int64(len(rest)) {
		return nil, nil, newNonRetryable(fmt.Sprintf("message index count %d exceeds payload", count), ErrInvalidWirePayload)
	}

	path := make([]int64, 0, count)
	for i := int64(0); i < count; i++ {
		index, n := binary.Varint(rest)
		if n <= 0 || index < 0 {
			return nil, nil, newNonRetryable("malformed message index", ErrInvalidWirePayload)
		}
		path = append(path, index)
		rest = rest[n:]
	}
	return path, rest, nil
}

// EncodeIndexPath prepends the message-index envelope for path to payload.
// A nil, empty or [0] path uses the single-byte shorthand. The result is the
// registry protobuf body; prepend schema_registry.EncodeWireHeader to obtain
// a complete framed payload.
func EncodeIndexPath(path []int64, payload []byte) []byte {
	if len(path) == 0 || (len(path) == 1 && path[0] == 0) {
		out := make([]byte, 0, 1+len(payload))
		out = append(out, 0)
		return append(out, payload...)
	}

	buf := binary.AppendVarint(nil, int64(len(path)))
	for _, index := range path {
		buf = binary.AppendVarint(buf, index)
	}
	return append(buf, payload...)
}
