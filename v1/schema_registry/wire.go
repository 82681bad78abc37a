package schema_registry

import "encoding/binary"

// magicByte marks a payload as Confluent wire-format framed.
const magicByte = 0x0

// headerLength is the size of the framing prefix: magic byte plus the
// big-endian uint32 schema identifier.
const headerLength = 5

// Framing classifies a payload with respect to the Confluent wire format.
type Framing int

const (
	// FramingNull means the payload was absent (nil), e.g. a Kafka
	// tombstone or a message without a key.
	FramingNull Framing = iota

	// FramingValid means the payload carries the magic byte and a schema
	// identifier followed by serialized data.
	FramingValid

	// FramingInvalid means the payload is present but not wire-format
	// framed. This is not an error classification: such payloads are
	// treated as opaque bytes by lenient consumers.
	FramingInvalid
)

// ClassifyPayload inspects payload and strips the wire-format prefix when
// present. It is total: every input maps to exactly one classification.
//
// For FramingValid the returned id is the schema identifier and rest is the
// payload after the 5-byte prefix. For FramingInvalid rest is the original
// payload unchanged. For FramingNull both return values are zero.
//
// A nil payload is Null; a non-nil payload shorter than the prefix, or one
// not starting with the magic byte, is Invalid.
func ClassifyPayload(payload []byte) (kind Framing, id uint32, rest []byte) {
	if payload == nil {
		return FramingNull, 0, nil
	}
	if len(payload) <= headerLength-1 || payload[0] != magicByte {
		return FramingInvalid, 0, payload
	}
	return FramingValid, binary.BigEndian.Uint32(payload[1:headerLength]), payload[headerLength:]
}

// EncodeWireHeader encodes a schema ID in the Confluent wire format.
// Format: [magic_byte][schema_id]
// - magic_byte: 0x0 (1 byte)
// - schema_id: 4 bytes (big-endian)
func EncodeWireHeader(id uint32) []byte {
	buf := make([]byte, headerLength)
	buf[0] = magicByte
	binary.BigEndian.PutUint32(buf[1:], id)
	return buf
}
