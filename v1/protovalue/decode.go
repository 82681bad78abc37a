package protovalue

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// DecodeMessage decodes a raw protobuf payload against a message descriptor
// and returns the resulting value tree.
//
// The payload must be the serialized form of the message type described by
// desc, without any framing or envelope prefix.
func DecodeMessage(desc protoreflect.MessageDescriptor, payload []byte) (*Message, error) {
	msg := dynamicpb.NewMessage(desc)
	if err := proto.Unmarshal(payload, msg); err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", desc.FullName(), err)
	}
	return fromMessage(msg), nil
}

// fromMessage converts a reflected message into a Message tree. Fields are
// emitted in declaration order; fields not present on the wire are skipped,
// which for proto3 scalars also skips explicit zero values, matching the
// wire-level view of the payload.
func fromMessage(m protoreflect.Message) *Message {
	desc := m.Descriptor()
	out := &Message{FullName: string(desc.FullName())}

	fields := desc.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if !m.Has(fd) {
			continue
		}
		out.Fields = append(out.Fields, Field{
			Number: int32(fd.Number()),
			Value:  fromField(fd, m.Get(fd)),
		})
	}
	return out
}

func fromField(fd protoreflect.FieldDescriptor, v protoreflect.Value) Value {
	switch {
	case fd.IsMap():
		return fromMap(fd, v.Map())
	case fd.IsList():
		list := v.List()
		out := &List{Values: make([]Value, 0, list.Len())}
		for i := 0; i < list.Len(); i++ {
			out.Values = append(out.Values, fromSingular(fd, list.Get(i)))
		}
		return out
	default:
		return fromSingular(fd, v)
	}
}

// fromMap flattens a map field into a list of synthetic entry messages, each
// carrying the key as field 1 and the value as field 2.
func fromMap(fd protoreflect.FieldDescriptor, m protoreflect.Map) Value {
	entryDesc := fd.Message()
	keyDesc := fd.MapKey()
	valDesc := fd.MapValue()

	out := &List{Values: make([]Value, 0, m.Len())}
	m.Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
		entry := &Message{
			FullName: string(entryDesc.FullName()),
			Fields: []Field{
				{Number: int32(keyDesc.Number()), Value: fromSingular(keyDesc, k.Value())},
				{Number: int32(valDesc.Number()), Value: fromSingular(valDesc, v)},
			},
		}
		out.Values = append(out.Values, entry)
		return true
	})
	return out
}

func fromSingular(fd protoreflect.FieldDescriptor, v protoreflect.Value) Value {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return Bool(v.Bool())
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return Int32(v.Int())
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return Int64(v.Int())
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return UInt32(v.Uint())
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return UInt64(v.Uint())
	case protoreflect.FloatKind:
		return Float32(v.Float())
	case protoreflect.DoubleKind:
		return Float64(v.Float())
	case protoreflect.StringKind:
		return String(v.String())
	case protoreflect.BytesKind:
		return Bytes(append([]byte(nil), v.Bytes()...))
	case protoreflect.EnumKind:
		number := int32(v.Enum())
		var name string
		if ev := fd.Enum().Values().ByNumber(v.Enum()); ev != nil {
			name = string(ev.Name())
		}
		return Enum{Number: number, Name: name}
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return fromMessage(v.Message())
	default:
		// All protoreflect kinds are covered above; a new kind in a
		// future protobuf release would land here.
		panic(fmt.Sprintf("protovalue: unsupported field kind %v", fd.Kind()))
	}
}
