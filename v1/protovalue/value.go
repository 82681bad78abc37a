package protovalue

// Value is one node of a decoded message tree.
//
// Value is a closed sum: the concrete types are the scalar kinds (Bool,
// Int32, Int64, UInt32, UInt64, Float32, Float64, String, Bytes), Enum,
// *Message and *List. Consumers switch on the concrete type:
//
//	switch v := value.(type) {
//	case protovalue.UInt64:
//	    // ...
//	case *protovalue.Message:
//	    // ...
//	}
type Value interface {
	isValue()
}

// Bool is a decoded protobuf bool field.
type Bool bool

// Int32 is a decoded int32, sint32 or sfixed32 field.
type Int32 int32

// Int64 is a decoded int64, sint64 or sfixed64 field.
type Int64 int64

// UInt32 is a decoded uint32 or fixed32 field.
type UInt32 uint32

// UInt64 is a decoded uint64 or fixed64 field.
type UInt64 uint64

// Float32 is a decoded float field.
type Float32 float32

// Float64 is a decoded double field.
type Float64 float64

// String is a decoded string field.
type String string

// Bytes is a decoded bytes field, or an opaque payload that could not be
// classified as registry-framed.
type Bytes []byte

// Enum is a decoded enum field: the wire number plus the symbolic name
// declared for it, if any.
type Enum struct {
	Number int32
	Name   string
}

// Field is a single populated field of a message: its declared field number
// and decoded value.
type Field struct {
	Number int32
	Value  Value
}

// Message is a decoded message: its fully-qualified type name and the
// populated fields in declaration order. Fields absent from the wire are
// omitted.
type Message struct {
	FullName string
	Fields   []Field
}

// List is a decoded repeated field or map field. Map fields surface as a
// list of entry messages with key (field 1) and value (field 2); entry order
// is unspecified.
type List struct {
	Values []Value
}

func (Bool) isValue()     {}
func (Int32) isValue()    {}
func (Int64) isValue()    {}
func (UInt32) isValue()   {}
func (UInt64) isValue()   {}
func (Float32) isValue()  {}
func (Float64) isValue()  {}
func (String) isValue()   {}
func (Bytes) isValue()    {}
func (Enum) isValue()     {}
func (*Message) isValue() {}
func (*List) isValue()    {}

// FieldByNumber returns the value of the field with the given number.
func (m *Message) FieldByNumber(number int32) (Value, bool) {
	for _, f := range m.Fields {
		if f.Number == number {
			return f.Value, true
		}
	}
	return nil, false
}
