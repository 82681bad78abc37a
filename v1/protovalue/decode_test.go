package protovalue

import (
	"context"
	"testing"

	"github.com/bufbuild/protocompile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

const orderSchema = `syntax = "proto3";

package org.acme.shop;

enum Status {
  STATUS_UNKNOWN = 0;
  STATUS_PAID = 1;
  STATUS_SHIPPED = 2;
}

message LineItem {
  string sku = 1;
  int64 quantity = 2;
}

message Order {
  uint64 id = 1;
  string customer = 2;
  Status status = 3;
  repeated LineItem items = 4;
  repeated string tags = 5;
  bytes checksum = 6;
  double total = 7;
  bool express = 8;
}
`

func compileTestSchema(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(map[string]string{
				"order.proto": orderSchema,
			}),
		}),
	}
	files, err := compiler.Compile(context.Background(), "order.proto")
	require.NoError(t, err)
	require.Len(t, files, 1)
	return files[0]
}

func TestDecodeMessageRoundTrip(t *testing.T) {
	fd := compileTestSchema(t)
	orderDesc := fd.Messages().ByName("Order")
	require.NotNil(t, orderDesc)
	itemDesc := fd.Messages().ByName("LineItem")
	require.NotNil(t, itemDesc)

	order := dynamicpb.NewMessage(orderDesc)
	fields := orderDesc.Fields()
	order.Set(fields.ByName("id"), protoreflect.ValueOfUint64(101))
	order.Set(fields.ByName("customer"), protoreflect.ValueOfString("ada"))
	order.Set(fields.ByName("status"), protoreflect.ValueOfEnum(1))
	order.Set(fields.ByName("checksum"), protoreflect.ValueOfBytes([]byte{0xca, 0xfe}))
	order.Set(fields.ByName("total"), protoreflect.ValueOfFloat64(99.5))
	order.Set(fields.ByName("express"), protoreflect.ValueOfBool(true))

	items := order.Mutable(fields.ByName("items")).List()
	item := dynamicpb.NewMessage(itemDesc)
	item.Set(itemDesc.Fields().ByName("sku"), protoreflect.ValueOfString("A-1"))
	item.Set(itemDesc.Fields().ByName("quantity"), protoreflect.ValueOfInt64(3))
	items.Append(protoreflect.ValueOfMessage(item))

	tags := order.Mutable(fields.ByName("tags")).List()
	tags.Append(protoreflect.ValueOfString("gift"))
	tags.Append(protoreflect.ValueOfString("priority"))

	payload, err := proto.Marshal(order)
	require.NoError(t, err)

	decoded, err := DecodeMessage(orderDesc, payload)
	require.NoError(t, err)
	assert.Equal(t, "org.acme.shop.Order", decoded.FullName)

	id, ok := decoded.FieldByNumber(1)
	require.True(t, ok)
	assert.Equal(t, UInt64(101), id)

	customer, ok := decoded.FieldByNumber(2)
	require.True(t, ok)
	assert.Equal(t, String("ada"), customer)

	status, ok := decoded.FieldByNumber(3)
	require.True(t, ok)
	assert.Equal(t, Enum{Number: 1, Name: "STATUS_PAID"}, status)

	itemsValue, ok := decoded.FieldByNumber(4)
	require.True(t, ok)
	itemList, isList := itemsValue.(*List)
	require.True(t, isList)
	require.Len(t, itemList.Values, 1)
	lineItem, isMessage := itemList.Values[0].(*Message)
	require.True(t, isMessage)
	assert.Equal(t, "org.acme.shop.LineItem", lineItem.FullName)
	sku, ok := lineItem.FieldByNumber(1)
	require.True(t, ok)
	assert.Equal(t, String("A-1"), sku)
	quantity, ok := lineItem.FieldByNumber(2)
	require.True(t, ok)
	assert.Equal(t, Int64(3), quantity)

	tagsValue, ok := decoded.FieldByNumber(5)
	require.True(t, ok)
	tagList, isList := tagsValue.(*List)
	require.True(t, isList)
	assert.Equal(t, []Value{String("gift"), String("priority")}, tagList.Values)

	checksum, ok := decoded.FieldByNumber(6)
	require.True(t, ok)
	assert.Equal(t, Bytes{0xca, 0xfe}, checksum)

	total, ok := decoded.FieldByNumber(7)
	require.True(t, ok)
	assert.Equal(t, Float64(99.5), total)

	express, ok := decoded.FieldByNumber(8)
	require.True(t, ok)
	assert.Equal(t, Bool(true), express)
}

func TestDecodeMessageSkipsAbsentFields(t *testing.T) {
	fd := compileTestSchema(t)
	orderDesc := fd.Messages().ByName("Order")

	order := dynamicpb.NewMessage(orderDesc)
	order.Set(orderDesc.Fields().ByName("id"), protoreflect.ValueOfUint64(1))

	payload, err := proto.Marshal(order)
	require.NoError(t, err)

	decoded, err := DecodeMessage(orderDesc, payload)
	require.NoError(t, err)
	require.Len(t, decoded.Fields, 1)
	assert.Equal(t, int32(1), decoded.Fields[0].Number)

	_, ok := decoded.FieldByNumber(2)
	assert.False(t, ok)
}

func TestDecodeMessageFieldOrderFollowsDeclaration(t *testing.T) {
	fd := compileTestSchema(t)
	orderDesc := fd.Messages().ByName("Order")

	order := dynamicpb.NewMessage(orderDesc)
	fields := orderDesc.Fields()
	// Set in reverse declaration order; output order must still follow the schema.
	order.Set(fields.ByName("express"), protoreflect.ValueOfBool(true))
	order.Set(fields.ByName("customer"), protoreflect.ValueOfString("bob"))
	order.Set(fields.ByName("id"), protoreflect.ValueOfUint64(2))

	payload, err := proto.Marshal(order)
	require.NoError(t, err)

	decoded, err := DecodeMessage(orderDesc, payload)
	require.NoError(t, err)
	numbers := make([]int32, 0, len(decoded.Fields))
	for _, f := range decoded.Fields {
		numbers = append(numbers, f.Number)
	}
	assert.Equal(t, []int32{1, 2, 8}, numbers)
}

func TestDecodeMessageMalformedPayload(t *testing.T) {
	fd := compileTestSchema(t)
	orderDesc := fd.Messages().ByName("Order")

	_, err := DecodeMessage(orderDesc, []byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}
