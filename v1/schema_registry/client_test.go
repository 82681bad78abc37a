package schema_registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schemas/ids/7", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("deleted"))
		assert.Equal(t, "application/vnd.schemaregistry.v1+json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"schema":     `syntax = "proto3"; message Heartbeat { uint64 identifier = 1; }`,
			"schemaType": "PROTOBUF",
			"id":         7,
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{URL: server.URL})
	require.NoError(t, err)

	schema, err := client.GetSchemaByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), schema.ID)
	assert.Equal(t, "PROTOBUF", schema.SchemaType)
	assert.Contains(t, schema.Schema, "Heartbeat")
	assert.Empty(t, schema.References)
}

func TestGetSchemaByIDParsesReferences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"schema":     `syntax = "proto3"; import "result.proto"; message Test { org.acme.Result result = 1; }`,
			"schemaType": "PROTOBUF",
			"id":         6,
			"references": []map[string]interface{}{
				{"name": "result.proto", "subject": "result.proto", "version": 1},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{URL: server.URL})
	require.NoError(t, err)

	schema, err := client.GetSchemaByID(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, schema.References, 1)
	assert.Equal(t, Reference{Name: "result.proto", Subject: "result.proto", Version: 1}, schema.References[0])
}

func TestGetReferencedSchema(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subjects/result.proto/versions/1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"schema": `syntax = "proto3"; package org.acme; message Result { string up = 1; }`,
			"id":     1,
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{URL: server.URL})
	require.NoError(t, err)

	schema, err := client.GetReferencedSchema(context.Background(), Reference{
		Name:    "result.proto",
		Subject: "result.proto",
		Version: 1,
	})
	require.NoError(t, err)
	assert.Contains(t, schema.Schema, "Result")
}

func TestGetSchemaByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error_code":40403,"message":"Schema not found"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{URL: server.URL})
	require.NoError(t, err)

	_, err = client.GetSchemaByID(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsUnavailableError(err))
}

func TestGetSchemaByIDServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(Config{URL: server.URL})
	require.NoError(t, err)

	_, err = client.GetSchemaByID(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsUnavailableError(err))
}

func TestGetSchemaByIDConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client, err := NewClient(Config{URL: server.URL})
	require.NoError(t, err)

	_, err = client.GetSchemaByID(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsUnavailableError(err))
}

func TestGetSchemaByIDBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "secret", pass)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"schema": "syntax = \"proto3\";", "id": 1})
	}))
	defer server.Close()

	client, err := NewClient(Config{URL: server.URL, Username: "user", Password: "secret"})
	require.NoError(t, err)

	_, err = client.GetSchemaByID(context.Background(), 1)
	require.NoError(t, err)
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient(Config{})
	require.Error(t, err)
}
