// Package schema_registry provides read access to a Confluent Schema Registry
// and the Confluent wire-format framing used by registry-aware payloads.
//
// The package is the registry collaborator for the protodecode decoder: it
// fetches registered schema documents by identifier and referenced schema
// documents by subject/version, including each document's reference list so
// transitive schema graphs can be resolved. It deliberately does not cache;
// the decoder owns caching (with single-flight deduplication and error
// persistence), so the client stays a thin, stateless HTTP wrapper.
//
// Core Features:
//   - HTTP client for Confluent Schema Registry (basic auth, timeouts)
//   - Schema retrieval by identifier, including soft-deleted schemas
//   - Referenced schema retrieval by subject and version
//   - Confluent wire-format framing: classification and header encoding
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/protodecode/v1/schema_registry"
//
//	registry, err := schema_registry.NewClient(schema_registry.Config{
//	    URL:      "http://localhost:8081",
//	    Username: "user",     // Optional
//	    Password: "password", // Optional
//	    Timeout:  10 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	schema, err := registry.GetSchemaByID(ctx, 7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ref := range schema.References {
//	    child, err := registry.GetReferencedSchema(ctx, ref)
//	    // ...
//	}
//
// Wire Format:
//
// Registry-framed payloads start with a fixed prefix:
//
//	[magic_byte (1 byte)] [schema_id (4 bytes, big-endian)] [payload]
//
// The magic byte is always 0x0. ClassifyPayload splits a payload against this
// format and never fails: absent payloads classify as Null, unframed payloads
// as Invalid (opaque bytes), framed payloads as Valid with the identifier and
// remaining bytes. For protobuf payloads the remaining bytes begin with a
// message-index path; that envelope belongs to the protodecode package.
//
// Error Handling:
//
// ErrSchemaNotFound (non-retryable; registry entries are immutable) and
// ErrRegistryUnavailable (retryable; transport or server failure) are exposed
// as sentinel errors and can be tested with errors.Is or the Is* helpers.
//
// Using with FX:
//
//	app := fx.New(
//	    schema_registry.FXModule,
//	    fx.Provide(func() schema_registry.Config {
//	        return schema_registry.Config{URL: os.Getenv("SCHEMA_REGISTRY_URL")}
//	    }),
//	)
package schema_registry
