// Package protodecode decodes protobuf payloads that were serialized against
// a schema registered in a Confluent Schema Registry.
//
// Registry-framed payloads carry only a compact schema identifier, not the
// schema itself. The decoder turns that identifier into a usable schema: it
// fetches the registered schema document, recursively resolves its
// transitive references into a dependency-ordered closure, compiles the
// closure (plus the standard well-known types) into a descriptor set, and
// uses the message-index envelope in the payload to pick the concrete
// message type to decode. The result is an untyped value tree (see the
// protovalue package) usable without generated code.
//
// Caching:
//
// All of the expensive work is cached per schema identifier for the lifetime
// of the decoder:
//   - schema closures (one registry round-trip sequence per identifier)
//   - compiled decode contexts (one compilation per identifier)
//
// Cache misses coalesce: any number of concurrent decode calls for the same
// never-seen identifier trigger exactly one registry fetch and one
// compilation, with all callers sharing the outcome. There is no eviction by
// size or age.
//
// Closure failures (registry outages, missing schemas, uncompilable schema
// graphs) are persisted in a separate error cache and replayed - marked as
// cached - so a poisoned identifier fails fast without hammering the
// registry. Payload defects (bad envelope, unresolvable message index,
// unparseable body) are never cached, since the next payload may be fine.
// ClearCachedErrors drops all persisted errors at once, e.g. after a
// registry outage is believed resolved.
//
// Basic Usage:
//
//	registry, err := schema_registry.NewClient(schema_registry.Config{
//	    URL: "http://localhost:8081",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoder, err := protodecode.NewDecoder(protodecode.Config{Registry: registry})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	value, err := decoder.Decode(ctx, message.Value)
//	if err != nil {
//	    if protodecode.IsRetryable(err) {
//	        decoder.ClearCachedErrors()
//	    }
//	    return err
//	}
//	switch v := value.(type) {
//	case *protovalue.Message:
//	    // decoded message tree
//	case protovalue.Bytes:
//	    // tombstone or unframed payload, passed through verbatim
//	}
//
// Decode is lenient about framing so it can be pointed at any Kafka key or
// value: nil payloads become empty Bytes values and unframed payloads are
// passed through as opaque Bytes. DecodeWithContext is the strict variant:
// it rejects unframed payloads and additionally returns the decode context,
// resolved message name and raw payload bytes so downstream consumers can
// re-derive field descriptors without recompiling the schema.
//
// Using with FX:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema_registry.FXModule,
//	    protodecode.FXModule,
//	    fx.Provide(func() schema_registry.Config {
//	        return schema_registry.Config{URL: os.Getenv("SCHEMA_REGISTRY_URL")}
//	    }),
//	)
//
// For consuming and decoding Kafka topics directly, see the kafka package,
// which wraps a reader around this decoder.
package protodecode
