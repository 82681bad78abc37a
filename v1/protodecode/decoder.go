package protodecode

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/Aleph-Alpha/protodecode/v1/cache"
	"github.com/Aleph-Alpha/protodecode/v1/logger"
	"github.com/Aleph-Alpha/protodecode/v1/observability"
	"github.com/Aleph-Alpha/protodecode/v1/protovalue"
	"github.com/Aleph-Alpha/protodecode/v1/schema_registry"
)

// tracerName identifies decoder spans to OpenTelemetry.
const tracerName = "github.com/Aleph-Alpha/protodecode/v1/protodecode"

// Config holds configuration for the decoder.
type Config struct {
	// Registry fetches schema documents. Required.
	Registry schema_registry.Registry

	// Logger receives cache and pipeline diagnostics. Optional.
	Logger *logger.Logger
}

// Decoder decodes registry-framed protobuf payloads into value trees.
//
// The schema needed for a payload is encoded in the payload itself, so a
// single Decoder handles all subjects regardless of naming strategy. Schema
// closures and compiled decode contexts are cached per identifier with
// single-flight construction: concurrent decode calls for a never-seen
// identifier trigger exactly one registry fetch and one compilation. Both
// caches grow for the lifetime of the Decoder; only the error cache can be
// cleared, via ClearCachedErrors.
//
// Decoder is safe for concurrent use.
type Decoder struct {
	registry schema_registry.Registry
	log      *logger.Logger
	observer observability.Observer
	tracer   trace.Tracer

	closures *cache.Loader[uint32, *Closure]
	contexts *cache.Loader[uint32, *DecodeContext]

	// errMu guards cachedErrors. Closure-build failures are persisted
	// here and replayed until explicitly cleared, so a poisoned
	// identifier fails fast without recontacting the registry.
	errMu        sync.RWMutex
	cachedErrors map[uint32]*Error
}

// DecodeResult is the outcome of DecodeWithContext: the decoded value plus
// enough context for downstream consumers to re-derive field descriptors
// without recompiling the schema.
type DecodeResult struct {
	// Value is the decoded message.
	Value *protovalue.Message

	// Context is the decode context the payload was decoded against.
	Context *DecodeContext

	// FullName is the fully-qualified name of the decoded message type.
	FullName protoreflect.FullName

	// PayloadBytes are the raw protobuf bytes that were decoded, after
	// the framing prefix and message-index envelope.
	PayloadBytes []byte
}

// NewDecoder creates a decoder that fetches schemas through cfg.Registry.
//
// Recoverable errors stay in the error cache; when a decode call reports a
// retryable error and the underlying outage is believed resolved, use
// ClearCachedErrors to allow the next call to retry while keeping all
// successfully fetched schemas.
func NewDecoder(cfg Config) (*Decoder, error) {
	if cfg.Registry == nil {
		return nil, errors.New("protodecode: registry is required")
	}
	return &Decoder{
		registry:     cfg.Registry,
		log:          cfg.Logger,
		tracer:       otel.Tracer(tracerName),
		closures:     cache.NewLoader[uint32, *Closure](),
		contexts:     cache.NewLoader[uint32, *DecodeContext](),
		cachedErrors: make(map[uint32]*Error),
	}, nil
}

// WithObserver sets the observer for decode operations and returns the
// decoder for chaining.
func (d *Decoder) WithObserver(observer observability.Observer) *Decoder {
	d.observer = observer
	return d
}

// ClearCachedErrors removes all errors from the error cache. Successfully
// fetched schemas and compiled contexts are untouched.
func (d *Decoder) ClearCachedErrors() {
	d.errMu.Lock()
	d.cachedErrors = make(map[uint32]*Error)
	d.errMu.Unlock()
}

// Decode decodes a payload into a value tree.
//
// A nil payload decodes to an empty Bytes value and a payload without
// recognizable framing decodes to a Bytes value carrying the original bytes;
// neither is an error. This makes Decode safe to point at both the key and
// the value of any Kafka message (tombstones, unframed keys) without
// pre-classifying.
func (d *Decoder) Decode(ctx context.Context, payload []byte) (protovalue.Value, error) {
	kind, id, rest := schema_registry.ClassifyPayload(payload)
	switch kind {
	case schema_registry.FramingNull:
		return protovalue.Bytes(nil), nil
	case schema_registry.FramingInvalid:
		return protovalue.Bytes(rest), nil
	}

	result, err := d.deserialize(ctx, id, rest)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

// DecodeWithContext decodes a payload like Decode but is strict about
// framing and returns the decode context alongside the value.
//
// A nil payload returns (nil, nil). A payload without recognizable framing
// returns ErrInvalidWirePayload instead of an opaque bytes value.
func (d *Decoder) DecodeWithContext(ctx context.Context, payload []byte) (*DecodeResult, error) {
	kind, id, rest := schema_registry.ClassifyPayload(payload)
	switch kind {
	case schema_registry.FramingNull:
		return nil, nil
	case schema_registry.FramingInvalid:
		return nil, newNonRetryable("payload is not registry framed", ErrInvalidWirePayload)
	}

	return d.deserialize(ctx, id, rest)
}

// deserialize runs the decode pipeline for a framed payload: cached context
// lookup, envelope split, name resolution, descriptor lookup, decode.
func (d *Decoder) deserialize(ctx context.Context, id uint32, body []byte) (result *DecodeResult, err error) {
	start := time.Now()
	ctx, span := d.tracer.Start(ctx, "protodecode.decode",
		trace.WithAttributes(attribute.Int64("schema.id", int64(id))))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
		var fullName string
		if result != nil {
			fullName = string(result.FullName)
		}
		d.observeOperation("decode", id, fullName, time.Since(start), err, int64(len(body)))
	}()

	decodeCtx, err := d.decodeContext(ctx, id)
	if err != nil {
		return nil, err
	}

	path, data, err := splitIndexPath(body)
	if err != nil {
		return nil, err
	}

	fullName, err := decodeCtx.Resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	message, err := decodeCtx.MessageByName(fullName)
	if err != nil {
		// The resolver derived the name from the compiled root file
		// and the context contains that file: a miss is a bug, not
		// bad input.
		panic(fmt.Sprintf("protodecode: resolved name %q missing from decode context: %v", fullName, err))
	}

	value, err := protovalue.DecodeMessage(message, data)
	if err != nil {
		return nil, newNonRetryable(fmt.Sprintf("decoding %s payload", fullName), fmt.Errorf("%w: %v", ErrInvalidWirePayload, err))
	}

	return &DecodeResult{
		Value:        value,
		Context:      decodeCtx,
		FullName:     fullName,
		PayloadBytes: data,
	}, nil
}

// decodeContext returns the cached decode context for id, building it from
// the (equally cached) schema closure on first use. Context-build failures
// propagate but are not persisted: the closure is already cached, so a
// retry costs only local CPU, and a second poisoning surface for a
// deterministic computation is not worth it.
func (d *Decoder) decodeContext(ctx context.Context, id uint32) (*DecodeContext, error) {
	return d.contexts.GetOrBuild(ctx, id, func(ctx context.Context) (*DecodeContext, error) {
		closure, err := d.schemaClosure(ctx, id)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		decodeCtx, err := buildDecodeContext(ctx, closure)
		d.observeOperation("build_context", id, "", time.Since(start), err, 0)
		if err != nil {
			d.logError("schema context compilation failed", err, id)
			return nil, err
		}
		d.logDebug("compiled decode context", id, map[string]interface{}{"files": closure.Len()})
		return decodeCtx, nil
	})
}

// schemaClosure returns the cached schema closure for id, resolving it
// through the registry on first use. Concurrent callers for the same id
// share one resolution. Failures are persisted in the error cache and
// replayed, marked as cached, until ClearCachedErrors is called.
func (d *Decoder) schemaClosure(ctx context.Context, id uint32) (*Closure, error) {
	return d.closures.GetOrBuild(ctx, id, func(ctx context.Context) (*Closure, error) {
		if cached := d.cachedError(id); cached != nil {
			d.logDebug("serving cached error", id, map[string]interface{}{"retryable": cached.Retryable})
			return nil, cached
		}

		start := time.Now()
		closure, err := d.fetchClosure(ctx, id)
		d.observeOperation("resolve_closure", id, "", time.Since(start), err, 0)
		if err != nil {
			var decodeErr *Error
			if !errors.As(err, &decodeErr) {
				decodeErr = newNonRetryable(fmt.Sprintf("resolving schema %d", id), err)
			}
			d.logError("schema closure resolution failed", decodeErr, id)
			return nil, d.storeError(id, decodeErr)
		}

		d.logDebug("resolved schema closure", id, map[string]interface{}{"files": closure.Len()})
		return closure, nil
	})
}

func (d *Decoder) fetchClosure(ctx context.Context, id uint32) (*Closure, error) {
	root, err := d.registry.GetSchemaByID(ctx, id)
	if err != nil {
		return nil, fromRegistryError(fmt.Sprintf("fetching schema %d", id), err)
	}
	return d.resolveClosure(ctx, root)
}

// cachedError returns the persisted error for id, if any.
func (d *Decoder) cachedError(id uint32) *Error {
	d.errMu.RLock()
	defer d.errMu.RUnlock()
	return d.cachedErrors[id]
}

// storeError persists decodeErr for id and returns the cache-marked copy
// that both this call and all replays observe.
func (d *Decoder) storeError(id uint32, decodeErr *Error) *Error {
	cached := decodeErr.intoCache()
	d.errMu.Lock()
	d.cachedErrors[id] = cached
	d.errMu.Unlock()
	return cached
}

func (d *Decoder) logDebug(msg string, id uint32, fields map[string]interface{}) {
	if d.log == nil {
		return
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["schema_id"] = id
	d.log.Debug(msg, nil, fields)
}

func (d *Decoder) logError(msg string, err error, id uint32) {
	if d.log == nil {
		return
	}
	d.log.Error(msg, err, map[string]interface{}{"schema_id": id})
}
