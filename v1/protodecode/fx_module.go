package protodecode

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/protodecode/v1/logger"
	"github.com/Aleph-Alpha/protodecode/v1/observability"
	"github.com/Aleph-Alpha/protodecode/v1/schema_registry"
)

// FXModule defines the Fx module for the protodecode package.
// This module integrates the decoder into an Fx-based application by providing
// the Decoder factory and registering its lifecycle hooks.
//
// Usage:
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
// Dependencies required by this module:
// - A schema_registry.Registry instance must be available in the container
// - A logger.Logger instance is optional
// - An observability.Observer instance is optional
var FXModule = fx.Module("protodecode",
	fx.Provide(
		NewDecoderWithDI,
	),
	fx.Invoke(RegisterDecoderLifecycle),
)

// DecoderParams groups the dependencies needed to create a Decoder
type DecoderParams struct {
	fx.In

	Registry schema_registry.Registry
	Logger   *logger.Logger         `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewDecoderWithDI creates a new Decoder using dependency injection.
// This function is designed to be used with Uber's fx dependency injection framework
// where dependencies are automatically provided via the DecoderParams struct.
func NewDecoderWithDI(params DecoderParams) (*Decoder, error) {
	decoder, err := NewDecoder(Config{
		Registry: params.Registry,
		Logger:   params.Logger,
	})
	if err != nil {
		return nil, err
	}
	if params.Observer != nil {
		decoder.WithObserver(params.Observer)
	}
	return decoder, nil
}

// DecoderLifecycleParams groups the dependencies needed for decoder lifecycle management
type DecoderLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Decoder   *Decoder
	Logger    *logger.Logger `optional:"true"`
}

// RegisterDecoderLifecycle registers the decoder with the fx lifecycle system.
// The decoder has no connections of its own to close; the hooks log readiness
// so operators can correlate decoder availability with application startup.
func RegisterDecoderLifecycle(params DecoderLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if params.Logger != nil {
				params.Logger.Info("protobuf decoder initialized", nil, nil)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if params.Logger != nil {
				params.Logger.Info("protobuf decoder shutdown", nil, nil)
			}
			return nil
		},
	})
}
