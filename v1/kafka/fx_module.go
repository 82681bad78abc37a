package kafka

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/protodecode/v1/logger"
	"github.com/Aleph-Alpha/protodecode/v1/observability"
	"github.com/Aleph-Alpha/protodecode/v1/protodecode"
)

// FXModule defines the Fx module for the kafka package.
// This module integrates the decoding consumer into an Fx-based application
// by providing the Consumer factory and registering its lifecycle hooks.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema_registry.FXModule,
//	    protodecode.FXModule,
//	    kafka.FXModule,
//	    fx.Provide(func() kafka.Config {
//	        return kafka.Config{
//	            Brokers: []string{"localhost:9092"},
//	            Topic:   "payments",
//	            GroupID: "payment-auditor",
//	        }
//	    }),
//	)
//
// Dependencies required by this module:
// - A kafka.Config instance must be available in the container
// - A *protodecode.Decoder instance must be available in the container
// - A logger.Logger instance is optional
// - An observability.Observer instance is optional
var FXModule = fx.Module("kafka",
	fx.Provide(
		NewConsumerWithDI,
	),
	fx.Invoke(RegisterConsumerLifecycle),
)

// ConsumerParams groups the dependencies needed to create a Consumer
type ConsumerParams struct {
	fx.In

	Config   Config
	Decoder  *protodecode.Decoder
	Logger   *logger.Logger         `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewConsumerWithDI creates a new Consumer using dependency injection.
func NewConsumerWithDI(params ConsumerParams) (*Consumer, error) {
	consumer, err := NewConsumer(params.Config, params.Decoder)
	if err != nil {
		return nil, err
	}
	if params.Logger != nil {
		consumer.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		consumer.WithObserver(params.Observer)
	}
	return consumer, nil
}

// ConsumerLifecycleParams groups the dependencies needed for consumer lifecycle management
type ConsumerLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Consumer  *Consumer
}

// RegisterConsumerLifecycle registers the consumer with the fx lifecycle
// system so the underlying reader is closed on application shutdown.
func RegisterConsumerLifecycle(params ConsumerLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return params.Consumer.Close()
		},
	})
}
