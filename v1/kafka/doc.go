// Package kafka provides a Kafka consumer that decodes registry-framed
// protobuf payloads as it reads them.
//
// The consumer pairs a segmentio/kafka-go reader with a
// protodecode.Decoder. Because every registry-framed payload carries its own
// schema identifier, one consumer handles any topic regardless of subject
// naming strategy: the decoder fetches, resolves and compiles schemas on
// demand and caches them for the life of the process.
//
// Core Features:
//   - Fetch/Commit consumption with consumer-group offset management
//   - Transparent payload decoding into protovalue trees
//   - Optional key decoding (unframed keys pass through as opaque bytes)
//   - Tombstone-safe: nil payloads decode to empty bytes values
//   - Optional structured logging and observer hooks
//
// Basic Usage:
//
//	consumer, err := kafka.NewConsumer(kafka.Config{
//	    Brokers: []string{"localhost:9092"},
//	    Topic:   "payments",
//	    GroupID: "payment-auditor",
//	}, decoder)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer consumer.Close()
//
//	for {
//	    msg, err := consumer.Fetch(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    if value, ok := msg.Value.(*protovalue.Message); ok {
//	        process(value)
//	    }
//	    if err := consumer.Commit(ctx, msg); err != nil {
//	        return err
//	    }
//	}
//
// Using with FX:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema_registry.FXModule,
//	    protodecode.FXModule,
//	    kafka.FXModule,
//	    fx.Provide(func() kafka.Config { ... }),
//	    fx.Provide(func() schema_registry.Config { ... }),
//	)
package kafka
