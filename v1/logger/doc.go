// Package logger provides structured logging for this library based on Uber's Zap.
//
// The logger wraps zap with a small fixed-shape API (message, optional error,
// optional fields) so that client packages such as protodecode and kafka can
// log without taking a direct dependency on zap types.
//
// Core Features:
//   - JSON structured output to stderr
//   - Configurable minimum level (Debug, Info, Warning, Error)
//   - Service name and process ID attached to every entry
//   - Caller information included in log entries
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/protodecode/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Debug,
//	    ServiceName: "order-consumer",
//	})
//	log.Info("starting", nil, map[string]interface{}{"brokers": 3})
//	log.Error("decode failed", err, nil)
//
// Using with FX:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "order-consumer"}
//	    }),
//	)
//
// The FX module flushes buffered log entries on application shutdown.
package logger
