package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/protodecode/v1/observability"
)

// FXModule provides the metrics components for dependency injection using the fx framework.
//
// The module provides:
//   - *Metrics built from the injected Config
//   - observability.Observer backed by the same Metrics instance
//
// and registers lifecycle hooks that start the /metrics HTTP server on
// application start and shut it down gracefully on stop.
//
// Example:
//
//	app := fx.New(
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{Address: ":9090", ServiceName: "payment-consumer"}
//	    }),
//	    metrics.FXModule,
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetrics),
	fx.Provide(func(m *Metrics) observability.Observer { return m }),
	fx.Invoke(registerMetricsLifecycle),
)

func registerMetricsLifecycle(lc fx.Lifecycle, m *Metrics) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
