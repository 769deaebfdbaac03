package postgres

import (
	"context"
	"time"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewClient),
	fx.Provide(NewTransactionManager),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := client.Ping(timeoutCtx); err != nil {
				return err
			}

			return client.HealthCheck(timeoutCtx)
		},
		OnStop: func(ctx context.Context) error {
			client.Close()
			return nil
		},
	})
}
