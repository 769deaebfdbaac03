package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewClient),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := client.Ping(timeoutCtx); err != nil {
				// L'audit MongoDB est optionnel : ne bloque pas le démarrage
				fmt.Printf("[MONGODB] ⚠️  MongoDB non disponible - audit désactivé: %v\n", err)
				return nil
			}

			fmt.Printf("[MONGODB] ✅ MongoDB connecté (journal d'audit)\n")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close(ctx)
		},
	})
}
