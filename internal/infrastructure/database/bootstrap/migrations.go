package bootstrap

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"go.uber.org/fx"

	"hopital-core/internal/infrastructure/database/postgres"
)

//go:embed schema.sql
var schemaSQL string

// MigrationManager applique le schéma embarqué au démarrage.
// Le DDL est idempotent (CREATE TABLE IF NOT EXISTS), une table de suivi
// conserve l'historique des applications.
type MigrationManager struct {
	db *postgres.Client
}

func NewMigrationManager(db *postgres.Client) *MigrationManager {
	return &MigrationManager{db: db}
}

// Run applique le schéma et journalise l'application
func (m *MigrationManager) Run(ctx context.Context) error {
	start := time.Now()

	if err := m.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_applications (
			id SERIAL PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			duration_ms INT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_applications table: %w", err)
	}

	if err := m.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	durationMs := int(time.Since(start).Milliseconds())
	if err := m.db.Exec(ctx,
		`INSERT INTO schema_applications (duration_ms) VALUES ($1)`, durationMs); err != nil {
		return fmt.Errorf("failed to record schema application: %w", err)
	}

	fmt.Printf("[BOOTSTRAP] ✅ Schéma appliqué en %dms\n", durationMs)
	return nil
}

var Module = fx.Options(
	fx.Provide(NewMigrationManager),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, manager *MigrationManager) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
			defer cancel()

			return manager.Run(timeoutCtx)
		},
	})
}
