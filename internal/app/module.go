package app

import (
	"go.uber.org/fx"

	"hopital-core/internal/app/config"
	"hopital-core/internal/infrastructure/database"
	"hopital-core/internal/infrastructure/database/redis"
	"hopital-core/internal/infrastructure/logger"
	"hopital-core/internal/infrastructure/storage"
	"hopital-core/internal/modules/audit"
	"hopital-core/internal/modules/auth"
	"hopital-core/internal/modules/comptes"
	"hopital-core/internal/modules/consultation"
	"hopital-core/internal/modules/dossier"
	"hopital-core/internal/modules/examen"
	"hopital-core/internal/modules/ordonnance"
	"hopital-core/internal/modules/soin"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
	securitymw "hopital-core/internal/shared/middleware/security"
)

// NewRedisKeyGenerator crée le générateur de clés Redis
func NewRedisKeyGenerator(cfg *config.Config) *redis.KeyGenerator {
	return redis.NewKeyGenerator(cfg.Environment)
}

var AppModule = fx.Options(
	// Configuration (doit être fournie en premier)
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewPostgresConfig),
	fx.Provide(config.NewRedisConfig),
	fx.Provide(config.NewMongoConfig),
	fx.Provide(config.NewMediaConfig),

	// Utilitaires partagés (après config, avant infrastructure)
	fx.Provide(NewRedisKeyGenerator),

	// Infrastructure
	database.Module,
	logger.Module,
	storage.Module,

	// Middlewares partagés (après infrastructure, avant modules métier)
	fx.Provide(securitymw.CORSMiddleware),
	authMiddleware.AuthMiddlewareModule,

	// Modules métier
	audit.Module,
	auth.Module,
	comptes.Module,
	dossier.Module,
	consultation.Module,
	ordonnance.Module,
	soin.Module,
	examen.Module,

	// Router
	fx.Provide(NewRouter),

	// Application
	fx.Provide(NewApplication),

	// Lifecycle management
	fx.Invoke((*Application).Start),
)
