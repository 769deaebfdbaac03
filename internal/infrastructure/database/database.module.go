package database

import (
	"go.uber.org/fx"

	"hopital-core/internal/infrastructure/database/bootstrap"
	"hopital-core/internal/infrastructure/database/mongodb"
	"hopital-core/internal/infrastructure/database/postgres"
	"hopital-core/internal/infrastructure/database/redis"
)

var Module = fx.Options(
	postgres.Module,
	redis.Module,
	mongodb.Module,
	bootstrap.Module,
)
