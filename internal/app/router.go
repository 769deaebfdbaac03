package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hopital-core/internal/app/config"
	"hopital-core/internal/infrastructure/database/mongodb"
	"hopital-core/internal/infrastructure/database/postgres"
	"hopital-core/internal/infrastructure/database/redis"
	"hopital-core/internal/infrastructure/logger"
	"hopital-core/internal/infrastructure/storage"
	securitymw "hopital-core/internal/shared/middleware/security"
)

func NewRouter(
	cfg *config.Config,
	loggerMiddleware *logger.LoggerMiddleware,
	cors securitymw.CORSHandler,
	media *storage.MediaStore,
	db *postgres.Client,
	redisClient *redis.Client,
	mongoClient *mongodb.Client,
) *gin.Engine {
	configureGinMode(cfg.Environment)

	r := gin.New()

	r.Use(loggerMiddleware.GinLogger())
	r.Use(loggerMiddleware.GinRecovery())
	r.Use(gin.HandlerFunc(cors))

	// QR codes et images radiologiques servis en statique
	r.Static("/media", media.Root())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "healthy",
			},
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		checks := gin.H{
			"postgres": "ok",
			"redis":    "ok",
			"mongodb":  "ok",
		}
		status := http.StatusOK

		if err := db.HealthCheck(c.Request.Context()); err != nil {
			checks["postgres"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := redisClient.HealthCheck(c.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := mongoClient.Ping(c.Request.Context()); err != nil {
			checks["mongodb"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"success": status == http.StatusOK,
			"data":    checks,
		})
	})

	return r
}

// configureGinMode configure le mode Gin selon l'environnement
func configureGinMode(environment string) {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "staging":
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
