package security

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"hopital-core/internal/app/config"
)

// CORSHandler type spécifique pour Fx
type CORSHandler gin.HandlerFunc

// CORSMiddleware configure les règles CORS depuis l'environnement
func CORSMiddleware(appConfig *config.Config) CORSHandler {
	corsConfig := appConfig.GetCORS()

	return CORSHandler(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowedOrigin := range corsConfig.AllowedOrigins {
				if origin == allowedOrigin {
					return true
				}
			}
			return false
		},

		AllowMethods: corsConfig.AllowedMethods,

		AllowHeaders: append(corsConfig.AllowedHeaders, "X-Request-Id"),

		ExposeHeaders: []string{
			"Content-Length",
			"X-Request-Id",
		},

		// Requis pour le cookie refresh_token
		AllowCredentials: corsConfig.AllowCredentials,

		MaxAge: time.Duration(corsConfig.MaxAge) * time.Second,
	}))
}
