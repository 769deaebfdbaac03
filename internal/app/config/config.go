package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hopital-core/internal/infrastructure/database/mongodb"
	"hopital-core/internal/infrastructure/database/postgres"
	"hopital-core/internal/infrastructure/database/redis"
	"hopital-core/internal/infrastructure/storage"
)

// Configuration uniquement via variables d'environnement

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	MongoDB     MongoConfig
	JWT         JWTConfig
	Media       MediaConfig
	CORS        CORSConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	Database int
}

type MongoConfig struct {
	URI      string
	Database string
}

// JWTConfig paramètres d'émission des tokens
type JWTConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

type MediaConfig struct {
	Root    string
	BaseURL string
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// NewConfig charge la configuration depuis les variables d'environnement
func NewConfig() (*Config, error) {
	// Fichier .env optionnel
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("[CONFIG] Warning: Fichier .env non trouvé: %v\n", err)
	}

	config := &Config{}

	config.Environment = getEnv("APP_ENV", "development")

	config.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "localhost"),
		Port:         getEnvInt("SERVER_PORT", 4000),
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30) * time.Second,
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30) * time.Second,
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		Database: getEnv("DB_NAME", "hopital"),
		Username: getEnv("DB_USERNAME", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnvInt("REDIS_PORT", 6379),
		Password: getEnv("REDIS_PASSWORD", ""),
		Database: getEnvInt("REDIS_DATABASE", 0),
	}

	config.MongoDB = MongoConfig{
		URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGODB_DATABASE", "hopital_audit"),
	}

	config.JWT = JWTConfig{
		Secret:          getEnv("JWT_SECRET", ""),
		AccessTokenTTL:  getEnvDuration("JWT_ACCESS_TTL_MINUTES", 15) * time.Minute,
		RefreshTokenTTL: getEnvDuration("JWT_REFRESH_TTL_HOURS", 168) * time.Hour,
		Issuer:          getEnv("JWT_ISSUER", "hopital-core"),
	}

	config.Media = MediaConfig{
		Root:    getEnv("MEDIA_ROOT", "./media"),
		BaseURL: getEnv("MEDIA_BASE_URL", "http://localhost:4000"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins:   getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AllowedMethods:   getEnvSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		AllowedHeaders:   getEnvSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Authorization"}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 43200),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Environment == "production" && c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET est obligatoire en production")
	}
	if c.JWT.Secret == "" {
		// Secret de développement uniquement
		c.JWT.Secret = "dev-secret-hopital-core"
		fmt.Printf("[CONFIG] Warning: JWT_SECRET absent, secret de développement utilisé\n")
	}
	return nil
}

func (c *Config) GetServer() ServerConfig {
	return c.Server
}

func (c *Config) GetCORS() CORSConfig {
	return c.CORS
}

// Providers des configurations infrastructure

func NewPostgresConfig(cfg *Config) *postgres.DatabaseConfig {
	return &postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Database: cfg.Database.Database,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		SSLMode:  cfg.Database.SSLMode,
	}
}

func NewRedisConfig(cfg *Config) *redis.RedisConfig {
	return &redis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		Database: cfg.Redis.Database,
	}
}

func NewMongoConfig(cfg *Config) *mongodb.MongoConfig {
	return &mongodb.MongoConfig{
		URI:      cfg.MongoDB.URI,
		Database: cfg.MongoDB.Database,
	}
}

func NewMediaConfig(cfg *Config) *storage.MediaConfig {
	return &storage.MediaConfig{
		Root:    cfg.Media.Root,
		BaseURL: cfg.Media.BaseURL,
	}
}

// Helpers environnement

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvInt(key, defaultValue))
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
