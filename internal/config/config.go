package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Canvas   CanvasConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Renderer RendererConfig
	Image    ImageConfig
	Redis    RedisConfig
	S3       S3Config
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

// CanvasConfig is the default editing canvas for new workspaces
type CanvasConfig struct {
	Width  float64
	Height float64
}

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type CatalogConfig struct {
	Source string
	// File overrides the embedded default catalog when set
	File string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns the postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type RendererConfig struct {
	URL            string
	Timeout        time.Duration
	MaxConcurrency int
}

type ImageConfig struct {
	Timeout  time.Duration
	MaxBytes int64
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type S3Config struct {
	Enabled      bool
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("CANVAS_WIDTH", 600)
	v.SetDefault("CANVAS_HEIGHT", 600)
	v.SetDefault("CATALOG_SOURCE", CatalogSourceFile)
	v.SetDefault("CATALOG_FILE", "")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "branding_studio")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("RENDERER_URL", "http://localhost:8090")
	v.SetDefault("RENDERER_TIMEOUT", "60s")
	v.SetDefault("RENDERER_MAX_CONCURRENCY", 0)
	v.SetDefault("IMAGE_TIMEOUT", "15s")
	v.SetDefault("IMAGE_MAX_BYTES", 20<<20)
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", "24h")
	v.SetDefault("S3_ENABLED", false)
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("S3_USE_PATH_STYLE", false)

	// Env
	v.AutomaticEnv()

	source := v.GetString("CATALOG_SOURCE")
	if source != CatalogSourceFile && source != CatalogSourcePostgres {
		return nil, fmt.Errorf("invalid CATALOG_SOURCE %q: want %q or %q", source, CatalogSourceFile, CatalogSourcePostgres)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Canvas: CanvasConfig{
			Width:  v.GetFloat64("CANVAS_WIDTH"),
			Height: v.GetFloat64("CANVAS_HEIGHT"),
		},
		Catalog: CatalogConfig{
			Source: source,
			File:   v.GetString("CATALOG_FILE"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: duration(v, "DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Renderer: RendererConfig{
			URL:            v.GetString("RENDERER_URL"),
			Timeout:        duration(v, "RENDERER_TIMEOUT", 60*time.Second),
			MaxConcurrency: v.GetInt("RENDERER_MAX_CONCURRENCY"),
		},
		Image: ImageConfig{
			Timeout:  duration(v, "IMAGE_TIMEOUT", 15*time.Second),
			MaxBytes: v.GetInt64("IMAGE_MAX_BYTES"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      duration(v, "REDIS_TTL", 24*time.Hour),
		},
		S3: S3Config{
			Enabled:      v.GetBool("S3_ENABLED"),
			Endpoint:     v.GetString("S3_ENDPOINT"),
			Region:       v.GetString("S3_REGION"),
			AccessKey:    v.GetString("S3_ACCESS_KEY"),
			SecretKey:    v.GetString("S3_SECRET_KEY"),
			UsePathStyle: v.GetBool("S3_USE_PATH_STYLE"),
		},
	}

	return cfg, nil
}

// duration parses a Go duration string, falling back on malformed input
func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
