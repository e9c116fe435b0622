package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	AVATAR_SIZE = 240
	// PAGE_SIZE is the number of posts on a listing page.
	PAGE_SIZE = 10
)

// Config holds everything the web process reads from the environment.
type Config struct {
	Port          string
	GinMode       string
	DBDriver      string // "mysql" or "sqlite"
	DBUser        string
	DBPass        string
	DBHost        string
	DBName        string
	DBPath        string // sqlite only
	InitDB        bool
	SessionKey    string
	MediaRoot     string
	TemplatesGlob string
	CacheTTL      time.Duration
}

// Load reads the environment, honoring a .env file when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, reading from environment")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBUser:        os.Getenv("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        os.Getenv("DB_HOST"),
		DBName:        getEnv("DB_NAME", "inkline"),
		DBPath:        getEnv("DB_PATH", "inkline.db"),
		SessionKey:    os.Getenv("SESSION_KEY"),
		MediaRoot:     getEnv("MEDIA_ROOT", "media"),
		TemplatesGlob: getEnv("TEMPLATES_GLOB", "templates/*.html"),
		CacheTTL:      20 * time.Second,
	}

	if cfg.SessionKey == "" {
		return nil, fmt.Errorf("$SESSION_KEY must be set")
	}
	if cfg.DBDriver == "mysql" && cfg.DBHost == "" {
		return nil, fmt.Errorf("$DB_HOST must be set when DB_DRIVER=mysql")
	}

	if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS %q: %w", raw, err)
		}
		cfg.CacheTTL = time.Duration(seconds) * time.Second
	}
	if raw := os.Getenv("INIT_DB"); raw != "" {
		initDB, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid INIT_DB %q: %w", raw, err)
		}
		cfg.InitDB = initDB
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
