package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs from the environment. It is
// injected explicitly into the components that need it; nothing reads the
// environment after startup.
type Config struct {
	DBPath        string
	Port          string
	JWTSecret     []byte
	AdminPasscode string
}

// Load reads configuration from a .env file (if present) and the process
// environment. The token-signing secret is mandatory; running without one
// would make every issued token unverifiable.
func Load() (Config, error) {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := Config{
		DBPath:        os.Getenv("DB_PATH"),
		Port:          os.Getenv("PORT"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET_KEY")),
		AdminPasscode: os.Getenv("ADMIN_PASSCODE"),
	}

	if len(cfg.JWTSecret) == 0 {
		return Config{}, errors.New("JWT_SECRET_KEY must be set")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "data/badger"
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	return cfg, nil
}
