package config

import (
	"crypto/rand"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the server needs at startup. It is built once in
// main and injected into the router; nothing else reads the environment.
type Config struct {
	DatabaseURL string
	SecretKey   []byte
	Port        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// No .env file is fine in production
	}

	cfg := &Config{
		DatabaseURL: databaseURL(),
		SecretKey:   secretKey(),
		Port:        os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	return cfg
}

// databaseURL resolves the connection string in priority order, falling back
// to a local sqlite file when no environment variable is set.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	if url := os.Getenv("MYSQL_URL"); url != "" {
		return url
	}
	if url := os.Getenv("POSTGRES_URL"); url != "" {
		return url
	}

	dbPath := filepath.Join("instance", "app.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logrus.WithError(err).Warn("Could not create instance directory, using in-memory database")
		return "sqlite://file::memory:?cache=shared"
	}
	return "sqlite://" + dbPath
}

func secretKey() []byte {
	if key := os.Getenv("SECRET_KEY"); key != "" {
		return []byte(key)
	}

	key := make([]byte, 24)
	if _, err := rand.Read(key); err != nil {
		logrus.WithError(err).Fatal("Could not generate session key")
	}
	logrus.Warn("SECRET_KEY not set, using a random key; sessions will not survive a restart")
	return key
}
