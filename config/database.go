package config

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/guardian-watch/web-go/models"
)

// ConnectDatabase opens the database named by cfg.DatabaseURL, picking the
// driver from the URL shape, and migrates the schema.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Guardian{}, &models.ContactMessage{}, &models.Report{}); err != nil {
		return nil, err
	}

	logrus.Info("Database initialized")
	return db, nil
}

func dialector(url string) gorm.Dialector {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url)
	case strings.HasPrefix(url, "mysql://"):
		return mysql.Open(strings.TrimPrefix(url, "mysql://"))
	case strings.Contains(url, "@tcp("):
		// bare go-sql-driver DSN, the usual shape of MYSQL_URL
		return mysql.Open(url)
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://"))
	default:
		return sqlite.Open(url)
	}
}
