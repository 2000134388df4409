package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayease-backend/models"
	"stayease-backend/repositories"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// MySQLDSN accepts a mysql:// URL, a raw DSN, or falls back to the DB_* parts.
func MySQLDSN(cfg DatabaseConfig) (string, error) {
	raw := strings.TrimSpace(cfg.URL)
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	), nil
}

func dialector(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverMySQL:
		dsn, err := MySQLDSN(cfg)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	}
	return nil, fmt.Errorf("no sql dialector for driver %q", cfg.Driver)
}

// ConnectDatabase opens the SQL database and migrates the schema.
func ConnectDatabase(cfg DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		log,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(log.GetLevel()),
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(dial, &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Photo{},
		&models.Review{},
		&models.Booking{},
		&models.WaitlistEntry{},
	)
}

func gormLogLevel(level logrus.Level) logger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return logger.Info
	case level >= logrus.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}

// OpenStore returns the repository store for the configured driver, plus a
// close function for the underlying connection.
func OpenStore(cfg DatabaseConfig, log *logrus.Logger) (*repositories.Store, func() error, error) {
	if cfg.Driver == DriverMemory {
		log.Warn("using in-memory store; data is lost on restart")
		return repositories.NewMemoryStore(), func() error { return nil }, nil
	}

	db, err := ConnectDatabase(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewGormStore(db), sqlDB.Close, nil
}
