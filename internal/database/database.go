package database

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/meadowhq/meadow/internal/config"
	"github.com/meadowhq/meadow/internal/utils"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// NewDatabase opens the sqlite document store, creating the file if absent.
// Expired rows are never deleted here; expiry is applied by query predicates.
func NewDatabase(cfg *config.DBConfig) (*gorm.DB, error) {
	path := cfg.Path
	if path == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			dir = utils.ExecutableDir()
		} else {
			dir = filepath.Join(dir, ".meadow")
			err := os.Mkdir(dir, 0755)
			if err != nil && !os.IsExist(err) {
				dir = utils.ExecutableDir()
			}
		}
		path = filepath.Join(dir, "meadow.db")
	}

	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)",
		path, cfg.BusyTimeout.Milliseconds())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger: NewLogger(time.Second, true, lvl),
	})
	if err != nil {
		return nil, err
	}

	rawDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	rawDB.SetMaxOpenConns(cfg.Pool.MaxOpenConnections)
	rawDB.SetMaxIdleConns(cfg.Pool.MaxIdleConnections)
	rawDB.SetConnMaxLifetime(cfg.Pool.MaxLifetime)

	return db, nil
}

// MigrateDB ensures the schema exists. Safe to run on every start.
func MigrateDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return err
	}
	return nil
}
