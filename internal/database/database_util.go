package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/meadowhq/meadow/internal/config"
	"gorm.io/gorm"
)

// NewTestDatabase opens a throwaway sqlite store under the test's temp dir.
func NewTestDatabase(tb testing.TB, migration bool) *gorm.DB {
	cfg := &config.DBConfig{
		Path:        filepath.Join(tb.TempDir(), "meadow-test.db"),
		LogLevel:    "silent",
		BusyTimeout: 5 * time.Second,
	}
	cfg.Pool.MaxOpenConnections = 5
	cfg.Pool.MaxIdleConnections = 5
	cfg.Pool.MaxLifetime = 10 * time.Minute

	db, err := NewDatabase(cfg)
	if err != nil {
		tb.Fatalf("failed to init db %v", err)
	}

	if migration {
		if err := MigrateDB(db); err != nil {
			tb.Fatalf("failed to migrate db %v", err)
		}
	}

	return db
}
