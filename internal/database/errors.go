package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrKeyConflict = errors.New("key conflict")
)

func IsRecordNotFoundErr(err error) bool {
	return err == gorm.ErrRecordNotFound || err == ErrNotFound
}

func IsKeyConflictErr(err error) bool {
	if err == ErrKeyConflict {
		return true
	}
	// sqlite reports primary key collisions as constraint violations
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
