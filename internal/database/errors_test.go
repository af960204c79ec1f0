package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsRecordNotFoundErr(t *testing.T) {
	assert.True(t, IsRecordNotFoundErr(ErrNotFound))
	assert.True(t, IsRecordNotFoundErr(gorm.ErrRecordNotFound))
	assert.False(t, IsRecordNotFoundErr(errors.New("boom")))
	assert.False(t, IsRecordNotFoundErr(nil))
}

func TestIsKeyConflictErr(t *testing.T) {
	assert.True(t, IsKeyConflictErr(ErrKeyConflict))
	assert.True(t, IsKeyConflictErr(errors.New("UNIQUE constraint failed: documents.id")))
	assert.False(t, IsKeyConflictErr(errors.New("boom")))
	assert.False(t, IsKeyConflictErr(nil))
}
