package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meadowhq/meadow/internal/database"
	"github.com/meadowhq/meadow/internal/markdown"
	"github.com/meadowhq/meadow/pkg/models"
	"gorm.io/gorm"
)

const (
	// Public identifiers are kept short so links stay shareable; the
	// collision risk over the expected volume is treated as negligible and
	// is not checked before insert. A collision surfaces as a key conflict.
	idLength = 7

	// Fixed policy: documents stay reachable for 30 days after creation.
	documentTTL = 30 * 24 * time.Hour
)

type DocumentService struct {
	db *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{db: db}
}

// NewID returns a short public identifier for a new document.
func NewID() string {
	return uuid.NewString()[:idLength]
}

// Create sanitizes content and persists it as a new document. The insert is
// not retried; any storage failure, including an identifier collision, is
// returned as-is.
func (s *DocumentService) Create(ctx context.Context, content string, now time.Time) (*models.Document, error) {
	doc := &models.Document{
		ID:        NewID(),
		Content:   markdown.Sanitize(content),
		CreatedAt: now,
		ExpiresAt: now.Add(documentTTL),
	}

	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		if database.IsKeyConflictErr(err) {
			return nil, database.ErrKeyConflict
		}
		return nil, err
	}
	return doc, nil
}

// GetActive returns the document for id if it has not expired at now.
// Expired and unknown ids are indistinguishable: both yield ErrNotFound.
func (s *DocumentService) GetActive(ctx context.Context, id string, now time.Time) (*models.Document, error) {
	var docs []models.Document

	if err := s.db.WithContext(ctx).Where("id = ? AND expires_at > ?", id, now).
		Limit(1).Find(&docs).Error; err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, database.ErrNotFound
	}
	return &docs[0], nil
}

// Recent lists the newest documents regardless of expiry, for the
// diagnostic page.
func (s *DocumentService) Recent(ctx context.Context, limit int) ([]models.Document, error) {
	var docs []models.Document

	if err := s.db.WithContext(ctx).Order("created_at DESC").
		Limit(limit).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
