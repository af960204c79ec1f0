package services

import (
	"context"
	"testing"
	"time"

	"github.com/meadowhq/meadow/internal/database"
	"github.com/meadowhq/meadow/pkg/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DocumentServiceSuite struct {
	suite.Suite
	db  *gorm.DB
	srv *DocumentService
}

func TestDocumentServiceSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceSuite))
}

func (s *DocumentServiceSuite) SetupSuite() {
	s.db = database.NewTestDatabase(s.T(), true)
	s.srv = NewDocumentService(s.db)
}

func (s *DocumentServiceSuite) SetupTest() {
	s.db.Where("id is not NULL").Delete(&models.Document{})
}

func (s *DocumentServiceSuite) TestCreate() {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	doc, err := s.srv.Create(context.Background(), "# Hello\n\nWorld", now)
	s.NoError(err)
	s.Len(doc.ID, 7)
	s.True(doc.CreatedAt.Equal(now))
	s.True(doc.ExpiresAt.Equal(now.Add(30 * 24 * time.Hour)))

	s.True(doc.Active(now.Add(30*24*time.Hour - time.Second)))
	s.False(doc.Active(now.Add(30 * 24 * time.Hour)))
}

func (s *DocumentServiceSuite) TestCreate_RoundTrip() {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	content := "# Hello\n\nWorld"

	doc, err := s.srv.Create(context.Background(), content, now)
	s.NoError(err)

	found, err := s.srv.GetActive(context.Background(), doc.ID, now)
	s.NoError(err)
	s.Equal(doc.ID, found.ID)
	s.Equal(content, found.Content)
}

func (s *DocumentServiceSuite) TestCreate_SanitizesContent() {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	doc, err := s.srv.Create(context.Background(), `hi <script>alert("x")</script>`, now)
	s.NoError(err)
	s.NotContains(doc.Content, "<script>")

	found, err := s.srv.GetActive(context.Background(), doc.ID, now)
	s.NoError(err)
	s.NotContains(found.Content, "<script>")
}

func (s *DocumentServiceSuite) TestGetActive_ExpiryWindow() {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	doc, err := s.srv.Create(context.Background(), "# Hello\n\nWorld", created)
	s.NoError(err)

	_, err = s.srv.GetActive(context.Background(), doc.ID, created.Add(29*24*time.Hour))
	s.NoError(err)

	_, err = s.srv.GetActive(context.Background(), doc.ID, created.Add(30*24*time.Hour))
	s.Error(err)
	s.Equal(database.ErrNotFound, err)

	_, err = s.srv.GetActive(context.Background(), doc.ID, created.Add(31*24*time.Hour))
	s.Equal(database.ErrNotFound, err)
}

func (s *DocumentServiceSuite) TestGetActive_Unknown() {
	_, err := s.srv.GetActive(context.Background(), "no-such", time.Now().UTC())
	s.Equal(database.ErrNotFound, err)
}

func (s *DocumentServiceSuite) TestCreate_DuplicateID() {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := &models.Document{ID: "abc1234", Content: "one", CreatedAt: now, ExpiresAt: now.Add(30 * 24 * time.Hour)}
	s.NoError(s.db.Create(doc).Error)

	dup := &models.Document{ID: "abc1234", Content: "two", CreatedAt: now, ExpiresAt: now.Add(30 * 24 * time.Hour)}
	err := s.db.Create(dup).Error
	s.Error(err)
	s.True(database.IsKeyConflictErr(err))
}

func (s *DocumentServiceSuite) TestRecent() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		_, err := s.srv.Create(context.Background(), "doc", base.Add(time.Duration(i)*time.Minute))
		s.NoError(err)
	}

	docs, err := s.srv.Recent(context.Background(), 5)
	s.NoError(err)
	s.Len(docs, 5)
	for i := 1; i < len(docs); i++ {
		s.False(docs[i].CreatedAt.After(docs[i-1].CreatedAt))
	}
}

func (s *DocumentServiceSuite) TestNewID_Length() {
	for i := 0; i < 20; i++ {
		s.Len(NewID(), 7)
	}
}
