package service

import (
	"context"

	"github.com/abhishek-8081/Brainly-Backend/internal/models"
	"github.com/abhishek-8081/Brainly-Backend/internal/repository"

	"github.com/google/uuid"
)

// ContentService implements the per-user bookmark operations.
type ContentService struct {
	contents repository.Contents
}

func NewContentService(contents repository.Contents) *ContentService {
	return &ContentService{contents: contents}
}

var _ Contents = (*ContentService)(nil)

// Create stores a new content record for userID. Tags always start out
// as the empty list; nothing in scope ever fills them.
func (s *ContentService) Create(ctx context.Context, userID string, p ContentParams) (models.Content, error) {
	c := models.Content{
		ID:     uuid.NewString(),
		Title:  p.Title,
		Link:   p.Link,
		Type:   p.Type,
		Tags:   []string{},
		UserID: userID,
	}
	if err := s.contents.Create(ctx, c); err != nil {
		return models.Content{}, err
	}
	return c, nil
}

// List returns all of the user's content with the owner expanded.
func (s *ContentService) List(ctx context.Context, userID string) ([]models.ContentWithOwner, error) {
	return s.contents.ListByOwner(ctx, userID)
}

// Delete removes the record only when both id and owner match, so a
// caller cannot delete another user's content by guessing an id.
// Deleting nothing is a success.
func (s *ContentService) Delete(ctx context.Context, contentID, userID string) error {
	return s.contents.DeleteOwned(ctx, contentID, userID)
}
