package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/abhishek-8081/Brainly-Backend/internal/models"
)

type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

var _ Contents = (*ContentRepository)(nil)

const (
	insertContentSQL = `INSERT INTO contents (id, title, link, type, tags, user_id) VALUES (?, ?, ?, ?, ?, ?)`

	selectContentsWithOwnerSQL = `
		SELECT c.id, c.title, c.link, c.type, c.tags, u.id, u.username
		FROM contents c
		JOIN users u ON u.id = c.user_id
		WHERE c.user_id = ?
	`

	selectContentsByUserSQL = `SELECT id, title, link, type, tags, user_id FROM contents WHERE user_id = ?`

	deleteOwnedContentSQL = `DELETE FROM contents WHERE id = ? AND user_id = ?`
)

// marshalTags converts the tag id slice to its JSON column representation.
// A nil slice is persisted as the empty list.
func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalTags parses the JSON column back into a slice, never nil.
func unmarshalTags(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// Create inserts a content record for its owner.
func (r *ContentRepository) Create(ctx context.Context, c models.Content) error {
	tagsJSON, err := marshalTags(c.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags for content %q: %w", c.ID, err)
	}
	if _, err := r.db.ExecContext(ctx, insertContentSQL,
		c.ID, c.Title, c.Link, c.Type, tagsJSON, c.UserID,
	); err != nil {
		return fmt.Errorf("insert content %q: %w", c.ID, err)
	}
	return nil
}

// ListByOwner returns all content of a user with the owner reference
// expanded to include the username.
func (r *ContentRepository) ListByOwner(ctx context.Context, userID string) ([]models.ContentWithOwner, error) {
	rows, err := r.db.QueryContext(ctx, selectContentsWithOwnerSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select contents for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.ContentWithOwner, 0, 16)
	for rows.Next() {
		var c models.ContentWithOwner
		var tagsJSON string
		if err := rows.Scan(&c.ID, &c.Title, &c.Link, &c.Type, &tagsJSON, &c.Owner.ID, &c.Owner.Username); err != nil {
			return nil, err
		}
		if c.Tags, err = unmarshalTags(tagsJSON); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUser returns all content of a user without expanding the owner.
func (r *ContentRepository) ListByUser(ctx context.Context, userID string) ([]models.Content, error) {
	rows, err := r.db.QueryContext(ctx, selectContentsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select contents for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Content, 0, 16)
	for rows.Next() {
		var c models.Content
		var tagsJSON string
		if err := rows.Scan(&c.ID, &c.Title, &c.Link, &c.Type, &tagsJSON, &c.UserID); err != nil {
			return nil, err
		}
		if c.Tags, err = unmarshalTags(tagsJSON); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOwned removes a content record only when both id and owner match.
// Matching nothing is not an error.
func (r *ContentRepository) DeleteOwned(ctx context.Context, contentID, userID string) error {
	if _, err := r.db.ExecContext(ctx, deleteOwnedContentSQL, contentID, userID); err != nil {
		return fmt.Errorf("delete content %q: %w", contentID, err)
	}
	return nil
}
