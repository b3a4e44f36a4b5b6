package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abhishek-8081/Brainly-Backend/internal/models"
)

type ShareLinkRepository struct {
	db *sql.DB
}

func NewShareLinkRepository(db *sql.DB) *ShareLinkRepository {
	return &ShareLinkRepository{db: db}
}

var _ ShareLinks = (*ShareLinkRepository)(nil)

const (
	insertShareLinkSQL       = `INSERT INTO share_links (hash, user_id) VALUES (?, ?)`
	selectShareLinkByUserSQL = `SELECT hash, user_id FROM share_links WHERE user_id = ?`
	selectShareLinkByHashSQL = `SELECT hash, user_id FROM share_links WHERE hash = ? LIMIT 1`
	deleteShareLinkByUserSQL = `DELETE FROM share_links WHERE user_id = ?`
)

// Create persists a new share link. The unique constraint on user_id
// rejects a second link for the same owner.
func (r *ShareLinkRepository) Create(ctx context.Context, link models.ShareLink) error {
	if _, err := r.db.ExecContext(ctx, insertShareLinkSQL, link.Hash, link.UserID); err != nil {
		return fmt.Errorf("insert share link for user %q: %w", link.UserID, err)
	}
	return nil
}

// GetByUser fetches the link owned by a user. Returns (nil, nil) if none.
func (r *ShareLinkRepository) GetByUser(ctx context.Context, userID string) (*models.ShareLink, error) {
	var l models.ShareLink
	err := r.db.QueryRowContext(ctx, selectShareLinkByUserSQL, userID).Scan(&l.Hash, &l.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select share link for user %q: %w", userID, err)
	}
	return &l, nil
}

// GetByHash fetches a link by its public hash. Returns (nil, nil) if none.
func (r *ShareLinkRepository) GetByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	var l models.ShareLink
	err := r.db.QueryRowContext(ctx, selectShareLinkByHashSQL, hash).Scan(&l.Hash, &l.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select share link %q: %w", hash, err)
	}
	return &l, nil
}

// DeleteByUser removes the user's link if any; no rows matched is fine.
func (r *ShareLinkRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, deleteShareLinkByUserSQL, userID); err != nil {
		return fmt.Errorf("delete share link for user %q: %w", userID, err)
	}
	return nil
}
