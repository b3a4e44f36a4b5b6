package repository

import (
	"context"
	"database/sql"

	"github.com/abhishek-8081/Brainly-Backend/internal/models"
	"github.com/abhishek-8081/Brainly-Backend/internal/repository/db"
)

type Users interface {
	Create(username, passwordHash string) (string, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}

type Contents interface {
	Create(ctx context.Context, c models.Content) error
	ListByOwner(ctx context.Context, userID string) ([]models.ContentWithOwner, error)
	ListByUser(ctx context.Context, userID string) ([]models.Content, error)
	DeleteOwned(ctx context.Context, contentID, userID string) error
}

type ShareLinks interface {
	Create(ctx context.Context, link models.ShareLink) error
	GetByUser(ctx context.Context, userID string) (*models.ShareLink, error)
	GetByHash(ctx context.Context, hash string) (*models.ShareLink, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type Repository struct {
	Users      Users
	Contents   Contents
	ShareLinks ShareLinks
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users:      NewUserRepository(sqlDB),
		Contents:   NewContentRepository(sqlDB),
		ShareLinks: NewShareLinkRepository(sqlDB),
	}
}

// InitDB opens the SQLite database and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
