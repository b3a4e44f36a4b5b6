package service

import (
	"context"

	"github.com/abhishek-8081/Brainly-Backend/internal/models"
	"github.com/abhishek-8081/Brainly-Backend/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (string, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Contents exposes the per-user bookmark operations.
type Contents interface {
	Create(ctx context.Context, userID string, p ContentParams) (models.Content, error)
	List(ctx context.Context, userID string) ([]models.ContentWithOwner, error)
	Delete(ctx context.Context, contentID, userID string) error
}

// Sharing manages the public read-only snapshot of a user's content.
type Sharing interface {
	Enable(ctx context.Context, userID string) (string, error)
	Disable(ctx context.Context, userID string) error
	Resolve(ctx context.Context, hash string) (models.SharedBrain, error)
}

// ContentParams is the caller-supplied part of a new content record.
type ContentParams struct {
	Title string
	Link  string
	Type  string
}

// Service aggregates all sub-services behind one handle for the HTTP layer.
type Service struct {
	Authorization
	Contents
	Sharing
}

// NewService wires the repository layer into concrete services.
// signingKey is the process-wide token secret, read once at startup.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Contents:      NewContentService(repos.Contents),
		Sharing:       NewSharingService(repos.ShareLinks, repos.Users, repos.Contents),
	}
}
