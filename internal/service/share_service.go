package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek-8081/Brainly-Backend/internal/models"
	"github.com/abhishek-8081/Brainly-Backend/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Domain errors for the public share read path.
var (
	ErrLinkNotFound  = errors.New("link not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

const (
	shareHashLength   = 10
	shareHashAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// SharingService manages share links and resolves them for public reads.
type SharingService struct {
	links    repository.ShareLinks
	users    repository.Users
	contents repository.Contents
}

func NewSharingService(links repository.ShareLinks, users repository.Users, contents repository.Contents) *SharingService {
	return &SharingService{links: links, users: users, contents: contents}
}

var _ Sharing = (*SharingService)(nil)

// Enable returns the user's share hash, creating one on first use.
// Re-enabling returns the existing hash unchanged. The generated hash is
// not checked for collisions across users; only the per-owner uniqueness
// constraint in the store applies.
func (s *SharingService) Enable(ctx context.Context, userID string) (string, error) {
	existing, err := s.links.GetByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Hash, nil
	}

	hash, err := gonanoid.Generate(shareHashAlphabet, shareHashLength)
	if err != nil {
		return "", fmt.Errorf("generate share hash: %w", err)
	}
	if err := s.links.Create(ctx, models.ShareLink{Hash: hash, UserID: userID}); err != nil {
		return "", err
	}
	return hash, nil
}

// Disable removes the user's share link; absent links are a success.
func (s *SharingService) Disable(ctx context.Context, userID string) error {
	return s.links.DeleteByUser(ctx, userID)
}

// Resolve maps a public hash to the owner's username and full content
// list. No authentication applies on this path.
func (s *SharingService) Resolve(ctx context.Context, hash string) (models.SharedBrain, error) {
	link, err := s.links.GetByHash(ctx, hash)
	if err != nil {
		return models.SharedBrain{}, err
	}
	if link == nil {
		return models.SharedBrain{}, ErrLinkNotFound
	}

	owner, err := s.users.GetByID(link.UserID)
	if err != nil {
		return models.SharedBrain{}, err
	}
	if owner == nil {
		return models.SharedBrain{}, ErrOwnerNotFound
	}

	content, err := s.contents.ListByUser(ctx, link.UserID)
	if err != nil {
		return models.SharedBrain{}, err
	}

	return models.SharedBrain{Username: owner.Username, Content: content}, nil
}
