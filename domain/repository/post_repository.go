// domain/repository/post_repository.go
package repository

import (
	"github.com/altsora/SocialNetwork-sub000/domain/models"
	"github.com/google/uuid"
)

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uuid.UUID) (*models.Post, error)
	// Mutate runs find-apply-save as one transaction; an error from the
	// callback rolls it back.
	Mutate(id uuid.UUID, apply func(*models.Post) error) (*models.Post, error)

	// FindByAuthor returns non-deleted posts of one author, newest first.
	FindByAuthor(authorID uuid.UUID, offset, limit int) ([]*models.Post, int64, error)
	// FindFeed returns non-deleted, non-blocked posts across all authors,
	// newest first.
	FindFeed(offset, limit int) ([]*models.Post, int64, error)

	IncrementLikes(id uuid.UUID) error
	// DecrementLikes never drives the counter below zero.
	DecrementLikes(id uuid.UUID) error
}
