package repository

import (
	"context"

	"pushcast/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for content lookups.
var (
	// ErrUserNotFound is returned when a users/{userId} document is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrVideoNotFound is returned when a videos/{videoId} document is absent.
	ErrVideoNotFound = errors.New("video not found")
)

// ContentRepository reads the user and video documents the resolver needs to
// route unicast notifications. Read-only; content is owned by the platform
// backend.
type ContentRepository interface {
	// FindUserByID retrieves a user document. Returns ErrUserNotFound when
	// the document does not exist.
	FindUserByID(ctx context.Context, userID string) (*entity.User, error)

	// FindVideoByID retrieves a video document. Returns ErrVideoNotFound
	// when the document does not exist.
	FindVideoByID(ctx context.Context, videoID string) (*entity.Video, error)
}
