package firestore

import (
	"context"

	"pushcast/internal/domain/entity"
	"pushcast/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type contentRepository struct {
	client *firestore.Client
}

// NewContentRepository creates a Firestore-backed content repository.
func NewContentRepository(client *firestore.Client) repository.ContentRepository {
	return &contentRepository{client: client}
}

// FindUserByID retrieves a users/{userId} document.
func (r *contentRepository) FindUserByID(ctx context.Context, userID string) (*entity.User, error) {
	doc, err := r.client.Collection(collectionUsers).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get user %s", userID)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user %s", userID)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

// FindVideoByID retrieves a videos/{videoId} document.
func (r *contentRepository) FindVideoByID(ctx context.Context, videoID string) (*entity.Video, error) {
	doc, err := r.client.Collection(collectionVideos).Doc(videoID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrVideoNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get video %s", videoID)
	}

	var video entity.Video
	if err := doc.DataTo(&video); err != nil {
		return nil, errors.Wrapf(err, "failed to decode video %s", videoID)
	}
	video.ID = doc.Ref.ID

	return &video, nil
}
