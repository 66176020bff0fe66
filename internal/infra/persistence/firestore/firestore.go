// Package firestore implements the repository interfaces on Cloud Firestore,
// the document store that owns registrations, users, and videos.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Watched collections. The change feed fires on inserts into videos and
// shorts plus the subscriber and comment subcollections; user_tokens holds
// device registrations.
const (
	collectionUserTokens = "user_tokens"
	collectionUsers      = "users"
	collectionVideos     = "videos"

	fieldFCMToken = "fcmToken"
)

// Params holds dependencies for the Firestore client
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New creates the Firestore client from the shared Firebase app and closes
// it on shutdown.
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
