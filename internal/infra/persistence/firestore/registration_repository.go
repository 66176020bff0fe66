package firestore

import (
	"context"

	"pushcast/internal/domain/entity"
	"pushcast/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type registrationRepository struct {
	client *firestore.Client
}

// NewRegistrationRepository creates a Firestore-backed registration repository.
func NewRegistrationRepository(client *firestore.Client) repository.RegistrationRepository {
	return &registrationRepository{client: client}
}

// ListRegistrations returns every document in the user_tokens collection.
func (r *registrationRepository) ListRegistrations(ctx context.Context) ([]*entity.DeviceRegistration, error) {
	iter := r.client.Collection(collectionUserTokens).Documents(ctx)
	defer iter.Stop()

	var registrations []*entity.DeviceRegistration
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list registrations")
		}

		registration, err := decodeRegistration(doc)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, registration)
	}

	return registrations, nil
}

// FindRegistrationsByToken returns every registration holding the token.
// Token uniqueness is not enforced upstream, so the result may hold more
// than one row.
func (r *registrationRepository) FindRegistrationsByToken(ctx context.Context, token string) ([]*entity.DeviceRegistration, error) {
	iter := r.client.Collection(collectionUserTokens).
		Where(fieldFCMToken, "==", token).
		Documents(ctx)
	defer iter.Stop()

	var registrations []*entity.DeviceRegistration
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query registrations by token")
		}

		registration, err := decodeRegistration(doc)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, registration)
	}

	return registrations, nil
}

// DeleteByTokens removes every registration matching one of the tokens in a
// single atomic batch. Tokens that match nothing are skipped, so re-running
// a reconciliation is a no-op rather than an error.
func (r *registrationRepository) DeleteByTokens(ctx context.Context, tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	batch := r.client.Batch()
	removed := 0

	for _, token := range tokens {
		iter := r.client.Collection(collectionUserTokens).
			Where(fieldFCMToken, "==", token).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				break
			}
			if err != nil {
				iter.Stop()

				return 0, errors.Wrap(err, "failed to query registrations for deletion")
			}

			batch.Delete(doc.Ref)
			removed++
		}
		iter.Stop()
	}

	if removed == 0 {
		return 0, nil
	}

	if _, err := batch.Commit(ctx); err != nil {
		return 0, errors.Wrap(err, "failed to commit registration deletions")
	}

	return removed, nil
}

func decodeRegistration(doc *firestore.DocumentSnapshot) (*entity.DeviceRegistration, error) {
	var registration entity.DeviceRegistration
	if err := doc.DataTo(&registration); err != nil {
		return nil, errors.Wrapf(err, "failed to decode registration %s", doc.Ref.ID)
	}
	registration.ID = doc.Ref.ID

	return &registration, nil
}
