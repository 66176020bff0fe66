// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pushcast/internal/domain/entity"
)

// RegistrationRepository reads and prunes device push registrations in the
// user_tokens collection. The pipeline never creates registrations.
type RegistrationRepository interface {
	// ListRegistrations returns every current device registration.
	ListRegistrations(ctx context.Context) ([]*entity.DeviceRegistration, error)

	// FindRegistrationsByToken returns every registration holding the given
	// token value. Token uniqueness is not enforced upstream, so more than
	// one row per token is possible.
	FindRegistrationsByToken(ctx context.Context, token string) ([]*entity.DeviceRegistration, error)

	// DeleteByTokens removes every registration whose token is in the given
	// set and commits all deletions as one atomic batch. Tokens with no
	// matching registration are skipped without error. Returns the number of
	// registrations removed.
	DeleteByTokens(ctx context.Context, tokens []string) (int, error)
}
