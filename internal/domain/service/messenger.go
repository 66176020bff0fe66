package service

import (
	"context"

	"pushcast/internal/domain/entity"
)

// Messenger is the push gateway contract. Implementations must keep
// SendMulticast outcomes positionally aligned with the input token order;
// registration reconciliation index-matches outcomes back to tokens.
type Messenger interface {
	// Send delivers one notification to a single device token.
	Send(ctx context.Context, token, title, body string, data map[string]string) error

	// SendMulticast delivers one notification to up to 500 device tokens and
	// returns one outcome per token, in input order. The error return covers
	// total call failure only; per-token failures are reported in outcomes.
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]entity.DeliveryOutcome, error)
}
