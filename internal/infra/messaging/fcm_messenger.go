// Package messaging implements the push gateway contract on Firebase Cloud
// Messaging.
package messaging

import (
	"context"

	"pushcast/internal/domain/entity"
	"pushcast/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// FCM rejects multicast calls above this many tokens.
const maxMulticastTokens = 500

type fcmMessenger struct {
	client *messaging.Client
}

// NewFCMMessenger creates a Messenger backed by the shared Firebase app.
func NewFCMMessenger(ctx context.Context, app *firebase.App) (service.Messenger, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmMessenger{client: client}, nil
}

// Send delivers a push notification to a single device token.
func (m *fcmMessenger) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := m.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendMulticast delivers a push notification to up to 500 device tokens.
// The returned outcomes are aligned index-for-index with the input tokens;
// FCM guarantees Responses follow the request token order.
func (m *fcmMessenger) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]entity.DeliveryOutcome, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	if len(tokens) > maxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := m.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	outcomes := make([]entity.DeliveryOutcome, len(tokens))
	for idx, sendResponse := range response.Responses {
		outcomes[idx] = entity.DeliveryOutcome{
			Token:   tokens[idx],
			Success: sendResponse.Error == nil,
		}
	}

	return outcomes, nil
}
