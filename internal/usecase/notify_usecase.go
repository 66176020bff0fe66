package usecase

import (
	"context"

	"pushcast/internal/domain/entity"
)

// NotifyUsecase runs the dispatch pipeline for one change-feed event:
// resolve the audience, compose the notification, deliver it, and prune
// registrations the gateway reported as failed.
//
// A nil return covers both successful delivery and the silent no-op terminal
// states (empty audience, missing upstream record, swallowed transport
// failure). A non-nil return always indicates a store fault and the caller
// may retry the whole event; invocations are independent and idempotent
// apart from registration pruning, which tolerates re-runs.
type NotifyUsecase interface {
	HandleEvent(ctx context.Context, event *entity.Event) error
}
