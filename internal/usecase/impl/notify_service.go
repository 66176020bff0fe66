package impl

import (
	"context"
	"log/slog"

	"pushcast/internal/domain/entity"
	"pushcast/internal/domain/repository"
	"pushcast/internal/domain/service"
	"pushcast/internal/usecase"

	"github.com/pkg/errors"
)

// resolution is the output of audience resolution: the recipient set plus
// the parent video fetched along the way for comment events, reused by the
// composer so the video document is read once.
type resolution struct {
	audience entity.Audience
	video    *entity.Video
}

type notifyService struct {
	logger           *slog.Logger
	registrationRepo repository.RegistrationRepository
	contentRepo      repository.ContentRepository
	messenger        service.Messenger
	batchSize        int
}

// NewNotifyService creates the dispatch pipeline. batchSize caps tokens per
// multicast call and must match the gateway's limit.
func NewNotifyService(
	logger *slog.Logger,
	registrationRepo repository.RegistrationRepository,
	contentRepo repository.ContentRepository,
	messenger service.Messenger,
	batchSize int,
) usecase.NotifyUsecase {
	return &notifyService{
		logger:           logger,
		registrationRepo: registrationRepo,
		contentRepo:      contentRepo,
		messenger:        messenger,
		batchSize:        batchSize,
	}
}

// HandleEvent runs one pipeline invocation. Missing upstream records and
// empty audiences end the invocation silently; transport failures are
// logged and swallowed; only store faults surface to the caller.
func (s *notifyService) HandleEvent(ctx context.Context, event *entity.Event) error {
	res, err := s.resolveAudience(ctx, event)
	if err != nil {
		return err
	}

	if res.audience.Empty() {
		s.logger.Info("[Notify] No recipients for event",
			slog.String("kind", string(event.Kind)),
		)

		return nil
	}

	message := composeMessage(event, res.video, res.audience)

	if !res.audience.Broadcast {
		s.dispatchSingle(ctx, message)

		return nil
	}

	sentTokens, outcomes := s.dispatchBroadcast(ctx, message)
	s.reconcileRegistrations(ctx, sentTokens, outcomes)

	return nil
}

// resolveAudience determines the recipient set for the event. Absence of an
// upstream record is a normal terminal state and yields an empty audience;
// only store faults return an error.
func (s *notifyService) resolveAudience(ctx context.Context, event *entity.Event) (resolution, error) {
	switch event.Kind {
	case entity.EventVideoUpload, entity.EventShortUpload:
		return s.resolveBroadcast(ctx)
	case entity.EventNewSubscriber:
		return s.resolveOwner(ctx, event.Param("userId"), nil)
	case entity.EventNewComment:
		return s.resolveCommentOwner(ctx, event.Param("videoId"))
	}

	s.logger.Warn("[Notify] Unknown event kind, skipping",
		slog.String("kind", string(event.Kind)),
	)

	return resolution{}, nil
}

// resolveBroadcast collects every registered device token. Registrations
// with empty tokens are skipped.
func (s *notifyService) resolveBroadcast(ctx context.Context) (resolution, error) {
	registrations, err := s.registrationRepo.ListRegistrations(ctx)
	if err != nil {
		return resolution{}, errors.Wrap(err, "failed to list registrations")
	}

	tokens := make([]string, 0, len(registrations))
	for _, registration := range registrations {
		if registration.FCMToken != "" {
			tokens = append(tokens, registration.FCMToken)
		}
	}

	return resolution{audience: entity.BroadcastAudience(tokens)}, nil
}

// resolveOwner resolves a user id to that user's device token. An absent
// user or a user without a token yields an empty audience.
func (s *notifyService) resolveOwner(ctx context.Context, userID string, video *entity.Video) (resolution, error) {
	if userID == "" {
		return resolution{video: video}, nil
	}

	user, err := s.contentRepo.FindUserByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Info("[Notify] User not found, skipping",
			slog.String("user_id", userID),
		)

		return resolution{video: video}, nil
	}
	if err != nil {
		return resolution{}, errors.Wrapf(err, "failed to get user %s", userID)
	}

	if user.FCMToken == "" {
		s.logger.Info("[Notify] No FCM token for user, skipping",
			slog.String("user_id", userID),
		)
	}

	return resolution{
		audience: entity.SingleAudience(user.FCMToken),
		video:    video,
	}, nil
}

// resolveCommentOwner resolves the parent video's uploader to a token.
// Either stage missing its target ends the resolution silently.
func (s *notifyService) resolveCommentOwner(ctx context.Context, videoID string) (resolution, error) {
	video, err := s.contentRepo.FindVideoByID(ctx, videoID)
	if errors.Is(err, repository.ErrVideoNotFound) {
		s.logger.Info("[Notify] Video not found, skipping",
			slog.String("video_id", videoID),
		)

		return resolution{}, nil
	}
	if err != nil {
		return resolution{}, errors.Wrapf(err, "failed to get video %s", videoID)
	}

	if video.UploadedBy == "" {
		s.logger.Info("[Notify] No channel owner on video, skipping",
			slog.String("video_id", videoID),
		)

		return resolution{video: video}, nil
	}

	return s.resolveOwner(ctx, video.UploadedBy, video)
}

// dispatchSingle sends a unicast notification. Delivery is best-effort: a
// failed send is logged and dropped, never retried.
func (s *notifyService) dispatchSingle(ctx context.Context, message entity.NotificationMessage) {
	token := message.Audience.Tokens[0]

	if err := s.messenger.Send(ctx, token, message.Title, message.Body, message.Data); err != nil {
		s.logger.Error("[Notify] Failed to send notification",
			slog.String("title", message.Title),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("[Notify] Notification sent",
		slog.String("title", message.Title),
	)
}

// dispatchBroadcast sends one multicast per batch of tokens and returns the
// tokens that reached the gateway alongside their outcomes, both in send
// order so outcome index i always refers to token i. Batches whose call
// fails outright contribute no outcomes: a transport fault says nothing
// about token validity.
func (s *notifyService) dispatchBroadcast(ctx context.Context, message entity.NotificationMessage) ([]string, []entity.DeliveryOutcome) {
	tokens := message.Audience.Tokens

	sentTokens := make([]string, 0, len(tokens))
	outcomes := make([]entity.DeliveryOutcome, 0, len(tokens))

	for start := 0; start < len(tokens); start += s.batchSize {
		end := min(start+s.batchSize, len(tokens))
		batch := tokens[start:end]

		batchOutcomes, err := s.messenger.SendMulticast(ctx, batch, message.Title, message.Body, message.Data)
		if err != nil {
			s.logger.Error("[Notify] Failed to send multicast batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)

			continue
		}

		sentTokens = append(sentTokens, batch...)
		outcomes = append(outcomes, batchOutcomes...)
	}

	successCount := 0
	for _, outcome := range outcomes {
		if outcome.Success {
			successCount++
		}
	}

	s.logger.Info("[Notify] Broadcast dispatched",
		slog.String("title", message.Title),
		slog.Int("recipients", len(tokens)),
		slog.Int("sent", successCount),
		slog.Int("failed", len(tokens)-successCount),
	)

	return sentTokens, outcomes
}

// reconcileRegistrations deletes every registration whose positionally
// matched outcome reports failure. The gateway treats such tokens as
// permanently invalid. Deletion failures are logged and dropped so a store
// hiccup during cleanup cannot trigger a redelivery storm of the whole
// broadcast.
func (s *notifyService) reconcileRegistrations(ctx context.Context, tokens []string, outcomes []entity.DeliveryOutcome) int {
	invalidTokens := make([]string, 0)
	for idx, outcome := range outcomes {
		if !outcome.Success {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	if len(invalidTokens) == 0 {
		return 0
	}

	removed, err := s.registrationRepo.DeleteByTokens(ctx, invalidTokens)
	if err != nil {
		s.logger.Error("[Notify] Failed to prune invalid registrations",
			slog.Int("invalid_tokens", len(invalidTokens)),
			slog.Any("error", err),
		)

		return 0
	}

	s.logger.Info("[Notify] Pruned invalid registrations",
		slog.Int("invalid_tokens", len(invalidTokens)),
		slog.Int("removed", removed),
	)

	return removed
}
