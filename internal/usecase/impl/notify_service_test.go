package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pushcast/internal/domain/entity"
	"pushcast/internal/domain/repository"
	mockRepo "pushcast/internal/mocks/repository"
	mockSvc "pushcast/internal/mocks/service"
	"pushcast/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotifyService(t *testing.T, batchSize int) (
	usecase.NotifyUsecase,
	*mockRepo.MockRegistrationRepository,
	*mockRepo.MockContentRepository,
	*mockSvc.MockMessenger,
) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	contentRepo := mockRepo.NewMockContentRepository(t)
	messenger := mockSvc.NewMockMessenger(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotifyService(logger, registrationRepo, contentRepo, messenger, batchSize)

	return service, registrationRepo, contentRepo, messenger
}

func registrations(tokens ...string) []*entity.DeviceRegistration {
	regs := make([]*entity.DeviceRegistration, 0, len(tokens))
	for i, token := range tokens {
		regs = append(regs, &entity.DeviceRegistration{
			ID:       string(rune('a' + i)),
			FCMToken: token,
		})
	}

	return regs
}

func TestNotifyService_VideoUpload_PrunesFailedTokens(t *testing.T) {
	service, registrationRepo, _, messenger := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventVideoUpload,
		PathParams: map[string]string{"videoId": "vid-1"},
		Payload: map[string]any{
			"title":       "Demo",
			"channelName": "Acme",
			"uploadedBy":  "chan-1",
		},
	}

	registrationRepo.EXPECT().ListRegistrations(ctx).
		Return(registrations("tok-a", "tok-b", "tok-c"), nil)

	messenger.EXPECT().
		SendMulticast(ctx, []string{"tok-a", "tok-b", "tok-c"}, "🎬 New Video Uploaded!", "Demo by Acme", mock.Anything).
		Return([]entity.DeliveryOutcome{
			{Token: "tok-a", Success: true},
			{Token: "tok-b", Success: false},
			{Token: "tok-c", Success: true},
		}, nil)

	registrationRepo.EXPECT().DeleteByTokens(ctx, []string{"tok-b"}).Return(1, nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_VideoUpload_AllDelivered_NoPrune(t *testing.T) {
	service, registrationRepo, _, messenger := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventVideoUpload,
		PathParams: map[string]string{"videoId": "vid-1"},
		Payload:    map[string]any{"title": "Demo", "channelName": "Acme"},
	}

	registrationRepo.EXPECT().ListRegistrations(ctx).
		Return(registrations("tok-a", "tok-b"), nil)

	messenger.EXPECT().
		SendMulticast(ctx, []string{"tok-a", "tok-b"}, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.DeliveryOutcome{
			{Token: "tok-a", Success: true},
			{Token: "tok-b", Success: true},
		}, nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_VideoUpload_SkipsEmptyTokens(t *testing.T) {
	service, registrationRepo, _, messenger := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventVideoUpload,
		PathParams: map[string]string{"videoId": "vid-1"},
		Payload:    map[string]any{"title": "Demo", "channelName": "Acme"},
	}

	registrationRepo.EXPECT().ListRegistrations(ctx).
		Return(registrations("tok-a", "", "tok-c"), nil)

	messenger.EXPECT().
		SendMulticast(ctx, []string{"tok-a", "tok-c"}, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.DeliveryOutcome{
			{Token: "tok-a", Success: true},
			{Token: "tok-c", Success: true},
		}, nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_VideoUpload_NoRegistrations_NoSend(t *testing.T) {
	service, registrationRepo, _, _ := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventVideoUpload,
		PathParams: map[string]string{"videoId": "vid-1"},
		Payload:    map[string]any{"title": "Demo"},
	}

	registrationRepo.EXPECT().ListRegistrations(ctx).
		Return([]*entity.DeviceRegistration{}, nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_VideoUpload_ListFailure_ReturnsError(t *testing.T) {
	service, registrationRepo, _, _ := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventVideoUpload,
		PathParams: map[string]string{"videoId": "vid-1"},
	}

	registrationRepo.EXPECT().ListRegistrations(ctx).
		Return(nil, errors.New("firestore unavailable"))

	err := service.HandleEvent(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list registrations")
}

func TestNotifyService_Broadcast_ChunksByBatchSize(t *testing.T) {
	service, registrationRepo, _, messenger := createTestNotifyService(t, 2)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventShortUpload,
		PathParams: map[string]string{"shortId": "sh-1"},
		Payload:    map[string]any{"title": "Clip", "channelName": "Acme"},
	}

	registrationRepo.EXPECT().ListRegistrations(ctx).
		Return(registrations("tok-a", "tok-b", "tok-c", "tok-d", "tok-e"), nil)

	messenger.EXPECT().
		SendMulticast(ctx, []string{"tok-a", "tok-b"}, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.DeliveryOutcome{
			{Token: "tok-a", Success: true},
			{Token: "tok-b", Success: true},
		}, nil)
	messenger.EXPECT().
		SendMulticast(ctx, []string{"tok-c", "tok-d"}, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.DeliveryOutcome{
			{Token: "tok-c", Success: false},
			{Token: "tok-d", Success: true},
		}, nil)
	messenger.EXPECT().
		SendMulticast(ctx, []string{"tok-e"}, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.DeliveryOutcome{
			{Token: "tok-e", Success: false},
		}, nil)

	registrationRepo.EXPECT().DeleteByTokens(ctx, []string{"tok-c", "tok-e"}).Return(2, nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_Broadcast_FailedBatchSkipsReconcile(t *testing.T) {
	service, registrationRepo, _, messenger := createTestNotifyService(t, 2)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventShortUpload,
		PathParams: map[string]string{"shortId": "sh-1"},
		Payload:    map[string]any{"title": "Clip"},
	}

	registrationRepo.EXPECT().ListRegistrations(ctx).
		Return(registrations("tok-a", "tok-b", "tok-c"), nil)

	// First batch fails outright; its tokens must not be pruned.
	messenger.EXPECT().
		SendMulticast(ctx, []string{"tok-a", "tok-b"}, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("gateway timeout"))
	messenger.EXPECT().
		SendMulticast(ctx, []string{"tok-c"}, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.DeliveryOutcome{
			{Token: "tok-c", Success: false},
		}, nil)

	registrationRepo.EXPECT().DeleteByTokens(ctx, []string{"tok-c"}).Return(1, nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_Broadcast_PruneFailure_Swallowed(t *testing.T) {
	service, registrationRepo, _, messenger := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventVideoUpload,
		PathParams: map[string]string{"videoId": "vid-1"},
		Payload:    map[string]any{"title": "Demo"},
	}

	registrationRepo.EXPECT().ListRegistrations(ctx).
		Return(registrations("tok-a"), nil)

	messenger.EXPECT().
		SendMulticast(ctx, []string{"tok-a"}, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.DeliveryOutcome{{Token: "tok-a", Success: false}}, nil)

	registrationRepo.EXPECT().DeleteByTokens(ctx, []string{"tok-a"}).
		Return(0, errors.New("commit failed"))

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_NewSubscriber_SendsUnicast(t *testing.T) {
	service, _, contentRepo, messenger := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind: entity.EventNewSubscriber,
		PathParams: map[string]string{
			"userId":       "user-1",
			"subscriberId": "user-2",
		},
		Payload: map[string]any{"subscriberName": "Ana"},
	}

	contentRepo.EXPECT().FindUserByID(ctx, "user-1").
		Return(&entity.User{ID: "user-1", FCMToken: "tok-owner"}, nil)

	messenger.EXPECT().
		Send(ctx, "tok-owner", "🎉 New Subscriber!", "Ana subscribed to your channel", map[string]string{
			"type":           "new_subscriber",
			"userId":         "user-1",
			"subscriberId":   "user-2",
			"subscriberName": "Ana",
		}).
		Return(nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_NewSubscriber_OwnerMissing_NoOp(t *testing.T) {
	service, _, contentRepo, _ := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventNewSubscriber,
		PathParams: map[string]string{"userId": "ghost", "subscriberId": "user-2"},
	}

	contentRepo.EXPECT().FindUserByID(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_NewSubscriber_OwnerWithoutToken_NoOp(t *testing.T) {
	service, _, contentRepo, _ := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventNewSubscriber,
		PathParams: map[string]string{"userId": "user-1", "subscriberId": "user-2"},
	}

	contentRepo.EXPECT().FindUserByID(ctx, "user-1").
		Return(&entity.User{ID: "user-1"}, nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_NewSubscriber_SendFailure_Swallowed(t *testing.T) {
	service, _, contentRepo, messenger := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventNewSubscriber,
		PathParams: map[string]string{"userId": "user-1", "subscriberId": "user-2"},
		Payload:    map[string]any{"subscriberName": "Ana"},
	}

	contentRepo.EXPECT().FindUserByID(ctx, "user-1").
		Return(&entity.User{ID: "user-1", FCMToken: "tok-owner"}, nil)

	messenger.EXPECT().
		Send(ctx, "tok-owner", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("unregistered token"))

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_NewComment_NotifiesVideoOwner(t *testing.T) {
	service, _, contentRepo, messenger := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind: entity.EventNewComment,
		PathParams: map[string]string{
			"videoId":   "vid-1",
			"commentId": "com-1",
		},
		Payload: map[string]any{"commenterName": "Bela"},
	}

	contentRepo.EXPECT().FindVideoByID(ctx, "vid-1").
		Return(&entity.Video{ID: "vid-1", UploadedBy: "user-1", Title: "Launch Day"}, nil)
	contentRepo.EXPECT().FindUserByID(ctx, "user-1").
		Return(&entity.User{ID: "user-1", FCMToken: "tok-owner"}, nil)

	messenger.EXPECT().
		Send(ctx, "tok-owner", "💬 New Comment!", "Bela commented on your video: Launch Day", map[string]string{
			"type":          "new_comment",
			"videoId":       "vid-1",
			"commentId":     "com-1",
			"commenterName": "Bela",
			"videoTitle":    "Launch Day",
		}).
		Return(nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_NewComment_VideoMissing_NoOp(t *testing.T) {
	service, _, contentRepo, _ := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventNewComment,
		PathParams: map[string]string{"videoId": "ghost", "commentId": "com-1"},
	}

	contentRepo.EXPECT().FindVideoByID(ctx, "ghost").
		Return(nil, repository.ErrVideoNotFound)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_NewComment_VideoWithoutOwner_NoOp(t *testing.T) {
	service, _, contentRepo, _ := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventNewComment,
		PathParams: map[string]string{"videoId": "vid-1", "commentId": "com-1"},
	}

	contentRepo.EXPECT().FindVideoByID(ctx, "vid-1").
		Return(&entity.Video{ID: "vid-1", Title: "Orphan"}, nil)

	require.NoError(t, service.HandleEvent(ctx, event))
}

func TestNotifyService_NewComment_VideoLookupFailure_ReturnsError(t *testing.T) {
	service, _, contentRepo, _ := createTestNotifyService(t, 500)

	ctx := context.Background()
	event := &entity.Event{
		Kind:       entity.EventNewComment,
		PathParams: map[string]string{"videoId": "vid-1", "commentId": "com-1"},
	}

	contentRepo.EXPECT().FindVideoByID(ctx, "vid-1").
		Return(nil, errors.New("firestore unavailable"))

	err := service.HandleEvent(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get video vid-1")
}

func TestNotifyService_UnknownKind_NoOp(t *testing.T) {
	service, _, _, _ := createTestNotifyService(t, 500)

	event := &entity.Event{Kind: entity.EventKind("profile_update")}

	require.NoError(t, service.HandleEvent(context.Background(), event))
}
