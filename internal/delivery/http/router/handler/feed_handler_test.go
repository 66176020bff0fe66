package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pushcast/internal/delivery/http/validator"
	"pushcast/internal/domain/entity"
	mockSvc "pushcast/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFeedHandler(t *testing.T) (*FeedHandler, *mockSvc.MockEventPublisher, *echo.Echo) {
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := echo.New()
	e.Validator = validator.New()

	return NewFeedHandler(publisher, logger), publisher, e
}

func TestFeedHandler_VideoCreated_PublishesEvent(t *testing.T) {
	handler, publisher, e := createTestFeedHandler(t)

	publisher.EXPECT().
		PublishEvent(mock.Anything, mock.MatchedBy(func(event *entity.Event) bool {
			return event.Kind == entity.EventVideoUpload &&
				event.Param("videoId") == "vid-1" &&
				event.Payload["title"] == "Demo" &&
				event.Payload["channelName"] == "Acme"
		})).
		Return(nil)

	body := `{"title":"Demo","channelName":"Acme","uploadedBy":"chan-1"}`
	req := httptest.NewRequest(http.MethodPost, "/feed/videos/vid-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/feed/videos/:videoId")
	c.SetParamNames("videoId")
	c.SetParamValues("vid-1")

	require.NoError(t, handler.VideoCreated(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "video_upload")
}

func TestFeedHandler_VideoCreated_EmptyBody_Accepted(t *testing.T) {
	handler, publisher, e := createTestFeedHandler(t)

	publisher.EXPECT().
		PublishEvent(mock.Anything, mock.Anything).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/feed/videos/vid-1", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/feed/videos/:videoId")
	c.SetParamNames("videoId")
	c.SetParamValues("vid-1")

	require.NoError(t, handler.VideoCreated(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestFeedHandler_VideoCreated_TitleTooLong_BadRequest(t *testing.T) {
	handler, _, e := createTestFeedHandler(t)

	body := `{"title":"` + strings.Repeat("x", 201) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/feed/videos/vid-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/feed/videos/:videoId")
	c.SetParamNames("videoId")
	c.SetParamValues("vid-1")

	require.NoError(t, handler.VideoCreated(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedHandler_ShortCreated_PublishesEvent(t *testing.T) {
	handler, publisher, e := createTestFeedHandler(t)

	publisher.EXPECT().
		PublishEvent(mock.Anything, mock.MatchedBy(func(event *entity.Event) bool {
			return event.Kind == entity.EventShortUpload &&
				event.Param("shortId") == "sh-1"
		})).
		Return(nil)

	body := `{"title":"Clip","channelName":"Acme"}`
	req := httptest.NewRequest(http.MethodPost, "/feed/shorts/sh-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/feed/shorts/:shortId")
	c.SetParamNames("shortId")
	c.SetParamValues("sh-1")

	require.NoError(t, handler.ShortCreated(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestFeedHandler_SubscriberCreated_PublishesEvent(t *testing.T) {
	handler, publisher, e := createTestFeedHandler(t)

	publisher.EXPECT().
		PublishEvent(mock.Anything, mock.MatchedBy(func(event *entity.Event) bool {
			return event.Kind == entity.EventNewSubscriber &&
				event.Param("userId") == "user-1" &&
				event.Param("subscriberId") == "user-2" &&
				event.Payload["subscriberName"] == "Ana"
		})).
		Return(nil)

	body := `{"subscriberName":"Ana"}`
	req := httptest.NewRequest(http.MethodPost, "/feed/users/user-1/subscribers/user-2", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/feed/users/:userId/subscribers/:subscriberId")
	c.SetParamNames("userId", "subscriberId")
	c.SetParamValues("user-1", "user-2")

	require.NoError(t, handler.SubscriberCreated(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestFeedHandler_CommentCreated_PublishesEvent(t *testing.T) {
	handler, publisher, e := createTestFeedHandler(t)

	publisher.EXPECT().
		PublishEvent(mock.Anything, mock.MatchedBy(func(event *entity.Event) bool {
			return event.Kind == entity.EventNewComment &&
				event.Param("videoId") == "vid-1" &&
				event.Param("commentId") == "com-1"
		})).
		Return(nil)

	body := `{"commenterName":"Bela","text":"nice one"}`
	req := httptest.NewRequest(http.MethodPost, "/feed/videos/vid-1/comments/com-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/feed/videos/:videoId/comments/:commentId")
	c.SetParamNames("videoId", "commentId")
	c.SetParamValues("vid-1", "com-1")

	require.NoError(t, handler.CommentCreated(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestFeedHandler_PublishFailure_InternalServerError(t *testing.T) {
	handler, publisher, e := createTestFeedHandler(t)

	publisher.EXPECT().
		PublishEvent(mock.Anything, mock.Anything).
		Return(errors.New("topic not found"))

	req := httptest.NewRequest(http.MethodPost, "/feed/videos/vid-1", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/feed/videos/:videoId")
	c.SetParamNames("videoId")
	c.SetParamValues("vid-1")

	require.NoError(t, handler.VideoCreated(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
