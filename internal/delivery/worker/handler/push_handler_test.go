package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pushcast/internal/domain/entity"
	mockUsecase "pushcast/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockNotifyUsecase) {
	notifySvc := mockUsecase.NewMockNotifyUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         logger,
		notifySvc:      notifySvc,
	}

	return handler, notifySvc
}

func pushRequest(t *testing.T, event *entity.Event, attributes map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var envelope PubSubMessage
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = "msg-1"
	envelope.Subscription = "projects/test/subscriptions/push-events"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	handler, notifySvc := createTestPushHandler(t)

	event := &entity.Event{
		Kind:       entity.EventVideoUpload,
		PathParams: map[string]string{"videoId": "vid-1"},
		Payload:    map[string]any{"title": "Demo"},
	}

	notifySvc.EXPECT().
		HandleEvent(mock.Anything, mock.MatchedBy(func(got *entity.Event) bool {
			return got.Kind == entity.EventVideoUpload && got.Param("videoId") == "vid-1"
		})).
		Return(nil)

	e := echo.New()
	req := pushRequest(t, event, map[string]string{"request_id": "req-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_StoreFault_Returns503(t *testing.T) {
	handler, notifySvc := createTestPushHandler(t)

	event := &entity.Event{
		Kind:       entity.EventNewComment,
		PathParams: map[string]string{"videoId": "vid-1", "commentId": "com-1"},
	}

	notifySvc.EXPECT().
		HandleEvent(mock.Anything, mock.Anything).
		Return(errors.New("firestore unavailable"))

	e := echo.New()
	req := pushRequest(t, event, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_UnknownKind_Acked(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	event := &entity.Event{Kind: entity.EventKind("profile_update")}

	e := echo.New()
	req := pushRequest(t, event, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64_BadRequest(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	body := `{"message":{"data":"not-base64!!","messageId":"msg-1"},"subscription":"s"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEventJSON_BadRequest(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	var envelope PubSubMessage
	envelope.Message.Data = base64.StdEncoding.EncodeToString([]byte("{not json"))
	envelope.Message.MessageID = "msg-1"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_AuthRequired_MissingToken(t *testing.T) {
	handler, _ := createTestPushHandler(t)
	handler.verifyPushAuth = true

	event := &entity.Event{
		Kind:       entity.EventVideoUpload,
		PathParams: map[string]string{"videoId": "vid-1"},
	}

	e := echo.New()
	req := pushRequest(t, event, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
