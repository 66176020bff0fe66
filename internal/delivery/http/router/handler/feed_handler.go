// Package handler contains the HTTP handlers for the feed gateway.
package handler

import (
	"log/slog"
	"net/http"

	"pushcast/internal/delivery/http/response"
	"pushcast/internal/domain/entity"
	"pushcast/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// FeedHandler accepts change-feed callbacks from the platform backend and
// republishes them as events for the notifier worker. One endpoint per
// watched collection.
type FeedHandler struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(publisher service.EventPublisher, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		publisher: publisher,
		logger:    logger,
	}
}

// VideoCreatedRequest carries the fields of a newly inserted video document.
// All fields are optional; the composer substitutes fixed fallbacks.
type VideoCreatedRequest struct {
	Title       string `json:"title" validate:"max=200"`
	ChannelName string `json:"channelName" validate:"max=100"`
	UploadedBy  string `json:"uploadedBy" validate:"max=128"`
}

// ShortCreatedRequest carries the fields of a newly inserted short document.
type ShortCreatedRequest struct {
	Title       string `json:"title" validate:"max=200"`
	ChannelName string `json:"channelName" validate:"max=100"`
	UploadedBy  string `json:"uploadedBy" validate:"max=128"`
}

// SubscriberCreatedRequest carries the fields of a new subscriber document.
type SubscriberCreatedRequest struct {
	SubscriberName string `json:"subscriberName" validate:"max=100"`
}

// CommentCreatedRequest carries the fields of a new comment document.
type CommentCreatedRequest struct {
	CommenterName string `json:"commenterName" validate:"max=100"`
	Text          string `json:"text" validate:"max=2000"`
}

// VideoCreated handles POST /feed/videos/:videoId
func (h *FeedHandler) VideoCreated(c echo.Context) error {
	var req VideoCreatedRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	event := &entity.Event{
		Kind: entity.EventVideoUpload,
		PathParams: map[string]string{
			"videoId": c.Param("videoId"),
		},
		Payload: map[string]any{
			"title":       req.Title,
			"channelName": req.ChannelName,
			"uploadedBy":  req.UploadedBy,
		},
	}

	return h.publish(c, event)
}

// ShortCreated handles POST /feed/shorts/:shortId
func (h *FeedHandler) ShortCreated(c echo.Context) error {
	var req ShortCreatedRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	event := &entity.Event{
		Kind: entity.EventShortUpload,
		PathParams: map[string]string{
			"shortId": c.Param("shortId"),
		},
		Payload: map[string]any{
			"title":       req.Title,
			"channelName": req.ChannelName,
			"uploadedBy":  req.UploadedBy,
		},
	}

	return h.publish(c, event)
}

// SubscriberCreated handles POST /feed/users/:userId/subscribers/:subscriberId
func (h *FeedHandler) SubscriberCreated(c echo.Context) error {
	var req SubscriberCreatedRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	event := &entity.Event{
		Kind: entity.EventNewSubscriber,
		PathParams: map[string]string{
			"userId":       c.Param("userId"),
			"subscriberId": c.Param("subscriberId"),
		},
		Payload: map[string]any{
			"subscriberName": req.SubscriberName,
		},
	}

	return h.publish(c, event)
}

// CommentCreated handles POST /feed/videos/:videoId/comments/:commentId
func (h *FeedHandler) CommentCreated(c echo.Context) error {
	var req CommentCreatedRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	event := &entity.Event{
		Kind: entity.EventNewComment,
		PathParams: map[string]string{
			"videoId":   c.Param("videoId"),
			"commentId": c.Param("commentId"),
		},
		Payload: map[string]any{
			"commenterName": req.CommenterName,
			"text":          req.Text,
		},
	}

	return h.publish(c, event)
}

func (h *FeedHandler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return nil
}

func (h *FeedHandler) publish(c echo.Context, event *entity.Event) error {
	if err := h.publisher.PublishEvent(c.Request().Context(), event); err != nil {
		h.logger.Error("[Gateway] Failed to publish event",
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "PUBLISH_FAILED", "Failed to publish event")
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"kind": string(event.Kind),
	}, "Event accepted")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
