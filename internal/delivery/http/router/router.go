// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pushcast/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FeedHandler *handler.FeedHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	feedHandler *handler.FeedHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		feedHandler: params.FeedHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Change-feed callbacks, one route per watched collection
	feedGroup := e.Group("/feed")
	{
		feedGroup.POST("/videos/:videoId", r.feedHandler.VideoCreated)
		feedGroup.POST("/shorts/:shortId", r.feedHandler.ShortCreated)
		feedGroup.POST("/users/:userId/subscribers/:subscriberId", r.feedHandler.SubscriberCreated)
		feedGroup.POST("/videos/:videoId/comments/:commentId", r.feedHandler.CommentCreated)
	}
}
