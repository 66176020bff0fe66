// Package entity contains the core business objects of the project.
package entity

// EventKind identifies which watched collection produced a change-feed event.
type EventKind string

const (
	// EventVideoUpload fires when a document is inserted into videos/{videoId}.
	EventVideoUpload EventKind = "video_upload"
	// EventShortUpload fires when a document is inserted into shorts/{shortId}.
	EventShortUpload EventKind = "short_upload"
	// EventNewSubscriber fires when a document is inserted into users/{userId}/subscribers/{subscriberId}.
	EventNewSubscriber EventKind = "new_subscriber"
	// EventNewComment fires when a document is inserted into videos/{videoId}/comments/{commentId}.
	EventNewComment EventKind = "new_comment"
)

// Valid reports whether the kind is one of the four watched collections.
func (k EventKind) Valid() bool {
	switch k {
	case EventVideoUpload, EventShortUpload, EventNewSubscriber, EventNewComment:
		return true
	}

	return false
}

// Event is a single change-feed occurrence: one document inserted into a
// watched collection. PathParams carries the path placeholders of the
// inserted document (videoId, shortId, userId, subscriberId, commentId) and
// Payload carries the new document's fields as delivered by the feed.
// Events are immutable and consumed by exactly one pipeline invocation.
type Event struct {
	Kind       EventKind         `json:"kind"`
	PathParams map[string]string `json:"path_params"`
	Payload    map[string]any    `json:"payload"`
}

// Param returns the named path parameter or "" when absent.
func (e *Event) Param(name string) string {
	if e.PathParams == nil {
		return ""
	}

	return e.PathParams[name]
}
