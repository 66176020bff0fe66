package entity

// Fallback strings substituted when an event payload omits a field. The
// client renders these verbatim, so they are fixed copy, not placeholders.
const (
	FallbackVideoTitle   = "Check out this new video"
	FallbackShortTitle   = "Check out this new short"
	FallbackChannelName  = "Unknown Channel"
	FallbackActorName    = "Someone"
	FallbackCommentVideo = "Untitled"
)

// VideoPayload is the typed view of a videos/{videoId} document.
type VideoPayload struct {
	Title       string
	ChannelName string
	UploadedBy  string
}

// ShortPayload is the typed view of a shorts/{shortId} document.
type ShortPayload struct {
	Title       string
	ChannelName string
	UploadedBy  string
}

// SubscriberPayload is the typed view of a subscribers/{subscriberId} document.
type SubscriberPayload struct {
	SubscriberName string
}

// CommentPayload is the typed view of a comments/{commentId} document.
type CommentPayload struct {
	CommenterName string
}

// VideoPayloadFrom decodes the raw field map of a video document. Missing or
// non-string fields decode to "".
func VideoPayloadFrom(fields map[string]any) VideoPayload {
	return VideoPayload{
		Title:       stringField(fields, "title"),
		ChannelName: stringField(fields, "channelName"),
		UploadedBy:  stringField(fields, "uploadedBy"),
	}
}

// ShortPayloadFrom decodes the raw field map of a short document.
func ShortPayloadFrom(fields map[string]any) ShortPayload {
	return ShortPayload{
		Title:       stringField(fields, "title"),
		ChannelName: stringField(fields, "channelName"),
		UploadedBy:  stringField(fields, "uploadedBy"),
	}
}

// SubscriberPayloadFrom decodes the raw field map of a subscriber document.
func SubscriberPayloadFrom(fields map[string]any) SubscriberPayload {
	return SubscriberPayload{
		SubscriberName: stringField(fields, "subscriberName"),
	}
}

// CommentPayloadFrom decodes the raw field map of a comment document.
func CommentPayloadFrom(fields map[string]any) CommentPayload {
	return CommentPayload{
		CommenterName: stringField(fields, "commenterName"),
	}
}

func stringField(fields map[string]any, key string) string {
	if fields == nil {
		return ""
	}
	if s, ok := fields[key].(string); ok {
		return s
	}

	return ""
}
