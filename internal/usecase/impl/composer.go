package impl

import (
	"fmt"

	"pushcast/internal/domain/entity"
)

// Notification titles per event kind. The emoji are part of the product
// copy rendered in the system tray.
const (
	titleVideoUpload   = "🎬 New Video Uploaded!"
	titleShortUpload   = "⚡ New Short Available!"
	titleNewSubscriber = "🎉 New Subscriber!"
	titleNewComment    = "💬 New Comment!"
)

// composeMessage maps an event onto notification copy and the data payload
// the client uses for deep-linking. Pure; payload defaulting happens here
// and nowhere else. The video argument is the resolved parent video for
// comment events and nil otherwise.
func composeMessage(event *entity.Event, video *entity.Video, audience entity.Audience) entity.NotificationMessage {
	switch event.Kind {
	case entity.EventVideoUpload:
		return composeVideoUpload(event, audience)
	case entity.EventShortUpload:
		return composeShortUpload(event, audience)
	case entity.EventNewSubscriber:
		return composeNewSubscriber(event, audience)
	case entity.EventNewComment:
		return composeNewComment(event, video, audience)
	}

	return entity.NotificationMessage{Audience: audience}
}

func composeVideoUpload(event *entity.Event, audience entity.Audience) entity.NotificationMessage {
	payload := entity.VideoPayloadFrom(event.Payload)

	return entity.NotificationMessage{
		Title: titleVideoUpload,
		Body: fmt.Sprintf("%s by %s",
			fallback(payload.Title, entity.FallbackVideoTitle),
			fallback(payload.ChannelName, entity.FallbackChannelName),
		),
		Data: map[string]string{
			"type":        string(entity.EventVideoUpload),
			"videoId":     event.Param("videoId"),
			"channelId":   payload.UploadedBy,
			"channelName": payload.ChannelName,
			"videoTitle":  payload.Title,
		},
		Audience: audience,
	}
}

func composeShortUpload(event *entity.Event, audience entity.Audience) entity.NotificationMessage {
	payload := entity.ShortPayloadFrom(event.Payload)

	return entity.NotificationMessage{
		Title: titleShortUpload,
		Body: fmt.Sprintf("%s by %s",
			fallback(payload.Title, entity.FallbackShortTitle),
			fallback(payload.ChannelName, entity.FallbackChannelName),
		),
		Data: map[string]string{
			"type":        string(entity.EventShortUpload),
			"shortId":     event.Param("shortId"),
			"channelId":   payload.UploadedBy,
			"channelName": payload.ChannelName,
			"shortTitle":  payload.Title,
		},
		Audience: audience,
	}
}

func composeNewSubscriber(event *entity.Event, audience entity.Audience) entity.NotificationMessage {
	payload := entity.SubscriberPayloadFrom(event.Payload)

	return entity.NotificationMessage{
		Title: titleNewSubscriber,
		Body: fmt.Sprintf("%s subscribed to your channel",
			fallback(payload.SubscriberName, entity.FallbackActorName),
		),
		Data: map[string]string{
			"type":           string(entity.EventNewSubscriber),
			"userId":         event.Param("userId"),
			"subscriberId":   event.Param("subscriberId"),
			"subscriberName": payload.SubscriberName,
		},
		Audience: audience,
	}
}

func composeNewComment(event *entity.Event, video *entity.Video, audience entity.Audience) entity.NotificationMessage {
	payload := entity.CommentPayloadFrom(event.Payload)

	var videoTitle string
	if video != nil {
		videoTitle = video.Title
	}

	return entity.NotificationMessage{
		Title: titleNewComment,
		Body: fmt.Sprintf("%s commented on your video: %s",
			fallback(payload.CommenterName, entity.FallbackActorName),
			fallback(videoTitle, entity.FallbackCommentVideo),
		),
		Data: map[string]string{
			"type":          string(entity.EventNewComment),
			"videoId":       event.Param("videoId"),
			"commentId":     event.Param("commentId"),
			"commenterName": payload.CommenterName,
			"videoTitle":    videoTitle,
		},
		Audience: audience,
	}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}

	return value
}
