package entity

// User is the subset of a users/{userId} document the pipeline reads: the
// channel owner's push token for unicast delivery.
type User struct {
	ID       string `firestore:"-" json:"id"`
	FCMToken string `firestore:"fcmToken,omitempty" json:"fcm_token"`
	Name     string `firestore:"name,omitempty" json:"name"`
}

// Video is the subset of a videos/{videoId} document the pipeline reads:
// the uploader for comment routing and the title for notification copy.
type Video struct {
	ID          string `firestore:"-" json:"id"`
	UploadedBy  string `firestore:"uploadedBy,omitempty" json:"uploaded_by"`
	Title       string `firestore:"title,omitempty" json:"title"`
	ChannelName string `firestore:"channelName,omitempty" json:"channel_name"`
}
