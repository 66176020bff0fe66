package entity

// DeviceRegistration binds a device's push-delivery token to an optional
// owning user. Registrations live in the user_tokens collection and are
// created by the mobile client; this service only reads and deletes them.
type DeviceRegistration struct {
	ID       string `firestore:"-" json:"id"`                            // Document ID, set from the snapshot ref.
	FCMToken string `firestore:"fcmToken" json:"fcm_token"`              // Firebase Cloud Messaging delivery token.
	UserID   string `firestore:"userId,omitempty" json:"user_id"`        // Owning user, empty for anonymous devices.
	Platform string `firestore:"platform,omitempty" json:"platform"`     // Device platform (ios, android), informational.
	DeviceID string `firestore:"deviceId,omitempty" json:"device_id"`    // Client-side device identifier, informational.
}
