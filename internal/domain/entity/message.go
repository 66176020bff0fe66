package entity

// Audience is the resolved recipient set for one event: every registered
// device (broadcast) or a single channel owner's token. An Audience with no
// tokens means "nobody to notify" and short-circuits the pipeline.
type Audience struct {
	Broadcast bool     `json:"broadcast"`
	Tokens    []string `json:"tokens"`
}

// Empty reports whether resolution produced zero deliverable tokens.
func (a Audience) Empty() bool {
	return len(a.Tokens) == 0
}

// BroadcastAudience builds a broadcast audience over the given tokens.
func BroadcastAudience(tokens []string) Audience {
	return Audience{Broadcast: true, Tokens: tokens}
}

// SingleAudience builds a unicast audience. An empty token yields an empty
// audience rather than a one-element list with a blank target.
func SingleAudience(token string) Audience {
	if token == "" {
		return Audience{}
	}

	return Audience{Tokens: []string{token}}
}

// NotificationMessage is a composed push notification ready for dispatch.
// Data values are flat strings because FCM data payloads reject anything
// else; absent values are composed as "" rather than omitted.
type NotificationMessage struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data"`
	Audience Audience          `json:"audience"`
}

// DeliveryOutcome is the per-token result of a multicast send. Outcome
// slices are positionally aligned with the token slice handed to the
// gateway; the reconciler depends on that alignment.
type DeliveryOutcome struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
}
