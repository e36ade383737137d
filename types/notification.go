package types //nolint:revive,nolintlint // allow pkg name 'types'

import "time"

// NotificationVariant selects how a notification is presented.
type NotificationVariant string

const (
	VariantInfo     NotificationVariant = "info"
	VariantPending  NotificationVariant = "pending"
	VariantComplete NotificationVariant = "complete"
	VariantError    NotificationVariant = "error"
)

// Notification is a keyed, replaceable user-facing message. Showing a notification with an ID
// that is already displayed replaces it.
type Notification struct {
	ID       string              `json:"id"`
	Variant  NotificationVariant `json:"variant"`
	Title    string              `json:"title"`
	Message  string              `json:"message"`
	Duration time.Duration       `json:"duration,omitempty"`
}
