package notify

import "time"

// Notification channels.
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// Event is a notification published for downstream delivery.
type Event struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"`
	To        string    `json:"to"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
