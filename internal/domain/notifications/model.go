package notifications

import (
	"time"

	"medirecord/internal/ports/notify"
)

type Notification struct {
	ID      string
	UserID  string
	Kind    notify.Kind
	Title   string
	Message string
	Read    bool
	SentAt  time.Time
}
