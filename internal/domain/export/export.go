package export

import (
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/cvos/internal/domain/profile"
)

const EventTypeRequested = "profile.export_requested"

// Request asks the worker to render a profile snapshot to PDF.
type Request struct {
	EventType   string          `json:"event_type"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Profile     profile.Profile `json:"profile"`
	Locale      string          `json:"locale"`
	RequestedAt time.Time       `json:"requested_at"`
}
