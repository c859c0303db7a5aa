package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type RequirementsUpdatedEvent struct {
	Type      string    `json:"type"`
	ClientID  uuid.UUID `json:"client_id"`
	Timestamp string    `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyRequirementsUpdated broadcasts that a client's requirement set
// changed, so subscribed UIs can refresh their rankings. A no-op when no hub
// is running.
func NotifyRequirementsUpdated(clientID uuid.UUID) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if clientID == uuid.Nil {
		return
	}

	evt := RequirementsUpdatedEvent{
		Type:      "requirements_updated",
		ClientID:  clientID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
