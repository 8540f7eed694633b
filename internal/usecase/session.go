package usecase

import (
	"time"

	"github.com/google/uuid"
)

// PanelNames lists the dashboard panels in display order.
var PanelNames = []string{"segmentation", "replenishment", "basket", "pricing", "geo"}

// Session identifies one dashboard process. There is no multi-user state:
// a single session starts with the process and dies with it.
type Session struct {
	id        uuid.UUID
	startedAt time.Time
}

func NewSession() *Session {
	return &Session{id: uuid.New(), startedAt: time.Now().UTC()}
}

// SessionInfo is the session payload served to the shell.
type SessionInfo struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	UptimeSec float64   `json:"uptime_sec"`
	Panels    []string  `json:"panels"`
}

func (s *Session) Info() SessionInfo {
	return SessionInfo{
		ID:        s.id.String(),
		StartedAt: s.startedAt,
		UptimeSec: time.Since(s.startedAt).Seconds(),
		Panels:    PanelNames,
	}
}
