package audio

import "github.com/goldenmunch/attract/engine"

// Player is the sound surface the event handler drives
type Player interface {
	PlayMunch(points int)
	PlayFanfare()
}

// Handler maps simulation events onto sounds
type Handler struct {
	player Player
}

// NewHandler creates an event handler for p
func NewHandler(p Player) *Handler {
	return &Handler{player: p}
}

// EventTypes returns the event types this handler processes
func (h *Handler) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventCollectibleConsumed, engine.EventMilestone}
}

// HandleEvent plays the sound for ev
func (h *Handler) HandleEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventCollectibleConsumed:
		h.player.PlayMunch(ev.Points)
	case engine.EventMilestone:
		h.player.PlayFanfare()
	}
}
