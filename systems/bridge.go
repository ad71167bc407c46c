package systems

import (
	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/parameter"
)

// BridgeSystem copies observable fields out to the bridge on a throttle
type BridgeSystem struct {
	bridge *engine.Bridge
}

// NewBridgeSystem creates the sync stage for bridge
func NewBridgeSystem(bridge *engine.Bridge) *BridgeSystem {
	return &BridgeSystem{bridge: bridge}
}

// Name returns system's name
func (s *BridgeSystem) Name() string {
	return "bridge"
}

// Priority returns the system's priority
func (s *BridgeSystem) Priority() int {
	return parameter.PriorityBridge
}

// Update publishes a snapshot once the sync interval has elapsed
func (s *BridgeSystem) Update(st *engine.State) {
	if !engine.Due(st.Now, st.Throttle.LastSync, st.Tuning.Bridge.SyncInterval) {
		return
	}
	st.Throttle.LastSync = st.Now
	snap := engine.Capture(st, true)
	s.bridge.Publish(snap)
	st.Emit(engine.Event{Type: engine.EventBridgeSync, Score: snap.Score})
}
