package systems

import (
	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/parameter"
)

// MilestoneSystem animates the celebration overlay and, on a throttle, checks
// the published score for a new thousands band
type MilestoneSystem struct {
	bridge *engine.Bridge
}

// NewMilestoneSystem creates the milestone system reading scores from bridge
func NewMilestoneSystem(bridge *engine.Bridge) *MilestoneSystem {
	return &MilestoneSystem{bridge: bridge}
}

// Name returns system's name
func (s *MilestoneSystem) Name() string {
	return "milestone"
}

// Priority returns the system's priority
func (s *MilestoneSystem) Priority() int {
	return parameter.PriorityMilestone
}

// Update animates an active effect, then runs the throttled threshold check
func (s *MilestoneSystem) Update(st *engine.State) {
	mt := st.Tuning.Milestone
	m := &st.Milestone

	if m.Active {
		m.Scale += mt.ScaleStep
		if m.Scale > mt.ScaleMax {
			m.Scale = mt.ScaleMax
		}
		if m.Remaining <= mt.FadeTail {
			m.Alpha = float64(m.Remaining) / float64(mt.FadeTail)
		}
		m.Remaining--
		if m.Remaining <= 0 {
			m.Active = false
			m.Alpha = 0
			m.Remaining = 0
		}
	}

	if mt.Threshold <= 0 {
		return
	}
	if !engine.Due(st.Now, st.Throttle.LastMilestoneCheck, mt.CheckInterval) {
		return
	}
	st.Throttle.LastMilestoneCheck = st.Now

	score := s.bridge.Snapshot().Score
	thousands := score / mt.Threshold
	// A band crossed while active is celebrated once the current effect ends
	if m.Active || thousands <= 0 || thousands <= m.Celebrated {
		return
	}

	m.Active = true
	m.Alpha = 1
	m.Scale = mt.ScaleStart
	m.Remaining = mt.Duration
	m.Thousands = thousands
	m.Celebrated = thousands
	st.Emit(engine.Event{
		Type:      engine.EventMilestone,
		Score:     score,
		Thousands: thousands,
	})
}
