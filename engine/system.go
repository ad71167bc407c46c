package engine

import "sort"

// System is one stage of the per-tick update
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(s *State)
}

// Pipeline runs systems in priority order
type Pipeline struct {
	systems []System
}

// Add inserts a system, keeping priority order stable for equal priorities
func (p *Pipeline) Add(sys System) {
	p.systems = append(p.systems, sys)
	sort.SliceStable(p.systems, func(i, j int) bool {
		return p.systems[i].Priority() < p.systems[j].Priority()
	})
}

// Update runs every system once against s
func (p *Pipeline) Update(s *State) {
	for _, sys := range p.systems {
		sys.Update(s)
	}
}

// Names returns system names in run order
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.systems))
	for i, sys := range p.systems {
		names[i] = sys.Name()
	}
	return names
}
