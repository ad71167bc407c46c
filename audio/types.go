package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundMunch   SoundType = iota // Collectible consumed
	SoundFanfare                  // Milestone celebrated
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundMunch:
		return "munch"
	case SoundFanfare:
		return "fanfare"
	default:
		return "unknown"
	}
}
