package components

// MilestoneEffect is the singleton celebration overlay
type MilestoneEffect struct {
	Active    bool
	Alpha     float64
	Scale     float64
	Remaining int // ticks

	// Thousands is the score band being celebrated
	Thousands int
	// Celebrated is the highest band that has fired; later checks only react above it
	Celebrated int
}
