package cofd

const (
	// WoundPenaltyNone applies until the third-to-last box is marked.
	WoundPenaltyNone = 0
	// WoundPenaltyLight applies once the third-to-last box is marked.
	WoundPenaltyLight = -1
	// WoundPenaltyHeavy applies once the second-to-last box is marked.
	WoundPenaltyHeavy = -2
	// WoundPenaltyIncapacitated applies once the last box is marked.
	WoundPenaltyIncapacitated = -3
)

// WoundPenalty derives the dice penalty for total marked boxes on a track of
// length boxes. Thresholds are "reached or exceeded", checked from the last
// box inward.
func WoundPenalty(total, length int) int {
	switch {
	case total >= length:
		return WoundPenaltyIncapacitated
	case total >= length-1:
		return WoundPenaltyHeavy
	case total >= length-2:
		return WoundPenaltyLight
	default:
		return WoundPenaltyNone
	}
}

// WoundPenalty returns the dice penalty for the track's current damage.
func (t HealthTrack) WoundPenalty() int {
	return WoundPenalty(t.TotalDamage(), t.Len())
}
