package cofd

// Compact repacks damage from the left edge in severity order: aggravated,
// then lethal, then bashing. Only per-kind counts survive; which box held
// which damage is discarded.
func Compact(t HealthTrack) HealthTrack {
	out := NewHealthTrack(t.Len())
	next := 0
	for _, kind := range damageKinds {
		for n := t.Count(kind); n > 0 && next < out.Len(); n-- {
			out.boxes[next] = kind
			next++
		}
	}
	return out
}

// IsCompact reports whether occupied boxes are contiguous from index 0 and
// ordered by non-increasing severity.
func IsCompact(t HealthTrack) bool {
	previous := DamageAggravated.Severity() + 1
	for _, box := range t.boxes {
		severity := box.Severity()
		if severity > previous {
			return false
		}
		previous = severity
	}
	return true
}
