package cofd

// HealDamage clears up to amount boxes holding kind, starting from the
// rightmost box, then compacts the track. It returns the compacted track and
// the number of boxes cleared. Compaction runs even when nothing matched.
func HealDamage(t HealthTrack, amount int, kind DamageKind) (HealthTrack, int) {
	out := t.Clone()
	healed := 0
	if kind.Valid() {
		for i := len(out.boxes) - 1; i >= 0 && healed < amount; i-- {
			if out.boxes[i] == kind {
				out.boxes[i] = DamageNone
				healed++
			}
		}
	}
	return Compact(out), healed
}
