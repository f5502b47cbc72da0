package cofd

// ApplyDamage marks amount boxes of kind, one unit at a time, and returns the
// updated track with the number of units applied.
//
// Each unit takes the leftmost box its kind may displace: bashing needs an
// empty box, lethal may take a bashing box, aggravated may take any box that
// is not already aggravated. Displaced damage and everything to its right is
// lifted and re-seated, in order, into the first empty boxes after the
// insertion point. Application stops at the first unit that cannot be
// placed.
//
// When re-seating runs out of boxes the least severe lifted unit is lost and
// the step counts as applied only if the displaced kind occurs exactly once
// among the lifted units. The track keeps the step's changes either way.
func ApplyDamage(t HealthTrack, amount int, kind DamageKind) (HealthTrack, int) {
	out := t.Clone()
	if !kind.Valid() {
		return out, 0
	}
	applied := 0
	for applied < amount {
		if !out.insertWithPush(kind) {
			break
		}
		applied++
	}
	return out, applied
}

func (t *HealthTrack) insertWithPush(kind DamageKind) bool {
	at := t.insertionPoint(kind)
	if at < 0 {
		return false
	}
	displaced := t.boxes[at]
	t.boxes[at] = kind
	if displaced == DamageNone {
		return true
	}

	lifted := []DamageKind{displaced}
	for j := at + 1; j < len(t.boxes); j++ {
		if t.boxes[j] != DamageNone {
			lifted = append(lifted, t.boxes[j])
			t.boxes[j] = DamageNone
		}
	}
	for _, unit := range lifted {
		slot := t.firstEmpty(at + 1)
		if slot < 0 {
			return occurrences(lifted, displaced) == 1
		}
		t.boxes[slot] = unit
	}
	return true
}

// insertionPoint returns the leftmost box kind may occupy, or -1.
func (t HealthTrack) insertionPoint(kind DamageKind) int {
	for i, box := range t.boxes {
		if kind.displaces(box) {
			return i
		}
	}
	return -1
}

func (t HealthTrack) firstEmpty(from int) int {
	for i := from; i < len(t.boxes); i++ {
		if t.boxes[i] == DamageNone {
			return i
		}
	}
	return -1
}

func occurrences(kinds []DamageKind, kind DamageKind) int {
	n := 0
	for _, k := range kinds {
		if k == kind {
			n++
		}
	}
	return n
}
