package cofd

// DamageMap is the sparse stored form of a health track, keyed by 1-based
// box position. Missing positions are empty.
type DamageMap map[int]DamageKind

// HealthTrack is the dense working form of a health track. Index 0 is the
// leftmost, most severe box. DamageNone marks an empty box.
type HealthTrack struct {
	boxes []DamageKind
}

// NewHealthTrack returns an empty track with length boxes.
func NewHealthTrack(length int) HealthTrack {
	if length < 0 {
		length = 0
	}
	return HealthTrack{boxes: make([]DamageKind, length)}
}

// TrackOf builds a track from explicit box contents. Invalid kinds become
// empty boxes.
func TrackOf(boxes ...DamageKind) HealthTrack {
	t := NewHealthTrack(len(boxes))
	for i, kind := range boxes {
		if kind.Valid() {
			t.boxes[i] = kind
		}
	}
	return t
}

// LoadTrack expands a sparse damage map into a track of maxHealth boxes.
// Positions outside 1..maxHealth are ignored, which tolerates damage left over
// from a higher maximum.
func LoadTrack(maxHealth int, damage DamageMap) HealthTrack {
	t := NewHealthTrack(maxHealth)
	for position, kind := range damage {
		if position < 1 || position > maxHealth || !kind.Valid() {
			continue
		}
		t.boxes[position-1] = kind
	}
	return t
}

// DamageMap collapses the track into its sparse stored form.
func (t HealthTrack) DamageMap() DamageMap {
	out := DamageMap{}
	for i, kind := range t.boxes {
		if kind != DamageNone {
			out[i+1] = kind
		}
	}
	return out
}

// Len returns the number of boxes.
func (t HealthTrack) Len() int {
	return len(t.boxes)
}

// Box returns the content of box i, or DamageNone when i is out of range.
func (t HealthTrack) Box(i int) DamageKind {
	if i < 0 || i >= len(t.boxes) {
		return DamageNone
	}
	return t.boxes[i]
}

// Boxes returns a copy of the box contents from left to right.
func (t HealthTrack) Boxes() []DamageKind {
	out := make([]DamageKind, len(t.boxes))
	copy(out, t.boxes)
	return out
}

// Clone returns an independent copy of the track.
func (t HealthTrack) Clone() HealthTrack {
	return HealthTrack{boxes: t.Boxes()}
}

// Equal reports whether both tracks have the same length and contents.
func (t HealthTrack) Equal(other HealthTrack) bool {
	if len(t.boxes) != len(other.boxes) {
		return false
	}
	for i := range t.boxes {
		if t.boxes[i] != other.boxes[i] {
			return false
		}
	}
	return true
}

// Count returns how many boxes hold kind.
func (t HealthTrack) Count(kind DamageKind) int {
	count := 0
	for _, box := range t.boxes {
		if box == kind {
			count++
		}
	}
	return count
}

// TotalDamage returns the number of occupied boxes.
func (t HealthTrack) TotalDamage() int {
	return len(t.boxes) - t.Count(DamageNone)
}

// Incapacitated reports whether every box is occupied.
func (t HealthTrack) Incapacitated() bool {
	return t.TotalDamage() >= len(t.boxes)
}

// String renders the track with one letter per box, for logs and tests.
func (t HealthTrack) String() string {
	out := make([]byte, 0, len(t.boxes)+2)
	out = append(out, '[')
	for _, kind := range t.boxes {
		switch kind {
		case DamageBashing:
			out = append(out, 'B')
		case DamageLethal:
			out = append(out, 'L')
		case DamageAggravated:
			out = append(out, 'A')
		default:
			out = append(out, '.')
		}
	}
	out = append(out, ']')
	return string(out)
}

// TruncateDamage drops entries whose position exceeds newMax. Remaining
// entries are kept as they are.
func TruncateDamage(damage DamageMap, newMax int) DamageMap {
	out := DamageMap{}
	for position, kind := range damage {
		if position <= newMax {
			out[position] = kind
		}
	}
	return out
}
