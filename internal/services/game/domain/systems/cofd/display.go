package cofd

// BoxMarker is the visual state of a single health box.
type BoxMarker int

const (
	MarkerEmpty BoxMarker = iota
	MarkerBashing
	MarkerLethal
	MarkerAggravated
)

var markerByKind = map[DamageKind]BoxMarker{
	DamageNone:       MarkerEmpty,
	DamageBashing:    MarkerBashing,
	DamageLethal:     MarkerLethal,
	DamageAggravated: MarkerAggravated,
}

// MarkerFor maps box content to its marker.
func MarkerFor(kind DamageKind) BoxMarker {
	return markerByKind[kind]
}

// Display returns one marker per box, left to right.
func (t HealthTrack) Display() []BoxMarker {
	out := make([]BoxMarker, len(t.boxes))
	for i, kind := range t.boxes {
		out[i] = MarkerFor(kind)
	}
	return out
}
