package cofd

const (
	e = DamageNone
	b = DamageBashing
	l = DamageLethal
	a = DamageAggravated
)

// allTracks enumerates every track of the given length.
func allTracks(length int) []HealthTrack {
	kinds := []DamageKind{e, b, l, a}
	tracks := []HealthTrack{NewHealthTrack(0)}
	for i := 0; i < length; i++ {
		next := make([]HealthTrack, 0, len(tracks)*len(kinds))
		for _, track := range tracks {
			for _, kind := range kinds {
				boxes := append(track.Boxes(), kind)
				next = append(next, TrackOf(boxes...))
			}
		}
		tracks = next
	}
	return tracks
}
