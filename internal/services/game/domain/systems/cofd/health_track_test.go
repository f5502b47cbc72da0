package cofd

import (
	"reflect"
	"testing"
)

func TestLoadTrack(t *testing.T) {
	track := LoadTrack(7, DamageMap{1: a, 3: b, 9: l, 0: l, -2: b})
	want := TrackOf(a, e, b, e, e, e, e)
	if !track.Equal(want) {
		t.Fatalf("track = %v, want %v", track, want)
	}
}

func TestLoadTrackNonPositiveLength(t *testing.T) {
	track := LoadTrack(0, DamageMap{1: b})
	if track.Len() != 0 {
		t.Fatalf("len = %d, want 0", track.Len())
	}
}

func TestDamageMapOmitsEmptyBoxes(t *testing.T) {
	got := TrackOf(l, e, b).DamageMap()
	want := DamageMap{1: l, 3: b}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("damage map = %v, want %v", got, want)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	for length := 1; length <= 4; length++ {
		for _, track := range allTracks(length) {
			damage := track.DamageMap()
			got := LoadTrack(length, damage).DamageMap()
			if !reflect.DeepEqual(got, damage) {
				t.Fatalf("round trip %v: got %v, want %v", track, got, damage)
			}
		}
	}
}

func TestTotalDamageAndIncapacitated(t *testing.T) {
	tests := []struct {
		name          string
		track         HealthTrack
		wantTotal     int
		wantIncapable bool
	}{
		{"empty", NewHealthTrack(7), 0, false},
		{"partial", TrackOf(a, l, b, e), 3, false},
		{"full", TrackOf(b, b, b), 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.TotalDamage(); got != tt.wantTotal {
				t.Fatalf("total = %d, want %d", got, tt.wantTotal)
			}
			if got := tt.track.Incapacitated(); got != tt.wantIncapable {
				t.Fatalf("incapacitated = %v, want %v", got, tt.wantIncapable)
			}
		})
	}
}

func TestBoxesReturnsCopy(t *testing.T) {
	track := TrackOf(b, e)
	boxes := track.Boxes()
	boxes[1] = a
	if track.Box(1) != e {
		t.Fatalf("box 1 = %v, want empty", track.Box(1))
	}
	if track.Box(5) != e {
		t.Fatalf("out of range box = %v, want empty", track.Box(5))
	}
}

func TestTrackString(t *testing.T) {
	if got := TrackOf(a, l, b, e).String(); got != "[ALB.]" {
		t.Fatalf("string = %q, want %q", got, "[ALB.]")
	}
}

func TestTruncateDamage(t *testing.T) {
	damage := DamageMap{1: l, 5: b, 8: b}
	got := TruncateDamage(damage, 6)
	want := DamageMap{1: l, 5: b}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("truncated = %v, want %v", got, want)
	}
	if len(damage) != 3 {
		t.Fatalf("input mutated: %v", damage)
	}
}
