package cofd

import "testing"

func TestWoundPenalty(t *testing.T) {
	tests := []struct {
		total  int
		length int
		want   int
	}{
		{0, 7, 0},
		{4, 7, 0},
		{5, 7, -1},
		{6, 7, -2},
		{7, 7, -3},
		{9, 7, -3},
		{0, 2, -1},
		{0, 1, -2},
	}

	for _, tt := range tests {
		if got := WoundPenalty(tt.total, tt.length); got != tt.want {
			t.Fatalf("WoundPenalty(%d, %d) = %d, want %d", tt.total, tt.length, got, tt.want)
		}
	}
}

func TestFullTrackIsIncapacitated(t *testing.T) {
	track := TrackOf(a, l, b, b, b, b, b)
	if track.WoundPenalty() != WoundPenaltyIncapacitated {
		t.Fatalf("penalty = %d, want %d", track.WoundPenalty(), WoundPenaltyIncapacitated)
	}
	if !track.Incapacitated() {
		t.Fatal("expected incapacitated")
	}
}
