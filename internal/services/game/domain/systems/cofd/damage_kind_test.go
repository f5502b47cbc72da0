package cofd

import "testing"

func TestParseDamageKind(t *testing.T) {
	tests := []struct {
		label  string
		want   DamageKind
		wantOK bool
	}{
		{"bashing", DamageBashing, true},
		{"lethal", DamageLethal, true},
		{"aggravated", DamageAggravated, true},
		{"  Lethal ", DamageLethal, true},
		{"AGGRAVATED", DamageAggravated, true},
		{"agg", DamageNone, false},
		{"", DamageNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseDamageKind(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDamageKindOrBashingDefaults(t *testing.T) {
	if got := DamageKindOrBashing("fire"); got != DamageBashing {
		t.Fatalf("kind = %v, want bashing", got)
	}
	if got := DamageKindOrBashing("lethal"); got != DamageLethal {
		t.Fatalf("kind = %v, want lethal", got)
	}
}

func TestDamageKindsOrderedBySeverity(t *testing.T) {
	kinds := DamageKinds()
	if len(kinds) != 3 {
		t.Fatalf("kinds len = %d, want 3", len(kinds))
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1].Severity() <= kinds[i].Severity() {
			t.Fatalf("kinds[%d] = %v not more severe than %v", i-1, kinds[i-1], kinds[i])
		}
	}
	if DamageNone.Severity() != 0 {
		t.Fatalf("empty severity = %d, want 0", DamageNone.Severity())
	}
}

func TestDamageKindStringRoundTrip(t *testing.T) {
	for _, kind := range DamageKinds() {
		got, ok := ParseDamageKind(kind.String())
		if !ok || got != kind {
			t.Fatalf("parse(%q) = %v, %v", kind.String(), got, ok)
		}
	}
	if DamageNone.String() != "" {
		t.Fatalf("empty label = %q, want empty", DamageNone.String())
	}
}

func TestDisplacementRules(t *testing.T) {
	tests := []struct {
		name     string
		incoming DamageKind
		current  DamageKind
		want     bool
	}{
		{"bashing into empty", DamageBashing, DamageNone, true},
		{"bashing over bashing", DamageBashing, DamageBashing, false},
		{"bashing over lethal", DamageBashing, DamageLethal, false},
		{"lethal into empty", DamageLethal, DamageNone, true},
		{"lethal over bashing", DamageLethal, DamageBashing, true},
		{"lethal over lethal", DamageLethal, DamageLethal, false},
		{"aggravated over lethal", DamageAggravated, DamageLethal, true},
		{"aggravated over bashing", DamageAggravated, DamageBashing, true},
		{"aggravated over aggravated", DamageAggravated, DamageAggravated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.incoming.displaces(tt.current); got != tt.want {
				t.Fatalf("displaces = %v, want %v", got, tt.want)
			}
		})
	}
}
