package cofd

import "strings"

// DamageKind is a health box damage tier. Higher kinds are more severe.
type DamageKind int

const (
	// DamageNone marks an empty box.
	DamageNone DamageKind = iota
	// DamageBashing is the least severe damage tier.
	DamageBashing
	// DamageLethal displaces bashing damage.
	DamageLethal
	// DamageAggravated displaces bashing and lethal damage.
	DamageAggravated
)

// damageKinds lists every damage tier from most to least severe.
var damageKinds = []DamageKind{DamageAggravated, DamageLethal, DamageBashing}

var damageLabels = map[DamageKind]string{
	DamageBashing:    "bashing",
	DamageLethal:     "lethal",
	DamageAggravated: "aggravated",
}

// DamageKinds returns the damage tiers ordered from most to least severe.
func DamageKinds() []DamageKind {
	out := make([]DamageKind, len(damageKinds))
	copy(out, damageKinds)
	return out
}

// Severity returns the ordering weight of the kind; empty boxes weigh zero.
func (k DamageKind) Severity() int {
	if !k.Valid() {
		return 0
	}
	return int(k)
}

// Valid reports whether k is one of the damage tiers.
func (k DamageKind) Valid() bool {
	_, ok := damageLabels[k]
	return ok
}

// String returns the storage label for the kind.
func (k DamageKind) String() string {
	if label, ok := damageLabels[k]; ok {
		return label
	}
	return ""
}

// ParseDamageKind resolves a storage label. Matching ignores case and
// surrounding whitespace.
func ParseDamageKind(label string) (DamageKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for kind, known := range damageLabels {
		if known == normalized {
			return kind, true
		}
	}
	return DamageNone, false
}

// DamageKindOrBashing resolves a label, falling back to bashing for anything
// unrecognized.
func DamageKindOrBashing(label string) DamageKind {
	if kind, ok := ParseDamageKind(label); ok {
		return kind
	}
	return DamageBashing
}

// displaces reports whether incoming damage of kind k may take a box holding
// current. Bashing only fills empty boxes; worse damage pushes lesser damage.
func (k DamageKind) displaces(current DamageKind) bool {
	if current == DamageNone {
		return true
	}
	return k.Severity() > current.Severity()
}
