package health

import (
	"context"
	"errors"
	"reflect"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	"github.com/louisbranch/chronicles.mud/internal/services/game/authz"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/character"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/systems/cofd"
)

func alice(damage map[int]string) character.Character {
	return character.Character{
		ID:           "alice",
		Name:         "Alice",
		Advantages:   map[string]int{character.AdvantageHealth: 7},
		HealthDamage: damage,
	}
}

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name        string
		damage      map[int]string
		amount      int
		kind        cofd.DamageKind
		wantApplied int
		wantDamage  map[int]string
	}{
		{
			name:        "basic bashing fill",
			damage:      nil,
			amount:      3,
			kind:        cofd.DamageBashing,
			wantApplied: 3,
			wantDamage:  map[int]string{1: "bashing", 2: "bashing", 3: "bashing"},
		},
		{
			name:        "lethal displaces bashing",
			damage:      map[int]string{1: "bashing", 2: "bashing"},
			amount:      1,
			kind:        cofd.DamageLethal,
			wantApplied: 1,
			wantDamage:  map[int]string{1: "lethal", 2: "bashing", 3: "bashing"},
		},
		{
			name:        "bashing on full track",
			damage:      map[int]string{1: "lethal", 2: "lethal", 3: "lethal", 4: "lethal", 5: "lethal", 6: "lethal", 7: "lethal"},
			amount:      2,
			kind:        cofd.DamageBashing,
			wantApplied: 0,
			wantDamage:  map[int]string{1: "lethal", 2: "lethal", 3: "lethal", 4: "lethal", 5: "lethal", 6: "lethal", 7: "lethal"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(alice(tt.damage))
			result, err := NewService(store).ApplyDamage(context.Background(), "alice", tt.amount, tt.kind)
			if err != nil {
				t.Fatalf("apply damage: %v", err)
			}
			if result.Applied != tt.wantApplied {
				t.Fatalf("applied = %d, want %d", result.Applied, tt.wantApplied)
			}
			if result.Requested != tt.amount {
				t.Fatalf("requested = %d, want %d", result.Requested, tt.amount)
			}
			if got := store.characters["alice"].HealthDamage; !reflect.DeepEqual(got, tt.wantDamage) {
				t.Fatalf("stored damage = %v, want %v", got, tt.wantDamage)
			}
		})
	}
}

func TestHealDamageAggravatedLastPlaced(t *testing.T) {
	store := newFakeStore(alice(map[int]string{1: "aggravated", 2: "aggravated", 3: "lethal", 4: "bashing"}))
	result, err := NewService(store).HealDamage(context.Background(), "alice", 1, cofd.DamageAggravated)
	if err != nil {
		t.Fatalf("heal damage: %v", err)
	}
	if result.Healed != 1 {
		t.Fatalf("healed = %d, want 1", result.Healed)
	}
	want := map[int]string{1: "aggravated", 2: "lethal", 3: "bashing"}
	if got := store.characters["alice"].HealthDamage; !reflect.DeepEqual(got, want) {
		t.Fatalf("stored damage = %v, want %v", got, want)
	}
}

func TestHealDamageNothingToHeal(t *testing.T) {
	store := newFakeStore(alice(map[int]string{1: "lethal"}))
	result, err := NewService(store).HealDamage(context.Background(), "alice", 2, cofd.DamageBashing)
	if err != nil {
		t.Fatalf("heal damage: %v", err)
	}
	if result.Healed != 0 {
		t.Fatalf("healed = %d, want 0", result.Healed)
	}
	if result.Status.TotalDamage != 1 {
		t.Fatalf("total damage = %d, want 1", result.Status.TotalDamage)
	}
}

func TestStatus(t *testing.T) {
	store := newFakeStore(alice(map[int]string{1: "aggravated", 2: "lethal", 3: "lethal", 4: "bashing", 5: "bashing"}))
	status, err := NewService(store).Status(context.Background(), "alice")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.MaxHealth != 7 || status.TotalDamage != 5 {
		t.Fatalf("status = %+v", status)
	}
	if status.WoundPenalty != cofd.WoundPenaltyLight {
		t.Fatalf("wound penalty = %d, want %d", status.WoundPenalty, cofd.WoundPenaltyLight)
	}
	if status.Incapacitated {
		t.Fatal("expected not incapacitated")
	}
	wantMarkers := []cofd.BoxMarker{
		cofd.MarkerAggravated, cofd.MarkerLethal, cofd.MarkerLethal,
		cofd.MarkerBashing, cofd.MarkerBashing, cofd.MarkerEmpty, cofd.MarkerEmpty,
	}
	if !reflect.DeepEqual(status.Markers, wantMarkers) {
		t.Fatalf("markers = %v, want %v", status.Markers, wantMarkers)
	}
}

func TestSetBox(t *testing.T) {
	lethal := cofd.DamageLethal
	bashing := cofd.DamageBashing

	tests := []struct {
		name     string
		damage   map[int]string
		position int
		kind     *cofd.DamageKind
		want     map[int]string
	}{
		{name: "sets sparse position without compaction", damage: nil, position: 5, kind: &lethal, want: map[int]string{5: "lethal"}},
		{name: "overwrites without displacement", damage: map[int]string{1: "aggravated"}, position: 1, kind: &bashing, want: map[int]string{1: "bashing"}},
		{name: "clears position", damage: map[int]string{1: "lethal", 2: "bashing"}, position: 1, kind: nil, want: map[int]string{2: "bashing"}},
		{name: "last position", damage: nil, position: 7, kind: &bashing, want: map[int]string{7: "bashing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(alice(tt.damage))
			if _, err := NewService(store).SetBox(context.Background(), "alice", tt.position, tt.kind); err != nil {
				t.Fatalf("set box: %v", err)
			}
			if got := store.characters["alice"].HealthDamage; !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("stored damage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClearAll(t *testing.T) {
	store := newFakeStore(alice(map[int]string{1: "aggravated", 2: "lethal"}))
	status, err := NewService(store).ClearAll(context.Background(), "alice")
	if err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if status.TotalDamage != 0 {
		t.Fatalf("total damage = %d, want 0", status.TotalDamage)
	}
	if got := store.characters["alice"].HealthDamage; len(got) != 0 {
		t.Fatalf("stored damage = %v, want empty", got)
	}
}

func TestResizeTruncatesOutOfRangeDamage(t *testing.T) {
	c := alice(map[int]string{1: "lethal", 5: "bashing", 8: "bashing"})
	c.Advantages[character.AdvantageHealth] = 10
	store := newFakeStore(c)

	status, err := NewService(store).Resize(context.Background(), "alice", 6)
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	if status.MaxHealth != 6 {
		t.Fatalf("max health = %d, want 6", status.MaxHealth)
	}
	stored := store.characters["alice"]
	if stored.MaxHealth() != 6 {
		t.Fatalf("stored max health = %d, want 6", stored.MaxHealth())
	}
	want := map[int]string{1: "lethal", 5: "bashing"}
	if !reflect.DeepEqual(stored.HealthDamage, want) {
		t.Fatalf("stored damage = %v, want %v", stored.HealthDamage, want)
	}
}

func TestValidationErrors(t *testing.T) {
	store := newFakeStore(alice(nil))
	svc := NewService(store)
	ctx := context.Background()
	lethal := cofd.DamageLethal

	tests := []struct {
		name string
		run  func() error
		code apperrors.Code
	}{
		{name: "zero amount", run: func() error { _, err := svc.ApplyDamage(ctx, "alice", 0, cofd.DamageBashing); return err }, code: apperrors.CodeHealthInvalidAmount},
		{name: "negative heal", run: func() error { _, err := svc.HealDamage(ctx, "alice", -1, cofd.DamageBashing); return err }, code: apperrors.CodeHealthInvalidAmount},
		{name: "invalid kind", run: func() error { _, err := svc.ApplyDamage(ctx, "alice", 1, cofd.DamageNone); return err }, code: apperrors.CodeHealthInvalidKind},
		{name: "empty id", run: func() error { _, err := svc.Status(ctx, " "); return err }, code: apperrors.CodeCharacterEmptyID},
		{name: "missing character", run: func() error { _, err := svc.Status(ctx, "bob"); return err }, code: apperrors.CodeNotFound},
		{name: "position zero", run: func() error { _, err := svc.SetBox(ctx, "alice", 0, &lethal); return err }, code: apperrors.CodeHealthPositionOutOfRange},
		{name: "position past max", run: func() error { _, err := svc.SetBox(ctx, "alice", 8, nil); return err }, code: apperrors.CodeHealthPositionOutOfRange},
		{name: "resize to zero", run: func() error { _, err := svc.Resize(ctx, "alice", 0); return err }, code: apperrors.CodeHealthInvalidMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperrors.CodeOf(tt.run()); got != tt.code {
				t.Fatalf("code = %s, want %s", got, tt.code)
			}
		})
	}
	if store.puts != 0 {
		t.Fatalf("store writes = %d, want 0", store.puts)
	}
}

func TestAuthorizerEnforced(t *testing.T) {
	store := newFakeStore(alice(nil), character.Character{ID: "bob", Name: "Bob"})
	svc := NewService(store, WithAuthorizer(authz.Policy{}))
	player := authz.WithCaller(context.Background(), authz.Caller{ID: "alice"})
	staff := authz.WithCaller(context.Background(), authz.Caller{ID: "st", Staff: true})

	if _, err := svc.ApplyDamage(player, "alice", 1, cofd.DamageBashing); err != nil {
		t.Fatalf("self damage: %v", err)
	}
	if _, err := svc.ApplyDamage(player, "bob", 1, cofd.DamageBashing); apperrors.CodeOf(err) != apperrors.CodePermissionDenied {
		t.Fatalf("damage other = %v, want permission denied", err)
	}
	if _, err := svc.ClearAll(player, "alice"); apperrors.CodeOf(err) != apperrors.CodePermissionDenied {
		t.Fatalf("player clear = %v, want permission denied", err)
	}
	if _, err := svc.Status(context.Background(), "alice"); apperrors.CodeOf(err) != apperrors.CodeCallerMissing {
		t.Fatalf("anonymous status = %v, want caller missing", err)
	}
	if _, err := svc.Resize(staff, "bob", 5); err != nil {
		t.Fatalf("staff resize: %v", err)
	}
}

func TestStoreWriteErrorPropagates(t *testing.T) {
	store := newFakeStore(alice(nil))
	store.putErr = errors.New("disk full")
	if _, err := NewService(store).ApplyDamage(context.Background(), "alice", 1, cofd.DamageLethal); err == nil {
		t.Fatal("expected store error")
	}
}

func TestCreateCharacter(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, WithIDGenerator(func() (string, error) { return "generated", nil }))

	c, err := svc.CreateCharacter(context.Background(), " Carol ", 9)
	if err != nil {
		t.Fatalf("create character: %v", err)
	}
	if c.ID != "generated" || c.Name != "Carol" || c.MaxHealth() != 9 {
		t.Fatalf("character = %+v", c)
	}

	defaulted, err := NewService(store).CreateCharacter(context.Background(), "Dan", 0)
	if err != nil {
		t.Fatalf("create character: %v", err)
	}
	if defaulted.ID == "" || defaulted.MaxHealth() != cofd.HealthMaxDefault {
		t.Fatalf("character = %+v", defaulted)
	}

	if _, err := svc.CreateCharacter(context.Background(), " ", 7); apperrors.CodeOf(err) != apperrors.CodeCharacterEmptyName {
		t.Fatalf("empty name = %v, want empty name error", err)
	}
}

func TestOperationsRecordSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	store := newFakeStore(alice(nil))
	svc := NewService(store, WithTracer(provider.Tracer("test")))
	if _, err := svc.ApplyDamage(context.Background(), "alice", 2, cofd.DamageLethal); err != nil {
		t.Fatalf("apply damage: %v", err)
	}
	if _, err := svc.Status(context.Background(), "bob"); err == nil {
		t.Fatal("expected not found")
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(spans))
	}
	if spans[0].Name() != "health.ApplyDamage" {
		t.Fatalf("span name = %q", spans[0].Name())
	}
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["character.id"] != "alice" || attrs["health.applied"] != "2" || attrs["health.kind"] != "lethal" {
		t.Fatalf("attributes = %v", attrs)
	}
	if spans[1].Status().Description != string(apperrors.CodeNotFound) {
		t.Fatalf("status = %+v", spans[1].Status())
	}
}
