package health

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	"github.com/louisbranch/chronicles.mud/internal/platform/id"
	"github.com/louisbranch/chronicles.mud/internal/services/game/authz"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/character"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/systems/cofd"
	"github.com/louisbranch/chronicles.mud/internal/services/game/storage"
)

const tracerName = "github.com/louisbranch/chronicles.mud/internal/services/game/health"

// Status is the read view of a character's health.
type Status struct {
	CharacterID   string
	Name          string
	MaxHealth     int
	Track         cofd.HealthTrack
	Markers       []cofd.BoxMarker
	TotalDamage   int
	WoundPenalty  int
	Incapacitated bool
}

// Result reports the outcome of a damage or heal operation.
type Result struct {
	Requested int
	// Applied counts boxes filled by ApplyDamage.
	Applied int
	// Healed counts boxes cleared by HealDamage.
	Healed int
	Status Status
}

// Authorizer checks whether the caller in ctx may act on a character.
type Authorizer interface {
	Authorize(ctx context.Context, action authz.Action, characterID string) error
}

// Service runs health operations against a character store.
type Service struct {
	store      storage.CharacterStore
	authorizer Authorizer
	tracer     trace.Tracer
	newID      func() (string, error)
}

// Option configures a Service.
type Option func(*Service)

// WithAuthorizer enforces permissions on every operation.
func WithAuthorizer(authorizer Authorizer) Option {
	return func(s *Service) {
		s.authorizer = authorizer
	}
}

// WithTracer overrides the tracer used for operation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithIDGenerator overrides how new character ids are generated.
func WithIDGenerator(generate func() (string, error)) Option {
	return func(s *Service) {
		if generate != nil {
			s.newID = generate
		}
	}
}

// NewService builds a Service over store.
func NewService(store storage.CharacterStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		tracer: otel.Tracer(tracerName),
		newID:  id.NewID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Status returns the character's current track and projections.
func (s *Service) Status(ctx context.Context, characterID string) (status Status, err error) {
	ctx, span := s.start(ctx, "Status", characterID)
	defer func() { end(span, err) }()

	c, err := s.load(ctx, authz.ActionView, characterID)
	if err != nil {
		return Status{}, err
	}
	return statusOf(c, c.HealthTrack()), nil
}

// ApplyDamage places amount boxes of kind onto the track.
func (s *Service) ApplyDamage(ctx context.Context, characterID string, amount int, kind cofd.DamageKind) (result Result, err error) {
	ctx, span := s.start(ctx, "ApplyDamage", characterID,
		attribute.Int("health.amount", amount),
		attribute.String("health.kind", kind.String()))
	defer func() { end(span, err) }()

	if err := validateAmount(amount); err != nil {
		return Result{}, err
	}
	if err := validateKind(kind); err != nil {
		return Result{}, err
	}
	c, err := s.load(ctx, authz.ActionModify, characterID)
	if err != nil {
		return Result{}, err
	}

	track, applied := cofd.ApplyDamage(c.HealthTrack(), amount, kind)
	if err := s.saveTrack(ctx, c, track); err != nil {
		return Result{}, err
	}
	span.SetAttributes(attribute.Int("health.applied", applied))
	return Result{Requested: amount, Applied: applied, Status: statusOf(c, track)}, nil
}

// HealDamage clears up to amount boxes of kind from the track.
func (s *Service) HealDamage(ctx context.Context, characterID string, amount int, kind cofd.DamageKind) (result Result, err error) {
	ctx, span := s.start(ctx, "HealDamage", characterID,
		attribute.Int("health.amount", amount),
		attribute.String("health.kind", kind.String()))
	defer func() { end(span, err) }()

	if err := validateAmount(amount); err != nil {
		return Result{}, err
	}
	if err := validateKind(kind); err != nil {
		return Result{}, err
	}
	c, err := s.load(ctx, authz.ActionModify, characterID)
	if err != nil {
		return Result{}, err
	}

	track, healed := cofd.HealDamage(c.HealthTrack(), amount, kind)
	if err := s.saveTrack(ctx, c, track); err != nil {
		return Result{}, err
	}
	span.SetAttributes(attribute.Int("health.healed", healed))
	return Result{Requested: amount, Healed: healed, Status: statusOf(c, track)}, nil
}

// SetBox writes kind at the 1-based position, or clears it when kind is nil.
// Displacement rules do not apply.
func (s *Service) SetBox(ctx context.Context, characterID string, position int, kind *cofd.DamageKind) (status Status, err error) {
	label := "clear"
	if kind != nil {
		label = kind.String()
	}
	ctx, span := s.start(ctx, "SetBox", characterID,
		attribute.Int("health.position", position),
		attribute.String("health.kind", label))
	defer func() { end(span, err) }()

	if kind != nil {
		if err := validateKind(*kind); err != nil {
			return Status{}, err
		}
	}
	c, err := s.load(ctx, authz.ActionOverride, characterID)
	if err != nil {
		return Status{}, err
	}
	maxHealth := c.MaxHealth()
	if position < 1 || position > maxHealth {
		return Status{}, apperrors.WithMetadata(apperrors.CodeHealthPositionOutOfRange, "position out of range",
			map[string]string{
				"Position": strconv.Itoa(position),
				"Max":      strconv.Itoa(maxHealth),
			})
	}

	damage := character.DecodeDamage(c.HealthDamage)
	if kind == nil {
		delete(damage, position)
	} else {
		damage[position] = *kind
	}
	track := cofd.LoadTrack(maxHealth, damage)
	if err := s.saveTrack(ctx, c, track); err != nil {
		return Status{}, err
	}
	return statusOf(c, track), nil
}

// ClearAll empties the track.
func (s *Service) ClearAll(ctx context.Context, characterID string) (status Status, err error) {
	ctx, span := s.start(ctx, "ClearAll", characterID)
	defer func() { end(span, err) }()

	c, err := s.load(ctx, authz.ActionOverride, characterID)
	if err != nil {
		return Status{}, err
	}
	track := cofd.NewHealthTrack(c.MaxHealth())
	if err := s.saveTrack(ctx, c, track); err != nil {
		return Status{}, err
	}
	return statusOf(c, track), nil
}

// Resize sets the track length, dropping damage beyond newMax. Remaining
// entries are not compacted.
func (s *Service) Resize(ctx context.Context, characterID string, newMax int) (status Status, err error) {
	ctx, span := s.start(ctx, "Resize", characterID, attribute.Int("health.max", newMax))
	defer func() { end(span, err) }()

	if newMax < 1 {
		return Status{}, apperrors.WithMetadata(apperrors.CodeHealthInvalidMax, "max health must be at least 1",
			map[string]string{"Max": strconv.Itoa(newMax)})
	}
	c, err := s.load(ctx, authz.ActionOverride, characterID)
	if err != nil {
		return Status{}, err
	}

	damage := cofd.TruncateDamage(character.DecodeDamage(c.HealthDamage), newMax)
	stored := character.EncodeDamage(damage)
	if err := s.store.PutHealth(ctx, c.ID, newMax, stored); err != nil {
		return Status{}, err
	}
	if c.Advantages == nil {
		c.Advantages = make(map[string]int, 1)
	}
	c.Advantages[character.AdvantageHealth] = newMax
	c.HealthDamage = stored
	return statusOf(c, c.HealthTrack()), nil
}

// CreateCharacter stores a new character with an empty track. A missing id
// is generated. Only staff may create characters when an authorizer is set.
func (s *Service) CreateCharacter(ctx context.Context, name string, maxHealth int) (c character.Character, err error) {
	ctx, span := s.start(ctx, "CreateCharacter", "", attribute.Int("health.max", maxHealth))
	defer func() { end(span, err) }()

	if maxHealth < 0 {
		return character.Character{}, apperrors.WithMetadata(apperrors.CodeHealthInvalidMax, "max health must not be negative",
			map[string]string{"Max": strconv.Itoa(maxHealth)})
	}
	if s.authorizer != nil {
		if err := s.authorizer.Authorize(ctx, authz.ActionOverride, ""); err != nil {
			return character.Character{}, err
		}
	}
	characterID, err := s.newID()
	if err != nil {
		return character.Character{}, fmt.Errorf("generate character id: %w", err)
	}
	c = character.Character{
		ID:           characterID,
		Name:         strings.TrimSpace(name),
		Advantages:   map[string]int{},
		HealthDamage: map[int]string{},
	}
	if maxHealth > 0 {
		c.Advantages[character.AdvantageHealth] = maxHealth
	}
	if err := c.Validate(); err != nil {
		return character.Character{}, err
	}
	if err := s.store.PutCharacter(ctx, c); err != nil {
		return character.Character{}, err
	}
	span.SetAttributes(attribute.String("character.id", c.ID))
	return s.store.GetCharacter(ctx, c.ID)
}

// load validates the id, checks permissions and reads the character.
func (s *Service) load(ctx context.Context, action authz.Action, characterID string) (character.Character, error) {
	characterID = strings.TrimSpace(characterID)
	if characterID == "" {
		return character.Character{}, apperrors.New(apperrors.CodeCharacterEmptyID, "character id is required")
	}
	if s.authorizer != nil {
		if err := s.authorizer.Authorize(ctx, action, characterID); err != nil {
			return character.Character{}, err
		}
	}
	return s.store.GetCharacter(ctx, characterID)
}

func (s *Service) saveTrack(ctx context.Context, c character.Character, track cofd.HealthTrack) error {
	return s.store.PutHealthDamage(ctx, c.ID, character.EncodeDamage(track.DamageMap()))
}

func (s *Service) start(ctx context.Context, operation, characterID string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("character.id", characterID))
	return s.tracer.Start(ctx, "health."+operation, trace.WithAttributes(attrs...))
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, string(apperrors.CodeOf(err)))
	}
	span.End()
}

func statusOf(c character.Character, track cofd.HealthTrack) Status {
	return Status{
		CharacterID:   c.ID,
		Name:          c.Name,
		MaxHealth:     track.Len(),
		Track:         track,
		Markers:       track.Display(),
		TotalDamage:   track.TotalDamage(),
		WoundPenalty:  track.WoundPenalty(),
		Incapacitated: track.Incapacitated(),
	}
}

func validateAmount(amount int) error {
	if amount < 1 {
		return apperrors.WithMetadata(apperrors.CodeHealthInvalidAmount, "amount must be a positive integer",
			map[string]string{"Amount": strconv.Itoa(amount)})
	}
	return nil
}

func validateKind(kind cofd.DamageKind) error {
	if !kind.Valid() {
		return apperrors.New(apperrors.CodeHealthInvalidKind, "damage kind is invalid")
	}
	return nil
}
