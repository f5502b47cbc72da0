package health

import (
	"context"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	grpcmeta "github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/metadata"
	"github.com/louisbranch/chronicles.mud/internal/services/game/command"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/systems/cofd"
	healthsvc "github.com/louisbranch/chronicles.mud/internal/services/game/health"
	"github.com/louisbranch/chronicles.mud/internal/services/game/i18n"
)

var _ HealthServiceServer = (*Server)(nil)

// Server adapts the health service and the +health command to gRPC.
type Server struct {
	service       *healthsvc.Service
	executor      *command.Executor
	defaultLocale string
}

// NewServer returns a HealthService server.
func NewServer(service *healthsvc.Service, executor *command.Executor, defaultLocale string) *Server {
	return &Server{service: service, executor: executor, defaultLocale: defaultLocale}
}

// Execute runs a +health command line.
func (s *Server) Execute(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	input, err := requireString(in, fieldInput)
	if err != nil {
		return nil, err
	}
	locale := grpcmeta.LocaleFromContext(ctx)
	if locale == "" {
		locale = s.defaultLocale
	}
	reply, err := s.executor.Execute(ctx, input, i18n.ResolveTag(locale))
	if err != nil {
		return nil, err
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldText:        structpb.NewStringValue(reply.Text),
		fieldCharacterID: structpb.NewStringValue(reply.CharacterID),
	}}, nil
}

// GetStatus returns a character's track.
func (s *Server) GetStatus(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	status, err := s.service.Status(ctx, stringField(in, fieldCharacterID))
	if err != nil {
		return nil, err
	}
	return encodeStatus(status), nil
}

// ApplyDamage applies damage to a character.
func (s *Server) ApplyDamage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	amount, err := intField(in, fieldAmount)
	if err != nil {
		return nil, err
	}
	result, err := s.service.ApplyDamage(ctx, stringField(in, fieldCharacterID), amount, kindField(in))
	if err != nil {
		return nil, err
	}
	return encodeResult(result), nil
}

// HealDamage heals a character.
func (s *Server) HealDamage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	amount, err := intField(in, fieldAmount)
	if err != nil {
		return nil, err
	}
	result, err := s.service.HealDamage(ctx, stringField(in, fieldCharacterID), amount, kindField(in))
	if err != nil {
		return nil, err
	}
	return encodeResult(result), nil
}

// SetBox writes or clears one box. An absent kind or "clear" clears it.
func (s *Server) SetBox(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	position, err := intField(in, fieldPosition)
	if err != nil {
		return nil, err
	}
	var kind *cofd.DamageKind
	if label := stringField(in, fieldKind); label != "" && !strings.EqualFold(label, clearKind) {
		parsed := cofd.DamageKindOrBashing(label)
		kind = &parsed
	}
	status, err := s.service.SetBox(ctx, stringField(in, fieldCharacterID), position, kind)
	if err != nil {
		return nil, err
	}
	return encodeStatus(status), nil
}

// ClearAll empties a character's track.
func (s *Server) ClearAll(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	status, err := s.service.ClearAll(ctx, stringField(in, fieldCharacterID))
	if err != nil {
		return nil, err
	}
	return encodeStatus(status), nil
}

// Resize changes a character's track length.
func (s *Server) Resize(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	maxHealth, err := intField(in, fieldMaxHealth)
	if err != nil {
		return nil, err
	}
	status, err := s.service.Resize(ctx, stringField(in, fieldCharacterID), maxHealth)
	if err != nil {
		return nil, err
	}
	return encodeStatus(status), nil
}

// CreateCharacter stores a new character. max_health is optional.
func (s *Server) CreateCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	maxHealth := 0
	if _, ok := in.GetFields()[fieldMaxHealth]; ok {
		value, err := intField(in, fieldMaxHealth)
		if err != nil {
			return nil, err
		}
		maxHealth = value
	}
	c, err := s.service.CreateCharacter(ctx, stringField(in, fieldName), maxHealth)
	if err != nil {
		return nil, err
	}
	return encodeCharacter(c), nil
}
