package health

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	grpcmeta "github.com/louisbranch/chronicles.mud/internal/services/game/api/grpc/metadata"
)

// Client calls HealthService over a gRPC connection.
type Client struct {
	conn     grpc.ClientConnInterface
	outgoing grpcmeta.Outgoing
}

// NewClient returns a client that sends outgoing headers on every call.
func NewClient(conn grpc.ClientConnInterface, outgoing grpcmeta.Outgoing) *Client {
	return &Client{conn: conn, outgoing: outgoing}
}

func (c *Client) invoke(ctx context.Context, method string, fields map[string]*structpb.Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	ctx = grpcmeta.AppendToOutgoingContext(ctx, c.outgoing)
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, method, &structpb.Struct{Fields: fields}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Execute runs a +health command line.
func (c *Client) Execute(ctx context.Context, input string, opts ...grpc.CallOption) (Reply, error) {
	out, err := c.invoke(ctx, ExecuteFullMethodName, map[string]*structpb.Value{
		fieldInput: structpb.NewStringValue(input),
	}, opts...)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: out.GetFields()[fieldText].GetStringValue(), CharacterID: stringField(out, fieldCharacterID)}, nil
}

// GetStatus returns a character's track.
func (c *Client) GetStatus(ctx context.Context, characterID string, opts ...grpc.CallOption) (StatusView, error) {
	out, err := c.invoke(ctx, GetStatusFullMethodName, map[string]*structpb.Value{
		fieldCharacterID: structpb.NewStringValue(characterID),
	}, opts...)
	if err != nil {
		return StatusView{}, err
	}
	return decodeStatus(out), nil
}

// ApplyDamage applies amount boxes of kind damage.
func (c *Client) ApplyDamage(ctx context.Context, characterID string, amount int, kind string, opts ...grpc.CallOption) (ResultView, error) {
	out, err := c.invoke(ctx, ApplyDamageFullMethodName, map[string]*structpb.Value{
		fieldCharacterID: structpb.NewStringValue(characterID),
		fieldAmount:      structpb.NewNumberValue(float64(amount)),
		fieldKind:        structpb.NewStringValue(kind),
	}, opts...)
	if err != nil {
		return ResultView{}, err
	}
	return decodeResult(out), nil
}

// HealDamage heals up to amount boxes of kind damage.
func (c *Client) HealDamage(ctx context.Context, characterID string, amount int, kind string, opts ...grpc.CallOption) (ResultView, error) {
	out, err := c.invoke(ctx, HealDamageFullMethodName, map[string]*structpb.Value{
		fieldCharacterID: structpb.NewStringValue(characterID),
		fieldAmount:      structpb.NewNumberValue(float64(amount)),
		fieldKind:        structpb.NewStringValue(kind),
	}, opts...)
	if err != nil {
		return ResultView{}, err
	}
	return decodeResult(out), nil
}

// SetBox writes kind into one box. An empty kind clears it.
func (c *Client) SetBox(ctx context.Context, characterID string, position int, kind string, opts ...grpc.CallOption) (StatusView, error) {
	fields := map[string]*structpb.Value{
		fieldCharacterID: structpb.NewStringValue(characterID),
		fieldPosition:    structpb.NewNumberValue(float64(position)),
	}
	if kind != "" {
		fields[fieldKind] = structpb.NewStringValue(kind)
	}
	out, err := c.invoke(ctx, SetBoxFullMethodName, fields, opts...)
	if err != nil {
		return StatusView{}, err
	}
	return decodeStatus(out), nil
}

// ClearAll empties a character's track.
func (c *Client) ClearAll(ctx context.Context, characterID string, opts ...grpc.CallOption) (StatusView, error) {
	out, err := c.invoke(ctx, ClearAllFullMethodName, map[string]*structpb.Value{
		fieldCharacterID: structpb.NewStringValue(characterID),
	}, opts...)
	if err != nil {
		return StatusView{}, err
	}
	return decodeStatus(out), nil
}

// Resize changes a character's track length.
func (c *Client) Resize(ctx context.Context, characterID string, maxHealth int, opts ...grpc.CallOption) (StatusView, error) {
	out, err := c.invoke(ctx, ResizeFullMethodName, map[string]*structpb.Value{
		fieldCharacterID: structpb.NewStringValue(characterID),
		fieldMaxHealth:   structpb.NewNumberValue(float64(maxHealth)),
	}, opts...)
	if err != nil {
		return StatusView{}, err
	}
	return decodeStatus(out), nil
}

// CreateCharacter stores a new character. A zero maxHealth uses the default.
func (c *Client) CreateCharacter(ctx context.Context, name string, maxHealth int, opts ...grpc.CallOption) (CharacterView, error) {
	fields := map[string]*structpb.Value{
		fieldName: structpb.NewStringValue(name),
	}
	if maxHealth != 0 {
		fields[fieldMaxHealth] = structpb.NewNumberValue(float64(maxHealth))
	}
	out, err := c.invoke(ctx, CreateCharacterFullMethodName, fields, opts...)
	if err != nil {
		return CharacterView{}, err
	}
	return CharacterView{
		CharacterID: stringField(out, fieldCharacterID),
		Name:        stringField(out, fieldName),
		MaxHealth:   intOrZero(out, fieldMaxHealth),
	}, nil
}
