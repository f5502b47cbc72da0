package health

import (
	"fmt"
	"math"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/character"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/systems/cofd"
	healthsvc "github.com/louisbranch/chronicles.mud/internal/services/game/health"
)

// Wire field names.
const (
	fieldInput         = "input"
	fieldText          = "text"
	fieldCharacterID   = "character_id"
	fieldName          = "name"
	fieldMaxHealth     = "max_health"
	fieldAmount        = "amount"
	fieldKind          = "kind"
	fieldPosition      = "position"
	fieldRequested     = "requested"
	fieldApplied       = "applied"
	fieldHealed        = "healed"
	fieldStatus        = "status"
	fieldBoxes         = "boxes"
	fieldMarkers       = "markers"
	fieldTotalDamage   = "total_damage"
	fieldWoundPenalty  = "wound_penalty"
	fieldIncapacitated = "incapacitated"
)

// clearKind marks a SetBox request that empties the box.
const clearKind = "clear"

var markerNames = map[cofd.BoxMarker]string{
	cofd.MarkerEmpty:      "empty",
	cofd.MarkerBashing:    "bashing",
	cofd.MarkerLethal:     "lethal",
	cofd.MarkerAggravated: "aggravated",
}

// StatusView is the decoded wire form of a character's health.
type StatusView struct {
	CharacterID   string
	Name          string
	MaxHealth     int
	Boxes         []string
	Markers       []string
	TotalDamage   int
	WoundPenalty  int
	Incapacitated bool
}

// ResultView is the decoded wire form of a damage or heal outcome.
type ResultView struct {
	Requested int
	Applied   int
	Healed    int
	Status    StatusView
}

// Reply is the decoded wire form of an Execute response.
type Reply struct {
	Text        string
	CharacterID string
}

// CharacterView is the decoded wire form of a created character.
type CharacterView struct {
	CharacterID string
	Name        string
	MaxHealth   int
}

func statusValue(view healthsvc.Status) *structpb.Value {
	boxes := view.Track.Boxes()
	boxValues := make([]*structpb.Value, len(boxes))
	for i, kind := range boxes {
		boxValues[i] = structpb.NewStringValue(kind.String())
	}
	markerValues := make([]*structpb.Value, len(view.Markers))
	for i, marker := range view.Markers {
		markerValues[i] = structpb.NewStringValue(markerNames[marker])
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		fieldCharacterID:   structpb.NewStringValue(view.CharacterID),
		fieldName:          structpb.NewStringValue(view.Name),
		fieldMaxHealth:     structpb.NewNumberValue(float64(view.MaxHealth)),
		fieldBoxes:         structpb.NewListValue(&structpb.ListValue{Values: boxValues}),
		fieldMarkers:       structpb.NewListValue(&structpb.ListValue{Values: markerValues}),
		fieldTotalDamage:   structpb.NewNumberValue(float64(view.TotalDamage)),
		fieldWoundPenalty:  structpb.NewNumberValue(float64(view.WoundPenalty)),
		fieldIncapacitated: structpb.NewBoolValue(view.Incapacitated),
	}})
}

func encodeStatus(view healthsvc.Status) *structpb.Struct {
	return statusValue(view).GetStructValue()
}

func encodeResult(result healthsvc.Result) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldRequested: structpb.NewNumberValue(float64(result.Requested)),
		fieldApplied:   structpb.NewNumberValue(float64(result.Applied)),
		fieldHealed:    structpb.NewNumberValue(float64(result.Healed)),
		fieldStatus:    statusValue(result.Status),
	}}
}

func encodeCharacter(c character.Character) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldCharacterID: structpb.NewStringValue(c.ID),
		fieldName:        structpb.NewStringValue(c.Name),
		fieldMaxHealth:   structpb.NewNumberValue(float64(c.MaxHealth())),
	}}
}

func decodeStatus(s *structpb.Struct) StatusView {
	return StatusView{
		CharacterID:   stringField(s, fieldCharacterID),
		Name:          stringField(s, fieldName),
		MaxHealth:     intOrZero(s, fieldMaxHealth),
		Boxes:         stringList(s, fieldBoxes),
		Markers:       stringList(s, fieldMarkers),
		TotalDamage:   intOrZero(s, fieldTotalDamage),
		WoundPenalty:  intOrZero(s, fieldWoundPenalty),
		Incapacitated: s.GetFields()[fieldIncapacitated].GetBoolValue(),
	}
}

func decodeResult(s *structpb.Struct) ResultView {
	return ResultView{
		Requested: intOrZero(s, fieldRequested),
		Applied:   intOrZero(s, fieldApplied),
		Healed:    intOrZero(s, fieldHealed),
		Status:    decodeStatus(s.GetFields()[fieldStatus].GetStructValue()),
	}
}

func stringField(s *structpb.Struct, name string) string {
	return strings.TrimSpace(s.GetFields()[name].GetStringValue())
}

func stringList(s *structpb.Struct, name string) []string {
	values := s.GetFields()[name].GetListValue().GetValues()
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = value.GetStringValue()
	}
	return out
}

func intOrZero(s *structpb.Struct, name string) int {
	n, _ := intField(s, name)
	return n
}

// intField reads an integral number field. An absent or non-integral value is
// an InvalidArgument error.
func intField(s *structpb.Struct, name string) (int, error) {
	value, ok := s.GetFields()[name]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	number, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a number", name)
	}
	if math.IsNaN(number.NumberValue) || math.IsInf(number.NumberValue, 0) || number.NumberValue != math.Trunc(number.NumberValue) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
	}
	if math.Abs(number.NumberValue) > math.MaxInt32 {
		return 0, status.Errorf(codes.InvalidArgument, "%s is out of range", name)
	}
	return int(number.NumberValue), nil
}

// kindField reads a damage kind label. Unrecognized labels default to
// bashing, like the +health command.
func kindField(s *structpb.Struct) cofd.DamageKind {
	return cofd.DamageKindOrBashing(stringField(s, fieldKind))
}

func requireString(s *structpb.Struct, name string) (string, error) {
	value := stringField(s, name)
	if value == "" {
		return "", status.Error(codes.InvalidArgument, fmt.Sprintf("%s is required", name))
	}
	return value, nil
}
