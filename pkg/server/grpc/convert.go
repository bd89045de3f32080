package grpc

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"droscher.com/BeerStyles/pkg/model"
)

var ErrInvalidMessage = errors.New("invalid message")

const (
	fieldName                = "name"
	fieldABVLow              = "abvLow"
	fieldABVHigh             = "abvHigh"
	fieldIBULow              = "ibuLow"
	fieldIBUHigh             = "ibuHigh"
	fieldSRMLow              = "srmLow"
	fieldSRMHigh             = "srmHigh"
	fieldOriginalGravityLow  = "originalGravityLow"
	fieldOriginalGravityHigh = "originalGravityHigh"
	fieldFinalGravityLow     = "finalGravityLow"
	fieldFinalGravityHigh    = "finalGravityHigh"
	FieldDeleted             = "deleted"
)

func StyleFromModel(style model.Style) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldName:                structpb.NewStringValue(style.Name),
		fieldABVLow:              structpb.NewNumberValue(style.ABVLow),
		fieldABVHigh:             structpb.NewNumberValue(style.ABVHigh),
		fieldIBULow:              structpb.NewNumberValue(float64(style.IBULow)),
		fieldIBUHigh:             structpb.NewNumberValue(float64(style.IBUHigh)),
		fieldSRMLow:              structpb.NewNumberValue(style.SRMLow),
		fieldSRMHigh:             structpb.NewNumberValue(style.SRMHigh),
		fieldOriginalGravityLow:  structpb.NewNumberValue(style.OriginalGravityLow),
		fieldOriginalGravityHigh: structpb.NewNumberValue(style.OriginalGravityHigh),
		fieldFinalGravityLow:     structpb.NewNumberValue(style.FinalGravityLow),
		fieldFinalGravityHigh:    structpb.NewNumberValue(style.FinalGravityHigh),
	}}
}

func StyleToModel(message *structpb.Struct) (model.Style, error) {
	fields := structFields{fields: message.GetFields()}

	style := model.Style{
		Name:                fields.text(fieldName),
		ABVLow:              fields.number(fieldABVLow),
		ABVHigh:             fields.number(fieldABVHigh),
		IBULow:              fields.integer(fieldIBULow),
		IBUHigh:             fields.integer(fieldIBUHigh),
		SRMLow:              fields.number(fieldSRMLow),
		SRMHigh:             fields.number(fieldSRMHigh),
		OriginalGravityLow:  fields.number(fieldOriginalGravityLow),
		OriginalGravityHigh: fields.number(fieldOriginalGravityHigh),
		FinalGravityLow:     fields.number(fieldFinalGravityLow),
		FinalGravityHigh:    fields.number(fieldFinalGravityHigh),
	}

	return style, fields.err
}

func NameFromMessage(message *structpb.Struct) (string, error) {
	fields := structFields{fields: message.GetFields()}
	name := fields.text(fieldName)

	return name, fields.err
}

func NameMessage(name string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{fieldName: structpb.NewStringValue(name)}}
}

func DeletedMessage(deleted bool) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{FieldDeleted: structpb.NewBoolValue(deleted)}}
}

type structFields struct {
	fields map[string]*structpb.Value
	err    error
}

func (s *structFields) value(key string) *structpb.Value {
	if s.err != nil {
		return nil
	}

	value, found := s.fields[key]
	if !found {
		s.err = fmt.Errorf("%w: field %q is required", ErrInvalidMessage, key)

		return nil
	}

	return value
}

func (s *structFields) text(key string) string {
	value := s.value(key)
	if value == nil {
		return ""
	}

	text, ok := value.GetKind().(*structpb.Value_StringValue)
	if !ok {
		s.err = fmt.Errorf("%w: field %q must be a string", ErrInvalidMessage, key)

		return ""
	}

	return text.StringValue
}

func (s *structFields) number(key string) float64 {
	value := s.value(key)
	if value == nil {
		return 0
	}

	number, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		s.err = fmt.Errorf("%w: field %q must be a number", ErrInvalidMessage, key)

		return 0
	}

	return number.NumberValue
}

func (s *structFields) integer(key string) int64 {
	number := s.number(key)
	if s.err != nil {
		return 0
	}

	if number != math.Trunc(number) || math.Abs(number) > 1<<53 {
		s.err = fmt.Errorf("%w: field %q must be a whole number", ErrInvalidMessage, key)

		return 0
	}

	return int64(number)
}
