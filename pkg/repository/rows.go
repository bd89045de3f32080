package repository

import (
	"fmt"

	"droscher.com/BeerStyles/pkg/graph"
	"droscher.com/BeerStyles/pkg/model"
)

const (
	colName                = "name"
	colABVLow              = "abvLow"
	colABVHigh             = "abvHigh"
	colIBULow              = "ibuLow"
	colIBUHigh             = "ibuHigh"
	colSRMLow              = "srmLow"
	colSRMHigh             = "srmHigh"
	colOriginalGravityLow  = "originalGravityLow"
	colOriginalGravityHigh = "originalGravityHigh"
	colFinalGravityLow     = "finalGravityLow"
	colFinalGravityHigh    = "finalGravityHigh"
)

// styleFromRecords maps every row and keeps the last one. Queries order their rows by
// createdAt and then elementId as text, so the last row of that ordering wins.
func styleFromRecords(records []graph.Record) (*model.Style, error) {
	if len(records) == 0 {
		return nil, ErrStyleNotFound
	}

	var style model.Style

	for _, record := range records {
		mapped, err := styleFromRecord(record)
		if err != nil {
			return nil, err
		}

		style = mapped
	}

	return &style, nil
}

func styleFromRecord(record graph.Record) (model.Style, error) {
	row := rowReader{record: record}

	style := model.Style{
		Name:                row.text(colName),
		ABVLow:              row.float(colABVLow),
		ABVHigh:             row.float(colABVHigh),
		IBULow:              row.integer(colIBULow),
		IBUHigh:             row.integer(colIBUHigh),
		SRMLow:              row.float(colSRMLow),
		SRMHigh:             row.float(colSRMHigh),
		OriginalGravityLow:  row.float(colOriginalGravityLow),
		OriginalGravityHigh: row.float(colOriginalGravityHigh),
		FinalGravityLow:     row.float(colFinalGravityLow),
		FinalGravityHigh:    row.float(colFinalGravityHigh),
	}

	return style, row.err
}

func styleParams(style model.Style) map[string]any {
	return map[string]any{
		colName:                style.Name,
		colABVLow:              style.ABVLow,
		colABVHigh:             style.ABVHigh,
		colIBULow:              style.IBULow,
		colIBUHigh:             style.IBUHigh,
		colSRMLow:              style.SRMLow,
		colSRMHigh:             style.SRMHigh,
		colOriginalGravityLow:  style.OriginalGravityLow,
		colOriginalGravityHigh: style.OriginalGravityHigh,
		colFinalGravityLow:     style.FinalGravityLow,
		colFinalGravityHigh:    style.FinalGravityHigh,
	}
}

// rowReader converts columns of one record, remembering the first failure.
type rowReader struct {
	record graph.Record
	err    error
}

func (r *rowReader) value(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}

	value, found := r.record[key]
	if !found {
		r.err = fmt.Errorf("%w: column %q missing", ErrMalformedRow, key)

		return nil, false
	}

	if value == nil {
		r.err = fmt.Errorf("%w: column %q is null", ErrMalformedRow, key)

		return nil, false
	}

	return value, true
}

func (r *rowReader) mismatch(key string, expected string, value any) {
	r.err = fmt.Errorf("%w: column %q expected %s, got %T", ErrMalformedRow, key, expected, value)
}

func (r *rowReader) text(key string) string {
	value, ok := r.value(key)
	if !ok {
		return ""
	}

	text, ok := value.(string)
	if !ok {
		r.mismatch(key, "text", value)
	}

	return text
}

func (r *rowReader) integer(key string) int64 {
	value, ok := r.value(key)
	if !ok {
		return 0
	}

	integer, ok := value.(int64)
	if !ok {
		r.mismatch(key, "integer", value)
	}

	return integer
}

func (r *rowReader) float(key string) float64 {
	value, ok := r.value(key)
	if !ok {
		return 0
	}

	switch number := value.(type) {
	case float64:
		return number
	case int64:
		return float64(number)
	default:
		r.mismatch(key, "float", value)

		return 0
	}
}
