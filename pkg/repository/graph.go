package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/BeerStyles/pkg/graph"
	"droscher.com/BeerStyles/pkg/model"
)

// styleProjection orders duplicates by createdAt, then by elementId compared as text. Nodes
// created in the same millisecond therefore have a stable but not a creation order.
const styleProjection = `RETURN s.name AS name, s.abvLow AS abvLow, s.abvHigh AS abvHigh,
       s.ibuLow AS ibuLow, s.ibuHigh AS ibuHigh, s.srmLow AS srmLow, s.srmHigh AS srmHigh,
       s.originalGravityLow AS originalGravityLow, s.originalGravityHigh AS originalGravityHigh,
       s.finalGravityLow AS finalGravityLow, s.finalGravityHigh AS finalGravityHigh
ORDER BY coalesce(s.createdAt, 0), elementId(s)`

const styleProperties = `s.abvLow = $abvLow, s.abvHigh = $abvHigh,
    s.ibuLow = $ibuLow, s.ibuHigh = $ibuHigh, s.srmLow = $srmLow, s.srmHigh = $srmHigh,
    s.originalGravityLow = $originalGravityLow, s.originalGravityHigh = $originalGravityHigh,
    s.finalGravityLow = $finalGravityLow, s.finalGravityHigh = $finalGravityHigh`

const (
	createStyleCypher = `CREATE (s:Style {name: $name, createdAt: timestamp()})
SET ` + styleProperties

	readStyleCypher = `MATCH (s:Style {name: $name})
` + styleProjection

	updateStyleCypher = `MERGE (s:Style {name: $name})
ON CREATE SET s.createdAt = timestamp()
SET ` + styleProperties + `
` + styleProjection

	deleteStyleCypher = `MATCH (s:Style {name: $name})
DETACH DELETE s
RETURN count(s) AS deleted`
)

const colDeleted = "deleted"

type GraphRepository struct {
	Connector graph.Connector
	Logger    *zap.Logger
}

func NewGraphRepository(connector graph.Connector, logger *zap.Logger) *GraphRepository {
	return &GraphRepository{Connector: connector, Logger: logger}
}

func (r *GraphRepository) CreateStyle(ctx context.Context, style model.Style) (string, error) {
	if err := style.Validate(); err != nil {
		return "", err
	}

	if _, err := r.run(ctx, graph.AccessModeWrite, createStyleCypher, styleParams(style)); err != nil {
		r.Logger.Error("error creating style", zap.String("name", style.Name), zap.Error(err))

		return "", err
	}

	return style.Name, nil
}

func (r *GraphRepository) ReadStyle(ctx context.Context, name string) (*model.Style, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}

	result, err := r.run(ctx, graph.AccessModeRead, readStyleCypher, map[string]any{colName: name})
	if err != nil {
		r.Logger.Error("error reading style", zap.String("name", name), zap.Error(err))

		return nil, err
	}

	if len(result.Records) > 1 {
		r.Logger.Warn("duplicate styles found, using the latest", zap.String("name", name), zap.Int("count", len(result.Records)))
	}

	style, err := styleFromRecords(result.Records)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, name)
	}

	return style, nil
}

func (r *GraphRepository) UpdateStyle(ctx context.Context, style model.Style) (*model.Style, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}

	result, err := r.run(ctx, graph.AccessModeWrite, updateStyleCypher, styleParams(style))
	if err != nil {
		r.Logger.Error("error updating style", zap.String("name", style.Name), zap.Error(err))

		return nil, err
	}

	updated, err := styleFromRecords(result.Records)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, style.Name)
	}

	return updated, nil
}

func (r *GraphRepository) DeleteStyle(ctx context.Context, name string) (bool, error) {
	if err := model.ValidateName(name); err != nil {
		return false, err
	}

	result, err := r.run(ctx, graph.AccessModeWrite, deleteStyleCypher, map[string]any{colName: name})
	if err != nil {
		r.Logger.Error("error deleting style", zap.String("name", name), zap.Error(err))

		return false, err
	}

	if len(result.Records) != 1 {
		return false, fmt.Errorf("%w: expected one count row, got %d", ErrMalformedRow, len(result.Records))
	}

	row := rowReader{record: result.Records[0]}
	deleted := row.integer(colDeleted)

	if row.err != nil {
		return false, row.err
	}

	return deleted > 0, nil
}

// run executes one statement on its own session. Connection failures are returned as is,
// statement failures are wrapped in ErrExecution. The rows are fully consumed before the
// session closes, so a failing close does not fail the statement.
func (r *GraphRepository) run(ctx context.Context, mode graph.AccessMode, cypher string, params map[string]any) (graph.Result, error) {
	session, err := r.Connector.Connect(ctx, mode)
	if err != nil {
		return graph.Result{}, err
	}

	defer func() {
		if closeErr := session.Close(ctx); closeErr != nil {
			r.Logger.Warn("error closing graph session", zap.Error(closeErr))
		}
	}()

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return graph.Result{}, fmt.Errorf("%w: %w", ErrExecution, err)
	}

	return result, nil
}
