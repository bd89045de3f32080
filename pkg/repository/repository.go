package repository

import (
	"context"
	"errors"

	"droscher.com/BeerStyles/pkg/model"
)

var (
	ErrStyleNotFound = errors.New("style not found")
	ErrMalformedRow  = errors.New("malformed style row")
	ErrExecution     = errors.New("error executing query")
	ErrInvalidStyle  = model.ErrInvalid
)

// StyleRepository is implemented by every style store. When a name matches more
// than one stored style, reads and updates resolve to the last one in the store's
// ordering: latest createdAt then highest elementId as text for the graph store,
// highest id for the SQL store.
type StyleRepository interface {
	CreateStyle(ctx context.Context, style model.Style) (string, error)
	ReadStyle(ctx context.Context, name string) (*model.Style, error)
	UpdateStyle(ctx context.Context, style model.Style) (*model.Style, error)
	DeleteStyle(ctx context.Context, name string) (bool, error)
}
