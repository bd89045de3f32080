package graph

import (
	"context"
	"errors"
)

var (
	ErrMissingConfig = errors.New("missing graph configuration")
	ErrConnectFailed = errors.New("could not connect to graph database")
)

type AccessMode int

const (
	AccessModeRead AccessMode = iota
	AccessModeWrite
)

// Record maps the columns of one returned row to their values.
type Record map[string]any

type Result struct {
	Records []Record
}

// Session runs statements on a single authenticated connection and must be closed by its owner.
type Session interface {
	Run(ctx context.Context, cypher string, params map[string]any) (Result, error)
	Close(ctx context.Context) error
}

// Connector hands out a new Session for every call.
type Connector interface {
	Connect(ctx context.Context, mode AccessMode) (Session, error)
}
