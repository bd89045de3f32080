package graph

import (
	"context"
	"maps"
	"sync"
)

// MemoryConnector records every executed statement and replays queued results.
// It lets the repositories be exercised without a running graph database.
type MemoryConnector struct {
	mu         sync.Mutex
	calls      []ExecutedQuery
	results    []Result
	runErr     error
	connectErr error
	sessions   int
	closed     int
}

// ExecutedQuery captures a statement, its parameters and the access mode of its session.
type ExecutedQuery struct {
	Query  string
	Params map[string]any
	Mode   AccessMode
}

func NewMemoryConnector() *MemoryConnector {
	return &MemoryConnector{}
}

// WithError makes every subsequent Run fail with err.
func (m *MemoryConnector) WithError(err error) *MemoryConnector {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runErr = err

	return m
}

// WithConnectError makes every subsequent Connect fail with err.
func (m *MemoryConnector) WithConnectError(err error) *MemoryConnector {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectErr = err

	return m
}

// PushResult queues a result for the next Run call.
func (m *MemoryConnector) PushResult(res Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

func (m *MemoryConnector) Connect(_ context.Context, mode AccessMode) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connectErr != nil {
		return nil, m.connectErr
	}

	m.sessions++

	return &memorySession{connector: m, mode: mode}, nil
}

// Calls returns a snapshot of the executed statements.
func (m *MemoryConnector) Calls() []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]ExecutedQuery(nil), m.calls...)
}

// OpenSessions reports sessions handed out and not yet closed.
func (m *MemoryConnector) OpenSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sessions - m.closed
}

type memorySession struct {
	connector *MemoryConnector
	mode      AccessMode
}

func (s *memorySession) Run(_ context.Context, cypher string, params map[string]any) (Result, error) {
	m := s.connector

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.runErr != nil {
		return Result{}, m.runErr
	}

	m.calls = append(m.calls, ExecutedQuery{Query: cypher, Params: maps.Clone(params), Mode: s.mode})

	if len(m.results) == 0 {
		return Result{}, nil
	}

	res := m.results[0]
	m.results = m.results[1:]

	return res, nil
}

func (s *memorySession) Close(context.Context) error {
	s.connector.mu.Lock()
	defer s.connector.mu.Unlock()
	s.connector.closed++

	return nil
}
