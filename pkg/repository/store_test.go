package repository_test

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"droscher.com/BeerStyles/pkg/graph"
	"droscher.com/BeerStyles/pkg/repository"
)

// styleStore is a graph.Connector that keeps Style nodes in memory and understands
// the repository's four statements. Nodes are kept in creation order, matching the
// ordering the statements ask the database for.
type styleStore struct {
	mu    sync.Mutex
	nodes []map[string]any
}

func newStyleStore() *styleStore {
	return &styleStore{}
}

func (s *styleStore) Connect(context.Context, graph.AccessMode) (graph.Session, error) {
	return s, nil
}

func (s *styleStore) Close(context.Context) error {
	return nil
}

func (s *styleStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.nodes)
}

func (s *styleStore) Run(_ context.Context, cypher string, params map[string]any) (graph.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := params["name"]

	switch cypher {
	case repository.CreateStyleCypher:
		s.nodes = append(s.nodes, maps.Clone(params))

		return graph.Result{}, nil
	case repository.ReadStyleCypher:
		return graph.Result{Records: s.matching(name)}, nil
	case repository.UpdateStyleCypher:
		updated := false

		for _, node := range s.nodes {
			if node["name"] == name {
				maps.Copy(node, params)

				updated = true
			}
		}

		if !updated {
			s.nodes = append(s.nodes, maps.Clone(params))
		}

		return graph.Result{Records: s.matching(name)}, nil
	case repository.DeleteStyleCypher:
		kept := s.nodes[:0]
		deleted := int64(0)

		for _, node := range s.nodes {
			if node["name"] == name {
				deleted++

				continue
			}

			kept = append(kept, node)
		}

		s.nodes = kept

		return graph.Result{Records: []graph.Record{{"deleted": deleted}}}, nil
	default:
		return graph.Result{}, fmt.Errorf("unexpected statement: %s", cypher)
	}
}

func (s *styleStore) matching(name any) []graph.Record {
	var records []graph.Record

	for _, node := range s.nodes {
		if node["name"] == name {
			records = append(records, graph.Record(maps.Clone(node)))
		}
	}

	return records
}
