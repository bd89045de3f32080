package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerStyles/configs"
)

const defaultScheme = "neo4j"

// Neo4jConnector opens a new driver for every Connect call and closes it with the session.
type Neo4jConnector struct {
	conf   configs.Graph
	logger *zap.Logger
}

func NewNeo4jConnector(conf configs.Graph, logger *zap.Logger) (*Neo4jConnector, error) {
	var errs error

	required := func(value string, name string) {
		if value == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrMissingConfig, name))
		}
	}

	required(conf.Username, "username")
	required(conf.Password, "password")
	required(conf.Address, "address")

	if errs != nil {
		return nil, errs
	}

	return &Neo4jConnector{conf: conf, logger: logger}, nil
}

// Target is the driver URI built from the configured scheme and address.
func (c *Neo4jConnector) Target() string {
	if strings.Contains(c.conf.Address, "://") {
		return c.conf.Address
	}

	scheme := c.conf.Scheme
	if scheme == "" {
		scheme = defaultScheme
	}

	return scheme + "://" + c.conf.Address
}

func (c *Neo4jConnector) Connect(ctx context.Context, mode AccessMode) (Session, error) {
	driver, err := neo4j.NewDriverWithContext(c.Target(), neo4j.BasicAuth(c.conf.Username, c.conf.Password, ""), func(conf *neo4j.Config) {
		conf.MaxConnectionPoolSize = 1

		if c.conf.ConnectTimeout > 0 {
			conf.SocketConnectTimeout = c.conf.ConnectTimeout
			conf.ConnectionAcquisitionTimeout = c.conf.ConnectTimeout
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	verifyCtx := ctx

	if c.conf.ConnectTimeout > 0 {
		var cancel context.CancelFunc

		verifyCtx, cancel = context.WithTimeout(ctx, c.conf.ConnectTimeout)
		defer cancel()
	}

	if err = driver.VerifyConnectivity(verifyCtx); err != nil {
		c.logger.Error("graph database rejected connection", zap.String("target", c.Target()), zap.Error(err))

		_ = driver.Close(ctx)

		return nil, fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	accessMode := neo4j.AccessModeRead
	if mode == AccessModeWrite {
		accessMode = neo4j.AccessModeWrite
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.conf.Database,
		AccessMode:   accessMode,
	})

	return &neo4jSession{driver: driver, session: session}, nil
}

type neo4jSession struct {
	driver  neo4j.DriverWithContext
	session neo4j.SessionWithContext
}

func (s *neo4jSession) Run(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	res, err := s.session.Run(ctx, cypher, params)
	if err != nil {
		return Result{}, err
	}

	return consumeResult(ctx, res)
}

func (s *neo4jSession) Close(ctx context.Context) error {
	return multierr.Combine(s.session.Close(ctx), s.driver.Close(ctx))
}

func consumeResult(ctx context.Context, res neo4j.ResultWithContext) (Result, error) {
	var records []Record

	for res.Next(ctx) {
		rec := res.Record()
		record := make(Record, len(rec.Keys))

		for index, key := range rec.Keys {
			record[key] = rec.Values[index]
		}

		records = append(records, record)
	}

	if err := res.Err(); err != nil {
		return Result{}, err
	}

	return Result{Records: records}, nil
}
