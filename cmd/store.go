package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"droscher.com/BeerStyles/configs"
	"droscher.com/BeerStyles/pkg/graph"
	"droscher.com/BeerStyles/pkg/repository"
)

func newLogger(cliCtx *Context) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if cliCtx == nil || !cliCtx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

// openStore returns the repository selected by conf.Store and a function releasing it.
func openStore(conf *configs.Config, logger *zap.Logger) (repository.StyleRepository, func(), error) {
	switch conf.Store {
	case configs.StoreGraph:
		connector, err := graph.NewNeo4jConnector(conf.Graph, logger)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("using graph store", zap.String("target", connector.Target()))

		return repository.NewGraphRepository(connector, logger), func() {}, nil
	case configs.StoreSQL:
		repo, err := repository.Open(conf, logger)
		if err != nil {
			return nil, nil, err
		}

		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown store %q", configs.ErrConfiguration, conf.Store)
	}
}
