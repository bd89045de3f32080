package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"droscher.com/BeerStyles/configs"
	"droscher.com/BeerStyles/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BeerStyles.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(cliCtx *Context) error {
	logger := newLogger(cliCtx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	if conf.Store != configs.StoreSQL {
		return fmt.Errorf("%w: migrations only apply to the %q store", configs.ErrConfiguration, configs.StoreSQL)
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	return repo.Migrate()
}
