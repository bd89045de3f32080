package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerStyles/configs"
	"droscher.com/BeerStyles/pkg/integrations"
	"droscher.com/BeerStyles/pkg/repository"
)

type ImportCmd struct {
	ConfigFile string `default:".BeerStyles.toml" help:"Path to config file"                                 short:"c"`
	Source     string `arg:""                     help:"Integration to import from (bjcp or file)"`
	Query      string `arg:""                     help:"Style name filter for bjcp, document path for file" optional:""`
}

func (i *ImportCmd) Run(cliCtx *Context) error {
	logger := newLogger(cliCtx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(i.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	integration := integrations.GetIntegration(i.Source, conf.Integrations, logger)
	if integration == nil {
		return fmt.Errorf("%w: integration %q is not enabled", configs.ErrConfiguration, i.Source)
	}

	repo, release, err := openStore(conf, logger)
	if err != nil {
		logger.Error("error opening style store", zap.Error(err))

		return err
	}
	defer release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return importStyles(ctx, integration, i.Query, repo, logger, os.Stdout)
}

// importStyles upserts every style the integration finds, carrying on past individual failures.
func importStyles(ctx context.Context, integration integrations.Integration, query string, repo repository.StyleRepository, logger *zap.Logger, out io.Writer) error {
	styles, errs := integration.FindStyles(query)

	imported := 0

	for _, style := range styles {
		if ctx.Err() != nil {
			return multierr.Append(errs, ctx.Err())
		}

		if _, err := repo.UpdateStyle(ctx, style); err != nil {
			logger.Error("failed to import style", zap.String("name", style.Name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("importing %q: %w", style.Name, err))

			continue
		}

		imported++
	}

	logger.Info("imported styles", zap.Int("imported", imported), zap.Int("found", len(styles)))

	if err := writeYAML(out, map[string]int{"found": len(styles), "imported": imported}); err != nil {
		errs = multierr.Append(errs, err)
	}

	return errs
}
