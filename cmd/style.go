package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"droscher.com/BeerStyles/configs"
	"droscher.com/BeerStyles/pkg/model"
	"droscher.com/BeerStyles/pkg/repository"
)

type StyleCmd struct {
	Create StyleCreateCmd `cmd:"" help:"Create a style node"`
	Read   StyleReadCmd   `cmd:"" help:"Read a style by name"`
	Update StyleUpdateCmd `cmd:"" help:"Update a style, creating it when missing"`
	Delete StyleDeleteCmd `cmd:"" help:"Delete every style with the name"`
}

type StoreFlags struct {
	ConfigFile string `default:".BeerStyles.toml" help:"Path to config file" short:"c"`
}

type StyleFlags struct {
	Name                string  `arg:"" help:"Style name"`
	ABVLow              float64 `help:"Lowest ABV" name:"abv-low" required:""`
	ABVHigh             float64 `help:"Highest ABV" name:"abv-high" required:""`
	IBULow              int64   `help:"Lowest IBU" name:"ibu-low" required:""`
	IBUHigh             int64   `help:"Highest IBU" name:"ibu-high" required:""`
	SRMLow              float64 `help:"Lowest SRM" name:"srm-low" required:""`
	SRMHigh             float64 `help:"Highest SRM" name:"srm-high" required:""`
	OriginalGravityLow  float64 `help:"Lowest original gravity" name:"og-low" required:""`
	OriginalGravityHigh float64 `help:"Highest original gravity" name:"og-high" required:""`
	FinalGravityLow     float64 `help:"Lowest final gravity" name:"fg-low" required:""`
	FinalGravityHigh    float64 `help:"Highest final gravity" name:"fg-high" required:""`
}

func (f StyleFlags) Style() model.Style {
	return model.Style{
		Name:                f.Name,
		ABVLow:              f.ABVLow,
		ABVHigh:             f.ABVHigh,
		IBULow:              f.IBULow,
		IBUHigh:             f.IBUHigh,
		SRMLow:              f.SRMLow,
		SRMHigh:             f.SRMHigh,
		OriginalGravityLow:  f.OriginalGravityLow,
		OriginalGravityHigh: f.OriginalGravityHigh,
		FinalGravityLow:     f.FinalGravityLow,
		FinalGravityHigh:    f.FinalGravityHigh,
	}
}

type StyleCreateCmd struct {
	StoreFlags
	StyleFlags
}

type StyleReadCmd struct {
	StoreFlags
	Name string `arg:"" help:"Style name"`
}

type StyleUpdateCmd struct {
	StoreFlags
	StyleFlags
}

type StyleDeleteCmd struct {
	StoreFlags
	Name string `arg:"" help:"Style name"`
}

type styleAction func(ctx context.Context, repo repository.StyleRepository, out io.Writer) error

// withStore loads the configuration, opens the configured store and runs action against it.
func (f StoreFlags) withStore(cliCtx *Context, action styleAction) error {
	logger := newLogger(cliCtx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(f.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, release, err := openStore(conf, logger)
	if err != nil {
		logger.Error("error opening style store", zap.Error(err))

		return err
	}
	defer release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return action(ctx, repo, os.Stdout)
}

func (c *StyleCreateCmd) Run(cliCtx *Context) error {
	return c.withStore(cliCtx, c.run)
}

func (c *StyleCreateCmd) run(ctx context.Context, repo repository.StyleRepository, out io.Writer) error {
	name, err := repo.CreateStyle(ctx, c.Style())
	if err != nil {
		return err
	}

	return writeYAML(out, map[string]string{"created": name})
}

func (c *StyleReadCmd) Run(cliCtx *Context) error {
	return c.withStore(cliCtx, c.run)
}

func (c *StyleReadCmd) run(ctx context.Context, repo repository.StyleRepository, out io.Writer) error {
	style, err := repo.ReadStyle(ctx, c.Name)
	if err != nil {
		return err
	}

	return writeYAML(out, style)
}

func (c *StyleUpdateCmd) Run(cliCtx *Context) error {
	return c.withStore(cliCtx, c.run)
}

func (c *StyleUpdateCmd) run(ctx context.Context, repo repository.StyleRepository, out io.Writer) error {
	style, err := repo.UpdateStyle(ctx, c.Style())
	if err != nil {
		return err
	}

	return writeYAML(out, style)
}

func (c *StyleDeleteCmd) Run(cliCtx *Context) error {
	return c.withStore(cliCtx, c.run)
}

func (c *StyleDeleteCmd) run(ctx context.Context, repo repository.StyleRepository, out io.Writer) error {
	deleted, err := repo.DeleteStyle(ctx, c.Name)
	if err != nil {
		return err
	}

	return writeYAML(out, map[string]bool{"deleted": deleted})
}

func writeYAML(out io.Writer, value any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return encoder.Close()
}
