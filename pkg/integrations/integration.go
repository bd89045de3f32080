package integrations

import (
	"go.uber.org/zap"

	"droscher.com/BeerStyles/configs"
	"droscher.com/BeerStyles/pkg/integrations/bjcp"
	"droscher.com/BeerStyles/pkg/integrations/stylefile"
	"droscher.com/BeerStyles/pkg/model"
)

// Integration finds complete styles in an external source. The meaning of query is up to the source.
type Integration interface {
	FindStyles(query string) ([]model.Style, error)
}

// GetIntegration returns the named integration when it is enabled in conf, otherwise nil.
func GetIntegration(name string, conf configs.Integrations, logger *zap.Logger) Integration {
	enabled := false

	for _, style := range conf.Styles {
		if style == name {
			enabled = true
		}
	}

	if !enabled {
		return nil
	}

	switch name {
	case bjcp.IntegrationName:
		return bjcp.NewBJCPIntegration(conf.BJCPURL, logger)
	case stylefile.IntegrationName:
		return stylefile.NewStyleFileIntegration(logger)
	}

	return nil
}
