package stylefile

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"droscher.com/BeerStyles/pkg/model"
)

const IntegrationName = "file"

var ErrInvalidDocument = errors.New("invalid style document")

// Document is the YAML layout read by the file integration.
type Document struct {
	Styles []StyleEntry `yaml:"styles"`
}

// StyleEntry is one style as written in a document. Every key is required, so absent keys stay
// nil instead of decoding to zero.
type StyleEntry struct {
	Name                *string  `yaml:"name"`
	ABVLow              *float64 `yaml:"abvLow"`
	ABVHigh             *float64 `yaml:"abvHigh"`
	IBULow              *int64   `yaml:"ibuLow"`
	IBUHigh             *int64   `yaml:"ibuHigh"`
	SRMLow              *float64 `yaml:"srmLow"`
	SRMHigh             *float64 `yaml:"srmHigh"`
	OriginalGravityLow  *float64 `yaml:"originalGravityLow"`
	OriginalGravityHigh *float64 `yaml:"originalGravityHigh"`
	FinalGravityLow     *float64 `yaml:"finalGravityLow"`
	FinalGravityHigh    *float64 `yaml:"finalGravityHigh"`
}

type StyleFileIntegration struct {
	logger *zap.Logger
}

func NewStyleFileIntegration(logger *zap.Logger) *StyleFileIntegration {
	return &StyleFileIntegration{logger: logger}
}

// FindStyles reads every style from the YAML document at path. A style missing any key fails
// the whole document.
func (f *StyleFileIntegration) FindStyles(path string) ([]model.Style, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style document: %w", err)
	}

	var document Document

	if err = yaml.Unmarshal(content, &document); err != nil {
		f.logger.Error("failed to parse style document", zap.String("path", path), zap.Error(err))

		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var errs error

	styles := make([]model.Style, 0, len(document.Styles))

	for index, entry := range document.Styles {
		style, err := entry.toModel()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: style %d: %w", ErrInvalidDocument, index+1, err))

			continue
		}

		styles = append(styles, style)
	}

	if errs != nil {
		f.logger.Error("incomplete styles in document", zap.String("path", path), zap.Error(errs))

		return nil, errs
	}

	f.logger.Info("read style document", zap.String("path", path), zap.Int("styles", len(styles)))

	return styles, nil
}

var errMissingKey = errors.New("missing key")

func (e StyleEntry) toModel() (model.Style, error) {
	var errs error

	missing := func(present bool, key string) {
		if !present {
			errs = multierr.Append(errs, fmt.Errorf("%w %q", errMissingKey, key))
		}
	}

	missing(e.Name != nil, "name")
	missing(e.ABVLow != nil, "abvLow")
	missing(e.ABVHigh != nil, "abvHigh")
	missing(e.IBULow != nil, "ibuLow")
	missing(e.IBUHigh != nil, "ibuHigh")
	missing(e.SRMLow != nil, "srmLow")
	missing(e.SRMHigh != nil, "srmHigh")
	missing(e.OriginalGravityLow != nil, "originalGravityLow")
	missing(e.OriginalGravityHigh != nil, "originalGravityHigh")
	missing(e.FinalGravityLow != nil, "finalGravityLow")
	missing(e.FinalGravityHigh != nil, "finalGravityHigh")

	if errs != nil {
		return model.Style{}, errs
	}

	return model.Style{
		Name:                *e.Name,
		ABVLow:              *e.ABVLow,
		ABVHigh:             *e.ABVHigh,
		IBULow:              *e.IBULow,
		IBUHigh:             *e.IBUHigh,
		SRMLow:              *e.SRMLow,
		SRMHigh:             *e.SRMHigh,
		OriginalGravityLow:  *e.OriginalGravityLow,
		OriginalGravityHigh: *e.OriginalGravityHigh,
		FinalGravityLow:     *e.FinalGravityLow,
		FinalGravityHigh:    *e.FinalGravityHigh,
	}, nil
}
