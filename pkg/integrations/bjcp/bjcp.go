package bjcp

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerStyles/pkg/model"
)

const IntegrationName = "bjcp"

var ErrIncompleteStatistics = errors.New("incomplete vital statistics")

type BJCPIntegration struct {
	indexURL string
	logger   *zap.Logger
}

func NewBJCPIntegration(indexURL string, logger *zap.Logger) *BJCPIntegration {
	return &BJCPIntegration{indexURL: indexURL, logger: logger}
}

type StyleLink struct {
	Href string `attr:"href" selector:"a"`
	Name string `selector:"a"`
}

// StyleScraped holds the vital statistics block of a single style page.
type StyleScraped struct {
	Name string `selector:"h1"`
	OG   string `selector:".vital-statistics .og"`
	FG   string `selector:".vital-statistics .fg"`
	ABV  string `selector:".vital-statistics .abv"`
	IBU  string `selector:".vital-statistics .ibu"`
	SRM  string `selector:".vital-statistics .srm"`
}

// FindStyles scrapes every style listed on the index whose name contains query, ignoring case.
// An empty query returns every style.
func (b *BJCPIntegration) FindStyles(query string) ([]model.Style, error) {
	index, err := url.Parse(b.indexURL)
	if err != nil {
		return nil, fmt.Errorf("invalid style index %q: %w", b.indexURL, err)
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(index.Hostname()),
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)

	var (
		errs  error
		links []string
	)

	collector.OnHTML(".style-list li", func(element *colly.HTMLElement) {
		link := StyleLink{}

		err := element.Unmarshal(&link)
		if multierr.AppendInto(&errs, err) {
			b.logger.Error("failed to unmarshal style link", zap.Error(err))

			return
		}

		if !strings.Contains(strings.ToLower(link.Name), strings.ToLower(query)) {
			return
		}

		absolute := element.Request.AbsoluteURL(link.Href)
		if slices.Contains(links, absolute) {
			return
		}

		links = append(links, absolute)
	})

	collector.OnError(func(response *colly.Response, err error) {
		b.logger.Error("error while scraping style index", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	b.logger.Info("scraping style index", zap.String("url", b.indexURL), zap.String("query", query))
	multierr.AppendInto(&errs, collector.Visit(b.indexURL))

	results := make([]model.Style, 0, len(links))

	for _, link := range links {
		style, err := b.getStyle(collector.Clone(), link)
		if errors.Is(err, ErrIncompleteStatistics) {
			b.logger.Warn("skipping style without vital statistics", zap.String("url", link), zap.Error(err))

			continue
		}

		if multierr.AppendInto(&errs, err) {
			continue
		}

		results = append(results, *style)
	}

	b.logger.Info("finished scraping styles", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

func (b *BJCPIntegration) getStyle(detailCollector *colly.Collector, link string) (*model.Style, error) {
	var (
		scraped *StyleScraped
		errs    error
	)

	detailCollector.OnHTML("article", func(element *colly.HTMLElement) {
		page := StyleScraped{}
		if multierr.AppendInto(&errs, element.Unmarshal(&page)) {
			return
		}

		scraped = &page
	})

	detailCollector.OnError(func(response *colly.Response, err error) {
		b.logger.Error("error while scraping style page", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	b.logger.Info("scraping style page", zap.String("url", link))

	if multierr.AppendInto(&errs, detailCollector.Visit(link)) || errs != nil {
		return nil, errs
	}

	if scraped == nil {
		return nil, fmt.Errorf("%w: no style found at %s", ErrIncompleteStatistics, link)
	}

	return scraped.toModel()
}

func (s StyleScraped) toModel() (*model.Style, error) {
	ogLow, ogHigh := parseRange(s.OG)
	fgLow, fgHigh := parseRange(s.FG)
	abvLow, abvHigh := parseRange(s.ABV)
	ibuLow, ibuHigh := parseRange(s.IBU)
	srmLow, srmHigh := parseRange(s.SRM)

	for _, value := range []*float64{ogLow, ogHigh, fgLow, fgHigh, abvLow, abvHigh, ibuLow, ibuHigh, srmLow, srmHigh} {
		if value == nil {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteStatistics, strings.TrimSpace(s.Name))
		}
	}

	return &model.Style{
		Name:                strings.TrimSpace(s.Name),
		ABVLow:              *abvLow,
		ABVHigh:             *abvHigh,
		IBULow:              int64(math.Round(*ibuLow)),
		IBUHigh:             int64(math.Round(*ibuHigh)),
		SRMLow:              *srmLow,
		SRMHigh:             *srmHigh,
		OriginalGravityLow:  *ogLow,
		OriginalGravityHigh: *ogHigh,
		FinalGravityLow:     *fgLow,
		FinalGravityHigh:    *fgHigh,
	}, nil
}

// parseRange reads statistics like "1.056 – 1.070" or "5.5 - 7.5%". Anything else, "Varies" included,
// yields nil bounds.
func parseRange(text string) (*float64, *float64) {
	if _, after, found := strings.Cut(text, ":"); found {
		text = after
	}

	bounds := strings.FieldsFunc(strings.ReplaceAll(text, "%", ""), func(r rune) bool {
		return r == '-' || r == '–' || r == '—'
	})
	if len(bounds) != 2 {
		return nil, nil
	}

	low, err := strconv.ParseFloat(strings.TrimSpace(bounds[0]), 64)
	if err != nil {
		return nil, nil
	}

	high, err := strconv.ParseFloat(strings.TrimSpace(bounds[1]), 64)
	if err != nil {
		return nil, nil
	}

	return pointy.Float64(low), pointy.Float64(high)
}
