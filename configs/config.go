package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kkyr/fig"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	StoreGraph = "graph"
	StoreSQL   = "sql"
)

type Graph struct {
	Address        string
	Scheme         string `default:"neo4j"`
	Username       string
	Password       string
	Database       string
	ConnectTimeout time.Duration `default:"5s"`
}

type DB struct {
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Integrations struct {
	Styles  []string `default:"[bjcp]"`
	BJCPURL string   `default:"https://www.bjcp.org/beer-styles/"`
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

type Config struct {
	Store        string `default:"graph"`
	Graph        Graph
	DB           DB
	Server       Server
	Integrations Integrations
	Auth         Auth
}

const envPrefix = "BEERSTYLES" // env prefix for env vars

// Variables read by the first style tools, still honoured when the prefixed ones are unset.
const (
	legacyUsernameEnv = "NEO4JUSERNAME"
	legacyPasswordEnv = "NEO4JPASSWORD"
	legacyAddressEnv  = "NEO4JSERVERADDRESS"
)

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env file", zap.Error(err))
	}

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	config.applyLegacyEnv()

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyLegacyEnv() {
	fill := func(field *string, key string) {
		if *field == "" {
			*field = os.Getenv(key)
		}
	}

	fill(&c.Graph.Username, legacyUsernameEnv)
	fill(&c.Graph.Password, legacyPasswordEnv)
	fill(&c.Graph.Address, legacyAddressEnv)
}

// Validate checks that the credentials of the selected store are present.
func (c *Config) Validate() error {
	var errs error

	required := func(value string, name string) {
		if value == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s is required", ErrConfiguration, name))
		}
	}

	switch c.Store {
	case StoreGraph:
		required(c.Graph.Address, "Graph.Address")
		required(c.Graph.Username, "Graph.Username")
		required(c.Graph.Password, "Graph.Password")
	case StoreSQL:
		required(c.DB.Host, "DB.Host")
		required(c.DB.Password, "DB.Password")
	default:
		errs = fmt.Errorf("%w: unknown store %q", ErrConfiguration, c.Store)
	}

	return errs
}
