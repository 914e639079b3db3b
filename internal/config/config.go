// Package config loads the command line configuration from defaults, an
// optional YAML file, SLIDESOLVER_ environment variables and flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ricrob/slidesolver/solver"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables, e.g. SLIDESOLVER_SOLVER_MAX_MOVES.
const EnvPrefix = "SLIDESOLVER"

// Config holds all configuration of the commands.
type Config struct {
	Board  string       `mapstructure:"board"`
	Solver SolverConfig `mapstructure:"solver"`
	Log    LogConfig    `mapstructure:"log"`
}

// SolverConfig holds the search budgets. Board width and robot count are
// not configured; they follow from the board file and the robot list.
type SolverConfig struct {
	MaxRouteMoves int `mapstructure:"max_route_moves"`
	MaxMoves      int `mapstructure:"max_moves"`
	MaxStates     int `mapstructure:"max_states"`
	Workers       int `mapstructure:"workers"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flag name to config key
var flagKeys = map[string]string{
	"board":           "board",
	"max-route-moves": "solver.max_route_moves",
	"max-moves":       "solver.max_moves",
	"max-states":      "solver.max_states",
	"workers":         "solver.workers",
	"log-level":       "log.level",
	"log-format":      "log.format",
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("board", "")

	v.SetDefault("solver.max_route_moves", solver.DefaultMaxRouteMoves)
	v.SetDefault("solver.max_moves", solver.DefaultMaxMoves)
	v.SetDefault("solver.max_states", solver.DefaultMaxStates)
	v.SetDefault("solver.workers", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML config file")
	fs.String("board", "", "board file in ASCII wall format")
	fs.Int("max-route-moves", solver.DefaultMaxRouteMoves, "slides per side of a single robot route")
	fs.Int("max-moves", solver.DefaultMaxMoves, "moves of a joint search")
	fs.Int("max-states", solver.DefaultMaxStates, "visited joint states limit, 0 is unlimited")
	fs.Int("workers", 1, "joint search workers")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log format (console, json)")
}

// Load builds the configuration. Flags of fs that were set on the command
// line take precedence over everything else.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setViperDefaults(v)

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, _ := fs.GetString("config")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("slidesolver")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Board == "" {
		return errors.New("no board file given")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return c.SolverConfig(zerolog.Nop(), solver.DefaultBoardWidth, solver.DefaultRobotCount).Validate()
}

// SolverConfig returns the search configuration for a board of boardWidth
// with robotCount robots, logging to logger.
func (c *Config) SolverConfig(logger zerolog.Logger, boardWidth, robotCount int) solver.Config {
	return solver.Config{
		BoardWidth:    boardWidth,
		RobotCount:    robotCount,
		MaxRouteMoves: c.Solver.MaxRouteMoves,
		MaxMoves:      c.Solver.MaxMoves,
		MaxStates:     c.Solver.MaxStates,
		Workers:       c.Solver.Workers,
		Logger:        logger,
	}
}
