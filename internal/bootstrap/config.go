package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort           string `mapstructure:"SERVER_PORT"`
	IsLocalCors          bool   `mapstructure:"LOCAL_CORS"`
	BoardSize            int    `mapstructure:"BOARD_SIZE"`
	WinningLength        int    `mapstructure:"WINNING_LENGTH"`
	ObservationBudget    int    `mapstructure:"OBSERVATION_BUDGET"`
	WinnerMessageTicks   int    `mapstructure:"WINNER_MESSAGE_TICKS"`
	NoWinnerMessageTicks int    `mapstructure:"NO_WINNER_MESSAGE_TICKS"`
	RestoredMessageTicks int    `mapstructure:"RESTORED_MESSAGE_TICKS"`
	TicksPerSecond       int    `mapstructure:"TICKS_PER_SECOND"`
	RandomSeed           int64  `mapstructure:"RANDOM_SEED"`
	LogFile              string `mapstructure:"LOG_FILE"`
}

const envPrefix = "QGOMOKU"

var defaults = map[string]any{
	"SERVER_PORT":             ":8080",
	"LOCAL_CORS":              false,
	"BOARD_SIZE":              15,
	"WINNING_LENGTH":          5,
	"OBSERVATION_BUDGET":      5,
	"WINNER_MESSAGE_TICKS":    90,
	"NO_WINNER_MESSAGE_TICKS": 0,
	"RESTORED_MESSAGE_TICKS":  60,
	"TICKS_PER_SECOND":        60,
	"RANDOM_SEED":             0,
	"LOG_FILE":                "quantum_gomoku.log",
}

// Default is the configuration used when no file or environment overrides it.
func Default() Config {
	cfg, _ := load(viper.New())
	return *cfg
}

// Setup reads cfgPath if it exists, then QGOMOKU_* environment variables, on
// top of the defaults. An empty path or a missing file is not an error.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	cfg, err := load(v)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(v *viper.Viper) (*Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.BoardSize < 1 || c.BoardSize > 26:
		return fmt.Errorf("BOARD_SIZE must be within 1..26, got %d", c.BoardSize)
	case c.WinningLength < 1 || c.WinningLength > c.BoardSize:
		return fmt.Errorf("WINNING_LENGTH must be within 1..%d, got %d", c.BoardSize, c.WinningLength)
	case c.ObservationBudget < 0:
		return fmt.Errorf("OBSERVATION_BUDGET must not be negative, got %d", c.ObservationBudget)
	case c.WinnerMessageTicks < 0 || c.NoWinnerMessageTicks < 0 || c.RestoredMessageTicks < 0:
		return fmt.Errorf("message ticks must not be negative")
	case c.TicksPerSecond < 1:
		return fmt.Errorf("TICKS_PER_SECOND must be positive, got %d", c.TicksPerSecond)
	}
	return nil
}
