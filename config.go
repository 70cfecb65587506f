package main

import (
	"errors"
	"fmt"

	"github.com/samgozman/orc-brief/archivist"
	"github.com/samgozman/orc-brief/boot"
	"github.com/samgozman/orc-brief/journalist"
	"github.com/samgozman/orc-brief/pkg/errlvl"
	"github.com/spf13/viper"
)

// Env is a structure that holds all the environment variables that are used in the app.
// Every variable is optional: without Telegram credentials the report is only written to disk,
// without a Sentry DSN nothing is reported.
type Env struct {
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `mapstructure:"TELEGRAM_CHAT_ID"`
	SentryDSN        string `mapstructure:"SENTRY_DSN"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
}

var envKeys = []string{"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "SENTRY_DSN", "LOG_LEVEL"}

// LoadEnv reads the environment variables through viper.
func LoadEnv() (*Env, error) {
	v := viper.New()
	v.AutomaticEnv()
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("error binding env %s: %w", k, err)
		}
	}
	v.SetDefault("LOG_LEVEL", "info")

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("error reading env: %w", err)
	}
	return &env, nil
}

type Config struct {
	env      *Env   // Holds all the environment variables that are used in the app
	bootPath string // Path of the boot document with feeds and birth years
	outDir   string // Directory for the report and the status record
	limit    int    // Entries taken from every feed
	dryRun   bool   // Print the report instead of relaying it to Telegram
}

// NewConfig creates a new Config object with the given Env and default values from DefaultConfig.
func NewConfig(env *Env) *Config {
	c := DefaultConfig()
	c.env = env
	return c
}

// DefaultConfig creates a new Config object with default values.
func DefaultConfig() *Config {
	return &Config{
		env:      &Env{LogLevel: "info"},
		bootPath: boot.DefaultPath,
		outDir:   archivist.DefaultDir,
		limit:    journalist.DefaultLimit,
	}
}

var errNegativeLimit = errors.New("--limit must not be negative")

// validate checks the values that came from the command line.
func (c *Config) validate() error {
	if c.limit < 0 {
		return errlvl.Wrap(fmt.Errorf("%w: %d", errNegativeLimit, c.limit), errlvl.FATAL)
	}
	return nil
}
