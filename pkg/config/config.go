package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// DataDir is where the JSON state files live.
	DataDir string `mapstructure:"DATA_DIR"`

	// PlaceOrderLatencyMS models the simulated backend round-trip on
	// order placement. Zero disables the delay.
	PlaceOrderLatencyMS int `mapstructure:"PLACE_ORDER_LATENCY_MS"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("PLACE_ORDER_LATENCY_MS", 1200)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("market")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; env vars and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
