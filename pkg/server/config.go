package server

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings is the process-level configuration for the web server, read from
// an optional config file plus WIRESCOPE_* environment variables.
type Settings struct {
	Addr      string `mapstructure:"addr"`
	DBPath    string `mapstructure:"db_path"`
	RedisAddr string `mapstructure:"redis_addr"`
	// HistoryWindow is the number of newest measurements fed to a diagnosis.
	HistoryWindow int `mapstructure:"history_window"`
	// LiveIntervalSeconds paces the websocket measurement stream.
	LiveIntervalSeconds int `mapstructure:"live_interval_seconds"`
}

func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "wirescope.db")
	v.SetDefault("history_window", 20)
	v.SetDefault("live_interval_seconds", 2)

	v.SetEnvPrefix("WIRESCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return &settings, nil
}
