// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

const defaultPort = 3000

// Config holds everything the server needs at startup.
type Config struct {
	DatabaseURL string
	Port        int
}

// Load reads DATABASE_URL and PORT from the environment. DATABASE_URL is
// required; PORT defaults to 3000 and must be a valid TCP port.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", strconv.Itoa(defaultPort))

	cfg := Config{DatabaseURL: v.GetString("database_url")}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL must be set")
	}

	portStr := v.GetString("port")
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", portStr)
	}
	cfg.Port = port
	return cfg, nil
}
