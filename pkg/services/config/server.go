package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Server holds the web server settings.
type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
	ProfilesPath    string        `mapstructure:"profiles_path"`
}

// LoadServer reads the server config file, with SERVER_* environment
// variables taking precedence over file values. path may be empty, in
// which case only env vars and defaults apply.
func LoadServer(path string) (*Server, error) {
	v := viper.New()
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", "8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("max_upload_bytes", int64(10<<20))
	v.SetDefault("profiles_path", "")

	v.SetEnvPrefix("server")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return &cfg, nil
}
