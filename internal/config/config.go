package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSecretKey is the development fallback; deployments must override it
// via SECRET_KEY.
const DefaultSecretKey = "dev-key-change-in-production"

// Config holds the configuration for the application.
type Config struct {
	Server struct {
		Port      int    `mapstructure:"port"`
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"server"`
	CORS struct {
		AllowOrigins []string `mapstructure:"allow_origins"`
	} `mapstructure:"cors"`
}

// LoadConfig loads the configuration from a file and the environment. A
// missing config file is fine; defaults and environment variables cover the
// whole surface.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetDefault("server.port", 5001)
	viper.SetDefault("server.secret_key", DefaultSecretKey)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The deployment platform sets PORT and SECRET_KEY directly.
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.secret_key", "SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
