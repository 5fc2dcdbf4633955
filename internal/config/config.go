package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Billing   BillingConfig
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	Directory DirectoryConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type BillingConfig struct {
	VATRate    float64 `mapstructure:"vatRate"`
	ServiceFee float64 `mapstructure:"serviceFee"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond"`
	Burst             int     `mapstructure:"burst"`
}

type DirectoryConfig struct {
	CacheTTLSeconds int `mapstructure:"cacheTTLSeconds"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("database.path", "hospital.db")
	viper.SetDefault("billing.vatRate", 0.075)
	viper.SetDefault("billing.serviceFee", 0)
	viper.SetDefault("rateLimit.requestsPerSecond", 50)
	viper.SetDefault("rateLimit.burst", 100)
	viper.SetDefault("directory.cacheTTLSeconds", 30)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file falls back to defaults; a malformed one does not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
