package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Sources   Sources   `mapstructure:"sources"`
	Refresh   Refresh   `mapstructure:"refresh"`
	Reporting Reporting `mapstructure:"reporting"`
	Feed      Feed      `mapstructure:"feed"`
	Server    Server    `mapstructure:"server"`
	Logger    Logger    `mapstructure:"logger"`
}

// Sources holds the locations of the bot's snapshot documents. Paths are
// relative to BaseURL; an empty path disables that source, and its section
// keeps the documented empty default.
type Sources struct {
	BaseURL          string `mapstructure:"base_url"`
	Wallet           string `mapstructure:"wallet"`
	Trades           string `mapstructure:"trades"`
	Signals          string `mapstructure:"signals"`
	Tasks            string `mapstructure:"tasks"`
	DailyReports     string `mapstructure:"daily_reports"`
	Strategies       string `mapstructure:"strategies"`
	PortfolioHistory string `mapstructure:"portfolio_history"`
}

// Refresh holds the polling configuration.
type Refresh struct {
	Interval int `mapstructure:"interval"` // seconds between refresh cycles
}

// Reporting holds the financial reporting parameters.
type Reporting struct {
	// Timezone is the fixed IANA zone used for every "today" boundary.
	// Day comparisons must not depend on the viewer's local clock.
	Timezone string `mapstructure:"timezone"`
	// SolDustUsd is the position threshold for SOL. It sits above the
	// generic threshold so that an incidental gas reserve is never
	// reported as a tradable position.
	SolDustUsd float64 `mapstructure:"sol_dust_usd"`
	// DustUsd is the position threshold for every other token.
	DustUsd float64 `mapstructure:"dust_usd"`
}

// Location resolves the reporting timezone.
func (r Reporting) Location() (*time.Location, error) {
	return time.LoadLocation(r.Timezone)
}

// Feed holds the configuration for the snapshot HTTP client.
type Feed struct {
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

// Server holds the configuration for the web server.
type Server struct {
	Port int `mapstructure:"port"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("refresh.interval", 300) // the bot publishes every 5 minutes
	viper.SetDefault("reporting.timezone", "Asia/Tokyo")
	viper.SetDefault("reporting.sol_dust_usd", 1.0)
	viper.SetDefault("reporting.dust_usd", 0.01)
	viper.SetDefault("feed.rate_limit", 5) // requests per second
	viper.SetDefault("feed.rate_limit_burst", 7)
	viper.SetDefault("feed.timeout_seconds", 10)
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
