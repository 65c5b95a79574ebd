// Package config loads toolkit configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all toolkit configuration. Every field can be set through a
// HOOPTRACK_-prefixed environment variable.
type Config struct {
	// Scrape sources
	ScoreboardBaseURL string `envconfig:"SCOREBOARD_BASE_URL" default:"https://www.sports-reference.com/cbb"`
	ConferenceBaseURL string `envconfig:"CONFERENCE_BASE_URL" default:"https://www.sports-reference.com/cbb"`

	// Conferences scraped by the conferences command
	Conferences []string `envconfig:"CONFERENCES" default:"acc,big-12,big-east,big-ten,pac-12,sec,american,atlantic-10,mountain-west,wcc"`

	// Fetch politeness
	UserAgent    string        `envconfig:"USER_AGENT" default:"hooptrack/1.0 (github.com/hooptrack/hooptrack)"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	FetchDelay   time.Duration `envconfig:"FETCH_DELAY" default:"3s"`
	FetchRetries int           `envconfig:"FETCH_RETRIES" default:"3"`

	// Paths
	DataDir string `envconfig:"DATA_DIR" default:"~/.local/share/hooptrack"`
	SiteDir string `envconfig:"SITE_DIR" default:"./site"`

	// Watch mode
	WatchCron string `envconfig:"WATCH_CRON" default:"0 6 * * *"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment, loading a .env file first if
// one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("hooptrack", &cfg); err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}
	return &cfg, nil
}
