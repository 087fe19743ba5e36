package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Jikan   JikanConfig   `mapstructure:"jikan"`
	Detail  DetailConfig  `mapstructure:"detail"`
	Render  RenderConfig  `mapstructure:"render"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// JikanConfig holds Jikan API connection and retry settings
type JikanConfig struct {
	BaseURL           string        `mapstructure:"base_url" validate:"required,url"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries        int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	RetryDelay        time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" validate:"gte=0"`
	UserAgent         string        `mapstructure:"user_agent" validate:"required"`
}

// DetailConfig controls how a detail page is loaded
type DetailConfig struct {
	StageDelay           time.Duration `mapstructure:"stage_delay" validate:"gte=0"`
	IndependentSecondary bool          `mapstructure:"independent_secondary"`
}

// RenderConfig controls what the rendered page shows
type RenderConfig struct {
	MaxCharacters        int    `mapstructure:"max_characters" validate:"gte=0"`
	MaxRecommendations   int    `mapstructure:"max_recommendations" validate:"gte=0"`
	DetailLinkBase       string `mapstructure:"detail_link_base" validate:"required"`
	RecommendationFilter string `mapstructure:"recommendation_filter"`
	CharacterFilter      string `mapstructure:"character_filter"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address         string        `mapstructure:"address" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	Color  bool   `mapstructure:"color"`
}
