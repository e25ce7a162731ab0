package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS" validate:"required"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	OSMEndpoint      string        `mapstructure:"OSM_ENDPOINT" validate:"required,url"`
	WikidataEndpoint string        `mapstructure:"WIKIDATA_ENDPOINT" validate:"required,url"`
	UserAgent        string        `mapstructure:"USER_AGENT"`
	SearchRadiusKm   float64       `mapstructure:"SEARCH_RADIUS_KM" validate:"gt=0"`
	TransferCap      int           `mapstructure:"TRANSFER_CAP" validate:"gt=0"`
	HTTPTimeout      time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"gt=0"`
	CacheSize        int           `mapstructure:"CACHE_SIZE" validate:"gte=0"`
	CacheTTL         time.Duration `mapstructure:"CACHE_TTL" validate:"gte=0"`
	LogLevel         string        `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":    ":8080",
	"DB_SOURCE":         "",
	"OSM_ENDPOINT":      "https://qlever.cs.uni-freiburg.de/api/osm-planet",
	"WIKIDATA_ENDPOINT": "https://query.wikidata.org/sparql",
	"USER_AGENT":        "railway-planner/1.0",
	"SEARCH_RADIUS_KM":  5.0,
	"TRANSFER_CAP":      15,
	"HTTP_TIMEOUT":      60 * time.Second,
	"CACHE_SIZE":        0,
	"CACHE_TTL":         10 * time.Minute,
	"LOG_LEVEL":         "info",
}

// LoadConfig reads app.env from path. A missing file is not an error;
// defaults and environment variables still apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return config, fmt.Errorf("config: invalid: %w", err)
	}

	return config, nil
}

// Level returns the zerolog level for LogLevel, defaulting to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}
