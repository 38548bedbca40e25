package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"luxbag-tracker/internal/geo"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// RedisURL is the connection URL of the order store backend.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`

	// Catalog holds the product catalog API configuration.
	Catalog CatalogConfig `mapstructure:",squash"`

	// Simulation holds the delivery simulation tuning parameters.
	Simulation SimulationConfig `mapstructure:",squash"`
}

// CatalogConfig holds the connection details for the product catalog API.
type CatalogConfig struct {
	// URL is the base URL of the catalog service.
	URL string `mapstructure:"CATALOG_URL" required:"true"`
	// TimeoutSeconds is the request timeout for catalog calls.
	TimeoutSeconds int `mapstructure:"CATALOG_TIMEOUT_SECONDS" default:"10"`
}

// SimulationConfig holds the named constants driving the delivery simulation.
// All of them are externally tunable so tests can substitute small values.
type SimulationConfig struct {
	// WarehouseLat is the latitude of the fixed warehouse origin.
	WarehouseLat float64 `mapstructure:"WAREHOUSE_LAT" default:"10.7769"`
	// WarehouseLng is the longitude of the fixed warehouse origin.
	WarehouseLng float64 `mapstructure:"WAREHOUSE_LNG" default:"106.7009"`
	// FallbackDestLat is the destination latitude used when an order carries no coordinates.
	FallbackDestLat float64 `mapstructure:"FALLBACK_DEST_LAT" default:"10.79"`
	// FallbackDestLng is the destination longitude used when an order carries no coordinates.
	FallbackDestLng float64 `mapstructure:"FALLBACK_DEST_LNG" default:"106.68"`
	// RouteSteps is the number of interpolation steps between warehouse and destination.
	RouteSteps int `mapstructure:"ROUTE_STEPS" default:"8"`
	// TickSeconds is the wall-clock period between simulated driver movements.
	TickSeconds int `mapstructure:"TICK_SECONDS" default:"3"`
	// MaxEtaMinutes is the estimate shown for a delivery that has not moved yet.
	MaxEtaMinutes int `mapstructure:"MAX_ETA_MINUTES" default:"15"`
}

// TickPeriod returns the configured tick interval as a duration.
func (s SimulationConfig) TickPeriod() time.Duration {
	return time.Duration(s.TickSeconds) * time.Second
}

// Warehouse returns the warehouse origin as a geographic point.
func (s SimulationConfig) Warehouse() geo.Point {
	return geo.Point{Lat: s.WarehouseLat, Lng: s.WarehouseLng}
}

// FallbackDest returns the fallback customer destination as a geographic point.
func (s SimulationConfig) FallbackDest() geo.Point {
	return geo.Point{Lat: s.FallbackDestLat, Lng: s.FallbackDestLng}
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
