// Package config resolves runtime settings from defaults, a .env file, the
// environment and command-line flags (highest precedence last).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bemali/internal/carousel"
	"bemali/internal/modeswitch"
	"bemali/internal/tagline"
)

// EnvPrefix prefixes every environment variable (BEMALI_MODE, BEMALI_LOG_LEVEL...).
const EnvPrefix = "BEMALI"

// Keys.
const (
	KeyAPIKey         = "api_key"
	KeyModel          = "model"
	KeyTemperature    = "temperature"
	KeyTaglineTimeout = "tagline_timeout"
	KeyContent        = "content"
	KeyMode           = "mode"
	KeyAutoAdvance    = "auto_advance"
	KeyLogFile        = "log_file"
	KeyLogLevel       = "log_level"
	KeyMetricsAddr    = "metrics_addr"
	KeyOTLPEndpoint   = "otlp_endpoint"
)

// Config is the resolved runtime configuration.
type Config struct {
	APIKey         string
	Model          string
	Temperature    float32
	TaglineTimeout time.Duration

	ContentPath string
	Mode        modeswitch.Mode
	AutoAdvance time.Duration

	LogFile  string
	LogLevel string

	MetricsAddr  string
	OTLPEndpoint string
}

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the process environment. Missing files are skipped; real environment
// variables are never overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// NewViper returns a viper instance with defaults and environment bindings.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyModel, tagline.DefaultModel)
	v.SetDefault(KeyTemperature, float64(tagline.DefaultTemperature))
	v.SetDefault(KeyTaglineTimeout, tagline.DefaultTimeout)
	v.SetDefault(KeyMode, modeswitch.Institutional.String())
	v.SetDefault(KeyAutoAdvance, carousel.DefaultInterval)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// The key is also accepted under the names the Gemini tooling uses.
	_ = v.BindEnv(KeyAPIKey, EnvPrefix+"_API_KEY", "GEMINI_API_KEY", "API_KEY")
	_ = v.BindEnv(KeyOTLPEndpoint, EnvPrefix+"_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	return v
}

// RegisterFlags defines the page flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("api-key", "", "Gemini API key (or GEMINI_API_KEY / API_KEY)")
	fs.String("model", tagline.DefaultModel, "text-generation model for the welcome tagline")
	fs.Float32("temperature", tagline.DefaultTemperature, "sampling temperature for the tagline")
	fs.Duration("tagline-timeout", tagline.DefaultTimeout, "timeout for one tagline request")
	fs.String("content", "", "YAML content file overriding the built-in content")
	fs.String("mode", modeswitch.Institutional.String(), "initial mode: institutional or personal")
	fs.Duration("auto-advance", carousel.DefaultInterval, "carousel auto-advance interval")
	fs.String("log-file", "", "log file (default: user cache dir)")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("metrics-addr", "", "serve Prometheus metrics on this address (disabled when empty)")
	fs.String("otlp-endpoint", "", "OTLP/HTTP endpoint for traces (disabled when empty)")
}

// BindFlags binds every flag of fs to its key ("log-file" -> "log_file").
// Only flags set on the command line override the environment.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return err
}

// Load resolves and validates the configuration.
func Load(v *viper.Viper) (Config, error) {
	mode, err := modeswitch.Parse(v.GetString(KeyMode))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIKey:         v.GetString(KeyAPIKey),
		Model:          v.GetString(KeyModel),
		Temperature:    float32(v.GetFloat64(KeyTemperature)),
		TaglineTimeout: v.GetDuration(KeyTaglineTimeout),
		ContentPath:    v.GetString(KeyContent),
		Mode:           mode,
		AutoAdvance:    v.GetDuration(KeyAutoAdvance),
		LogFile:        v.GetString(KeyLogFile),
		LogLevel:       v.GetString(KeyLogLevel),
		MetricsAddr:    v.GetString(KeyMetricsAddr),
		OTLPEndpoint:   v.GetString(KeyOTLPEndpoint),
	}

	if cfg.TaglineTimeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %s", KeyTaglineTimeout, cfg.TaglineTimeout)
	}
	if cfg.AutoAdvance <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %s", KeyAutoAdvance, cfg.AutoAdvance)
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return Config{}, fmt.Errorf("%s must be within [0, 2], got %v", KeyTemperature, cfg.Temperature)
	}
	if cfg.Model == "" {
		cfg.Model = tagline.DefaultModel
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile()
	}
	return cfg, nil
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "bemali", "bemali.log")
}
