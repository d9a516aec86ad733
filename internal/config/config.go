// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ATS_LOG_LEVEL or ATS_PDF_TIMEOUT.
const EnvPrefix = "ATS"

// PDFConfig controls the headless Chrome PDF export.
type PDFConfig struct {
	Timeout         time.Duration `mapstructure:"timeout" validate:"gt=0"`
	PaperWidth      float64       `mapstructure:"paper_width" validate:"gt=0"`  // inches
	PaperHeight     float64       `mapstructure:"paper_height" validate:"gt=0"` // inches
	PrintBackground bool          `mapstructure:"print_background"`
	Landscape       bool          `mapstructure:"landscape"`
}

// Config represents the CLI configuration. Values come from defaults, an optional YAML or JSON
// file and ATS_* environment variables, in increasing order of precedence. Command-line flags
// are applied on top by the CLI.
type Config struct {
	JobTitle     string    `mapstructure:"job_title"`
	Format       string    `mapstructure:"format" validate:"oneof=text json markdown"`
	LogLevel     string    `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    string    `mapstructure:"log_format" validate:"oneof=console json"`
	StrictSchema bool      `mapstructure:"strict_schema"`
	Concurrency  int       `mapstructure:"concurrency" validate:"min=1,max=64"`
	CacheSize    int       `mapstructure:"cache_size" validate:"min=1"`
	MetricsFile  string    `mapstructure:"metrics_file"`
	PDF          PDFConfig `mapstructure:"pdf"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:      "text",
		LogLevel:    "info",
		LogFormat:   "console",
		Concurrency: 4,
		CacheSize:   128,
		PDF: PDFConfig{
			Timeout:         30 * time.Second,
			PaperWidth:      8.5,
			PaperHeight:     11,
			PrintBackground: true,
		},
	}
}

// Error represents an invalid or unreadable configuration.
type Error struct {
	Key     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	prefix := "config error"
	if e.Key != "" {
		prefix = fmt.Sprintf("config error: '%s'", e.Key)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Load reads the configuration. An empty path skips the file and uses defaults plus the
// environment. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Message: "failed to decode configuration", Cause: err}
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("job_title", d.JobTitle)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("strict_schema", d.StrictSchema)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("cache_size", d.CacheSize)
	v.SetDefault("metrics_file", d.MetricsFile)
	v.SetDefault("pdf.timeout", d.PDF.Timeout)
	v.SetDefault("pdf.paper_width", d.PDF.PaperWidth)
	v.SetDefault("pdf.paper_height", d.PDF.PaperHeight)
	v.SetDefault("pdf.print_background", d.PDF.PrintBackground)
	v.SetDefault("pdf.landscape", d.PDF.Landscape)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values. The first offending key is
// reported using its file/env name, e.g. 'pdf.timeout'.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &Error{Message: "validation failed", Cause: err}
	}
	fe := fieldErrs[0]
	key := fe.Namespace()
	if i := strings.Index(key, "."); i >= 0 {
		key = key[i+1:]
	}
	return &Error{Key: key, Message: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
