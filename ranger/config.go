package ranger

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/logger"
)

// ConfigPathEnvVar names the environment variable pointing at an optional YAML config file.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config is everything a signpost app reads from its environment.
// Each field can be set in the YAML file CONFIG_PATH points at
// and overridden by the environment variable named in its env tag.
type Config struct {
	BaseURL    string `yaml:"base_url" env:"BASE_URL" env-default:"http://localhost:3000" env-description:"the base URL the application runs on"`
	ContactUs  string `yaml:"contact_us" env:"CONTACT_US_EMAIL" env-default:"hello@example.com" env-description:"the email address end users can reach when something goes wrong"`
	CORSOrigin string `yaml:"cors_origin" env:"CORS_ORIGIN" env-description:"the origin allowed to make cross-origin requests; none when empty"`
	Env        string `yaml:"environment" env:"ENVIRONMENT" env-default:"DEVELOPMENT" env-description:"the environment the application is running in"`
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO" env-description:"the level at which to begin logging"`

	Server ServerConfig `yaml:"server"`
	Views  ViewsConfig  `yaml:"views"`
}

// ServerConfig configures the *http.Server.
type ServerConfig struct {
	Port         string        `yaml:"port" env:"PORT" env-default:":3000" env-description:"the port the application listens on"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"120s" env-description:"the timeout for idling between requests when using keep-alives"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"5s" env-description:"the timeout for reading HTTP requests"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"5s" env-description:"the timeout for writing HTTP responses"`
}

// ViewsConfig configures how logical view names map to templates.
type ViewsConfig struct {
	Prefix       string `yaml:"prefix" env:"VIEW_PREFIX" env-default:"views/" env-description:"prepended to every logical view name"`
	Suffix       string `yaml:"suffix" env:"VIEW_SUFFIX" env-default:".tmpl" env-description:"appended to every logical view name"`
	NotFoundCode int    `yaml:"not_found_code" env:"VIEW_NOT_FOUND_CODE" env-default:"404" env-description:"the status code sent when a view has no template"`
}

// LoadConfig reads a Config from the environment,
// first reading the YAML file CONFIG_PATH points at, if set.
//
// LoadConfig returns an error wrapping signpost.ErrBadConfig
// if the config cannot be read or holds invalid values.
func LoadConfig() (Config, error) {
	var cfg Config

	var err error
	if fp := os.Getenv(ConfigPathEnvVar); fp != "" {
		err = cleanenv.ReadConfig(fp, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: cannot read config: %s", signpost.ErrBadConfig, err)
	}

	if err := cfg.Valid(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Valid checks cfg holds usable values.
func (cfg Config) Valid() error {
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return fmt.Errorf("%w: BASE_URL %q: %s", signpost.ErrBadConfig, cfg.BaseURL, err)
	}

	if signpost.NewEnvironment(cfg.Env, "") == "" {
		return fmt.Errorf("%w: ENVIRONMENT %q", signpost.ErrBadConfig, cfg.Env)
	}

	if code := cfg.Views.NotFoundCode; code < 400 || code > 599 {
		return fmt.Errorf("%w: VIEW_NOT_FOUND_CODE %d is not an error status", signpost.ErrBadConfig, code)
	}

	return nil
}

// Environment normalizes the configured environment, defaulting to signpost.Development.
func (cfg Config) Environment() signpost.Environment {
	return signpost.NewEnvironment(cfg.Env, signpost.Development)
}

// Level returns the configured logger.LogLevel, defaulting to logger.LogLevelInfo.
func (cfg Config) Level() logger.LogLevel {
	if ll := logger.NewLogLevel(cfg.LogLevel); ll != logger.LogLevelUnk {
		return ll
	}

	return logger.LogLevelInfo
}

// Usage describes every environment variable Config reads.
func Usage() string {
	var cfg Config
	s, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return err.Error()
	}

	return s
}
