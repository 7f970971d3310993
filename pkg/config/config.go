package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikogura/creatoros/pkg/llm"
	"github.com/nikogura/creatoros/pkg/website"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CREATOROS_SERVER_ADDR.
const EnvPrefix = "CREATOROS"

// DirName is the per-user configuration directory under $HOME.
const DirName = ".creatoros"

// Config represents the application configuration.
type Config struct {
	ProfilePath string        `mapstructure:"profile_path"`
	Gateway     GatewayConfig `mapstructure:"gateway"`
	Store       StoreConfig   `mapstructure:"store"`
	Server      ServerConfig  `mapstructure:"server"`
	Defaults    DefaultConfig `mapstructure:"defaults"`
}

// GatewayConfig selects the AI provider.
type GatewayConfig struct {
	Provider string        `mapstructure:"provider"`
	URL      string        `mapstructure:"url"`
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// StoreConfig locates the embedded database.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr          string `mapstructure:"addr"`
	AuthToken     string `mapstructure:"auth_token"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	Theme     string `mapstructure:"theme"`
}

// DefaultDir is ~/.creatoros.
func DefaultDir() (dir string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return dir, err
	}

	dir = filepath.Join(homeDir, DirName)
	return dir, err
}

// DefaultPath is ~/.creatoros/config.json.
func DefaultPath() (path string, err error) {
	var dir string
	dir, err = DefaultDir()
	if err != nil {
		return path, err
	}

	path = filepath.Join(dir, "config.json")
	return path, err
}

// newViper builds a viper instance with defaults and environment bindings.
func newViper() (v *viper.Viper, err error) {
	var dir string
	dir, err = DefaultDir()
	if err != nil {
		return v, err
	}

	v = viper.New()
	v.SetConfigType("json")

	v.SetDefault("profile_path", "")
	v.SetDefault("gateway.provider", llm.ProviderOpenAI)
	v.SetDefault("gateway.url", "")
	v.SetDefault("gateway.api_key", "")
	v.SetDefault("gateway.model", "")
	v.SetDefault("gateway.timeout", llm.DefaultTimeout.String())
	v.SetDefault("store.path", filepath.Join(dir, "creatoros.db"))
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.auth_token", "")
	v.SetDefault("server.allowed_origin", "*")
	v.SetDefault("defaults.output_dir", "./sites")
	v.SetDefault("defaults.theme", string(website.ThemeDark))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err = v.BindEnv("gateway.api_key", EnvPrefix+"_GATEWAY_API_KEY", "AI_GATEWAY_API_KEY", "ANTHROPIC_API_KEY")
	if err != nil {
		err = errors.Wrap(err, "failed to bind API key environment")
		return v, err
	}

	return v, err
}

// Load reads configuration from file with environment variable overrides. With an empty path the
// default file is used when present, and defaults plus environment otherwise.
func Load(configPath string) (cfg Config, err error) {
	var v *viper.Viper
	v, err = newViper()
	if err != nil {
		return cfg, err
	}

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		v.SetConfigFile(path)
		err = v.ReadInConfig()
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(statErr) && configPath == "":
		// Defaults and environment only.
	case os.IsNotExist(statErr):
		err = errors.Errorf("config file not found: %s (run 'creatoros init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(statErr, "failed to read config file: %s", path)
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode config: %s", path)
		return cfg, err
	}

	cfg.applyProviderDefaults()

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// applyProviderDefaults fills the model and URL that depend on the provider.
func (c *Config) applyProviderDefaults() {
	c.Gateway.Provider = strings.ToLower(strings.TrimSpace(c.Gateway.Provider))

	if c.Gateway.Model == "" {
		c.Gateway.Model = llm.DefaultGatewayModel
		if c.Gateway.Provider == llm.ProviderAnthropic {
			c.Gateway.Model = llm.DefaultAnthropicModel
		}
	}

	if c.Gateway.URL == "" && c.Gateway.Provider == llm.ProviderOpenAI {
		c.Gateway.URL = llm.DefaultGatewayURL
	}
}

// Validate checks that the configuration is usable. The API key is checked separately by
// ValidateGateway since only AI commands need it.
func (c *Config) Validate() (err error) {
	switch c.Gateway.Provider {
	case llm.ProviderOpenAI, llm.ProviderAnthropic:
	default:
		err = errors.Errorf("gateway.provider must be %s or %s, got %q", llm.ProviderOpenAI, llm.ProviderAnthropic, c.Gateway.Provider)
		return err
	}

	if c.Gateway.Timeout <= 0 {
		err = errors.New("gateway.timeout must be positive")
		return err
	}

	if c.Store.Path == "" {
		err = errors.New("store.path is required in config")
		return err
	}

	if c.Server.Addr == "" {
		err = errors.New("server.addr is required in config")
		return err
	}

	if _, ok := website.Palette(website.Theme(c.Defaults.Theme)); !ok {
		err = errors.Errorf("defaults.theme %q is not a known theme", c.Defaults.Theme)
		return err
	}

	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "./sites"
	}

	if c.ProfilePath != "" {
		_, err = os.Stat(c.ProfilePath)
		if os.IsNotExist(err) {
			err = errors.Errorf("profile file not found: %s", c.ProfilePath)
			return err
		}
		err = nil
	}

	return err
}

// ValidateGateway checks that an API key is configured.
func (c *Config) ValidateGateway() (err error) {
	if c.Gateway.APIKey == "" {
		err = errors.Errorf("gateway.api_key is required (set in config or %s_GATEWAY_API_KEY, AI_GATEWAY_API_KEY or ANTHROPIC_API_KEY)", EnvPrefix)
		return err
	}
	return err
}

// LLM converts the gateway settings for llm.NewCompleter.
func (c GatewayConfig) LLM() (cfg llm.GatewayConfig) {
	cfg = llm.GatewayConfig{
		Provider: c.Provider,
		URL:      c.URL,
		APIKey:   c.APIKey,
		Model:    c.Model,
		Timeout:  c.Timeout,
	}
	return cfg
}

// InitConfig creates a default configuration file. It refuses to overwrite an existing one.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	var v *viper.Viper
	v, err = newViper()
	if err != nil {
		return path, err
	}

	// Environment values are not persisted.
	v.Set("gateway.api_key", "")
	v.Set("gateway.model", llm.DefaultGatewayModel)
	v.Set("gateway.url", llm.DefaultGatewayURL)

	err = v.SafeWriteConfigAs(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	err = os.Chmod(path, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to restrict config file permissions: %s", path)
		return path, err
	}

	return path, err
}
