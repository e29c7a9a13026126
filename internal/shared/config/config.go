package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken string  `koanf:"telegram_bot_token"`
	TelegramAPIURL   string  `koanf:"telegram_api_url" validate:"required,url"`
	StoragePath      string  `koanf:"storage_path" validate:"required"`
	HTTPPort         string  `koanf:"http_port" validate:"required,numeric"`
	PublicURL        string  `koanf:"public_url" validate:"omitempty,url"`
	FeedLimit        int     `koanf:"feed_limit" validate:"min=1,max=500"`
	RetainMessages   int     `koanf:"retain_messages" validate:"min=0"`
	PruneInterval    int     `koanf:"prune_interval" validate:"min=1"`
	AllowedUsers     []int64 `koanf:"-"`
	AppEnv           AppEnv  `koanf:"app_env"`
}

var configFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from the working directory and the environment.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads the first config file found in dir, then overlays
// environment variables and defaults.
func LoadFrom(dir string) (*Config, error) {
	k := koanf.New(".")

	configFile, found := lo.Find(configFiles, func(name string) bool {
		_, err := os.Stat(filepath.Join(dir, name))
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		path := filepath.Join(dir, configFile)
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, oops.With("config_file", path).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	defaults := map[string]any{
		"telegram_api_url": "https://api.telegram.org",
		"storage_path":     "./data",
		"http_port":        "8080",
		"feed_limit":       50,
		"retain_messages":  500,
		"prune_interval":   3600,
		"app_env":          "production",
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// allowed_users is a list in config files and a comma separated string
	// in the environment
	if allowedUsers := k.Get("allowed_users"); allowedUsers != nil {
		switch v := allowedUsers.(type) {
		case string:
			cfg.AllowedUsers = ParseAllowedUsers(v)
		case []interface{}:
			cfg.AllowedUsers = lo.FilterMap(v, func(item interface{}, _ int) (int64, bool) {
				switch val := item.(type) {
				case int64:
					return val, true
				case int:
					return int64(val), true
				case float64:
					return int64(val), true
				default:
					return 0, false
				}
			})
		}
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, oops.With("context", "validating config").Wrap(err)
	}

	return &cfg, nil
}

// BotEnabled reports whether a bot token is configured. Without one the
// service only accepts messages over HTTP.
func (c *Config) BotEnabled() bool {
	return c.TelegramBotToken != ""
}

// BaseURL is the externally reachable root of the HTTP server.
func (c *Config) BaseURL() string {
	if c.PublicURL != "" {
		return strings.TrimSuffix(c.PublicURL, "/")
	}
	return fmt.Sprintf("http://localhost:%s", c.HTTPPort)
}

// IsAllowed reports whether userID may manage watched chats. An empty
// allow list admits everyone.
func (c *Config) IsAllowed(userID int64) bool {
	return len(c.AllowedUsers) == 0 || lo.Contains(c.AllowedUsers, userID)
}

// ParseAllowedUsers parses comma-separated user IDs string into []int64
func ParseAllowedUsers(s string) []int64 {
	if s == "" {
		return []int64{}
	}
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (int64, bool) {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, false
		}
		var id int64
		if _, err := fmt.Sscanf(part, "%d", &id); err == nil {
			return id, true
		}
		return 0, false
	})
}
