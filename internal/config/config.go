package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"linkhub/internal/auth"
	"linkhub/internal/registry"
)

type Config struct {
	Server    ServerConfig           `yaml:"server"`
	Store     StoreConfig            `yaml:"store"`
	Auth      AuthConfig             `yaml:"auth"`
	Discord   DiscordConfig          `yaml:"discord"`
	Tags      TagsConfig             `yaml:"tags"`
	Admins    []string               `yaml:"admins"`
	Bootstrap []registry.SeedAccount `yaml:"bootstrap"`
}

type ServerConfig struct {
	Name    string `yaml:"name"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	BaseURL string `yaml:"base_url"`
}

// StoreConfig points at the hosted document bin. Leaving Bin empty runs
// the server against an in-memory document, which only makes sense for
// local development.
type StoreConfig struct {
	Endpoint string `yaml:"endpoint"`
	Bin      string `yaml:"bin"`
	Key      string `yaml:"key"`
}

type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	PasswordSalt string        `yaml:"password_salt"`
	SecureCookie bool          `yaml:"secure_cookie"`
}

type DiscordConfig struct {
	PresenceURL string `yaml:"presence_url"`
	InviteURL   string `yaml:"invite_url"`
}

type TagsConfig struct {
	OGLimit int                   `yaml:"og_limit"`
	Special map[string]SpecialTag `yaml:"special"`
}

type SpecialTag struct {
	Label string `yaml:"label"`
	Class string `yaml:"class"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LINKHUB_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("LINKHUB_STORE_KEY"); v != "" {
		c.Store.Key = v
	}
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters")
	}
	if c.Store.Bin != "" && c.Store.Key == "" {
		return fmt.Errorf("store.key is required when store.bin is set")
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Name == "" {
		c.Server.Name = "LinkHub"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
	}
	if c.Store.Endpoint == "" {
		c.Store.Endpoint = "https://api.jsonbin.io/v3"
	}
	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = 30 * 24 * time.Hour
	}
	if c.Auth.PasswordSalt == "" {
		c.Auth.PasswordSalt = auth.DefaultSalt
	}
	if c.Discord.PresenceURL == "" {
		c.Discord.PresenceURL = "https://api.lanyard.rest/v1/users"
	}
	if c.Discord.InviteURL == "" {
		c.Discord.InviteURL = "https://discord.com/api/v9/invites"
	}
	if c.Tags.OGLimit == 0 {
		c.Tags.OGLimit = 30
	}
	if len(c.Tags.Special) == 0 {
		c.Tags.Special = map[string]SpecialTag{
			"kiriko": {Label: "Owner", Class: "tag-owner"},
			"snow":   {Label: "Co-Founder", Class: "tag-cofounder"},
			"shad0w": {Label: "Bug Reporter", Class: "tag-bugreporter"},
		}
	}
	if len(c.Admins) == 0 {
		c.Admins = []string{"kiriko", "snow"}
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
