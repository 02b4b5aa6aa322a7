package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Secrets may come from the environment instead of the config file so the
// file can be committed without them.
var (
	EnvJWTSecret              = "SWEETBOOKING_JWT_SECRET"
	EnvLineLoginChannelID     = "SWEETBOOKING_LINE_LOGIN_CHANNEL_ID"
	EnvLineLoginChannelSecret = "SWEETBOOKING_LINE_LOGIN_CHANNEL_SECRET"
	EnvLineMessagingSecret    = "SWEETBOOKING_LINE_MESSAGING_CHANNEL_SECRET"
	EnvLineMessagingToken     = "SWEETBOOKING_LINE_MESSAGING_CHANNEL_TOKEN"
	EnvStorageURL             = "SWEETBOOKING_STORAGE_URL"
	EnvRedisPassword          = "SWEETBOOKING_REDIS_PASSWORD"
)

func applyEnvironmentOverrides(config *Config) {
	if secret := os.Getenv(EnvJWTSecret); secret != "" {
		config.Auth.JWTSecret = secret
	}

	if id := os.Getenv(EnvLineLoginChannelID); id != "" {
		config.Line.LoginChannelID = id
	}

	if secret := os.Getenv(EnvLineLoginChannelSecret); secret != "" {
		config.Line.LoginChannelSecret = secret
	}

	if secret := os.Getenv(EnvLineMessagingSecret); secret != "" {
		if config.Line.Messaging == nil {
			config.Line.Messaging = &LineMessagingConfig{}
		}
		config.Line.Messaging.ChannelSecret = secret
	}

	if token := os.Getenv(EnvLineMessagingToken); token != "" {
		if config.Line.Messaging == nil {
			config.Line.Messaging = &LineMessagingConfig{}
		}
		config.Line.Messaging.ChannelToken = token
	}

	if dsn := os.Getenv(EnvStorageURL); dsn != "" {
		config.Storage.URL = dsn
	}

	if password := os.Getenv(EnvRedisPassword); password != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = password
	}
}

func validateConfig(config *Config) error {
	if err := config.validateServerConfig(); err != nil {
		return err
	}

	if err := config.validateLineConfig(); err != nil {
		return err
	}

	if err := config.validateAuthConfig(); err != nil {
		return err
	}

	if err := config.validateLogConfig(); err != nil {
		return err
	}

	if err := config.validateCORSConfig(); err != nil {
		return err
	}

	if err := config.validateStorageConfig(); err != nil {
		return err
	}

	if err := config.validateCacheConfig(); err != nil {
		return err
	}

	if config.Cache.Type == "redis" {
		if err := config.validateRedisConfig(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if err := validateURL(c.Server.BaseURL, "server.base_url"); err != nil {
		return err
	}

	c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLineConfig() error {
	if c.Line.LoginChannelID == "" {
		return fmt.Errorf("line.login_channel_id is required")
	}

	if c.Line.LoginChannelSecret == "" {
		return fmt.Errorf("line.login_channel_secret is required")
	}

	if len(c.Line.Scopes) == 0 {
		c.Line.Scopes = DefaultLineConfig.Scopes
	}

	if c.Line.Messaging != nil {
		if c.Line.Messaging.ChannelSecret == "" {
			return fmt.Errorf("line.messaging.channel_secret is required when messaging is configured")
		}
		if c.Line.Messaging.ChannelToken == "" {
			return fmt.Errorf("line.messaging.channel_token is required when messaging is configured")
		}
	}

	return nil
}

func (c *Config) validateAuthConfig() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if err := validateURL(c.Auth.FrontendOrigin, "auth.frontend_origin"); err != nil {
		return err
	}

	if c.Auth.LoginStateTTL == 0 {
		c.Auth.LoginStateTTL = DefaultAuthConfig.LoginStateTTL
	}

	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = DefaultAuthConfig.SessionTTL
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{c.Auth.FrontendOrigin}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage.URL == "" {
		return fmt.Errorf("storage.url is required")
	}

	parsed, err := url.Parse(c.Storage.URL)
	if err != nil {
		return fmt.Errorf("storage.url is not a valid URL: %w", err)
	}

	if parsed.Scheme != "postgres" && parsed.Scheme != "postgresql" {
		return fmt.Errorf("storage.url must use the postgres scheme, got %q", parsed.Scheme)
	}

	return nil
}

func (c *Config) validateCacheConfig() error {
	switch c.Cache.Type {
	case "":
		c.Cache.Type = DefaultCacheConfig.Type
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid cache type: %s, options are 'memory' or 'redis'", c.Cache.Type)
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheConfig.TTL
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is required when cache.type is 'redis'")
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis.address is required")
	}

	return nil
}

// CallbackURL returns the fixed LINE Login callback URL derived from the
// configured base URL.
func (c *Config) CallbackURL() string {
	return c.Server.BaseURL + "/line/callback"
}

// FrontendOriginURL returns the trusted redirect fallback. Validation has
// already guaranteed the origin parses.
func (c *Config) FrontendOriginURL() (*url.URL, error) {
	if c.Auth.FrontendOrigin == "" {
		return nil, fmt.Errorf("no trusted frontend origin is configured")
	}

	return url.Parse(c.Auth.FrontendOrigin)
}
