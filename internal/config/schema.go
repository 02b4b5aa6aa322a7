package config

import (
	"time"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Line    LineConfig    `yaml:"line"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Redis   *RedisConfig  `yaml:"redis"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
	// BaseURL is the externally reachable URL of this service. The LINE
	// callback URL is derived from it and never from request input.
	BaseURL string             `yaml:"base_url"`
	Debug   *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 4000,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// LineConfig holds the LINE Login channel credentials and, optionally, the
// messaging channel used by the webhook bot.
type LineConfig struct {
	LoginChannelID     string   `yaml:"login_channel_id"`
	LoginChannelSecret string   `yaml:"login_channel_secret"`
	Scopes             []string `yaml:"scopes"`

	Messaging *LineMessagingConfig `yaml:"messaging"`
}

var DefaultLineConfig = LineConfig{
	Scopes: []string{"profile", "openid"},
}

type LineMessagingConfig struct {
	ChannelSecret string `yaml:"channel_secret"`
	ChannelToken  string `yaml:"channel_token"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	// FrontendOrigin is the trusted origin every post-login redirect is
	// sanitized against, and the fallback destination itself.
	FrontendOrigin string        `yaml:"frontend_origin"`
	LoginStateTTL  time.Duration `yaml:"login_state_ttl"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
}

var DefaultAuthConfig = AuthConfig{
	LoginStateTTL: 10 * time.Minute,
	SessionTTL:    7 * 24 * time.Hour,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type StorageConfig struct {
	// URL is a postgres:// connection string, shared by the pool and the
	// migration runner.
	URL string `yaml:"url"`
}

type CacheConfig struct {
	Type string        `yaml:"type"` // "memory" or "redis"
	TTL  time.Duration `yaml:"ttl"`
}

var DefaultCacheConfig = CacheConfig{
	Type: "memory",
	TTL:  5 * time.Minute,
}

type RedisConfig struct {
	Address    string `yaml:"address"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	CacheIndex int    `yaml:"cache_index"`
}
