package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Server      ServerConfig
	HTTP        ServerConfig
	GRPC        GRPCConfig
	Logging     LoggingConfig
	Storage     StorageConfig
	Database    DatabaseConfig
	Cache       CacheConfig
	Sync        SyncConfig
	Auth        AuthConfig
}

type ServerConfig struct {
	Host string
	Port string
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type GRPCConfig struct {
	ReflectionEnabled bool
	ShutdownTimeout   time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

type StorageConfig struct {
	// Driver is one of postgres, bolt or memory.
	Driver   string
	BoltPath string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	// Driver is one of none, memory or redis.
	Driver   string
	RedisURL string
	Size     int
	TTL      time.Duration
}

type SyncConfig struct {
	PollInterval time.Duration
	FetchTimeout time.Duration
}

type AuthConfig struct {
	Enabled    bool
	JWKSURL    string
	HMACSecret string
	Issuer     string
	Audience   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "50055")
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", "8080")
	v.SetDefault("grpc.reflection_enabled", false)
	v.SetDefault("grpc.shutdown_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("storage.bolt_path", "data/exchange.bolt")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "skillswap")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.size", 512)
	v.SetDefault("cache.ttl", 30*time.Second)

	v.SetDefault("sync.poll_interval", 2*time.Second)
	v.SetDefault("sync.fetch_timeout", 0)

	v.SetDefault("auth.enabled", false)
}

// Load reads config.yaml from the given directories (./config and /app/config when
// none are given) and applies environment overrides such as DATABASE_HOST. A missing
// config file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config", "/app/config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Environment: v.GetString("environment"),
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetString("server.port"),
		},
		HTTP: ServerConfig{
			Host: v.GetString("http.host"),
			Port: v.GetString("http.port"),
		},
		GRPC: GRPCConfig{
			ReflectionEnabled: v.GetBool("grpc.reflection_enabled"),
			ShutdownTimeout:   v.GetDuration("grpc.shutdown_timeout"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Storage: StorageConfig{
			Driver:   strings.ToLower(v.GetString("storage.driver")),
			BoltPath: v.GetString("storage.bolt_path"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			DBName:   v.GetString("database.dbname"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		Cache: CacheConfig{
			Driver:   strings.ToLower(v.GetString("cache.driver")),
			RedisURL: v.GetString("cache.redis_url"),
			Size:     v.GetInt("cache.size"),
			TTL:      v.GetDuration("cache.ttl"),
		},
		Sync: SyncConfig{
			PollInterval: v.GetDuration("sync.poll_interval"),
			FetchTimeout: v.GetDuration("sync.fetch_timeout"),
		},
		Auth: AuthConfig{
			Enabled:    v.GetBool("auth.enabled"),
			JWKSURL:    v.GetString("auth.jwks_url"),
			HMACSecret: v.GetString("auth.hmac_secret"),
			Issuer:     v.GetString("auth.issuer"),
			Audience:   v.GetString("auth.audience"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "postgres", "bolt", "memory":
	default:
		return errors.New("storage.driver must be postgres, bolt or memory, got " + strconv.Quote(c.Storage.Driver))
	}
	switch c.Cache.Driver {
	case "none", "memory", "redis":
	default:
		return errors.New("cache.driver must be none, memory or redis, got " + strconv.Quote(c.Cache.Driver))
	}
	if c.Cache.Driver == "redis" && c.Cache.RedisURL == "" {
		return errors.New("cache.redis_url is required when cache.driver is redis")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
