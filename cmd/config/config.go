package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvironmentLocal      = "local"
	EnvironmentProduction = "production"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads server.yaml from ./config or /config once per process. A missing file
// leaves the defaults in place; a malformed one is fatal.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		cfg, err := Load("server", "config", "/config")
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = cfg
	})

	return configInstance
}

func Load(name string, paths ...string) (AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("insurance_server")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName(name)
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel:    v.GetString("general.log_level"),
			Environment: v.GetString("general.environment"),
		},
		HTTP: HTTPConfig{
			Address:        v.GetString("http.address"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Postgresql: PostgresqlConfig{
			URL: v.GetString("database.url"),
			DSN: v.GetString("database.dsn"),
		},
		Kafka: KafkaConfig{
			Brokers:        v.GetStringSlice("kafka.brokers"),
			Group:          v.GetString("kafka.group"),
			SchemaRegistry: v.GetString("kafka.schema_registry"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			TTL: v.GetDuration("cache.ttl"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.environment", EnvironmentProduction)
	v.SetDefault("http.address", ":3000")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("kafka.group", "insurance-server")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", 5*time.Minute)
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	Kafka      KafkaConfig
	Postgresql PostgresqlConfig
	Redis      RedisConfig
	Cache      CacheConfig
}

func (c AppConfig) IsLocal() bool {
	return c.General.Environment == EnvironmentLocal
}

type GeneralConfig struct {
	LogLevel    string
	Environment string
}

type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL time.Duration
}
