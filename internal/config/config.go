package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type PostgresConfig struct {
	Address  string `mapstructure:"address"`
	Port     string `mapstructure:"port"`
	DB       string `mapstructure:"db"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// DSN returns the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return "postgres://" + p.Username + ":" + p.Password + "@" + p.Address + ":" +
		p.Port + "/" + p.DB + "?sslmode=disable"
}

type StorageConfig struct {
	Backend    string         `mapstructure:"backend"`
	Key        string         `mapstructure:"key"`
	Dir        string         `mapstructure:"dir"`
	SQLitePath string         `mapstructure:"sqlite_path"`
	Postgres   PostgresConfig `mapstructure:"postgres"`
}

type OperatorConfig struct {
	QueueSize int `mapstructure:"queue_size"`
}

type Config struct {
	Port     string         `mapstructure:"port"`
	LogLevel string         `mapstructure:"log_level"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Operator OperatorConfig `mapstructure:"operator"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "9446")
	v.SetDefault("log_level", "info")

	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.key", "ledger")
	v.SetDefault("storage.dir", "data")
	v.SetDefault("storage.sqlite_path", "data/ledger.db")

	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("storage.postgres.address", "localhost")
	v.SetDefault("storage.postgres.port", "5433")
	v.SetDefault("storage.postgres.db", "postgres")
	v.SetDefault("storage.postgres.username", "postgres")
	v.SetDefault("storage.postgres.password", "testpassword")

	v.SetDefault("operator.queue_size", 1000)
}

// ProcessEnvironmentVariables loads defaults, then an optional ledger.yaml,
// then LEDGER_* environment variables. The bare POSTGRES_* variables are
// still honoured for the postgres backend.
func ProcessEnvironmentVariables() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("ledger")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.budget-ledger")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, field := range []string{"address", "port", "db", "username", "password"} {
		key := "storage.postgres." + field
		envName := "POSTGRES_" + strings.ToUpper(field)
		if err := v.BindEnv(key, "LEDGER_STORAGE_POSTGRES_"+strings.ToUpper(field), envName); err != nil {
			return nil, fmt.Errorf("bind %s: %w", envName, err)
		}
	}

	var env Config
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendSQLite, BackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Key == "" {
		return errors.New("storage key must not be empty")
	}
	if c.Operator.QueueSize < 1 {
		c.Operator.QueueSize = 1
	}
	return nil
}
