package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DatabaseConfig struct {
	// Driver is "mysql" or "sqlite"; sqlite is used by the test configs.
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level          string `mapstructure:"level"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

type AppConfig struct {
	// PageSize is the fixed feed page size (posts per page).
	PageSize int `mapstructure:"page_size"`
	// LimitText is the rune limit used when truncating post text into a title.
	LimitText int `mapstructure:"limit_text"`
}

var GlobalConfig Config

func load(name string) error {
	// Resolve the project root so config loads regardless of the test's cwd.
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(filepath.Dir(filepath.Dir(b)))

	viper.SetConfigName(name)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(basepath, "config"))

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("app.page_size", 10)
	viper.SetDefault("app.limit_text", 30)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := viper.Unmarshal(&GlobalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

func Init() error {
	return load("config")
}

// InitTest loads config.test.yaml (in-memory sqlite, short JWT expiry).
func InitTest() error {
	return load("config.test")
}
