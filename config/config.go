package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Game     GameConfig     `mapstructure:"game"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Database DatabaseConfig `mapstructure:"database"`
	History  int            `mapstructure:"history"`
}

type GameConfig struct {
	QuitToken  string   `mapstructure:"quit_token"`
	Seed       int64    `mapstructure:"seed"`
	MaxPlayers int      `mapstructure:"max_players"`
	Players    []string `mapstructure:"players"` // 预设颜色，跳过入座流程
}

type LogConfig struct {
	Level  string   `mapstructure:"level"`
	Output []string `mapstructure:"output"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address"`
	Namespace string `mapstructure:"namespace"`
}

type DatabaseConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Driver   string         `mapstructure:"driver"` // gorm | postgres | sqlite
	Postgres PostgresConfig `mapstructure:"postgres"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// DSN formats the postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.DBName)
}

// Flags declares the command line flags LoadConfig understands.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("yahtzee", pflag.ContinueOnError)
	fs.String("config", ".", "directory holding config.yaml")
	fs.Int64("seed", 0, "dice seed, 0 draws a random one")
	fs.Int("history", 0, "print the latest N archived games and exit")
	return fs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.quit_token", "q")
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.max_players", 7)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", []string{"yahtzee.log"})
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.address", ":9100")
	v.SetDefault("metrics.namespace", "yahtzee")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.sqlite.path", "yahtzee.db")
	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("history", 0)
}

// LoadConfig reads config.yaml from path when present, then environment
// variables prefixed YAHTZEE_, then any parsed flags in fs (may be nil).
func LoadConfig(path string, fs *pflag.FlagSet) (config *Config, err error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("yahtzee")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if seed := fs.Lookup("seed"); seed != nil {
			if err = v.BindPFlag("game.seed", seed); err != nil {
				return nil, err
			}
		}
		if history := fs.Lookup("history"); history != nil {
			if err = v.BindPFlag("history", history); err != nil {
				return nil, err
			}
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return config, config.Validate()
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Game.QuitToken) == "" {
		return errors.New("game.quit_token must not be empty")
	}
	if c.Game.MaxPlayers < 1 {
		return fmt.Errorf("game.max_players must be positive, got %d", c.Game.MaxPlayers)
	}
	if c.Database.Enabled {
		switch c.Database.Driver {
		case "gorm", "postgres", "sqlite":
		default:
			return fmt.Errorf("database.driver %q is not one of gorm, postgres, sqlite", c.Database.Driver)
		}
	}
	return nil
}
