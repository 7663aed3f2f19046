package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Realtime RealtimeConfig `mapstructure:"realtime"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type RealtimeConfig struct {
	// WriteTimeoutMillis bounds a single delivery to one subscriber; a
	// connection that cannot accept a frame within it is dropped.
	WriteTimeoutMillis int `mapstructure:"write_timeout_millis"`
}

// Load reads configuration with the usual precedence: defaults, then an
// optional config.yaml at path, then environment variables
// (SERVER_PORT, DATABASE_HOST, AUTH_JWT_SECRET, ...).
func Load(path string) (*Config, error) {
	def := Default()
	viper.SetDefault("server.port", def.Server.Port)
	viper.SetDefault("database.host", def.Database.Host)
	viper.SetDefault("database.port", def.Database.Port)
	viper.SetDefault("database.user", def.Database.User)
	viper.SetDefault("database.password", def.Database.Password)
	viper.SetDefault("database.dbname", def.Database.DBName)
	viper.SetDefault("database.sslmode", def.Database.SSLMode)
	viper.SetDefault("auth.jwt_secret", def.Auth.JWTSecret)
	viper.SetDefault("realtime.write_timeout_millis", def.Realtime.WriteTimeoutMillis)

	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_DBNAME")
	viper.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	viper.BindEnv("realtime.write_timeout_millis", "REALTIME_WRITE_TIMEOUT_MILLIS")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// no config file; env vars and defaults still apply
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "sensor_telemetry",
			SSLMode:  "disable",
		},
		Auth:     AuthConfig{JWTSecret: "change-me"},
		Realtime: RealtimeConfig{WriteTimeoutMillis: 2000},
	}
}

// DBConnString renders the lib/pq connection string.
func (c *Config) DBConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}
