package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
	Auth   AuthConfig   `mapstructure:"auth"`
	S3     S3Config     `mapstructure:"s3"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// StoreConfig locates the CSV file holding the workout log.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	File     string `mapstructure:"file"`      // empty -> stdout only
	ToStdout bool   `mapstructure:"to_stdout"` // also mirror file logs to stdout
}

// AuthConfig protects the dashboard API with a single-user password.
// An empty PasswordHash disables authentication entirely, which is the
// expected mode for local desktop use.
type AuthConfig struct {
	PasswordHash string        `mapstructure:"password_hash"` // bcrypt hash
	JWTSecret    string        `mapstructure:"jwt_secret"`
	Expiration   time.Duration `mapstructure:"expiration"`
}

// Enabled reports whether API authentication is configured.
func (a AuthConfig) Enabled() bool {
	return a.PasswordHash != ""
}

// S3Config configures the optional S3-compatible backup target used by
// the backup tool; it is unused by the server itself.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, with nested keys mapped
	// e.g. server.address -> SERVER_ADDRESS, store.path -> STORE_PATH.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("store.path", "workouts.csv")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.to_stdout", true)
	viper.SetDefault("auth.expiration", "24h")
	viper.SetDefault("s3.use_ssl", true)

	err = viper.ReadInConfig()
	// A missing config file is fine: defaults plus env vars are enough
	// to run against a local CSV file.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
