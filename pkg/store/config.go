package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath = "~/.northstar"
	envPrefix   = "NORTHSTAR"
)

// Config locates the journal on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads .northstar.yaml from $NORTHSTAR_CONFIG_PATH, the working
// directory or $HOME, letting NORTHSTAR_* environment variables (and a local
// .env file) override it.
func LoadConfig() (Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetConfigName(".northstar") // .yaml is implicit
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if override := os.Getenv(envPrefix + "_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: filepath.Clean(path)}, nil
}

// PathConfig is a Config fixed to a directory.
type PathConfig string

func (p PathConfig) BasePath() string {
	return string(p)
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
