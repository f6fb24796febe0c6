package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/agentx-labs/i18n-scaffold/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyRoot  = "root"
	KeyEntry = "entry"
)

// Defaults for the recognized keys.
const (
	DefaultRoot  = "."
	DefaultEntry = "src/main.tsx"
)

// Keys returns the settings that can be read and written.
func Keys() []string {
	return []string{KeyRoot, KeyEntry}
}

// Dir returns the path to the config directory (~/.i18n-scaffold/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.i18n-scaffold/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment. When
// flags is non-nil, the root and entry flags it defines take precedence.
func Load(flags *pflag.FlagSet) error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyRoot, DefaultRoot)
	viper.SetDefault(KeyEntry, DefaultEntry)

	if flags != nil {
		for _, key := range Keys() {
			f := flags.Lookup(key)
			if f == nil {
				continue
			}
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding flag --%s: %w", key, err)
			}
		}
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
	return nil
}

// Root returns the configured project root.
func Root() string {
	return viper.GetString(KeyRoot)
}

// Entry returns the configured entry file, relative to the project root.
func Entry() string {
	return filepath.ToSlash(viper.GetString(KeyEntry))
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file. Only the
// keys already in the file and the one being set are written; flag, env and
// default values held by the global Viper instance are left out.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
