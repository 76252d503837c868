package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Loader loads the configuration of a working directory
type Loader struct {
	dir string
}

// NewLoader creates a new Loader for the given directory
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load builds the configuration with the following priority (highest first):
// 1. Environment variables (CLAY_*)
// 2. CLAY_* entries of the directory's .env file
// 3. The directory's .clay.yaml file
// 4. Default values
//
// The result is not validated, flags may still override it.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(l.dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := l.applyEnvFile(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// applyEnvFile reads CLAY_* entries from the .env file. The process
// environment is left untouched and wins over the file.
func (l *Loader) applyEnvFile(v *viper.Viper) error {
	values, err := godotenv.Read(filepath.Join(l.dir, DefaultEnvFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", DefaultEnvFile, err)
	}

	for name, value := range values {
		key, ok := strings.CutPrefix(name, EnvPrefix+"_")
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(name); set {
			continue
		}
		v.Set(strings.ToLower(key), value)
	}
	return nil
}

// setDefaults configures viper with default values
func setDefaults(v *viper.Viper) {
	defaults := New()

	v.SetDefault("template_dir", defaults.TemplateDir)
	v.SetDefault("modules", defaults.Modules)
	v.SetDefault("report_to", defaults.ReportTo)
	v.SetDefault("main_file", defaults.MainFile)
	v.SetDefault("header_file", defaults.HeaderFile)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("exclude", []string{})
	v.SetDefault("quiet", defaults.Quiet)
	v.SetDefault("progress", defaults.Progress)
}
