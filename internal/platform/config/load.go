package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding the YAML files. Defaults to
// "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration from these layers, later layers winning:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml (required)
//  3. {configDir}/{profile}.yaml (required)
//  4. {configDir}/{profile}.override.yaml (optional, meant to stay out of
//     version control for per-machine tweaks)
//  5. APP_* environment variables
//
// Environment names are resolved against the keys known after the file
// layers, so field-internal underscores survive:
//
//	APP_SERVER_READ_TIMEOUT                   -> server.read_timeout
//	APP_DATABASE_CIRCUIT_BREAKER_MAX_FAILURES -> database.circuit_breaker.max_failures
//	APP_HEALTH_CHECK_TIMEOUT                  -> health.check_timeout
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, err
	}

	layers := []struct {
		name     string
		required bool
	}{
		{name: "base.yaml", required: true},
		{name: profile + ".yaml", required: true},
		{name: profile + ".override.yaml"},
	}
	for _, layer := range layers {
		if err := loadYAML(k, filepath.Join(o.configDir, layer.name), layer.required); err != nil {
			return nil, err
		}
	}

	if err := loadEnv(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

// loadYAML merges the file at path into k. A missing optional file is
// skipped.
func loadYAML(k *koanf.Koanf, path string, required bool) error {
	if !required {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

func loadEnv(k *koanf.Koanf) error {
	known := envKeys(k.Keys())

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if dotted, ok := known[key]; ok {
				return dotted, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// envKeys maps the underscore form of every known dotted key back to it,
// e.g. "server_read_timeout" -> "server.read_timeout".
func envKeys(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
