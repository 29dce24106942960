package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/ror-installer/internal/messages"
)

// EnvPrefix namespaces configuration environment variables.
const EnvPrefix = "ROR_"

// FileNames are the app-level config files, searched in order.
var FileNames = []string{".ror.toml", ".ror.yml", ".ror.yaml"}

// ErrConfigValidation wraps validation failures, as opposed to
// syntax or filesystem errors.
var ErrConfigValidation = errors.New(messages.ConfigValidationFailed)

// Load resolves configuration for appDir. explicitPath, when set, replaces the
// search for FileNames and must exist.
func Load(appDir string, explicitPath string) (*Config, error) {
	k := koanf.New(".")
	defaults := defaultValues()
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf(messages.ConfigLoadDefaultsFailedFmt, err)
	}

	source, err := findConfigFile(appDir, explicitPath)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), parserFor(source)); err != nil {
			return nil, fmt.Errorf(messages.ConfigLoadFileFailedFmt, source, err)
		}
	}

	envKeys := envKeyIndex(defaults)
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.ToLower(strings.TrimPrefix(s, EnvPrefix))]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigLoadEnvFailedFmt, err)
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = source
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decode unmarshals the merged layers into a Config.
func decode(k *koanf.Koanf) (Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigUnmarshalFailedFmt, err)
	}
	return cfg, nil
}

// envKeyIndex maps the underscore form of every key ("install_skip_js_linters")
// to its dotted koanf key so multi-word segments survive the env mapping.
// Unknown variables map to "" and are skipped by the env provider.
func envKeyIndex(defaults map[string]any) map[string]string {
	index := make(map[string]string, len(defaults))
	for key := range defaults {
		index[strings.ReplaceAll(key, ".", "_")] = key
	}
	return index
}

func findConfigFile(appDir string, explicitPath string) (string, error) {
	if explicitPath != "" {
		path, err := ExpandPath(explicitPath)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
		}
		return path, nil
	}
	for _, name := range FileNames {
		path := filepath.Join(appDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFailedFmt, path, err)
	}
	return expanded, nil
}
