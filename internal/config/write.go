package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/ror-installer/internal/fsutil"
	"github.com/conn-castle/ror-installer/internal/messages"
)

// fileView is the on-disk shape of Config; durations are written as strings.
type fileView struct {
	Install        InstallConfig   `toml:"install"`
	CommandTimeout string          `toml:"command_timeout"`
	Preflight      PreflightConfig `toml:"preflight"`
	Assets         AssetsConfig    `toml:"assets"`
}

// Defaults returns the built-in configuration, decoded from the same map
// that forms the lowest Load layer.
func Defaults() Config {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		panic(fmt.Errorf(messages.ConfigLoadDefaultsFailedFmt, err))
	}
	cfg, err := decode(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

// MarshalTOML renders c in the .ror.toml format.
func (c Config) MarshalTOML() ([]byte, error) {
	view := fileView{
		Install:        c.Install,
		CommandTimeout: c.CommandTimeout.String(),
		Preflight:      c.Preflight,
		Assets:         c.Assets,
	}
	data, err := toml.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMarshalFailedFmt, err)
	}
	return data, nil
}

// WriteDefault writes the default config to appDir/.ror.toml. An existing file
// is only replaced when force is set.
func WriteDefault(appDir string, force bool) (string, error) {
	path := filepath.Join(appDir, FileNames[0])
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf(messages.ConfigFileExistsFmt, path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return path, fmt.Errorf(messages.ConfigStatFailedFmt, path, err)
	}
	data, err := Defaults().MarshalTOML()
	if err != nil {
		return path, err
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return path, err
	}
	return path, nil
}
