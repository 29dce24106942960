package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/versions"
)

// Validate ensures the config is internally consistent.
func (c *Config) Validate() error {
	if c.CommandTimeout < 0 {
		return fmt.Errorf(messages.ConfigNegativeTimeoutFmt, c.CommandTimeout)
	}
	for i, tool := range c.Preflight.RequiredTools {
		if strings.TrimSpace(tool) == "" {
			return fmt.Errorf(messages.ConfigEmptyToolFmt, "preflight.required_tools", i)
		}
	}
	for i, tool := range c.Preflight.OptionalTools {
		if strings.TrimSpace(tool) == "" {
			return fmt.Errorf(messages.ConfigEmptyToolFmt, "preflight.optional_tools", i)
		}
	}
	if v := strings.TrimSpace(c.Preflight.MinNodeVersion); v != "" {
		if err := versions.Validate(v); err != nil {
			return fmt.Errorf(messages.ConfigMinNodeVersionInvalidFmt, err)
		}
	}
	if c.Assets.UseManifest && strings.TrimSpace(c.Assets.ManifestPath) == "" {
		return errors.New(messages.ConfigManifestPathRequired)
	}
	return nil
}
