// Package schema holds the injectable parts of the OpenGraph schema: the set
// of reserved kind names and per-kind icon presets. The ingesting platform's
// schema evolves independently of this library, so neither list is hardcoded;
// they are loaded from a TOML file or assembled in code and passed to the
// graph at construction.
//
// Config file format:
//
//	reserved_kinds = ["MigrationError"]
//
//	[icons]
//	Person = "user"
//	Computer = "desktop"
package schema

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config carries the injectable schema constants.
type Config struct {
	// ReservedKinds are kind names the platform claims for itself. Adding a
	// node or edge with one of these kinds fails.
	ReservedKinds []string `toml:"reserved_kinds"`

	// Icons maps kind names to display icon identifiers. Presets apply to
	// kinds as they come into use; explicit per-graph icons override them.
	Icons map[string]string `toml:"icons"`
}

// Default returns an empty configuration: no reserved kinds, no icon presets.
// The BloodHound examples themselves use "Base" as an ordinary kind, so the
// library reserves nothing unless told to.
func Default() *Config {
	return &Config{Icons: map[string]string{}}
}

// Load reads a configuration from a TOML file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load schema config %s: %w", path, err)
	}
	return cfg, nil
}

// IsReserved reports whether kind is in the reserved set. Matching is
// case-sensitive, like kind names themselves.
func (c *Config) IsReserved(kind string) bool {
	for _, r := range c.ReservedKinds {
		if r == kind {
			return true
		}
	}
	return false
}

// Icon returns the preset icon for kind, if one is configured.
func (c *Config) Icon(kind string) (string, bool) {
	icon, ok := c.Icons[kind]
	return icon, ok
}
