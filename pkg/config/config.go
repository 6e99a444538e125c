// Package config holds the static settings of the tooltip and menu widgets.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTooltipDelay is how long the pointer must rest on an element
	// before its tooltip shows.
	DefaultTooltipDelay = 750 * time.Millisecond

	// DefaultSubmenuCloseDelay debounces submenu closing while the pointer
	// crosses the gap between an item and its submenu.
	DefaultSubmenuCloseDelay = 5 * time.Millisecond

	// DefaultIconClass is the CSS class of the icon font.
	DefaultIconClass = "material-icons"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Offset is the distance between the pointer and a tooltip.
type Offset struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Config is read once at startup. There is no hot reload.
type Config struct {
	// TooltipDelay is the hover time before a tooltip appears.
	TooltipDelay time.Duration `yaml:"tooltipDelay" json:"tooltipDelay"`

	// TooltipFade is the duration of the tooltip fade animation.
	TooltipFade time.Duration `yaml:"tooltipFade" json:"tooltipFade"`

	// TooltipOffset places the tooltip relative to the pointer. Negative
	// values move it left or up.
	TooltipOffset Offset `yaml:"tooltipOffset" json:"tooltipOffset"`

	// HideTooltipOnPointerMove hides a visible tooltip as soon as the pointer
	// moves and restarts the delay.
	HideTooltipOnPointerMove bool `yaml:"hideTooltipOnPointerMove" json:"hideTooltipOnPointerMove"`

	// IconClass is the icon library class. Empty disables icons.
	IconClass string `yaml:"iconClass" json:"iconClass"`

	// DisableDefaultContextMenus suppresses the browser context menu on the
	// whole page, including elements without a custom menu.
	DisableDefaultContextMenus bool `yaml:"disableDefaultContextMenus" json:"disableDefaultContextMenus"`

	// SubmenuCloseDelay is the hover-intent delay of submenus.
	SubmenuCloseDelay time.Duration `yaml:"submenuCloseDelay" json:"submenuCloseDelay"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TooltipDelay:             DefaultTooltipDelay,
		TooltipFade:              0,
		TooltipOffset:            Offset{X: 5, Y: 5},
		HideTooltipOnPointerMove: true,
		IconClass:                DefaultIconClass,
		SubmenuCloseDelay:        DefaultSubmenuCloseDelay,
	}
}

// Parse decodes YAML (or JSON) over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks that durations are not negative.
func (c Config) Validate() error {
	switch {
	case c.TooltipDelay < 0:
		return fmt.Errorf("%w: tooltipDelay must not be negative", ErrInvalid)
	case c.TooltipFade < 0:
		return fmt.Errorf("%w: tooltipFade must not be negative", ErrInvalid)
	case c.SubmenuCloseDelay < 0:
		return fmt.Errorf("%w: submenuCloseDelay must not be negative", ErrInvalid)
	}
	return nil
}
