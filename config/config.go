// Package config loads querybox settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/querybox/editor"
	"github.com/iw2rmb/querybox/focus"
	"github.com/iw2rmb/querybox/tui"
	"github.com/iw2rmb/querybox/vocab"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// Config is the full querybox configuration.
type Config struct {
	// Vocabulary lists completion keywords in priority order.
	Vocabulary []string `toml:"vocabulary" yaml:"vocabulary"`

	// StartFocus is "editing" or "standby".
	StartFocus string `toml:"start_focus" yaml:"start_focus"`

	Keys  Keys        `toml:"keys" yaml:"keys"`
	Theme tui.Palette `toml:"theme" yaml:"theme"`
	Log   Log         `toml:"log" yaml:"log"`
}

// Keys overrides key bindings. An empty list keeps the default binding.
type Keys struct {
	AutoComplete []string `toml:"autocomplete" yaml:"autocomplete"`
	Validate     []string `toml:"validate" yaml:"validate"`
	DeleteChar   []string `toml:"delete_char" yaml:"delete_char"`
	Exit         []string `toml:"exit" yaml:"exit"`
	Confirm      []string `toml:"confirm" yaml:"confirm"`
	Leave        []string `toml:"leave" yaml:"leave"`
	Quit         []string `toml:"quit" yaml:"quit"`
}

// Log configures the debug log. With no File, logging is discarded.
type Log struct {
	File  string `toml:"file" yaml:"file"`
	Level string `toml:"level" yaml:"level"`
}

const (
	FocusEditing = "editing"
	FocusStandBy = "standby"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Vocabulary: append([]string(nil), vocab.DefaultTokens...),
		StartFocus: FocusEditing,
		Theme:      tui.DefaultPalette(),
		Log:        Log{Level: "info"},
	}
}

// Load reads path and overlays it on Default. The format follows the file
// extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format ("toml" or "yaml") over Default
// and validates the result.
func Parse(data []byte, format string) (Config, error) {
	cfg := Default()
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse toml: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return strings.TrimPrefix(filepath.Ext(path), ".")
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if vocab.New(c.Vocabulary...).Len() == 0 {
		return errors.New("vocabulary must contain at least one keyword")
	}
	switch c.StartFocus {
	case FocusEditing, FocusStandBy:
	default:
		return fmt.Errorf("start_focus must be %q or %q, got %q", FocusEditing, FocusStandBy, c.StartFocus)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", s)
	}
}

func (c Config) VocabularySet() vocab.Vocabulary { return vocab.New(c.Vocabulary...) }

func (c Config) InitialFocus() focus.State {
	if c.StartFocus == FocusStandBy {
		return focus.StandBy
	}
	return focus.Editing
}

// EditorKeyMap returns the default editor bindings with overrides applied.
func (c Config) EditorKeyMap() editor.KeyMap {
	km := editor.DefaultKeyMap()
	rebind(&km.AutoComplete, c.Keys.AutoComplete)
	rebind(&km.Validate, c.Keys.Validate)
	rebind(&km.DeleteChar, c.Keys.DeleteChar)
	rebind(&km.Exit, c.Keys.Exit)
	return km
}

// FocusKeyMap returns the default focus bindings with overrides applied.
func (c Config) FocusKeyMap() focus.KeyMap {
	km := focus.DefaultKeyMap()
	rebind(&km.Confirm, c.Keys.Confirm)
	rebind(&km.Leave, c.Keys.Leave)
	rebind(&km.Quit, c.Keys.Quit)
	return km
}

func rebind(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	b.SetKeys(keys...)
	b.SetHelp(strings.Join(keys, "/"), b.Help().Desc)
}
