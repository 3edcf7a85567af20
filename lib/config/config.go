// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/secureinput/lib/securefield"
	"github.com/bureau-foundation/secureinput/lib/tui"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "SECURE_PROMPT_CONFIG"

// Config describes one secure prompt: how the field looks, how its
// value is validated, and where the accepted value goes.
type Config struct {
	// Title is the field label.
	// Default: Password
	Title string `yaml:"title" json:"title"`

	// Mandatory rejects an empty value.
	Mandatory bool `yaml:"mandatory" json:"mandatory"`

	// HideClear hides the clear button and disables its key.
	HideClear bool `yaml:"hide_clear" json:"hide_clear"`

	// Width is the input width in cells.
	// Default: 32
	Width int `yaml:"width" json:"width"`

	// CharLimit caps the value length. Zero is unlimited.
	CharLimit int `yaml:"char_limit" json:"char_limit"`

	// EchoCharacter masks each typed character. Must be exactly one
	// character.
	// Default: •
	EchoCharacter string `yaml:"echo_character" json:"echo_character"`

	// AllowReveal enables the reveal key.
	AllowReveal bool `yaml:"allow_reveal" json:"allow_reveal"`

	// ShowFingerprint draws color swatches derived from the value.
	ShowFingerprint bool `yaml:"show_fingerprint" json:"show_fingerprint"`

	// Theme selects colors: auto, dark, or light.
	// Default: auto
	Theme tui.ThemeMode `yaml:"theme" json:"theme"`

	// Confirm asks for the value twice and requires both to match.
	Confirm bool `yaml:"confirm" json:"confirm"`

	// Rules configures validation beyond the mandatory check.
	Rules Rules `yaml:"rules" json:"rules"`

	// Recipients are age public keys. When set, the accepted value is
	// written as armored age ciphertext instead of plaintext.
	Recipients []string `yaml:"recipients" json:"recipients"`

	// PasswordFile reads the value non-interactively ("-" for stdin).
	// Subject to ${VAR} expansion.
	PasswordFile string `yaml:"password_file" json:"password_file"`
}

// Rules configures the stock validators. Zero values disable a rule.
// Rules run in field order and the first failure is reported.
type Rules struct {
	// MinLength is the minimum number of characters.
	MinLength int `yaml:"min_length" json:"min_length"`

	// MaxLength is the maximum number of characters.
	MaxLength int `yaml:"max_length" json:"max_length"`

	// Pattern is a regular expression the value must match.
	Pattern string `yaml:"pattern" json:"pattern"`

	// PatternMessage replaces the default pattern rejection message.
	PatternMessage string `yaml:"pattern_message" json:"pattern_message"`

	// Require lists character classes the value must contain: lower,
	// upper, digit, symbol.
	Require []string `yaml:"require" json:"require"`

	// BcryptHash verifies the value against a stored bcrypt hash.
	BcryptHash string `yaml:"bcrypt_hash" json:"bcrypt_hash"`

	// BcryptMessage replaces the default hash mismatch message.
	BcryptMessage string `yaml:"bcrypt_message" json:"bcrypt_message"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Title:         "Password",
		Width:         securefield.DefaultWidth,
		EchoCharacter: string(securefield.DefaultEchoCharacter),
		Theme:         tui.ThemeAuto,
	}
}

// Load loads configuration from the SECURE_PROMPT_CONFIG environment
// variable. There is no fallback: if the variable is not set, this
// fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a field config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path over [Default] and validates
// it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a single file into the current config, choosing the
// decoder by extension.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing YAML config %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), c); err != nil {
			return fmt.Errorf("parsing JSONC config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q (want .yaml, .yml, .json, or .jsonc)", path, extension)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.PasswordFile = expandVars(c.PasswordFile, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, fmt.Errorf("title is required"))
	}
	if c.Width < 4 {
		errs = append(errs, fmt.Errorf("width must be at least 4, got %d", c.Width))
	}
	if c.CharLimit < 0 {
		errs = append(errs, fmt.Errorf("char_limit must not be negative"))
	}
	if utf8.RuneCountInString(c.EchoCharacter) != 1 {
		errs = append(errs, fmt.Errorf("echo_character must be exactly one character, got %q", c.EchoCharacter))
	}

	themes := []tui.ThemeMode{tui.ThemeAuto, tui.ThemeDark, tui.ThemeLight}
	if !slices.Contains(themes, c.Theme) {
		errs = append(errs, fmt.Errorf("theme must be one of: %v", themes))
	}

	if c.Rules.MinLength < 0 || c.Rules.MaxLength < 0 {
		errs = append(errs, fmt.Errorf("rules lengths must not be negative"))
	}
	if c.Rules.MaxLength > 0 && c.Rules.MinLength > c.Rules.MaxLength {
		errs = append(errs, fmt.Errorf("rules.min_length %d exceeds rules.max_length %d", c.Rules.MinLength, c.Rules.MaxLength))
	}
	if _, err := c.Rules.Validator(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validator builds the validator chain the rules describe, in field
// order. Returns nil when no rule is set.
func (r Rules) Validator() (securefield.Validator, error) {
	var validators []securefield.Validator

	if r.MinLength > 0 {
		validators = append(validators, securefield.MinLength(r.MinLength))
	}
	if r.MaxLength > 0 {
		validators = append(validators, securefield.MaxLength(r.MaxLength))
	}
	if r.Pattern != "" {
		pattern, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rules.pattern: %w", err)
		}
		validators = append(validators, securefield.MatchPattern(pattern, r.PatternMessage))
	}
	if len(r.Require) > 0 {
		classes := make([]securefield.CharacterClass, 0, len(r.Require))
		for _, name := range r.Require {
			class, err := securefield.ParseCharacterClass(name)
			if err != nil {
				return nil, fmt.Errorf("rules.require: %w", err)
			}
			classes = append(classes, class)
		}
		validators = append(validators, securefield.RequireClasses(classes...))
	}
	if r.BcryptHash != "" {
		validators = append(validators, securefield.MatchBcryptHash([]byte(r.BcryptHash), r.BcryptMessage))
	}

	switch len(validators) {
	case 0:
		return nil, nil
	case 1:
		return validators[0], nil
	default:
		return securefield.All(validators...), nil
	}
}

// FieldOptions converts the configuration into field options. Theme,
// callbacks, clock and logger are left for the caller.
func (c *Config) FieldOptions() (securefield.Options, error) {
	validator, err := c.Rules.Validator()
	if err != nil {
		return securefield.Options{}, err
	}
	var echo rune
	if c.EchoCharacter != "" {
		echo, _ = utf8.DecodeRuneInString(c.EchoCharacter)
	}

	return securefield.Options{
		ClearButtonHidden: c.HideClear,
		Mandatory:         c.Mandatory,
		Validator:         validator,
		EchoCharacter:     echo,
		Width:             c.Width,
		CharLimit:         c.CharLimit,
		AllowReveal:       c.AllowReveal,
		ShowFingerprint:   c.ShowFingerprint,
	}, nil
}
