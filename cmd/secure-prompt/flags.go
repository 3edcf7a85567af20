// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/secureinput/lib/config"
	"github.com/bureau-foundation/secureinput/lib/tui"
)

// promptFlags holds the command line. Flags that are set override the
// corresponding config file values; unset flags leave them alone.
type promptFlags struct {
	configPath     string
	title          string
	mandatory      bool
	hideClear      bool
	minLength      int
	pattern        string
	patternMessage string
	require        []string
	confirm        bool
	reveal         bool
	fingerprint    bool
	passwordFile   string
	recipients     []string
	theme          string
	preview        bool
	logOutput      string
	help           bool
}

func (flags *promptFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&flags.configPath, "config", "c", "", "field config file (.yaml, .yml, .json, .jsonc); default $"+config.EnvironmentVariable)
	flagSet.StringVarP(&flags.title, "title", "t", "", "field label (default \"Password\")")
	flagSet.BoolVar(&flags.mandatory, "mandatory", false, "reject an empty value")
	flagSet.BoolVar(&flags.hideClear, "hide-clear", false, "hide the clear button")
	flagSet.IntVar(&flags.minLength, "min-length", 0, "minimum number of characters")
	flagSet.StringVar(&flags.pattern, "pattern", "", "regular expression the value must match")
	flagSet.StringVar(&flags.patternMessage, "pattern-message", "", "message shown when --pattern does not match")
	flagSet.StringSliceVar(&flags.require, "require", nil, "required character classes: lower, upper, digit, symbol")
	flagSet.BoolVar(&flags.confirm, "confirm", false, "ask twice and require both values to match")
	flagSet.BoolVar(&flags.reveal, "reveal", false, "allow revealing the value with C-r")
	flagSet.BoolVar(&flags.fingerprint, "fingerprint", false, "show color swatches derived from the value")
	flagSet.StringVar(&flags.passwordFile, "password-file", "", "read the value from a file instead of prompting (- for stdin)")
	flagSet.StringArrayVarP(&flags.recipients, "recipient", "r", nil, "encrypt output to this age public key (repeatable)")
	flagSet.StringVar(&flags.theme, "theme", "", "color theme: auto, dark, light (default \"auto\")")
	flagSet.BoolVar(&flags.preview, "preview", false, "render the reference field previews and exit")
	flagSet.StringVar(&flags.logOutput, "log-output", "", "write JSON debug log records to this file")
	flagSet.BoolVarP(&flags.help, "help", "h", false, "show help")
}

// loadConfig loads the config file named by --config, or by the
// environment variable, or the defaults, then applies the flags that
// were set and validates the result.
func (flags *promptFlags) loadConfig(flagSet *pflag.FlagSet) (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case flags.configPath != "":
		cfg, err = config.LoadFile(flags.configPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, validation("loading config: %w", err)
	}

	flags.apply(cfg, flagSet)
	if err := cfg.Validate(); err != nil {
		return nil, validation("%w", err)
	}
	return cfg, nil
}

// apply copies every flag the user set into cfg.
func (flags *promptFlags) apply(cfg *config.Config, flagSet *pflag.FlagSet) {
	changed := flagSet.Changed
	if changed("title") {
		cfg.Title = flags.title
	}
	if changed("mandatory") {
		cfg.Mandatory = flags.mandatory
	}
	if changed("hide-clear") {
		cfg.HideClear = flags.hideClear
	}
	if changed("min-length") {
		cfg.Rules.MinLength = flags.minLength
	}
	if changed("pattern") {
		cfg.Rules.Pattern = flags.pattern
	}
	if changed("pattern-message") {
		cfg.Rules.PatternMessage = flags.patternMessage
	}
	if changed("require") {
		cfg.Rules.Require = flags.require
	}
	if changed("confirm") {
		cfg.Confirm = flags.confirm
	}
	if changed("reveal") {
		cfg.AllowReveal = flags.reveal
	}
	if changed("fingerprint") {
		cfg.ShowFingerprint = flags.fingerprint
	}
	if changed("password-file") {
		cfg.PasswordFile = flags.passwordFile
	}
	if changed("recipient") {
		cfg.Recipients = flags.recipients
	}
	if changed("theme") {
		cfg.Theme = tui.ThemeMode(flags.theme)
	}
}
