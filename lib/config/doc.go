// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads secure-prompt field configuration.
//
// Configuration is loaded from a single file specified by either the
// SECURE_PROMPT_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There are no fallbacks, no ~/.config
// discovery, and no automatic file search.
//
// The file format follows the extension: .yaml and .yml are YAML,
// .json and .jsonc are JSON with // and /* */ comments and trailing
// commas allowed. Both formats use the same snake_case keys.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded.
//
// Key exports:
//
//   - [Config] -- field presentation, validation [Rules], output
//   - [Default] -- the configuration used when no file is given
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.FieldOptions] -- converts to securefield.Options
package config
