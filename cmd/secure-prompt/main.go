// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"filippo.io/age"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/secureinput/lib/config"
	"github.com/bureau-foundation/secureinput/lib/sealed"
	"github.com/bureau-foundation/secureinput/lib/secret"
	"github.com/bureau-foundation/secureinput/lib/securefield"
	"github.com/bureau-foundation/secureinput/lib/tui"
	"github.com/bureau-foundation/secureinput/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var categorized *cliError
		if errors.As(err, &categorized) && categorized.category == categoryValidation {
			os.Exit(exitValidation)
		}
		os.Exit(exitError)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	var flags promptFlags
	flagSet := pflag.NewFlagSet("secure-prompt", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flags.register(flagSet)

	// Handle --version before flag parsing to match the other binaries.
	if len(args) > 0 && args[0] == "--version" {
		version.Print(stdout, "secure-prompt")
		return nil
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return validation("%w", err).withHint("Run 'secure-prompt --help' for usage.")
	}
	if flags.help {
		printHelp(stderr, flagSet)
		return nil
	}
	if remaining := flagSet.Args(); len(remaining) > 0 {
		return validation("unexpected argument: %s", remaining[0])
	}

	if flags.preview {
		if err := renderPreviews(stdout); err != nil {
			return internal("rendering previews: %w", err)
		}
		return nil
	}

	cfg, err := flags.loadConfig(flagSet)
	if err != nil {
		return err
	}

	var recipients []age.Recipient
	if len(cfg.Recipients) > 0 {
		recipients, err = sealed.ParseRecipients(cfg.Recipients)
		if err != nil {
			return validation("%w", err).withHint("Recipients are age x25519 public keys (age1...), as printed by age-keygen -y.")
		}
	}

	options, err := cfg.FieldOptions()
	if err != nil {
		return validation("%w", err)
	}

	interactive := cfg.PasswordFile == ""
	logger, closeLog, err := newLogger(flags.logOutput, interactive, stderr)
	if err != nil {
		return validation("cannot open log file %s: %w", flags.logOutput, err)
	}
	defer closeLog()
	logger = logger.With("command", "secure-prompt")

	var value *secret.Buffer
	if interactive {
		if !isTerminal(stderr) {
			return validation("stderr is not a terminal").
				withHint("Use --password-file (or --password-file - for stdin) for non-interactive input.")
		}
		value, err = runInteractive(cfg, options, stderr, logger)
	} else {
		value, err = readHeadless(cfg.PasswordFile, stdin, stderr, options.Mandatory, options.Validator, logger)
	}
	if err != nil {
		return err
	}
	if value != nil {
		defer value.Close()
	}

	logger.Info("value accepted", "encrypted", len(recipients) > 0)
	return writeSecret(stdout, value, recipients)
}

// runInteractive shows the prompt on stderr and returns the accepted
// value. Cancelling exits with exitCancelled.
func runInteractive(cfg *config.Config, options securefield.Options, stderr io.Writer, logger *slog.Logger) (*secret.Buffer, error) {
	// stdout usually feeds a pipe or a command substitution; styles are
	// computed for the terminal the prompt is drawn on.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(stderr))
	options.Theme = tui.ResolveTheme(cfg.Theme, termenv.NewOutput(stderr))
	options.Logger = logger

	model := newPromptModel(cfg.Title, options, cfg.Confirm, logger)
	program := tea.NewProgram(model,
		tea.WithOutput(stderr),
		tea.WithInputTTY(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return nil, internal("running prompt: %w", err)
	}

	switch model.outcome {
	case outcomeAccepted:
		if model.fields[0].Value() == "" {
			return nil, nil
		}
		value, err := model.fields[0].Secret()
		if err != nil {
			return nil, internal("protecting value: %w", err)
		}
		return value, nil
	default:
		logger.Info("prompt cancelled")
		return nil, &exitCodeError{code: exitCancelled}
	}
}

func printHelp(writer io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(writer, `secure-prompt: ask for a secret in the terminal and print it to stdout.

The prompt is drawn on stderr, so the value can be captured with a
command substitution. Typed characters are masked. The field's title
floats above the input once it has a value, and validation messages
replace it while the value is invalid. Enter submits once the value is
valid; Esc cancels.

With --recipient, the value is printed as ASCII-armored age ciphertext
instead of plaintext. With --password-file, no prompt is shown: the
value is read from the file (or stdin for "-") and validated with the
same rules.

Usage:
  secure-prompt [flags]

Examples:
  # Ask for a mandatory passphrase of at least 12 characters
  PASSPHRASE=$(secure-prompt --title Passphrase --mandatory --min-length 12)

  # Ask twice and encrypt the result to a recipient
  secure-prompt --confirm --recipient age1... > token.age

  # Validate a value from a file without prompting
  secure-prompt --password-file ./token --require lower,digit

Exit codes:
  0    value accepted
  1    error
  2    invalid input or rejected value
  130  cancelled

Flags:
`)
	flagSet.SetOutput(writer)
	flagSet.PrintDefaults()
}
