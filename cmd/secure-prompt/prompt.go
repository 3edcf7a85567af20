// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/secureinput/lib/securefield"
	"github.com/bureau-foundation/secureinput/lib/tui"
)

// promptMargin is the blank border around the prompt on the alternate
// screen. Field origins are offset by it for mouse hit-testing.
const (
	promptMarginTop  = 1
	promptMarginLeft = 2
)

// promptOutcome is how the prompt ended.
type promptOutcome int

const (
	outcomePending promptOutcome = iota
	outcomeAccepted
	outcomeCancelled
)

// promptKeyMap holds the prompt-level bindings. Field bindings (clear,
// reveal) are owned by each field.
type promptKeyMap struct {
	Submit   key.Binding
	Next     key.Binding
	Previous key.Binding
	Cancel   key.Binding
}

var defaultPromptKeyMap = promptKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-tab", "previous"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// promptModel hosts the secret field and, with --confirm, a second
// field that must repeat it. Enter submits once every field is valid.
type promptModel struct {
	fields  []*securefield.Field
	valid   []bool
	focus   int
	keys    promptKeyMap
	theme   tui.Theme
	outcome promptOutcome
	logger  *slog.Logger
}

// newPromptModel creates the prompt. options configures the primary
// field; the confirmation field, when requested, shares its
// presentation but validates only that both values match.
func newPromptModel(title string, options securefield.Options, confirm bool, logger *slog.Logger) *promptModel {
	model := &promptModel{
		keys:   defaultPromptKeyMap,
		theme:  options.Theme,
		logger: logger,
	}

	// The confirmation validator reads the primary value, so every
	// primary edit re-checks it.
	var confirmation *securefield.Field
	primaryOptions := options
	primaryOptions.OnValueChange = func(string) {
		if confirmation != nil {
			confirmation.Revalidate()
		}
	}
	primaryOptions.OnValidityChange = model.validitySink(0)
	primaryOptions.Logger = logger.With("field", "primary")
	primary := securefield.New(title, primaryOptions)
	model.fields = append(model.fields, primary)

	if confirm {
		confirmOptions := options
		confirmOptions.Value = ""
		// An empty confirmation is caught by submittable, not shown
		// as an error before the user reaches the field.
		confirmOptions.Mandatory = false
		confirmOptions.Validator = securefield.MatchValue(primary.Value, "")
		confirmOptions.OnValidityChange = model.validitySink(1)
		confirmOptions.Logger = logger.With("field", "confirm")
		confirmation = securefield.New("Confirm "+strings.ToLower(title), confirmOptions)
		model.fields = append(model.fields, confirmation)
	}

	model.valid = make([]bool, len(model.fields))
	for index := range model.valid {
		model.valid[index] = true
	}
	model.layout()
	return model
}

func (model *promptModel) validitySink(index int) func(bool) {
	return func(valid bool) {
		model.valid[index] = valid
	}
}

// layout records each field's screen origin: fields stack vertically
// with one blank row between them.
func (model *promptModel) layout() {
	y := promptMarginTop
	for _, field := range model.fields {
		field.SetPosition(promptMarginLeft, y)
		y += field.Height() + 1
	}
}

func (model *promptModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(model.fields))
	for _, field := range model.fields {
		cmds = append(cmds, field.Init())
	}
	for _, field := range model.fields[1:] {
		field.Blur()
	}
	return tea.Batch(cmds...)
}

func (model *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, model.keys.Cancel):
			model.outcome = outcomeCancelled
			return model, tea.Quit
		case key.Matches(msg, model.keys.Submit):
			if model.submittable() {
				model.outcome = outcomeAccepted
				return model, tea.Quit
			}
			// Enter on the primary field with an empty confirmation
			// moves on instead of refusing.
			if model.focus < len(model.fields)-1 && model.fields[model.focus+1].Value() == "" {
				return model, model.moveFocus(1)
			}
			model.logger.Debug("submit refused", "focus", model.focus)
			return model, nil
		case key.Matches(msg, model.keys.Next):
			return model, model.moveFocus(1)
		case key.Matches(msg, model.keys.Previous):
			return model, model.moveFocus(-1)
		}
		cmds := []tea.Cmd{model.fields[model.focus].Update(msg)}
		// An edit can revalidate the other fields through callbacks;
		// start their label and message transitions too.
		for index, field := range model.fields {
			if index != model.focus {
				cmds = append(cmds, field.AnimationCmd())
			}
		}
		return model, tea.Batch(cmds...)
	}

	// Frames, cursor blinks and mouse events are addressed to a field
	// by ID or position; every field filters its own.
	cmds := make([]tea.Cmd, 0, len(model.fields))
	for _, field := range model.fields {
		cmds = append(cmds, field.Update(msg))
	}
	return model, tea.Batch(cmds...)
}

// submittable reports whether every field passed its last validation
// and the confirmation, if any, repeats the primary value. The
// confirmation validator accepts an empty value, so the match is
// checked again here.
func (model *promptModel) submittable() bool {
	for _, valid := range model.valid {
		if !valid {
			return false
		}
	}
	if len(model.fields) > 1 {
		primary, confirmation := model.fields[0].Value(), model.fields[1].Value()
		return subtle.ConstantTimeCompare([]byte(primary), []byte(confirmation)) == 1
	}
	return true
}

func (model *promptModel) moveFocus(delta int) tea.Cmd {
	if len(model.fields) < 2 {
		return nil
	}
	model.fields[model.focus].Blur()
	model.focus = (model.focus + delta + len(model.fields)) % len(model.fields)
	return model.fields[model.focus].Focus()
}

func (model *promptModel) View() string {
	var sections []string
	for _, field := range model.fields {
		sections = append(sections, field.View())
	}
	sections = append(sections, model.helpLine())
	body := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		MarginTop(promptMarginTop).
		MarginLeft(promptMarginLeft).
		Render(body)
}

// helpLine lists the active bindings. The submit hint is dimmed while
// a field is invalid.
func (model *promptModel) helpLine() string {
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	active := lipgloss.NewStyle().Foreground(model.theme.NormalText)

	submitStyle := active
	if !model.submittable() {
		submitStyle = faint
	}

	bindings := []key.Binding{model.keys.Submit}
	if len(model.fields) > 1 {
		bindings = append(bindings, model.keys.Next)
	}
	bindings = append(bindings, model.fields[model.focus].KeyBindings()...)
	bindings = append(bindings, model.keys.Cancel)

	parts := make([]string, 0, len(bindings))
	for index, binding := range bindings {
		style := faint
		if index == 0 {
			style = submitStyle
		}
		help := binding.Help()
		parts = append(parts, style.Render(help.Key+" "+help.Desc))
	}
	return strings.Join(parts, faint.Render(" • "))
}
