// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package securefield

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/secureinput/lib/secret"
	"github.com/bureau-foundation/secureinput/lib/tui"
)

// fieldHeight is the number of rows a field renders: the floating
// label row and the input row.
const fieldHeight = 2

// clearButtonGap is the padding between the input area and the clear
// button. Reserved only when the button is shown.
const clearButtonGap = 1

// clearButtonGlyph is the clear affordance.
const clearButtonGlyph = "⊗"

// ErrEmpty is returned by Secret when the field holds no value.
var ErrEmpty = errors.New("securefield: field is empty")

// nextFieldID distinguishes animation frames of fields that share a
// program.
var nextFieldID atomic.Int64

// frameMsg drives label and feedback animation. Frames from another
// field or from a superseded animation are ignored.
type frameMsg struct {
	fieldID    int64
	generation int
}

// Field is a masked text input with a floating label, inline
// validation message and clear button. It follows the bubbletea
// component contract with pointer receivers: the host forwards
// messages to Update, batches the returned command, and calls View.
//
// Validation runs when the field mounts (Init) and after every value
// change. The resulting validity is pushed to Options.OnValidityChange.
type Field struct {
	id      int64
	title   string
	options Options
	input   textinput.Model

	state   State
	mounted bool

	revealed bool

	// label moves between 0 (title inline as placeholder) and 1
	// (title floated above the input). feedback moves between 0
	// (no message) and 1 (message in full error color).
	label      tui.Transition
	feedback   tui.Transition
	generation int

	originX int
	originY int

	fingerprint fingerprintKey
}

// New creates a field titled title. The field is inert until Init is
// called: its state reads valid and no callbacks fire.
func New(title string, options Options) *Field {
	options = options.withDefaults()

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = title
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = options.EchoCharacter
	input.CharLimit = options.CharLimit
	// One column is reserved for the cursor past the last character.
	input.Width = max(options.Width-1, 1)
	input.TextStyle = lipgloss.NewStyle().Foreground(options.Theme.NormalText)
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(options.Theme.Placeholder)
	input.Cursor.Style = lipgloss.NewStyle().Foreground(options.Theme.Cursor)
	input.SetValue(options.Value)

	options.KeyMap.Clear.SetEnabled(!options.ClearButtonHidden)
	options.KeyMap.Reveal.SetEnabled(options.AllowReveal)

	return &Field{
		id:          nextFieldID.Add(1),
		title:       title,
		options:     options,
		input:       input,
		state:       State{Valid: true},
		fingerprint: newFingerprintKey(),
	}
}

// Init mounts the field: it runs the first validation, places the
// label without animating, and takes keyboard focus.
func (field *Field) Init() tea.Cmd {
	field.mounted = true
	field.revalidate()

	field.label = tui.NewTransition(field.labelTarget())
	field.feedback = tui.NewTransition(field.feedbackTarget())

	return field.Focus()
}

// Update handles a message. Key messages reach the field only while
// it has focus; mouse releases on the clear button clear it regardless
// of focus.
func (field *Field) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.fieldID != field.id || msg.generation != field.generation {
			return nil
		}
		return field.nextFrame()

	case tea.KeyMsg:
		if !field.input.Focused() {
			return nil
		}
		switch {
		case key.Matches(msg, field.options.KeyMap.Clear):
			field.Clear()
			return field.startAnimation()
		case key.Matches(msg, field.options.KeyMap.Reveal):
			field.toggleReveal()
			return nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
			field.ClearButtonContains(msg.X, msg.Y) {
			field.Clear()
			return field.startAnimation()
		}
		return nil
	}

	before := field.input.Value()
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	if after := field.input.Value(); after != before {
		field.options.OnValueChange(after)
		if field.mounted {
			field.revalidate()
		}
		return tea.Batch(cmd, field.startAnimation())
	}
	return cmd
}

// Value returns the current field content.
func (field *Field) Value() string {
	return field.input.Value()
}

// SetValue replaces the content from the host side. The new value is
// validated (once the field is mounted) but not echoed back through
// OnValueChange. Setting the current value is a no-op.
//
// The label moves to its new position on the next frame tick; hosts
// that need the animation should call SetValue from Update and batch
// AnimationCmd.
func (field *Field) SetValue(value string) {
	if value == field.input.Value() {
		return
	}
	field.input.SetValue(value)
	if field.mounted {
		field.revalidate()
	}
}

// Clear empties the field, as activating the clear button does. The
// change is reported through OnValueChange and validated. Clearing an
// empty field does nothing.
func (field *Field) Clear() {
	if field.input.Value() == "" {
		return
	}
	field.input.SetValue("")
	field.options.OnValueChange("")
	if field.mounted {
		field.revalidate()
	}
}

// Revalidate re-runs validation against the current value. Hosts call
// it when a validator depends on state outside the field, such as a
// confirmation field whose validator reads another field's value. Has
// no effect before Init.
func (field *Field) Revalidate() {
	if field.mounted {
		field.revalidate()
	}
}

// AnimationCmd starts frame ticks if the label or the validation
// message has a pending transition. Update already does this for
// changes it makes; hosts call it after SetValue or Clear.
func (field *Field) AnimationCmd() tea.Cmd {
	return field.startAnimation()
}

// State returns the result of the last validation run.
func (field *Field) State() State {
	return field.state
}

// Valid reports whether the last validation run accepted the value.
func (field *Field) Valid() bool {
	return field.state.Valid
}

// Message returns the validation message, empty when valid.
func (field *Field) Message() string {
	return field.state.Message
}

// Title returns the field's label text.
func (field *Field) Title() string {
	return field.title
}

// Focus gives the field keyboard focus and returns the cursor blink
// command.
func (field *Field) Focus() tea.Cmd {
	return field.input.Focus()
}

// Blur removes keyboard focus.
func (field *Field) Blur() {
	field.input.Blur()
}

// Focused reports whether the field has keyboard focus.
func (field *Field) Focused() bool {
	return field.input.Focused()
}

// SetPosition records the screen cell of the field's top-left corner.
// Hosts call it during layout so mouse clicks can be hit-tested.
func (field *Field) SetPosition(x, y int) {
	field.originX = x
	field.originY = y
}

// ClearButtonContains reports whether the screen cell (x, y) is the
// clear button. Always false when the button is hidden.
func (field *Field) ClearButtonContains(x, y int) bool {
	if field.options.ClearButtonHidden {
		return false
	}
	return y == field.originY+1 && x == field.originX+field.clearButtonColumn()
}

// Height returns the number of rows View renders.
func (field *Field) Height() int {
	return fieldHeight
}

// Width returns the number of columns View renders.
func (field *Field) Width() int {
	width := field.options.Width
	if !field.options.ClearButtonHidden {
		width = field.clearButtonColumn() + 1
	}
	if field.options.ShowFingerprint {
		width += 1 + fingerprintSwatches
	}
	return width
}

// Revealed reports whether the value is currently shown unmasked.
func (field *Field) Revealed() bool {
	return field.revealed
}

// Fingerprint returns the color swatches for the current value, or
// nil when the field is empty. Colors are stable for the lifetime of
// the field and differ between fields.
func (field *Field) Fingerprint() []lipgloss.Color {
	return field.fingerprint.colors(field.input.Value())
}

// Secret copies the value into locked memory. The caller owns the
// returned buffer and must Close it. The text input keeps its own
// copy on the heap until the field is cleared and collected.
func (field *Field) Secret() (*secret.Buffer, error) {
	value := field.input.Value()
	if value == "" {
		return nil, ErrEmpty
	}
	return secret.NewFromString(value)
}

// KeyBindings returns the field's enabled bindings for help rendering.
func (field *Field) KeyBindings() []key.Binding {
	var bindings []key.Binding
	for _, binding := range []key.Binding{field.options.KeyMap.Clear, field.options.KeyMap.Reveal} {
		if binding.Enabled() {
			bindings = append(bindings, binding)
		}
	}
	return bindings
}

func (field *Field) clearButtonColumn() int {
	return field.options.Width + clearButtonGap
}

func (field *Field) toggleReveal() {
	field.revealed = !field.revealed
	if field.revealed {
		field.input.EchoMode = textinput.EchoNormal
	} else {
		field.input.EchoMode = textinput.EchoPassword
	}
}

// revalidate runs the validation procedure, pushes validity to the
// host, and retargets the label and message transitions.
func (field *Field) revalidate() {
	value := field.input.Value()
	field.state = Validate(value, field.options.Mandatory, field.options.Validator)

	field.options.Logger.Debug("validated field",
		"title", field.title,
		"length", len([]rune(value)),
		"valid", field.state.Valid,
	)
	field.options.OnValidityChange(field.state.Valid)

	now := field.options.Clock.Now()
	field.label.Retarget(field.labelTarget(), now)
	field.feedback.Retarget(field.feedbackTarget(), now)
}

func (field *Field) labelTarget() float64 {
	if field.input.Value() == "" {
		return 0
	}
	return 1
}

func (field *Field) feedbackTarget() float64 {
	if field.state.Valid {
		return 0
	}
	return 1
}

// startAnimation begins a new frame chain when a transition is
// moving. The generation bump retires any chain already in flight so
// only one tick is outstanding per field.
func (field *Field) startAnimation() tea.Cmd {
	if !field.animating() {
		return nil
	}
	field.generation++
	return field.scheduleFrame()
}

func (field *Field) nextFrame() tea.Cmd {
	if !field.animating() {
		return nil
	}
	return field.scheduleFrame()
}

func (field *Field) animating() bool {
	now := field.options.Clock.Now()
	labelMoving := field.label.Animating(now)
	feedbackMoving := field.feedback.Animating(now)
	return labelMoving || feedbackMoving
}

func (field *Field) scheduleFrame() tea.Cmd {
	id, generation := field.id, field.generation
	return tea.Tick(tui.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{fieldID: id, generation: generation}
	})
}
