// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package securefield

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/secureinput/lib/clock"
	"github.com/bureau-foundation/secureinput/lib/tui"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// recorder captures callback invocations.
type recorder struct {
	values     []string
	validities []bool
}

func (r *recorder) options(options Options) Options {
	options.OnValueChange = func(value string) { r.values = append(r.values, value) }
	options.OnValidityChange = func(valid bool) { r.validities = append(r.validities, valid) }
	if options.Clock == nil {
		options.Clock = clock.Fake(epoch)
	}
	return options
}

func (r *recorder) lastValidity(t *testing.T) bool {
	t.Helper()
	if len(r.validities) == 0 {
		t.Fatal("OnValidityChange was never called")
	}
	return r.validities[len(r.validities)-1]
}

func typeText(field *Field, text string) {
	for _, character := range text {
		field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}
}

func TestFieldInertBeforeInit(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{Mandatory: true}))

	if !field.Valid() {
		t.Error("unmounted field should read valid")
	}
	if len(calls.validities) != 0 {
		t.Errorf("OnValidityChange called %d times before mount", len(calls.validities))
	}

	field.SetValue("abc")
	field.SetValue("")
	if len(calls.validities) != 0 {
		t.Error("SetValue before mount should not validate")
	}
}

func TestFieldInitValidatesMandatoryEmpty(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{Mandatory: true}))

	if cmd := field.Init(); cmd == nil {
		t.Error("Init should return the focus blink command")
	}
	if !field.Focused() {
		t.Error("Init should focus the field")
	}
	if field.Valid() {
		t.Error("mandatory empty field should be invalid after Init")
	}
	if field.Message() != MandatoryMessage {
		t.Errorf("Message() = %q, want %q", field.Message(), MandatoryMessage)
	}
	if calls.lastValidity(t) {
		t.Error("OnValidityChange should have received false")
	}
	if len(calls.values) != 0 {
		t.Error("Init must not report a value change")
	}
}

func TestFieldInitWithInitialValue(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{
		Value:     "abc",
		Validator: func(string) Outcome { return Reject("too short") },
	}))
	field.Init()

	if field.Valid() || field.Message() != "too short" {
		t.Errorf("State() = %+v, want invalid with \"too short\"", field.State())
	}
	if calls.lastValidity(t) {
		t.Error("OnValidityChange should have received false")
	}
}

func TestFieldInitValidWithoutValidator(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{Value: "abc"}))
	field.Init()

	if !field.Valid() || field.Message() != "" {
		t.Errorf("State() = %+v, want valid with no message", field.State())
	}
	if !calls.lastValidity(t) {
		t.Error("OnValidityChange should have received true")
	}
}

func TestFieldTypingRevalidates(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{
		Mandatory: true,
		Validator: MinLength(3),
	}))
	field.Init()

	typeText(field, "ab")
	if field.Value() != "ab" {
		t.Fatalf("Value() = %q, want %q", field.Value(), "ab")
	}
	if field.Valid() || field.Message() != "Must be at least 3 characters" {
		t.Errorf("after \"ab\": State() = %+v", field.State())
	}

	typeText(field, "c")
	if !field.Valid() {
		t.Errorf("after \"abc\": State() = %+v, want valid", field.State())
	}

	want := []string{"a", "ab", "abc"}
	if len(calls.values) != len(want) {
		t.Fatalf("OnValueChange calls = %q, want %q", calls.values, want)
	}
	for index := range want {
		if calls.values[index] != want[index] {
			t.Errorf("OnValueChange[%d] = %q, want %q", index, calls.values[index], want[index])
		}
	}
	// One push from Init plus one per keystroke.
	if len(calls.validities) != 4 {
		t.Errorf("OnValidityChange called %d times, want 4", len(calls.validities))
	}
}

func TestFieldBackspaceToEmptyMandatory(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{Mandatory: true, Value: "a"}))
	field.Init()

	field.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if field.Value() != "" {
		t.Fatalf("Value() = %q after backspace", field.Value())
	}
	if field.Message() != MandatoryMessage {
		t.Errorf("Message() = %q, want %q", field.Message(), MandatoryMessage)
	}
	if calls.lastValidity(t) {
		t.Error("OnValidityChange should have received false")
	}
}

func TestFieldIgnoresKeysWithoutFocus(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{Value: "abc"}))
	field.Init()
	field.Blur()

	typeText(field, "x")
	field.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if field.Value() != "abc" {
		t.Errorf("Value() = %q, unfocused field should ignore keys", field.Value())
	}
	if len(calls.values) != 0 {
		t.Errorf("OnValueChange called with %q", calls.values)
	}
}

func TestFieldClearKey(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{Mandatory: true, Value: "secret"}))
	field.Init()

	cmd := field.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if field.Value() != "" {
		t.Fatalf("Value() = %q after clear", field.Value())
	}
	if cmd == nil {
		t.Error("clear should start the label animation")
	}
	if len(calls.values) != 1 || calls.values[0] != "" {
		t.Errorf("OnValueChange calls = %q, want [\"\"]", calls.values)
	}
	if field.Valid() || field.Message() != MandatoryMessage {
		t.Errorf("State() = %+v after clearing a mandatory field", field.State())
	}
}

func TestFieldClearKeyDisabledWhenButtonHidden(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{Value: "secret", ClearButtonHidden: true}))
	field.Init()

	field.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if field.Value() != "secret" {
		t.Errorf("Value() = %q, hidden clear button should disable the clear key", field.Value())
	}
}

func TestFieldClearOnEmptyIsNoop(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{}))
	field.Init()
	pushes := len(calls.validities)

	field.Clear()
	if len(calls.values) != 0 {
		t.Errorf("OnValueChange called with %q", calls.values)
	}
	if len(calls.validities) != pushes {
		t.Error("clearing an empty field should not revalidate")
	}
}

func TestFieldMouseClear(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{Value: "secret", Width: 20}))
	field.Init()
	field.SetPosition(4, 10)

	// Button column: origin 4 + width 20 + gap 1. Input row: origin 10 + 1.
	if !field.ClearButtonContains(25, 11) {
		t.Fatal("ClearButtonContains(25, 11) = false")
	}
	if field.ClearButtonContains(25, 10) || field.ClearButtonContains(24, 11) {
		t.Error("ClearButtonContains should match exactly one cell")
	}

	field.Update(tea.MouseMsg{X: 25, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if field.Value() != "secret" {
		t.Fatal("press alone should not clear")
	}
	field.Update(tea.MouseMsg{X: 25, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if field.Value() != "" {
		t.Errorf("Value() = %q after clicking the clear button", field.Value())
	}

	hidden := New("Passphrase", Options{Value: "secret", Width: 20, ClearButtonHidden: true})
	hidden.Init()
	hidden.SetPosition(4, 10)
	if hidden.ClearButtonContains(25, 11) {
		t.Error("hidden clear button should not be hit")
	}
	hidden.Update(tea.MouseMsg{X: 25, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if hidden.Value() != "secret" {
		t.Error("click on a hidden clear button should do nothing")
	}
}

func TestFieldSetValueDoesNotEcho(t *testing.T) {
	var calls recorder
	field := New("Passphrase", calls.options(Options{Mandatory: true}))
	field.Init()
	pushes := len(calls.validities)

	field.SetValue("hunter2")
	if field.Value() != "hunter2" {
		t.Fatalf("Value() = %q", field.Value())
	}
	if !field.Valid() {
		t.Errorf("State() = %+v, want valid", field.State())
	}
	if len(calls.values) != 0 {
		t.Errorf("SetValue echoed through OnValueChange: %q", calls.values)
	}
	if len(calls.validities) != pushes+1 {
		t.Errorf("SetValue should validate once, got %d pushes", len(calls.validities)-pushes)
	}

	field.SetValue("hunter2")
	if len(calls.validities) != pushes+1 {
		t.Error("setting the same value should not revalidate")
	}
}

func TestFieldCharLimit(t *testing.T) {
	field := New("PIN", Options{CharLimit: 4, Clock: clock.Fake(epoch)})
	field.Init()

	typeText(field, "123456")
	if field.Value() != "1234" {
		t.Errorf("Value() = %q, want %q", field.Value(), "1234")
	}
}

func TestFieldReveal(t *testing.T) {
	field := New("Passphrase", Options{Value: "abc", AllowReveal: true, Clock: clock.Fake(epoch)})
	field.Init()

	field.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if !field.Revealed() {
		t.Fatal("reveal key should reveal")
	}
	field.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if field.Revealed() {
		t.Fatal("second press should mask again")
	}

	locked := New("Passphrase", Options{Value: "abc", Clock: clock.Fake(epoch)})
	locked.Init()
	locked.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if locked.Revealed() {
		t.Error("reveal requires AllowReveal")
	}
}

func TestFieldKeyBindings(t *testing.T) {
	field := New("Passphrase", Options{AllowReveal: true})
	if got := len(field.KeyBindings()); got != 2 {
		t.Errorf("KeyBindings() has %d entries, want 2", got)
	}

	plain := New("Passphrase", Options{ClearButtonHidden: true})
	if got := len(plain.KeyBindings()); got != 0 {
		t.Errorf("KeyBindings() has %d entries, want 0", got)
	}
}

func TestFieldKeyMapNotShared(t *testing.T) {
	New("A", Options{ClearButtonHidden: true})
	field := New("B", Options{Value: "x"})
	field.Init()

	field.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if field.Value() != "" {
		t.Error("disabling bindings on one field must not affect another")
	}
}

func TestFieldSecret(t *testing.T) {
	field := New("Passphrase", Options{})
	if _, err := field.Secret(); err != ErrEmpty {
		t.Errorf("Secret() on empty field error = %v, want ErrEmpty", err)
	}

	field.SetValue("correct horse")
	buffer, err := field.Secret()
	if err != nil {
		t.Fatalf("Secret() error: %v", err)
	}
	defer buffer.Close()
	if buffer.String() != "correct horse" {
		t.Errorf("Secret() = %q", buffer.String())
	}
}

func TestFieldAnimationFrames(t *testing.T) {
	fake := clock.Fake(epoch)
	field := New("Passphrase", Options{Clock: fake})
	field.Init()

	if field.label.Position(fake.Now()) != 0 {
		t.Fatal("empty field label should rest inline")
	}

	if cmd := field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}); cmd == nil {
		t.Fatal("first character should schedule animation frames")
	}
	generation := field.generation

	fake.Advance(tui.TransitionDuration / 2)
	position := field.label.Position(fake.Now())
	if position <= 0 || position >= 1 {
		t.Errorf("label position mid-flight = %v, want strictly between 0 and 1", position)
	}
	if cmd := field.Update(frameMsg{fieldID: field.id, generation: generation}); cmd == nil {
		t.Error("frame mid-flight should schedule another frame")
	}

	stale := frameMsg{fieldID: field.id, generation: generation - 1}
	if cmd := field.Update(stale); cmd != nil {
		t.Error("stale frame should be ignored")
	}
	other := frameMsg{fieldID: field.id + 1000, generation: generation}
	if cmd := field.Update(other); cmd != nil {
		t.Error("frame for another field should be ignored")
	}

	fake.Advance(tui.TransitionDuration)
	if cmd := field.Update(frameMsg{fieldID: field.id, generation: generation}); cmd != nil {
		t.Error("frame after the transition ends should stop the chain")
	}
	if got := field.label.Position(fake.Now()); got != 1 {
		t.Errorf("label position after transition = %v, want 1", got)
	}
}

func TestFieldSecondCharacterDoesNotRestartLabel(t *testing.T) {
	fake := clock.Fake(epoch)
	field := New("Passphrase", Options{Clock: fake})
	field.Init()

	typeText(field, "a")
	fake.Advance(tui.TransitionDuration)
	field.Update(frameMsg{fieldID: field.id, generation: field.generation})

	if cmd := field.AnimationCmd(); cmd != nil {
		t.Error("settled field should not need frames")
	}
	typeText(field, "b")
	if field.label.Animating(fake.Now()) {
		t.Error("label already floated; typing more should not animate it")
	}
}

func TestFieldUniqueIDs(t *testing.T) {
	first := New("A", Options{})
	second := New("B", Options{})
	if first.id == second.id {
		t.Errorf("fields share id %d", first.id)
	}
}

func TestFieldRevalidateFollowsExternalState(t *testing.T) {
	expected := "abc"
	field := New("Confirm", Options{
		Value:     "abc",
		Validator: MatchValue(func() string { return expected }, ""),
		Clock:     clock.Fake(epoch),
	})

	field.Revalidate()
	if !field.Valid() {
		t.Fatal("Revalidate before Init should not change state")
	}

	field.Init()
	if !field.Valid() {
		t.Fatalf("State() = %+v, want valid", field.State())
	}

	expected = "abd"
	field.Revalidate()
	if field.Valid() || field.Message() != "Values do not match" {
		t.Errorf("State() = %+v after the other value changed", field.State())
	}
}
