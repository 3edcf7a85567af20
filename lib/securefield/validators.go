// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package securefield

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// The stock validators below accept an empty value. Emptiness is the
// mandatory flag's concern; a non-mandatory field left blank is valid.

// FromResult adapts a check returning (valid, error): a non-nil error
// rejects with its text, otherwise validity is the returned flag.
func FromResult(check func(value string) (bool, error)) Validator {
	return func(value string) Outcome {
		valid, err := check(value)
		if err != nil {
			return RejectError(err)
		}
		return AcceptWithFlag(valid)
	}
}

// MinLength rejects values shorter than minimum characters (runes).
func MinLength(minimum int) Validator {
	return func(value string) Outcome {
		if value == "" {
			return Accept()
		}
		if utf8.RuneCountInString(value) < minimum {
			return Reject(fmt.Sprintf("Must be at least %d characters", minimum))
		}
		return Accept()
	}
}

// MaxLength rejects values longer than maximum characters (runes).
func MaxLength(maximum int) Validator {
	return func(value string) Outcome {
		if utf8.RuneCountInString(value) > maximum {
			return Reject(fmt.Sprintf("Must be at most %d characters", maximum))
		}
		return Accept()
	}
}

// MatchPattern rejects values that do not match pattern. An empty
// message defaults to naming the pattern.
func MatchPattern(pattern *regexp.Regexp, message string) Validator {
	if message == "" {
		message = fmt.Sprintf("Must match pattern: %s", pattern.String())
	}
	return func(value string) Outcome {
		if value == "" {
			return Accept()
		}
		if !pattern.MatchString(value) {
			return Reject(message)
		}
		return Accept()
	}
}

// CharacterClass is a category of characters a value can be required
// to contain.
type CharacterClass string

const (
	ClassLower  CharacterClass = "lower"
	ClassUpper  CharacterClass = "upper"
	ClassDigit  CharacterClass = "digit"
	ClassSymbol CharacterClass = "symbol"
)

// description is the phrase used in rejection messages.
func (class CharacterClass) description() string {
	switch class {
	case ClassLower:
		return "a lowercase letter"
	case ClassUpper:
		return "an uppercase letter"
	case ClassDigit:
		return "a digit"
	case ClassSymbol:
		return "a symbol"
	default:
		return string(class)
	}
}

func (class CharacterClass) matches(character rune) bool {
	switch class {
	case ClassLower:
		return unicode.IsLower(character)
	case ClassUpper:
		return unicode.IsUpper(character)
	case ClassDigit:
		return unicode.IsDigit(character)
	case ClassSymbol:
		return unicode.IsPunct(character) || unicode.IsSymbol(character)
	default:
		return false
	}
}

// ParseCharacterClass converts a configuration string into a class.
func ParseCharacterClass(name string) (CharacterClass, error) {
	class := CharacterClass(strings.ToLower(strings.TrimSpace(name)))
	switch class {
	case ClassLower, ClassUpper, ClassDigit, ClassSymbol:
		return class, nil
	default:
		return "", fmt.Errorf("unknown character class %q (want lower, upper, digit, or symbol)", name)
	}
}

// RequireClasses rejects values missing any of the given classes. The
// message lists every missing class in the order given.
func RequireClasses(classes ...CharacterClass) Validator {
	return func(value string) Outcome {
		if value == "" {
			return Accept()
		}
		var missing []string
		for _, class := range classes {
			if !strings.ContainsFunc(value, class.matches) {
				missing = append(missing, class.description())
			}
		}
		if len(missing) > 0 {
			return Reject("Must contain " + strings.Join(missing, ", "))
		}
		return Accept()
	}
}

// MatchValue rejects values that differ from other(), compared in
// constant time. Used for confirmation fields. An empty message
// defaults to "Values do not match".
func MatchValue(other func() string, message string) Validator {
	if message == "" {
		message = "Values do not match"
	}
	return func(value string) Outcome {
		if value == "" {
			return Accept()
		}
		if subtle.ConstantTimeCompare([]byte(value), []byte(other())) != 1 {
			return Reject(message)
		}
		return Accept()
	}
}

// MatchBcryptHash rejects values that do not match a stored bcrypt
// hash. An empty message defaults to "Incorrect password". A malformed
// hash rejects with the bcrypt error text. bcrypt is deliberately slow;
// expect a noticeable pause per keystroke at high cost factors.
func MatchBcryptHash(hash []byte, message string) Validator {
	if message == "" {
		message = "Incorrect password"
	}
	return func(value string) Outcome {
		if value == "" {
			return Accept()
		}
		err := bcrypt.CompareHashAndPassword(hash, []byte(value))
		switch {
		case err == nil:
			return Accept()
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return Reject(message)
		default:
			return RejectError(err)
		}
	}
}

// All runs validators in order and returns the first outcome that
// makes the value invalid. Nil validators are skipped.
func All(validators ...Validator) Validator {
	return func(value string) Outcome {
		for _, validator := range validators {
			if validator == nil {
				continue
			}
			if outcome := validator(value); !outcome.Valid() {
				return outcome
			}
		}
		return Accept()
	}
}
