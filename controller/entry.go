package controller

import (
	"fmt"
	"time"
	"unicode"
)

const maxEntryLength = 6

// Entry is the editable minutes field. It only accepts characters that can
// form a positive decimal number.
type Entry struct {
	text    []rune
	enabled bool
}

func NewEntry() *Entry {
	return &Entry{enabled: true}
}

// Type appends the accepted characters from input.
func (e *Entry) Type(input []rune) {
	if !e.enabled {
		return
	}
	for _, r := range input {
		if len(e.text) >= maxEntryLength {
			return
		}
		if unicode.IsDigit(r) || (r == '.' && !e.hasDot()) {
			e.text = append(e.text, r)
		}
	}
}

// Backspace removes the last character.
func (e *Entry) Backspace() {
	if !e.enabled || len(e.text) == 0 {
		return
	}
	e.text = e.text[:len(e.text)-1]
}

// Set replaces the text regardless of the enabled state.
func (e *Entry) Set(text string) {
	e.text = []rune(text)
}

func (e *Entry) Text() string {
	return string(e.text)
}

func (e *Entry) SetEnabled(enabled bool) {
	e.enabled = enabled
}

func (e *Entry) Enabled() bool {
	return e.enabled
}

func (e *Entry) hasDot() bool {
	for _, r := range e.text {
		if r == '.' {
			return true
		}
	}
	return false
}

// FormatRemaining renders a countdown as mm:ss, rounding partial seconds up
// so the display reads 00:00 only when the time is actually up.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
