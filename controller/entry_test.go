package controller

import (
	"testing"
	"time"
)

func TestEntry_Editing(t *testing.T) {
	tests := []struct {
		name string
		edit func(e *Entry)
		want string
	}{
		{"digits", func(e *Entry) { e.Type([]rune("25")) }, "25"},
		{"drops letters", func(e *Entry) { e.Type([]rune("2a5 ")) }, "25"},
		{"single dot", func(e *Entry) { e.Type([]rune("1.5.2")) }, "1.52"},
		{"length cap", func(e *Entry) { e.Type([]rune("123456789")) }, "123456"},
		{"backspace", func(e *Entry) { e.Type([]rune("30")); e.Backspace() }, "3"},
		{"backspace on empty", func(e *Entry) { e.Backspace() }, ""},
		{"disabled ignores typing", func(e *Entry) {
			e.Set("10")
			e.SetEnabled(false)
			e.Type([]rune("5"))
			e.Backspace()
		}, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntry()
			tt.edit(e)
			if got := e.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{time.Millisecond, "00:01"},
		{59 * time.Second, "00:59"},
		{25 * time.Minute, "25:00"},
		{90*time.Minute + 500*time.Millisecond, "90:01"},
	}

	for _, tt := range tests {
		if got := FormatRemaining(tt.d); got != tt.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
