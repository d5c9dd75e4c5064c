package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "duplicate node id: %s", "n1")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != "duplicate node id: n1" {
		t.Errorf("Message = %q, want formatted message", err.Message)
	}
	if !strings.Contains(err.Error(), "INVALID_INPUT") {
		t.Errorf("Error() = %q, should contain code", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeStore, cause, "save layout %s", "abc")

	if err.Cause != cause {
		t.Error("Cause not preserved")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, should contain cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeLayoutNotFound, "layout %s not found", "abc")

	if !Is(err, ErrCodeLayoutNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain error"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Wrapped errors keep their code visible through fmt wrapping.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeLayoutNotFound) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeCache, "boom")); got != ErrCodeCache {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeCache)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidArchetype, "unknown archetype %q", "spiral")
	if msg := UserMessage(err); strings.Contains(msg, "INVALID_ARCHETYPE") {
		t.Errorf("UserMessage = %q, should not contain code prefix", msg)
	}
	if msg := UserMessage(fmt.Errorf("plain")); msg != "plain" {
		t.Errorf("UserMessage on plain error = %q", msg)
	}
}
