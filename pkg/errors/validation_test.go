package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "n1", false},
		{"with spaces", "load balancer", false},
		{"unicode", "ノード", false},
		{"empty", "", true},
		{"control char", "a\x01b", true},
		{"newline", "a\nb", true},
		{"too long", strings.Repeat("x", 257), true},
		{"max length ok", strings.Repeat("x", 256), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("error code = %q, want INVALID_INPUT", GetCode(err))
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "out/layout.json", false},
		{"absolute", "/tmp/layout.svg", false},
		{"empty", "", true},
		{"null byte", "out\x00.json", true},
		{"too long", strings.Repeat("a/", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"json", "svg", "dot"}

	if err := ValidateFormat("svg", allowed); err != nil {
		t.Errorf("svg should be allowed: %v", err)
	}
	err := ValidateFormat("pdf", allowed)
	if err == nil {
		t.Fatal("pdf should be rejected")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("error code = %q, want INVALID_FORMAT", GetCode(err))
	}
}
