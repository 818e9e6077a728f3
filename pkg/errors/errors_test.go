package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDuplicateID, "node %q already declared", "web")

	if err.Code != ErrCodeDuplicateID {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeDuplicateID)
	}
	want := `node "web" already declared`
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeRenderBackend, cause, "render failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnknownNode, "no such node")

	if !Is(err, ErrCodeUnknownNode) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeDuplicateID) {
		t.Error("Is should not match a different code")
	}

	// Codes survive fmt wrapping.
	wrapped := fmt.Errorf("while building: %w", err)
	if !Is(wrapped, ErrCodeUnknownNode) {
		t.Error("Is should see through fmt.Errorf wrapping")
	}

	if Is(nil, ErrCodeUnknownNode) {
		t.Error("Is(nil) should be false")
	}
	if Is(stderrors.New("plain"), ErrCodeUnknownNode) {
		t.Error("Is on a plain error should be false")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "bad")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad color")); got != "bad color" {
		t.Errorf("UserMessage = %q, want %q", got, "bad color")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage on plain error = %q, want %q", got, "plain")
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "web", false},
		{"with dashes", "api-gateway", false},
		{"with dots", "svc.internal", false},
		{"digits first", "3proxy", false},
		{"empty", "", true},
		{"leading dash", "-web", true},
		{"spaces", "web server", true},
		{"slash", "a/b", true},
		{"control char", "web\x00", true},
		{"too long", string(make([]byte, 129)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) = %v, wantErr=%v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidID) {
				t.Errorf("error code = %s, want %s", GetCode(err), ErrCodeInvalidID)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	if err := ValidateOutputPath("diagrams/out.png"); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}
	if err := ValidateOutputPath(""); !Is(err, ErrCodeInvalidPath) {
		t.Errorf("empty path = %v, want ErrCodeInvalidPath", err)
	}
	if err := ValidateOutputPath("bad\npath"); !Is(err, ErrCodeInvalidPath) {
		t.Errorf("control chars = %v, want ErrCodeInvalidPath", err)
	}
}

func TestValidateColor(t *testing.T) {
	for _, c := range []string{"", "#fff", "#1a2b3c", "darkgreen", "blue"} {
		if err := ValidateColor(c); err != nil {
			t.Errorf("ValidateColor(%q) = %v, want nil", c, err)
		}
	}
	for _, c := range []string{"#12", "#1234567", "Dark Green", "rgb(1,2,3)"} {
		if err := ValidateColor(c); err == nil {
			t.Errorf("ValidateColor(%q) = nil, want error", c)
		}
	}
}
