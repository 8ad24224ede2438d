package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGeometry, "width must be positive, got %d", 0)

	if err.Code != ErrCodeInvalidGeometry {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidGeometry)
	}
	if want := "INVALID_GEOMETRY: width must be positive, got 0"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	disk := errors.New("disk full")
	err := Wrap(ErrCodeWrite, disk, "write %s", "out/overview.pptx")

	if want := "WRITE_FAILED: write out/overview.pptx: disk full"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if errors.Unwrap(err) != disk {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), disk)
	}
	if !errors.Is(err, disk) {
		t.Error("stdlib errors.Is does not reach the cause")
	}
}

func TestIs(t *testing.T) {
	card := New(ErrCodeInvalidGeometry, "card too short")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", card, ErrCodeInvalidGeometry, true},
		{"other code", card, ErrCodeFrozen, false},
		{"outermost code wins", Wrap(ErrCodeRender, card, "slide 3"), ErrCodeRender, true},
		{"fmt wrapped", fmt.Errorf("build overview: %w", card), ErrCodeInvalidGeometry, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"deck", New(ErrCodeDeckNotFound, "no deck %q", "roadmap"), ErrCodeDeckNotFound},
		{"wrapped", fmt.Errorf("lookup: %w", New(ErrCodeFrozen, "slide 1 is frozen")), ErrCodeFrozen},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(ErrCodeInvalidFormat, "unknown format %q", "docx"), `unknown format "docx"`},
		{Wrap(ErrCodeRender, errors.New("zip"), "encode pptx"), "encode pptx"},
		{errors.New("plain error"), "plain error"},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"geometry", New(ErrCodeInvalidGeometry, "zero width"), 400},
		{"text", New(ErrCodeInvalidText, "size 0"), 400},
		{"format", New(ErrCodeInvalidFormat, "bad"), 400},
		{"theme", New(ErrCodeInvalidTheme, "unknown key"), 400},
		{"deck not found", New(ErrCodeDeckNotFound, "missing"), 404},
		{"slide not found", New(ErrCodeNotFound, "slide 99"), 404},
		{"wrapped render", Wrap(ErrCodeRender, errors.New("engine"), "pptx"), 500},
		{"frozen", New(ErrCodeFrozen, "slide 1"), 500},
		{"plain", errors.New("boom"), 500},
		{"unsupported", New(ErrCodeUnsupported, "nope"), 501},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
