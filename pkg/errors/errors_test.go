package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestCodeNaming(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput, ErrCodeInvalidScene, ErrCodeInvalidStep,
		ErrCodeInvalidSpacing, ErrCodeInvalidHandle, ErrCodeInvalidPath,
		ErrCodeFileNotFound, ErrCodeElementNotFound,
		ErrCodeInternal, ErrCodeUnsupported,
	}
	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate code %s", c)
		}
		seen[c] = true
		if s := string(c); s != strings.ToUpper(s) || strings.ContainsAny(s, " -") {
			t.Errorf("code %q is not UPPER_SNAKE", s)
		}
	}
}

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
		user string
	}{
		{
			name: "unknown handle",
			err:  New(ErrCodeInvalidHandle, "unknown handle %q", "nne"),
			want: `INVALID_HANDLE: unknown handle "nne"`,
			user: `unknown handle "nne"`,
		},
		{
			name: "missing scene file",
			err:  Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "open %s", "drag.toml"),
			want: "FILE_NOT_FOUND: open drag.toml: file does not exist",
			user: "open drag.toml: file does not exist",
		},
		{
			name: "element lookup",
			err:  New(ErrCodeElementNotFound, "no element %q", "hero"),
			want: `ELEMENT_NOT_FOUND: no element "hero"`,
			user: `no element "hero"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if got := UserMessage(tt.err); got != tt.user {
				t.Errorf("UserMessage() = %q, want %q", got, tt.user)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "open scene")

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("fs.ErrNotExist lost through Wrap")
	}
	if errors.Unwrap(err) != fs.ErrNotExist {
		t.Errorf("Unwrap() = %v", errors.Unwrap(err))
	}
	if !Is(err, ErrCodeFileNotFound) || Is(err, ErrCodeInvalidScene) {
		t.Errorf("Is() does not match code %s", err.Code)
	}
}

func TestCodeLookup(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"coded", New(ErrCodeInvalidSpacing, "bad shorthand"), ErrCodeInvalidSpacing},
		{"outermost code wins", Wrap(ErrCodeInvalidScene, New(ErrCodeInvalidHandle, "nne"), "decode"), ErrCodeInvalidScene},
		{"behind fmt wrapping", fmt.Errorf("replay: %w", New(ErrCodeInvalidPath, "..")), ErrCodeInvalidPath},
		{"plain", errors.New("boom"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if tt.code == "" && Is(tt.err, ErrCodeInternal) {
				t.Error("uncoded error matched a code")
			}
		})
	}
}

func TestStepError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StepError
		want     string
		user     string
		wantCode Code
	}{
		{
			name:     "coded cause",
			err:      &StepError{Index: 2, Kind: "key", Err: New(ErrCodeInvalidInput, "unknown key %q", "F13")},
			want:     `step 3 (key): INVALID_INPUT: unknown key "F13"`,
			user:     `unknown key "F13"`,
			wantCode: ErrCodeInvalidInput,
		},
		{
			name:     "plain cause",
			err:      &StepError{Index: 0, Kind: "down", Err: errors.New("no pointer position")},
			want:     "step 1 (down): no pointer position",
			user:     "step 1 (down): no pointer position",
			wantCode: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if tt.err.Code() != ErrCodeInvalidStep {
				t.Errorf("Code() = %q, want %q", tt.err.Code(), ErrCodeInvalidStep)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want cause code %q", got, tt.wantCode)
			}
			if got := UserMessage(tt.err); got != tt.user {
				t.Errorf("UserMessage() = %q, want %q", got, tt.user)
			}
		})
	}
}

func TestStepErrorThroughWrap(t *testing.T) {
	step := &StepError{Index: 4, Kind: "wait", Err: errors.New("negative duration")}
	err := Wrap(ErrCodeInvalidScene, step, "load %s", "nudge.toml")

	var se *StepError
	if !errors.As(err, &se) {
		t.Fatal("errors.As did not find the step error")
	}
	if se.Index != 4 || se.Kind != "wait" {
		t.Errorf("step = %d/%s, want 4/wait", se.Index, se.Kind)
	}
	want := "load nudge.toml: step 5 (wait): negative duration"
	if got := UserMessage(err); got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}
