package errors

import "testing"

func TestValidateComponentID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "hero", false},
		{"with separators", "section-1.card_2:title", false},
		{"digits first", "42box", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"leading dash", "-box", true},
		{"space", "my box", true},
		{"slash", "a/b", true},
		{"traversal", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComponentID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateComponentID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidScene) {
				t.Errorf("ValidateComponentID(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateFieldKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "width", false},
		{"viewport suffix", "widthDesktop", false},
		{"underscore", "padding_mobile", false},

		{"empty", "", true},
		{"reserved type", "type", true},
		{"reserved id", "id", true},
		{"dash", "padding-top", true},
		{"space", "my key", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFieldKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "frames/0001.png", false},
		{"valid nested", "out/replays/drag/frame.png", false},
		{"valid filename only", "scene.toml", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute path", "/etc/passwd", true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateGridCols(t *testing.T) {
	for _, cols := range []int{0, 1, 12, 1000} {
		if err := ValidateGridCols(cols); err != nil {
			t.Errorf("ValidateGridCols(%d) = %v", cols, err)
		}
	}
	for _, cols := range []int{-1, 1001} {
		if err := ValidateGridCols(cols); err == nil {
			t.Errorf("ValidateGridCols(%d) succeeded", cols)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidScene,
		ErrCodeInvalidStep,
		ErrCodeInvalidSpacing,
		ErrCodeInvalidHandle,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeElementNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
