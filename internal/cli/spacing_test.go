package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/snapline/pkg/errors"
)

func TestSpacingCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"one value", []string{"spacing", "10px"}, "10px 10px 10px 10px"},
		{"two values", []string{"spacing", "10px 20px"}, "10px 20px 10px 20px"},
		{"three joined args", []string{"spacing", "1", "2", "3"}, "1px 2px 3px 2px"},
		{"four values", []string{"spacing", "1px 2px 3px 4px"}, "1px 2px 3px 4px"},
		{"negative margin kept", []string{"spacing", "--", "-4px", "8px"}, "-4px 8px -4px 8px"},
		{"negative padding clamped", []string{"spacing", "--kind", "padding", "--", "-4px", "8px"}, "0px 8px 0px 8px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("spacing: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpacingCommandSides(t *testing.T) {
	out, err := execute(t, "spacing", "1px 2px 3px 4px", "--sides")
	if err != nil {
		t.Fatalf("spacing: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), out)
	}
	for i, want := range []string{"top", "right", "bottom", "left"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want side %s", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[3], "4px") {
		t.Errorf("left line = %q, want 4px", lines[3])
	}
}

func TestSpacingCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"five values", []string{"spacing", "1 2 3 4 5"}, errors.ErrCodeInvalidSpacing},
		{"percent", []string{"spacing", "10%"}, errors.ErrCodeInvalidSpacing},
		{"bad kind", []string{"spacing", "--kind", "border", "1px"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}
