package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/snapline/pkg/errors"
)

func TestSnapCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nearest multiple", []string{"snap", "130", "100"}, "100"},
		{"half rounds up", []string{"snap", "150", "100"}, "200"},
		{"negative half rounds up", []string{"snap", "--", "-150", "100"}, "-100"},
		{"pixel values", []string{"snap", "37px", "12.5px"}, "37.5"},
		{"zero unit passes through", []string{"snap", "37", "0"}, "37"},
		{"columns", []string{"snap", "130", "400", "--cols", "4"}, "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("snap: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnapCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad value", []string{"snap", "abc", "10"}, errors.ErrCodeInvalidInput},
		{"percent unit", []string{"snap", "10", "50%"}, errors.ErrCodeInvalidInput},
		{"too many columns", []string{"snap", "10", "400", "--cols", "5000"}, errors.ErrCodeInvalidScene},
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
