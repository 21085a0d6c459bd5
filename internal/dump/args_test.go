package dump

import (
	"errors"
	"strings"
	"testing"
)

// TestParseArguments tests positional argument mapping and validation.
func TestParseArguments(t *testing.T) {
	t.Parallel()

	t.Run("maps arguments in fixed order", func(t *testing.T) {
		t.Parallel()

		args, err := ParseArguments([]string{"app", "b.json", "r.json", "audit.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := Arguments{
			LocalDirname:      "app",
			BrakemanJSON:      "b.json",
			RubocopJSON:       "r.json",
			BundleAuditOutput: "audit.txt",
		}
		if args != want {
			t.Errorf("expected %+v, got %+v", want, args)
		}
	})

	tests := []struct {
		name        string
		input       []string
		wantMessage string
	}{
		{
			name:        "no arguments names all four",
			input:       nil,
			wantMessage: "local_dirname, brakeman_json_path, rubocop_json_path, bundle_audit_output_path",
		},
		{
			name:        "missing trailing arguments are treated as empty",
			input:       []string{"app", "b.json"},
			wantMessage: "rubocop_json_path, bundle_audit_output_path",
		},
		{
			name:        "empty middle argument",
			input:       []string{"app", "", "r.json", "audit.txt"},
			wantMessage: "missing argument(s): brakeman_json_path",
		},
		{
			name:        "empty directory argument",
			input:       []string{"", "b.json", "r.json", "audit.txt"},
			wantMessage: "missing argument(s): local_dirname",
		},
		{
			name:        "too many arguments",
			input:       []string{"app", "b.json", "r.json", "audit.txt", "extra"},
			wantMessage: "expected 4 arguments",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseArguments(tt.input)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("expected message to contain %q, got %q", tt.wantMessage, err.Error())
			}
			if ExitCode(err) != ExitInvalidArgument {
				t.Errorf("expected exit code %d, got %d", ExitInvalidArgument, ExitCode(err))
			}
		})
	}
}

// TestArgumentsFields tests the labeled echo values.
func TestArgumentsFields(t *testing.T) {
	t.Parallel()

	fields := Arguments{
		LocalDirname:      "app",
		BrakemanJSON:      "b.json",
		RubocopJSON:       "r.json",
		BundleAuditOutput: "audit.txt",
	}.Fields()

	want := []struct{ label, value string }{
		{"Local Dirname", "app"},
		{"Brakeman JSON", "b.json"},
		{"Rubocop JSON", "r.json"},
		{"Bundle Audit Output", "audit.txt"},
	}

	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	for i, w := range want {
		if fields[i].Label != w.label || fields[i].Value != w.value {
			t.Errorf("field %d: expected %s=%s, got %s=%s", i, w.label, w.value, fields[i].Label, fields[i].Value)
		}
	}
}

// TestUsage tests the positional argument synopsis.
func TestUsage(t *testing.T) {
	t.Parallel()

	want := "<local_dirname> <brakeman_json_path> <rubocop_json_path> <bundle_audit_output_path>"
	if got := Usage(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
