package dump

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

// TestErrorMatching tests errors.Is and errors.As on *Error.
func TestErrorMatching(t *testing.T) {
	t.Parallel()

	t.Run("each kind matches only its own sentinel", func(t *testing.T) {
		t.Parallel()

		sentinels := map[Kind]error{
			KindInvalidArgument: ErrInvalidArgument,
			KindFileRead:        ErrFileRead,
			KindParse:           ErrParse,
		}

		for kind, own := range sentinels {
			err := &Error{Kind: kind, Err: errors.New("cause")}
			for other, sentinel := range sentinels {
				if got := errors.Is(err, sentinel); got != (other == kind) {
					t.Errorf("%s: errors.Is(%v) = %v", kind, sentinel, got)
				}
			}
			if !errors.Is(err, own) {
				t.Errorf("%s: expected to match own sentinel", kind)
			}
		}
	})

	t.Run("wrapped error still matches", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("dump failed: %w", &Error{Kind: KindFileRead, Path: "a.json", Err: fs.ErrNotExist})
		if !errors.Is(err, ErrFileRead) {
			t.Error("expected wrapped error to match ErrFileRead")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("expected wrapped error to match fs.ErrNotExist")
		}
	})

	t.Run("message includes path when present", func(t *testing.T) {
		t.Parallel()

		err := &Error{Kind: KindParse, Path: "rubocop.json", Err: errors.New("line 1, column 1: bad")}
		want := "failed to parse report rubocop.json: line 1, column 1: bad"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("message without path", func(t *testing.T) {
		t.Parallel()

		err := invalidArgument("missing argument(s): %s", "local_dirname")
		want := "invalid argument: missing argument(s): local_dirname"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("message of an unknown kind has a generic prefix", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			err  *Error
			want string
		}{
			{&Error{Err: errors.New("boom")}, "dump failed: boom"},
			{&Error{Path: "a.json", Err: errors.New("boom")}, "dump failed a.json: boom"},
		}
		for _, tt := range tests {
			if tt.err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tt.err.Error())
			}
		}
	})
}

// TestInvalidArgument tests wrapping of foreign errors.
func TestInvalidArgument(t *testing.T) {
	t.Parallel()

	if InvalidArgument(nil) != nil {
		t.Error("expected nil for nil error")
	}

	err := InvalidArgument(errors.New("unknown flag: --bogus"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

// TestExitCode tests the exit code mapping.
func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil is success", err: nil, want: ExitSuccess},
		{name: "invalid argument", err: &Error{Kind: KindInvalidArgument}, want: ExitInvalidArgument},
		{name: "file read", err: &Error{Kind: KindFileRead}, want: ExitFileRead},
		{name: "parse", err: &Error{Kind: KindParse}, want: ExitParse},
		{name: "wrapped parse", err: fmt.Errorf("x: %w", &Error{Kind: KindParse}), want: ExitParse},
		{name: "foreign error", err: errors.New("boom"), want: ExitFailure},
		{name: "unknown kind", err: &Error{}, want: ExitFailure},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

// TestKindString tests the taxonomy names.
func TestKindString(t *testing.T) {
	t.Parallel()

	tests := map[Kind]string{
		KindInvalidArgument: "InvalidArgument",
		KindFileRead:        "FileReadError",
		KindParse:           "ParseError",
		Kind(0):             "Unknown",
	}
	for kind, want := range tests {
		if kind.String() != want {
			t.Errorf("expected %q, got %q", want, kind.String())
		}
	}
}
