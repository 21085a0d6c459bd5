package dump

import (
	"errors"
	"fmt"
)

// Kind classifies a dump failure.
type Kind int

const (
	// KindInvalidArgument means one or more required arguments are empty
	// or the argument count is wrong. No file has been read.
	KindInvalidArgument Kind = iota + 1

	// KindFileRead means a report file does not exist or cannot be read.
	KindFileRead

	// KindParse means a structured report is not valid JSON.
	KindParse
)

// Sentinel errors for errors.Is matching of each Kind.
var (
	// ErrInvalidArgument matches every KindInvalidArgument error.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFileRead matches every KindFileRead error.
	ErrFileRead = errors.New("failed to read file")

	// ErrParse matches every KindParse error.
	ErrParse = errors.New("failed to parse report")
)

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindFileRead:
		return "FileReadError"
	case KindParse:
		return "ParseError"
	default:
		return "Unknown"
	}
}

// sentinel returns the sentinel error of the kind.
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindFileRead:
		return ErrFileRead
	case KindParse:
		return ErrParse
	default:
		return nil
	}
}

// Error is returned by every failing dump operation.
// The wrapped Err stays reachable, so errors.Is(err, fs.ErrNotExist) and
// errors.As(err, **document.SyntaxError) work alongside the sentinels.
type Error struct {
	Kind Kind

	// Path is the file involved. Empty for KindInvalidArgument.
	Path string

	// Err is the underlying cause, or a description for KindInvalidArgument.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := "dump failed"
	if sentinel := e.Kind.sentinel(); sentinel != nil {
		prefix = sentinel.Error()
	}

	if e.Path == "" {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", prefix, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// invalidArgument builds a KindInvalidArgument error.
func invalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Err: fmt.Errorf(format, args...)}
}

// InvalidArgument wraps err as a KindInvalidArgument error.
// The CLI uses it for flag parsing failures.
func InvalidArgument(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindInvalidArgument, Err: err}
}

// Exit codes of the persist command. Each error kind has its own code so
// that scripts can tell a missing report from a corrupt one.
const (
	ExitSuccess         = 0
	ExitFailure         = 1
	ExitInvalidArgument = 2
	ExitFileRead        = 3
	ExitParse           = 4
)

// ExitCode maps an error returned by the dump to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var dumpErr *Error
	if !errors.As(err, &dumpErr) {
		return ExitFailure
	}

	switch dumpErr.Kind {
	case KindInvalidArgument:
		return ExitInvalidArgument
	case KindFileRead:
		return ExitFileRead
	case KindParse:
		return ExitParse
	default:
		return ExitFailure
	}
}
