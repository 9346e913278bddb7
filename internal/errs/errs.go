// Package errs classifies the failures the project engine reports so the
// dispatch boundary can tell a missing asset from a rejected path or a
// malformed metadata document without string matching.
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of an *E.
type Kind int

const (
	// IO is the default class for read and write failures with no more
	// specific meaning.
	IO Kind = iota
	// NotFound reports a project, asset, file, or anchor that does not exist.
	NotFound
	// Conflict reports a creation that would overwrite an existing asset.
	Conflict
	// Format reports metadata text that could not be parsed.
	Format
	// Security reports a path that resolves outside the project tree.
	Security
	// Validation reports input rejected before any filesystem change.
	Validation
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Format:
		return "format"
	case Security:
		return "security"
	case Validation:
		return "validation"
	default:
		return "io"
	}
}

// E is a classified error. Msg is the complete human-readable message; Err,
// when set, preserves the underlying cause for errors.Is/As chains.
type E struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *E) Error() string { return e.Msg }

func (e *E) Unwrap() error { return e.Err }

// New returns a classified error with a fixed message.
func New(k Kind, msg string) error {
	return &E{Kind: k, Msg: msg}
}

// Newf returns a classified error with a formatted message.
func Newf(k Kind, format string, args ...any) error {
	return &E{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies err under k, prefixing its message with msg. A nil err
// returns nil so call sites can wrap unconditionally.
func Wrap(k Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &E{Kind: k, Msg: msg + ": " + err.Error(), Err: err}
}

// From classifies err under k keeping its message as-is.
func From(k Kind, err error) error {
	if err == nil {
		return nil
	}
	return &E{Kind: k, Msg: err.Error(), Err: err}
}

// KindOf reports the classification of err. Errors that carry no *E anywhere
// in their chain are treated as IO.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return IO
}

// IsNotFound reports whether err is classified NotFound.
func IsNotFound(err error) bool { return KindOf(err) == NotFound }

// IsConflict reports whether err is classified Conflict.
func IsConflict(err error) bool { return KindOf(err) == Conflict }
