package acquire

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind categorizes acquisition failures.
type Kind string

const (
	// KindUnavailable indicates the fetcher binary or snapshot is missing.
	KindUnavailable Kind = "ACQUISITION_UNAVAILABLE"

	// KindFailed indicates the fetcher ran but did not succeed.
	KindFailed Kind = "ACQUISITION_FAILED"

	// KindMalformed indicates the fetcher output could not be parsed.
	KindMalformed Kind = "ACQUISITION_MALFORMED"
)

// Error is a classified acquisition failure.
type Error struct {
	Kind    Kind
	Message string

	// Source is the fetcher command or snapshot path.
	Source string

	// ExitCode, Stdout and Stderr are set for KindFailed.
	ExitCode int
	Stdout   string
	Stderr   string

	// Raw is the unparsable output, set for KindMalformed.
	Raw string

	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Source != "" {
		msg += fmt.Sprintf(" (source=%s)", e.Source)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Details returns the captured diagnostics, omitting empty ones.
func (e *Error) Details() map[string]string {
	d := map[string]string{}
	if e.Source != "" {
		d["source"] = e.Source
	}
	if e.Kind == KindFailed && e.ExitCode != 0 {
		d["exit_code"] = strconv.Itoa(e.ExitCode)
	}
	if e.Stdout != "" {
		d["stdout"] = e.Stdout
	}
	if e.Stderr != "" {
		d["stderr"] = e.Stderr
	}
	if e.Raw != "" {
		d["raw"] = e.Raw
	}
	return d
}

// KindOf returns the kind of an acquisition error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return "", false
}

// IsUnavailable returns true if err is a KindUnavailable error.
func IsUnavailable(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindUnavailable
}

// IsFailed returns true if err is a KindFailed error.
func IsFailed(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindFailed
}

// IsMalformed returns true if err is a KindMalformed error.
func IsMalformed(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindMalformed
}

func malformed(raw []byte, message string, err error) *Error {
	return &Error{
		Kind:    KindMalformed,
		Message: message,
		Raw:     string(raw),
		Err:     err,
	}
}
