package domain

import "errors"

// Kind classifies which backup step failed.
type Kind string

const (
	KindConnectivity Kind = "connectivity"
	KindDump         Kind = "dump"
	KindUpload       Kind = "upload"
	KindUnclassified Kind = "unclassified"
)

type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }

func (e *kindError) Unwrap() error { return e.err }

// WrapKind tags err with a step kind. Returns nil for a nil err.
func WrapKind(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}

// KindOf reports which step an error came from. Errors without a tag,
// including nil-safe misuse, classify as unclassified.
func KindOf(err error) Kind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindUnclassified
}
