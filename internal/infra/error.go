package infra

import (
	"errors"
	"log/slog"

	"slotly/internal/pkg/errs"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	slog.Error("repository error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

type ProviderErrorKind string

// Calendar provider error kinds. The split matters: Unavailable and Timeout
// are transport-level ("unknown — do not book"), NotFound is a definite
// answer about one event, Rejected is the provider refusing a creation.
const (
	ProviderUnavailable ProviderErrorKind = "PROVIDER_UNAVAILABLE"
	ProviderTimeout     ProviderErrorKind = "PROVIDER_TIMEOUT"
	ProviderNotFound    ProviderErrorKind = "PROVIDER_NOT_FOUND"
	ProviderRejected    ProviderErrorKind = "PROVIDER_REJECTED"
)

type ProviderError struct {
	Kind ProviderErrorKind
	msg  string
	err  error
}

func (e ProviderError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e ProviderError) Unwrap() error {
	return e.err
}

func WrapProviderErr(kind ProviderErrorKind, msg string, err error) error {
	slog.Error("calendar provider error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return ProviderError{Kind: kind, msg: msg, err: err}
}

func IsProviderKind(err error, kind ProviderErrorKind) bool {
	var e ProviderError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
