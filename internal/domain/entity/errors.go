package entity

import (
	"errors"
	"fmt"
)

// LoadErrorKind classifies a dataset load failure.
type LoadErrorKind string

const (
	NetworkError LoadErrorKind = "network"
	ParseError   LoadErrorKind = "parse"
)

var (
	ErrNetwork = errors.New("network error")
	ErrParse   = errors.New("parse error")

	// ErrEmptySeries is returned when a chart has no non-zero value to draw.
	ErrEmptySeries = errors.New("chart series has no data")
)

// LoadError reports why a dataset could not be loaded.
type LoadError struct {
	Kind     LoadErrorKind
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s error loading %s: %v", e.Kind, e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches ErrNetwork and ErrParse against the error kind.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == NetworkError
	case ErrParse:
		return e.Kind == ParseError
	}
	return false
}

// NewNetworkError wraps err as an unreachable-resource failure.
func NewNetworkError(resource string, err error) *LoadError {
	return &LoadError{Kind: NetworkError, Resource: resource, Err: err}
}

// NewParseError wraps err as a malformed-payload failure.
func NewParseError(resource string, err error) *LoadError {
	return &LoadError{Kind: ParseError, Resource: resource, Err: err}
}
