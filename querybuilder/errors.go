package querybuilder

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

var (
	// ErrBuild matches every *BuildError.
	ErrBuild = errors.New("build query")
	// ErrSerialize matches every *SerializeError.
	ErrSerialize = errors.New("serialize argument")
	// ErrQuery matches every *QueryError.
	ErrQuery = errors.New("query")
	// ErrUnpack matches every *UnpackError.
	ErrUnpack = errors.New("unpack response")
)

// BuildError is returned when a selection cannot be turned into a query
// document.
type BuildError struct {
	Reason string
	Err    error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrBuild, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrBuild, e.Reason)
}

func (e *BuildError) Unwrap() error { return e.Err }

func (e *BuildError) Is(target error) bool { return target == ErrBuild }

// SerializeError is returned when an argument value cannot be rendered as a
// GraphQL literal.
type SerializeError struct {
	Arg    string
	Reason string
	Err    error
}

func (e *SerializeError) Error() string {
	msg := ErrSerialize.Error()
	if e.Arg != "" {
		msg += fmt.Sprintf(" %q", e.Arg)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SerializeError) Unwrap() error { return e.Err }

func (e *SerializeError) Is(target error) bool { return target == ErrSerialize }

type QueryErrorKind int

const (
	// QueryErrorTransport covers network failures and 5xx responses.
	QueryErrorTransport QueryErrorKind = iota
	// QueryErrorResponse means the engine answered with a GraphQL errors
	// array, whatever the status code below 500.
	QueryErrorResponse
)

func (k QueryErrorKind) String() string {
	switch k {
	case QueryErrorTransport:
		return "transport"
	case QueryErrorResponse:
		return "response"
	}
	return "unknown"
}

// QueryError is returned when sending a query fails or the engine rejects it.
type QueryError struct {
	Kind QueryErrorKind
	// Query is the document that was sent.
	Query string
	// Errors holds the engine's errors for QueryErrorResponse.
	Errors gqlerror.List
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrQuery, e.Kind, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) Is(target error) bool { return target == ErrQuery }

type UnpackErrorKind int

const (
	// UnpackTooManyNested means the selection path is deeper than the JSON.
	UnpackTooManyNested UnpackErrorKind = iota
	// UnpackDeserialize means the addressed JSON does not fit the bound type.
	UnpackDeserialize
)

func (k UnpackErrorKind) String() string {
	switch k {
	case UnpackTooManyNested:
		return "too many nested objects"
	case UnpackDeserialize:
		return "deserialize"
	}
	return "unknown"
}

// UnpackError is returned when a response cannot be decoded into the bound
// value.
type UnpackError struct {
	Kind UnpackErrorKind
	// Path is the result path that failed, joined with dots.
	Path string
	Err  error
}

func (e *UnpackError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrUnpack, e.Kind)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnpackError) Unwrap() error { return e.Err }

func (e *UnpackError) Is(target error) bool { return target == ErrUnpack }
