package dagger

import (
	"errors"
	"fmt"

	"github.com/Khan/genqlient/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/dagger/dagger-go-sdk/dagger/internal/engineconn"
	"github.com/dagger/dagger-go-sdk/querybuilder"
)

const (
	errorHelpBlurb = "Please visit https://dagger.io/help#go for troubleshooting guidance."
)

type (
	BuildError          = querybuilder.BuildError
	SerializeError      = querybuilder.SerializeError
	QueryError          = querybuilder.QueryError
	QueryErrorKind      = querybuilder.QueryErrorKind
	UnpackError         = querybuilder.UnpackError
	UnpackErrorKind     = querybuilder.UnpackErrorKind
	DownloadClientError = engineconn.DownloadClientError
)

const (
	QueryErrorTransport = querybuilder.QueryErrorTransport
	QueryErrorResponse  = querybuilder.QueryErrorResponse

	UnpackTooManyNested = querybuilder.UnpackTooManyNested
	UnpackDeserialize   = querybuilder.UnpackDeserialize
)

var (
	ErrBuild          = querybuilder.ErrBuild
	ErrSerialize      = querybuilder.ErrSerialize
	ErrQuery          = querybuilder.ErrQuery
	ErrUnpack         = querybuilder.ErrUnpack
	ErrDownloadClient = engineconn.ErrDownloadClient
)

func withErrorHelp(err error) error {
	err = parseGraphQLError(err)
	return fmt.Errorf("%w\n%s", err, errorHelpBlurb)
}

func parseGraphQLError(err error) error {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		var httpErr *graphql.HTTPError
		if !errors.As(err, &httpErr) || len(httpErr.Response.Errors) == 0 {
			return err
		}
		gqlErr = httpErr.Response.Errors[0]
	}

	ext := gqlErr.Extensions
	if typ, _ := ext["_type"].(string); typ != "EXEC_ERROR" {
		return err
	}

	e := &ExecError{
		original: err,
	}
	if code, ok := ext["exitCode"].(float64); ok {
		e.ExitCode = int(code)
	}
	if args, ok := ext["cmd"].([]any); ok {
		for _, v := range args {
			if s, ok := v.(string); ok {
				e.Cmd = append(e.Cmd, s)
			}
		}
	}
	if stdout, ok := ext["stdout"].(string); ok {
		e.Stdout = stdout
	}
	if stderr, ok := ext["stderr"].(string); ok {
		e.Stderr = stderr
	}
	return e
}

// ExecError is an API error from an exec operation.
type ExecError struct {
	original error
	Cmd      []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ExecError) Error() string {
	// include the output when just printing the error
	return fmt.Sprintf("%s\nStdout:\n%s\nStderr:\n%s", e.Message(), e.Stdout, e.Stderr)
}

func (e *ExecError) Message() string {
	return e.original.Error()
}

func (e *ExecError) Unwrap() error {
	return e.original
}
