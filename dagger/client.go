//go:generate go run ../cmd/dagger-codegen generate --introspection-json ../codegen/introspection/testdata/introspection.json --package dagger --output dagger.gen.go

// Package dagger is a client for the Dagger engine API. Queries are built
// lazily through the generated types and sent when a leaf value is requested.
package dagger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Khan/genqlient/graphql"
	"github.com/hashicorp/go-multierror"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/dagger/dagger-go-sdk/dagger/internal/engineconn"
	"github.com/dagger/dagger-go-sdk/querybuilder"
)

// Client is the Dagger Engine Client
type Client struct {
	Query

	closer io.Closer
	gql    graphql.Client
	logger *slog.Logger
}

// ClientOpt holds a client option
type ClientOpt interface {
	setClientOpt(cfg *engineconn.Config)
}

type clientOptFunc func(cfg *engineconn.Config)

func (fn clientOptFunc) setClientOpt(cfg *engineconn.Config) {
	fn(cfg)
}

// WithWorkdir sets the engine workdir
func WithWorkdir(path string) ClientOpt {
	return clientOptFunc(func(cfg *engineconn.Config) {
		cfg.Workdir = path
	})
}

// WithConfigPath sets the engine config path
func WithConfigPath(path string) ClientOpt {
	return clientOptFunc(func(cfg *engineconn.Config) {
		cfg.ConfigPath = path
	})
}

// WithTimeout bounds how long starting the engine session may take.
func WithTimeout(timeout time.Duration) ClientOpt {
	return clientOptFunc(func(cfg *engineconn.Config) {
		cfg.Timeout = timeout
	})
}

// WithExecuteTimeout bounds every query sent to the engine.
func WithExecuteTimeout(timeout time.Duration) ClientOpt {
	return clientOptFunc(func(cfg *engineconn.Config) {
		cfg.ExecuteTimeout = timeout
	})
}

// WithLogger sets the logger used for connection events
func WithLogger(logger *slog.Logger) ClientOpt {
	return clientOptFunc(func(cfg *engineconn.Config) {
		cfg.Logger = logger
	})
}

// WithLogOutput sets the progress writer
func WithLogOutput(writer io.Writer) ClientOpt {
	return clientOptFunc(func(cfg *engineconn.Config) {
		cfg.LogOutput = writer
	})
}

// WithCLIVersion pins the CLI release downloaded when no session or binary
// is provided.
func WithCLIVersion(version string) ClientOpt {
	return clientOptFunc(func(cfg *engineconn.Config) {
		cfg.CLIVersion = version
	})
}

// Connect to a Dagger Engine
func Connect(ctx context.Context, opts ...ClientOpt) (_ *Client, rerr error) {
	defer func() {
		if rerr != nil {
			rerr = withErrorHelp(rerr)
		}
	}()

	cfg := &engineconn.Config{}
	for _, o := range opts {
		o.setClientOpt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	var err error
	cfg.Workdir, cfg.ConfigPath, err = NormalizePaths(cfg.Workdir, cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	params, closer, err := engineconn.Start(ctx, cfg)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("connected to engine", "url", params.URL())

	gql := errorWrappedClient{graphql.NewClient(params.URL(), engineconn.NewHTTPClient(params, cfg))}
	return &Client{
		Query: Query{
			q: querybuilder.Query(),
			c: gql,
		},
		closer: closer,
		gql:    gql,
		logger: cfg.Logger,
	}, nil
}

// Close the engine connection
func (client *Client) Close() error {
	var result *multierror.Error
	if client.closer != nil {
		client.logger.Debug("closing engine session")
		if err := client.closer.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	client.closer = nil
	return result.ErrorOrNil()
}

// GraphQLClient returns the underlying graphql.Client
func (client *Client) GraphQLClient() graphql.Client {
	return client.gql
}

// Do sends a GraphQL request to the engine
func (client *Client) Do(ctx context.Context, req *Request, resp *Response) error {
	r := graphql.Response{}
	if resp != nil {
		r.Data = resp.Data
		r.Errors = resp.Errors
		r.Extensions = resp.Extensions
	}
	err := client.gql.MakeRequest(ctx, &graphql.Request{
		Query:     req.Query,
		Variables: req.Variables,
		OpName:    req.OpName,
	}, &r)
	if resp != nil {
		resp.Errors = r.Errors
		resp.Extensions = r.Extensions
	}
	return err
}

// Request contains all the values required to build queries executed by
// the graphql.Client.
//
// Typically, GraphQL APIs will accept a JSON payload of the form
//
//	{"query": "query myQuery { ... }", "variables": {...}}`
//
// and Request marshals to this format.  However, MakeRequest may
// marshal the data in some other way desired by the backend.
type Request struct {
	// The literal string representing the GraphQL query, e.g.
	// `query myQuery { myField }`.
	Query string `json:"query"`
	// A JSON-marshalable value containing the variables to be sent
	// along with the query, or nil if there are none.
	Variables any `json:"variables,omitempty"`
	// The GraphQL operation name.
	OpName string `json:"operationName"`
}

// Response that contains data returned by the GraphQL API.
//
// Typically, GraphQL APIs will return a JSON payload of the form
//
//	{"data": {...}, "errors": {...}}
//
// It may additionally contain a key named "extensions", that
// might hold GraphQL protocol extensions. Extensions and Errors
// are optional, depending on the values returned by the server.
type Response struct {
	Data       any            `json:"data"`
	Extensions map[string]any `json:"extensions,omitempty"`
	Errors     gqlerror.List  `json:"errors,omitempty"`
}

type errorWrappedClient struct {
	graphql.Client
}

func (c errorWrappedClient) MakeRequest(ctx context.Context, req *graphql.Request, resp *graphql.Response) error {
	err := c.Client.MakeRequest(ctx, req, resp)
	if err != nil {
		return withErrorHelp(err)
	}
	return nil
}

// NormalizePaths resolves the workdir (default: DAGGER_WORKDIR, then the
// current directory) to an absolute path and the config path (default:
// DAGGER_CONFIG) to a path relative to it.
func NormalizePaths(workdir, configPath string) (string, string, error) {
	if workdir == "" {
		workdir = os.Getenv("DAGGER_WORKDIR")
	}
	if workdir == "" {
		var err error
		workdir, err = os.Getwd()
		if err != nil {
			return "", "", err
		}
	}
	workdir, err := filepath.Abs(workdir)
	if err != nil {
		return "", "", err
	}

	if configPath == "" {
		configPath = os.Getenv("DAGGER_CONFIG")
	}
	if configPath == "" {
		return workdir, "", nil
	}
	if !filepath.IsAbs(configPath) {
		configPath, err = filepath.Abs(configPath)
		if err != nil {
			return "", "", err
		}
	}
	configPath, err = filepath.Rel(workdir, configPath)
	if err != nil {
		return "", "", err
	}
	return workdir, configPath, nil
}
