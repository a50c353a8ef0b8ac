// Package engineconn starts or reuses a Dagger engine session and builds the
// HTTP transport used to talk to it.
package engineconn

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultTimeout bounds the engine session start when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

const (
	envSessionPort  = "DAGGER_SESSION_PORT"
	envSessionURL   = "DAGGER_SESSION_URL"
	envSessionToken = "DAGGER_SESSION_TOKEN"
	envCLIBin       = "_EXPERIMENTAL_DAGGER_CLI_BIN"
)

type Config struct {
	Workdir    string
	ConfigPath string

	// Timeout bounds how long the engine session may take to report its
	// connect params.
	Timeout time.Duration
	// ExecuteTimeout bounds each query. Zero means no limit.
	ExecuteTimeout time.Duration

	Logger    *slog.Logger
	LogOutput io.Writer

	// CLIVersion selects the CLI downloaded when no session or binary is
	// provided. Defaults to CLIVersion.
	CLIVersion string
}

func (cfg *Config) logger() *slog.Logger {
	if cfg == nil || cfg.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Logger
}

func (cfg *Config) timeout() time.Duration {
	if cfg == nil || cfg.Timeout <= 0 {
		return DefaultTimeout
	}
	return cfg.Timeout
}

// ConnectParams are printed by `dagger session` on its first stdout line.
type ConnectParams struct {
	Port         int    `json:"port"`
	SessionToken string `json:"session_token"`

	// BaseURL overrides the local address derived from Port.
	BaseURL string `json:"-"`
}

// URL returns the GraphQL endpoint of the session.
func (p ConnectParams) URL() string {
	if p.BaseURL != "" {
		return p.BaseURL + "/query"
	}
	return fmt.Sprintf("http://127.0.0.1:%d/query", p.Port)
}

// Start returns the connect params of an engine session along with a handle
// releasing it. An existing session advertised through the environment is
// reused, otherwise a CLI is located (or downloaded) and `dagger session` is
// spawned.
func Start(ctx context.Context, cfg *Config) (ConnectParams, io.Closer, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.logger()

	params, ok, err := FromEnv()
	if err != nil {
		return ConnectParams{}, nil, err
	}
	if ok {
		logger.Debug("reusing engine session from environment", "url", params.URL())
		return params, nopCloser{}, nil
	}

	bin, err := cliBin(ctx, cfg)
	if err != nil {
		return ConnectParams{}, nil, err
	}
	return StartSession(ctx, cfg, bin)
}

// FromEnv reads the params of an already running session.
func FromEnv() (ConnectParams, bool, error) {
	port, hasPort := os.LookupEnv(envSessionPort)
	sessionURL, hasURL := os.LookupEnv(envSessionURL)
	if !hasPort && !hasURL {
		return ConnectParams{}, false, nil
	}

	token := os.Getenv(envSessionToken)
	if token == "" {
		return ConnectParams{}, false, fmt.Errorf("%s must be set when a session is provided", envSessionToken)
	}

	params := ConnectParams{SessionToken: token}
	if hasPort {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return ConnectParams{}, false, fmt.Errorf("invalid %s %q", envSessionPort, port)
		}
		params.Port = p
		return params, true, nil
	}

	u, err := url.Parse(sessionURL)
	if err != nil || u.Host == "" {
		return ConnectParams{}, false, fmt.Errorf("invalid %s %q", envSessionURL, sessionURL)
	}
	params.BaseURL = u.Scheme + "://" + u.Host
	return params, true, nil
}

func cliBin(ctx context.Context, cfg *Config) (string, error) {
	if bin := os.Getenv(envCLIBin); bin != "" {
		return bin, nil
	}
	d := &Downloader{
		Version: cfg.CLIVersion,
		Logger:  cfg.logger(),
	}
	return d.Download(ctx)
}

// NewHTTPClient returns a client authenticating every request against the
// session.
func NewHTTPClient(params ConnectParams, cfg *Config) *http.Client {
	auth := "Basic " + base64.URLEncoding.EncodeToString([]byte(params.SessionToken+":"))

	base := otelhttp.NewTransport(cleanhttp.DefaultPooledTransport())
	client := &http.Client{
		Transport: RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			r = r.Clone(r.Context())
			r.Header.Set("Authorization", auth)
			return base.RoundTrip(r)
		}),
	}
	if cfg != nil {
		client.Timeout = cfg.ExecuteTimeout
	}
	return client
}

type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
