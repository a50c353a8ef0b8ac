package dagger

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"golang.org/x/sync/errgroup"

	"github.com/dagger/dagger-go-sdk/querybuilder"
)

const testToken = "s3cret"

// fakeEngine answers queries from a fixed table.
type fakeEngine struct {
	t         *testing.T
	responses map[string]string
	// statuses overrides the HTTP status of a response
	statuses map[string]int

	mu      sync.Mutex
	queries []string
	auth    []string
}

func (e *fakeEngine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/query" {
		http.NotFound(w, r)
		return
	}
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := parser.ParseQuery(&ast.Source{Input: body.Query}); err != nil {
		e.t.Errorf("engine received invalid query %q: %v", body.Query, err)
	}

	e.mu.Lock()
	e.queries = append(e.queries, body.Query)
	e.auth = append(e.auth, r.Header.Get("Authorization"))
	e.mu.Unlock()

	resp, ok := e.responses[body.Query]
	switch {
	case !ok:
		resp = fmt.Sprintf(`{"data":null,"errors":[{"message":"unexpected query %s"}]}`, strings.ReplaceAll(body.Query, `"`, `'`))
	case resp == "abort":
		panic(http.ErrAbortHandler)
	}
	w.Header().Set("Content-Type", "application/json")
	if status, ok := e.statuses[body.Query]; ok {
		w.WriteHeader(status)
	}
	fmt.Fprint(w, resp)
}

func (e *fakeEngine) Queries() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.queries...)
}

func connect(t *testing.T, responses map[string]string) (*Client, *fakeEngine) {
	t.Helper()
	return connectEngine(t, &fakeEngine{t: t, responses: responses})
}

func connectEngine(t *testing.T, engine *fakeEngine) (*Client, *fakeEngine) {
	t.Helper()

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	t.Setenv("DAGGER_SESSION_PORT", "")
	os.Unsetenv("DAGGER_SESSION_PORT")
	t.Setenv("DAGGER_SESSION_URL", srv.URL)
	t.Setenv("DAGGER_SESSION_TOKEN", testToken)

	c, err := Connect(context.Background(), WithWorkdir(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, engine
}

func TestContainerFromStdout(t *testing.T) {
	c, engine := connect(t, map[string]string{
		`query{container{from(address:"alpine:3"){stdout}}}`: `{"data":{"container":{"from":{"stdout":"hi\n"}}}}`,
	})

	out, err := c.Container().From("alpine:3").Stdout(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, "hi\n", *out)

	require.Equal(t, []string{`query{container{from(address:"alpine:3"){stdout}}}`}, engine.Queries())
	require.Equal(t, []string{"Basic " + base64.URLEncoding.EncodeToString([]byte(testToken+":"))}, engine.auth)
}

func TestNullableLeaf(t *testing.T) {
	c, _ := connect(t, map[string]string{
		`query{container{user}}`: `{"data":{"container":{"user":null}}}`,
	})

	user, err := c.Container().User(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestPipelineIsLazy(t *testing.T) {
	c, engine := connect(t, map[string]string{
		`query{container{from(address:"alpine:3"){withExec(args:["echo","hi"]){exitCode}}}}`: `{"data":{"container":{"from":{"withExec":{"exitCode":0}}}}}`,
	})

	ctr := c.Container().From("alpine:3").WithExec([]string{"echo", "hi"})
	require.Empty(t, engine.Queries())

	code, err := ctr.ExitCode(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, *code)
	require.Len(t, engine.Queries(), 1)
}

func TestOptionsAndIDs(t *testing.T) {
	const (
		withDefault = `query{container{withMountedCache(path:"/cache",cache:"cache-id",sharing:SHARED){id}}}`
		withLocked  = `query{container{withMountedCache(path:"/cache",cache:"cache-id",sharing:LOCKED){id}}}`
		withNone    = `query{container{withMountedCache(path:"/cache",cache:"cache-id"){id}}}`
	)
	c, engine := connect(t, map[string]string{
		withDefault: `{"data":{"container":{"withMountedCache":{"id":"ctr-1"}}}}`,
		withLocked:  `{"data":{"container":{"withMountedCache":{"id":"ctr-2"}}}}`,
		withNone:    `{"data":{"container":{"withMountedCache":{"id":"ctr-3"}}}}`,
	})
	ctx := context.Background()

	id, err := c.Container().
		WithMountedCache("/cache", CacheID("cache-id"), NewContainerWithMountedCacheOptsBuilder().Build()).
		ID(ctx)
	require.NoError(t, err)
	require.Equal(t, ContainerID("ctr-1"), id)

	// the last non-zero option wins
	id, err = c.Container().
		WithMountedCache("/cache", "cache-id",
			ContainerWithMountedCacheOpts{Sharing: CacheSharingModePrivate},
			NewContainerWithMountedCacheOptsBuilder().Sharing(CacheSharingModeLocked).Build(),
			ContainerWithMountedCacheOpts{},
		).
		ID(ctx)
	require.NoError(t, err)
	require.Equal(t, ContainerID("ctr-2"), id)

	id, err = c.Container().WithMountedCache("/cache", "cache-id").ID(ctx)
	require.NoError(t, err)
	require.Equal(t, ContainerID("ctr-3"), id)

	require.Equal(t, []string{withDefault, withLocked, withNone}, engine.Queries())
}

func TestListByIndexCachesScalars(t *testing.T) {
	c, engine := connect(t, map[string]string{
		`query{container{from(address:"alpine:3"){envVariables{name value}}}}`: `{"data":{"container":{"from":{"envVariables":[{"name":"PATH","value":"/bin"},{"name":"HOME","value":"/root"}]}}}}`,
	})
	ctx := context.Background()

	vars, err := c.Container().From("alpine:3").EnvVariables(ctx)
	require.NoError(t, err)
	require.Len(t, vars, 2)

	name, err := vars[1].Name(ctx)
	require.NoError(t, err)
	require.Equal(t, "HOME", name)
	value, err := vars[0].Value(ctx)
	require.NoError(t, err)
	require.Equal(t, "/bin", value)

	require.Len(t, engine.Queries(), 1)
}

func TestListByIndexFetchesUncachedFields(t *testing.T) {
	c, engine := connect(t, map[string]string{
		`query{project(name:"ci"){extensions{name}}}`:   `{"data":{"project":{"extensions":[{"name":"a"},{"name":"b"}]}}}`,
		`query{project(name:"ci"){extensions{schema}}}`: `{"data":{"project":{"extensions":[{"schema":"type A"},{"schema":null}]}}}`,
	})
	ctx := context.Background()

	exts, err := c.Project("ci").Extensions(ctx)
	require.NoError(t, err)
	require.Len(t, exts, 2)

	schema, err := exts[0].Schema(ctx)
	require.NoError(t, err)
	require.Equal(t, "type A", *schema)

	schema, err = exts[1].Schema(ctx)
	require.NoError(t, err)
	require.Nil(t, schema)

	require.Len(t, engine.Queries(), 3)
}

func TestObjectAsArgument(t *testing.T) {
	c, _ := connect(t, map[string]string{
		`query{directory{id}}`: `{"data":{"directory":{"id":"dir-1"}}}`,
	})

	lit, err := querybuilder.MarshalGQL(context.Background(), c.Directory())
	require.NoError(t, err)
	require.Equal(t, `"dir-1"`, lit)
}

func TestResponseErrors(t *testing.T) {
	c, _ := connect(t, map[string]string{
		`query{container{from(address:"nope"){stdout}}}`: `{"data":null,"errors":[{"message":"pull access denied","path":["container","from"]}]}`,
	})

	_, err := c.Container().From("nope").Stdout(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrQuery)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, QueryErrorResponse, qerr.Kind)
	require.Len(t, qerr.Errors, 1)
	require.Equal(t, "pull access denied", qerr.Errors[0].Message)
	require.Contains(t, err.Error(), errorHelpBlurb)
}

func TestResponseErrorsWithStatus(t *testing.T) {
	const query = `query{container{from(address:"alpine:3"){stdout}}}`
	c, _ := connectEngine(t, &fakeEngine{
		t:         t,
		responses: map[string]string{query: `{"errors":[{"message":"nope"}],"data":null}`},
		statuses:  map[string]int{query: http.StatusUnprocessableEntity},
	})

	_, err := c.Container().From("alpine:3").Stdout(context.Background())
	require.ErrorIs(t, err, ErrQuery)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, QueryErrorResponse, qerr.Kind)
	require.Len(t, qerr.Errors, 1)
	require.Equal(t, "nope", qerr.Errors[0].Message)
}

func TestServerErrorIsTransport(t *testing.T) {
	const query = `query{defaultPlatform}`
	c, _ := connectEngine(t, &fakeEngine{
		t:         t,
		responses: map[string]string{query: `{"errors":[{"message":"engine crashed"}],"data":null}`},
		statuses:  map[string]int{query: http.StatusInternalServerError},
	})

	_, err := c.DefaultPlatform(context.Background())
	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, QueryErrorTransport, qerr.Kind)
	require.Empty(t, qerr.Errors)
}

func TestExecErrorWithStatus(t *testing.T) {
	const query = `query{container{withExec(args:["false"]){stdout}}}`
	c, _ := connectEngine(t, &fakeEngine{
		t: t,
		responses: map[string]string{
			query: `{"data":null,"errors":[{"message":"process did not complete successfully","extensions":{"_type":"EXEC_ERROR","exitCode":2,"cmd":["false"],"stdout":"","stderr":"boom"}}]}`,
		},
		statuses: map[string]int{query: http.StatusBadRequest},
	})

	_, err := c.Container().WithExec([]string{"false"}).Stdout(context.Background())

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, 2, execErr.ExitCode)
	require.Equal(t, "boom", execErr.Stderr)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, QueryErrorResponse, qerr.Kind)
}

func TestHostDirectoryExcludeOnly(t *testing.T) {
	const query = `query{host{directory(path:"./app",exclude:["node_modules"]){id}}}`
	c, engine := connect(t, map[string]string{
		query: `{"data":{"host":{"directory":{"id":"dir-app"}}}}`,
	})

	id, err := c.Host().Directory("./app", HostDirectoryOpts{Exclude: []string{"node_modules"}}).ID(context.Background())
	require.NoError(t, err)
	require.Equal(t, DirectoryID("dir-app"), id)
	require.Equal(t, []string{query}, engine.Queries())
}

func TestEnumUnmarshal(t *testing.T) {
	t.Parallel()

	var mode CacheSharingMode
	require.NoError(t, json.Unmarshal([]byte(`"LOCKED"`), &mode))
	require.Equal(t, CacheSharingModeLocked, mode)

	var opts struct {
		Sharing CacheSharingMode `json:"sharing"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"sharing":"SHARED"}`), &opts))
	require.Equal(t, CacheSharingModeShared, opts.Sharing)

	err := json.Unmarshal([]byte(`"NOPE"`), &mode)
	require.ErrorContains(t, err, `invalid value "NOPE" for enum CacheSharingMode`)
	require.Equal(t, CacheSharingModeLocked, mode)
}

func TestExecError(t *testing.T) {
	c, _ := connect(t, map[string]string{
		`query{container{withExec(args:["false"]){stdout}}}`: `{"data":null,"errors":[{"message":"process did not complete successfully","extensions":{"_type":"EXEC_ERROR","exitCode":1,"cmd":["false"],"stdout":"out","stderr":"err"}}]}`,
	})

	_, err := c.Container().WithExec([]string{"false"}).Stdout(context.Background())
	require.Error(t, err)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, 1, execErr.ExitCode)
	require.Equal(t, []string{"false"}, execErr.Cmd)
	require.Equal(t, "out", execErr.Stdout)
	require.Equal(t, "err", execErr.Stderr)
	require.Contains(t, execErr.Error(), "Stderr:\nerr")

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, QueryErrorResponse, qerr.Kind)
}

func TestTransportError(t *testing.T) {
	c, _ := connect(t, map[string]string{
		`query{defaultPlatform}`: "abort",
	})

	_, err := c.DefaultPlatform(context.Background())
	require.ErrorIs(t, err, ErrQuery)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, QueryErrorTransport, qerr.Kind)
	require.Equal(t, `query{defaultPlatform}`, qerr.Query)
}

func TestUnpackError(t *testing.T) {
	c, _ := connect(t, map[string]string{
		`query{container{exitCode}}`: `{"data":{"container":{"exitCode":"zero"}}}`,
	})

	_, err := c.Container().ExitCode(context.Background())
	require.ErrorIs(t, err, ErrUnpack)

	var uerr *UnpackError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, UnpackDeserialize, uerr.Kind)
}

func TestConcurrentQueries(t *testing.T) {
	c, engine := connect(t, map[string]string{
		`query{defaultPlatform}`: `{"data":{"defaultPlatform":"linux/amd64"}}`,
	})

	var eg errgroup.Group
	for i := 0; i < 16; i++ {
		eg.Go(func() error {
			platform, err := c.DefaultPlatform(context.Background())
			if err != nil {
				return err
			}
			if platform != "linux/amd64" {
				return fmt.Errorf("unexpected platform %q", platform)
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	require.Len(t, engine.Queries(), 16)
}

func TestCanceledContext(t *testing.T) {
	c, engine := connect(t, map[string]string{
		`query{defaultPlatform}`: `{"data":{"defaultPlatform":"linux/amd64"}}`,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.DefaultPlatform(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, engine.Queries())
}

func TestDo(t *testing.T) {
	c, _ := connect(t, map[string]string{
		`query{host{workdir{id}}}`: `{"data":{"host":{"workdir":{"id":"dir-1"}}},"extensions":{"trace":"abc"}}`,
		`query{nope}`:              `{"data":null,"errors":[{"message":"Cannot query field"}]}`,
	})
	ctx := context.Background()

	var data struct {
		Host struct {
			Workdir struct {
				ID DirectoryID `json:"id"`
			} `json:"workdir"`
		} `json:"host"`
	}
	resp := &Response{Data: &data}
	require.NoError(t, c.Do(ctx, &Request{Query: `query{host{workdir{id}}}`}, resp))
	require.Equal(t, DirectoryID("dir-1"), data.Host.Workdir.ID)
	require.Equal(t, "abc", resp.Extensions["trace"])

	resp = &Response{}
	err := c.Do(ctx, &Request{Query: `query{nope}`}, resp)
	require.Error(t, err)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "Cannot query field", resp.Errors[0].Message)
}

func TestClose(t *testing.T) {
	c, _ := connect(t, nil)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestConnectError(t *testing.T) {
	t.Setenv("DAGGER_SESSION_PORT", "not-a-port")
	t.Setenv("DAGGER_SESSION_TOKEN", testToken)

	_, err := Connect(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "DAGGER_SESSION_PORT")
	require.Contains(t, err.Error(), errorHelpBlurb)
}

func TestNormalizePaths(t *testing.T) {
	t.Setenv("DAGGER_WORKDIR", "")
	t.Setenv("DAGGER_CONFIG", "")

	workdir := t.TempDir()
	wd, cfg, err := NormalizePaths(workdir, "")
	require.NoError(t, err)
	require.Equal(t, workdir, wd)
	require.Empty(t, cfg)

	wd, cfg, err = NormalizePaths(workdir, filepath.Join(workdir, "ci", "dagger.json"))
	require.NoError(t, err)
	require.Equal(t, workdir, wd)
	require.Equal(t, filepath.Join("ci", "dagger.json"), cfg)

	t.Setenv("DAGGER_WORKDIR", workdir)
	wd, _, err = NormalizePaths("", "")
	require.NoError(t, err)
	require.Equal(t, workdir, wd)
}

func TestErrorAliases(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrapped: %w", &DownloadClientError{Version: "0.5.0", Err: errors.New("offline")})
	require.ErrorIs(t, err, ErrDownloadClient)
	require.NotErrorIs(t, err, ErrQuery)
}
