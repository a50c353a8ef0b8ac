package main

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixture = "../../codegen/introspection/testdata/introspection.json"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	outputFile, pkgName, lang, introspectionJSONPath = "", "dagger", "go", ""
	outputSchema = ""
	debug = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestGenerateToFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "api.gen.go")

	_, err := run(t, "generate", "--introspection-json", fixture, "--package", "api", "-o", out)
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	f, err := parser.ParseFile(token.NewFileSet(), out, src, parser.PackageClauseOnly)
	require.NoError(t, err)
	require.Equal(t, "api", f.Name.Name)

	attrs, err := os.ReadFile(filepath.Join(dir, ".gitattributes"))
	require.NoError(t, err)
	require.Equal(t, "/api.gen.go linguist-generated=true\n", string(attrs))

	// a second run leaves the attributes alone
	_, err = run(t, "generate", "--introspection-json", fixture, "--package", "api", "-o", out)
	require.NoError(t, err)
	attrs, err = os.ReadFile(filepath.Join(dir, ".gitattributes"))
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(attrs), "api.gen.go"))
}

func TestGenerateToStdout(t *testing.T) {
	stdout, err := run(t, "generate", "--introspection-json", fixture)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "// Code generated by dagger-codegen. DO NOT EDIT."))
	require.Contains(t, stdout, "package dagger")
	require.Contains(t, stdout, "func (r *Container) Stdout(ctx context.Context) (*string, error)")
}

func TestGenerateErrors(t *testing.T) {
	_, err := run(t, "generate", "--introspection-json", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "generate", "--introspection-json", fixture, "--lang", "cobol")
	require.ErrorContains(t, err, "unknown sdk language")
}

func TestIntrospect(t *testing.T) {
	schema, err := os.ReadFile(fixture)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":`))
		w.Write(schema)
		w.Write([]byte(`}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("DAGGER_SESSION_PORT", "")
	os.Unsetenv("DAGGER_SESSION_PORT")
	t.Setenv("DAGGER_SESSION_URL", srv.URL)
	t.Setenv("DAGGER_SESSION_TOKEN", "secret")
	t.Setenv("DAGGER_WORKDIR", t.TempDir())

	out := filepath.Join(t.TempDir(), "schema.json")
	_, err = run(t, "introspect", "-o", out)
	require.NoError(t, err)

	dumped, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(dumped), `"__schema"`)

	// the dump feeds straight back into generate
	stdout, err := run(t, "generate", "--introspection-json", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "type Container struct")
}
