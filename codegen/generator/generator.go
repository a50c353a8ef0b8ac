package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dagger/dagger-go-sdk/codegen/introspection"
	"github.com/dagger/dagger-go-sdk/dagger"
)

var ErrUnknownSDKLang = errors.New("unknown sdk language")

type SDKLang string

const (
	SDKLangGo SDKLang = "go"
)

type Config struct {
	Lang SDKLang

	// Package is the target package that is generated.
	Package string

	// OutputFile is the name of the generated file inside the overlay.
	OutputFile string

	// IntrospectionJSONPath is an optional pre-computed introspection result.
	// When empty the schema is introspected from a live engine.
	IntrospectionJSONPath string
}

type Generator interface {
	// Generate renders the client bindings for schema.
	Generate(ctx context.Context, schema *introspection.Schema) (*GeneratedState, error)
}

type GeneratedState struct {
	// Overlay is the overlay filesystem that contains generated code to write
	// over the output directory.
	Overlay fs.FS
}

// SetSchemaParents sets all the parents for the fields.
func SetSchemaParents(schema *introspection.Schema) {
	for _, t := range schema.Types {
		for _, f := range t.Fields {
			f.ParentObject = t
		}
	}
}

// Introspect get the Dagger Schema with the client c.
func Introspect(ctx context.Context, c *dagger.Client) (*introspection.Schema, error) {
	var response introspection.Response
	err := c.Do(ctx,
		&dagger.Request{
			Query: introspection.Query,
		},
		&dagger.Response{Data: &response},
	)
	if err != nil {
		return nil, fmt.Errorf("error querying the API: %w", err)
	}
	if response.Schema == nil {
		return nil, errors.New("error querying the API: empty schema")
	}
	return response.Schema, nil
}

// LoadIntrospection reads a schema previously dumped by `dagger-codegen
// introspect`.
func LoadIntrospection(path string) (*introspection.Schema, error) {
	dt, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read introspection json: %w", err)
	}
	resp, err := introspection.UnmarshalResponse(dt)
	if err != nil {
		return nil, err
	}
	return resp.Schema, nil
}
