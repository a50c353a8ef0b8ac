package gogenerator

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"log/slog"
	"strings"
	"text/template"

	"github.com/psanford/memfs"
	"golang.org/x/tools/imports"

	"github.com/dagger/dagger-go-sdk/codegen/generator"
	"github.com/dagger/dagger-go-sdk/codegen/generator/go/templates"
	"github.com/dagger/dagger-go-sdk/codegen/introspection"
)

const ClientGenFile = "dagger.gen.go"

type GoGenerator struct {
	Config generator.Config
	Logger *slog.Logger
}

var _ generator.Generator = &GoGenerator{}

func (g *GoGenerator) Generate(ctx context.Context, schema *introspection.Schema) (*generator.GeneratedState, error) {
	source, err := g.Render(ctx, schema)
	if err != nil {
		return nil, err
	}

	fileName := g.Config.OutputFile
	if fileName == "" {
		fileName = ClientGenFile
	}

	mfs := memfs.New()
	if err := mfs.WriteFile(fileName, source, 0o600); err != nil {
		return nil, err
	}

	return &generator.GeneratedState{
		Overlay: mfs,
	}, nil
}

// Render returns the formatted Go source of the client bindings.
func (g *GoGenerator) Render(ctx context.Context, schema *introspection.Schema) ([]byte, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	pkg := g.Config.Package
	if pkg == "" {
		pkg = "dagger"
	}

	generator.SetSchemaParents(schema)
	funcs := templates.GoTemplateFuncs(schema, logger)

	headerData := struct {
		Package string
		Schema  *introspection.Schema
	}{
		Package: pkg,
		Schema:  schema,
	}

	var render []string

	var header bytes.Buffer
	if err := templates.Header(funcs).Execute(&header, headerData); err != nil {
		return nil, err
	}
	render = append(render, header.String())

	visit := func(tmpl *template.Template) introspection.VisitFunc {
		return func(t *introspection.Type) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var out bytes.Buffer
			if err := tmpl.Execute(&out, t); err != nil {
				return err
			}
			render = append(render, out.String())
			return nil
		}
	}

	err := schema.Visit(introspection.VisitHandlers{
		Scalar: visit(templates.Scalar(funcs)),
		Input:  visit(templates.Input(funcs)),
		Object: visit(templates.Object(funcs)),
		Enum:   visit(templates.Enum(funcs)),
	})
	if err != nil {
		return nil, err
	}

	formatted, err := format.Source(
		[]byte(strings.Join(render, "\n")),
	)
	if err != nil {
		return nil, fmt.Errorf("error formatting generated code: %w", err)
	}
	formatted, err = imports.Process(ClientGenFile, formatted, nil)
	if err != nil {
		return nil, fmt.Errorf("error formatting generated code: %w", err)
	}

	logger.Debug("rendered client bindings", "package", pkg, "bytes", len(formatted))
	return formatted, nil
}
