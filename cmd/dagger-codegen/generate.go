package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/psanford/memfs"
	"github.com/spf13/cobra"

	"github.com/dagger/dagger-go-sdk/codegen/generator"
	gogenerator "github.com/dagger/dagger-go-sdk/codegen/generator/go"
	"github.com/dagger/dagger-go-sdk/codegen/introspection"
	"github.com/dagger/dagger-go-sdk/dagger"
)

var (
	outputFile            string
	pkgName               string
	lang                  string
	introspectionJSONPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the client bindings for a schema",
	RunE:  Generate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "file to write the bindings to (default stdout)")
	generateCmd.Flags().StringVar(&pkgName, "package", "dagger", "package name of the generated file")
	generateCmd.Flags().StringVar(&lang, "lang", string(generator.SDKLangGo), "language to generate")
	generateCmd.Flags().StringVar(&introspectionJSONPath, "introspection-json", "", "optional path to file containing pre-computed graphql introspection JSON")
}

func getGenerator(cfg generator.Config, logger *slog.Logger) (generator.Generator, error) {
	switch cfg.Lang {
	case generator.SDKLangGo:
		return &gogenerator.GoGenerator{
			Config: cfg,
			Logger: logger,
		}, nil
	default:
		return nil, fmt.Errorf("use target SDK language %q: %w", generator.SDKLangGo, generator.ErrUnknownSDKLang)
	}
}

func Generate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	cfg := generator.Config{
		Lang:                  generator.SDKLang(lang),
		Package:               pkgName,
		IntrospectionJSONPath: introspectionJSONPath,
	}
	if outputFile != "" {
		cfg.OutputFile = filepath.Base(outputFile)
	} else {
		cfg.OutputFile = gogenerator.ClientGenFile
	}

	gen, err := getGenerator(cfg, logger)
	if err != nil {
		return err
	}

	schema, err := loadSchema(cmd, cfg)
	if err != nil {
		return err
	}

	generated, err := gen.Generate(ctx, schema)
	if err != nil {
		return err
	}

	if outputFile == "" {
		return generator.Print(generated.Overlay, cfg.OutputFile, cmd.OutOrStdout())
	}

	outputDir := filepath.Dir(outputFile)
	if mfs, ok := generated.Overlay.(*memfs.FS); ok {
		if err := generator.MarkGenerated(mfs, cfg.OutputFile, outputDir); err != nil {
			return err
		}
	}
	if err := generator.Overlay(ctx, logger, generated.Overlay, outputDir); err != nil {
		return fmt.Errorf("failed to overlay generated code: %w", err)
	}
	logger.Info("done!")
	return nil
}

func loadSchema(cmd *cobra.Command, cfg generator.Config) (*introspection.Schema, error) {
	if cfg.IntrospectionJSONPath != "" {
		return generator.LoadIntrospection(cfg.IntrospectionJSONPath)
	}

	ctx := cmd.Context()
	dag, err := dagger.Connect(ctx,
		dagger.WithLogger(slog.Default()),
		dagger.WithLogOutput(cmd.ErrOrStderr()),
	)
	if err != nil {
		return nil, err
	}
	defer dag.Close()

	return generator.Introspect(ctx, dag)
}
