package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dagger/dagger-go-sdk/codegen/introspection"
	"github.com/dagger/dagger-go-sdk/dagger"
)

var outputSchema string

var introspectCmd = &cobra.Command{
	Use:   "introspect",
	Short: "Dump the engine schema as introspection JSON",
	RunE:  Introspect,
}

func Introspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dag, err := dagger.Connect(ctx,
		dagger.WithLogger(slog.Default()),
		dagger.WithLogOutput(cmd.ErrOrStderr()),
	)
	if err != nil {
		return err
	}
	defer dag.Close()

	var data any
	err = dag.Do(ctx, &dagger.Request{
		Query: introspection.Query,
	}, &dagger.Response{
		Data: &data,
	})
	if err != nil {
		return fmt.Errorf("introspection query: %w", err)
	}
	if data == nil {
		return nil
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal introspection json: %w", err)
	}
	if outputSchema != "" {
		return os.WriteFile(outputSchema, jsonData, 0o644)
	}
	cmd.Println(string(jsonData))
	return nil
}

func init() {
	introspectCmd.Flags().StringVarP(&outputSchema, "output", "o", "", "save introspection result to file")
}
