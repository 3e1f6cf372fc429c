package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/schrittweiter/extended-acf/pkg/openapi"
)

func newSchemaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Describe the field groups as an OpenAPI document",
		Args:  cobra.NoArgs,
		RunE:  a.runSchema,
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "", "output file (stdout when empty)")
	flags.StringSlice("group", nil, "only describe these group keys")
	flags.String("title", "", "document title")
	flags.String("api-version", "", "document version")
	flags.String("base-path", "", "path prefix of the group endpoints")
	flags.String("server-url", "", "server URL")
	return cmd
}

func (a *app) runSchema(cmd *cobra.Command, _ []string) error {
	orch, err := a.orchestrator()
	if err != nil {
		return err
	}
	req, err := a.request()
	if err != nil {
		return err
	}
	doc, err := orch.Schema(cmd.Context(), req, openapi.Options{
		Title:     a.cfg.Schema.Title,
		Version:   a.cfg.Schema.Version,
		BasePath:  a.cfg.Schema.BasePath,
		ServerURL: a.cfg.Schema.ServerURL,
	})
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("schema: encode: %w", err)
	}
	output, _ := cmd.Flags().GetString("output")
	return a.writeOutput(cmd.OutOrStdout(), output, append(data, '\n'))
}
