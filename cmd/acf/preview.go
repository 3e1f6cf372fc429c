package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview GROUP",
		Short: "List the fields of a group that are visible for sample values",
		Long: `Evaluate the conditional logic of GROUP against the values in --values
(a YAML or JSON mapping keyed by field name) and print the visible fields.
Nested fields are printed as parent.child.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runPreview,
	}
	cmd.Flags().String("values", "", "YAML or JSON file with sample values")
	return cmd
}

func (a *app) runPreview(cmd *cobra.Command, args []string) error {
	values := map[string]any{}
	if path, _ := cmd.Flags().GetString("values"); path != "" {
		data, err := afero.ReadFile(a.files, path)
		if err != nil {
			return fmt.Errorf("preview: read values: %w", err)
		}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("preview: decode %s: %w", path, err)
		}
	}

	orch, err := a.orchestrator()
	if err != nil {
		return err
	}
	req, err := a.request()
	if err != nil {
		return err
	}
	visible, err := orch.Preview(cmd.Context(), req, args[0], values)
	if err != nil {
		return err
	}
	for _, name := range visible {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
