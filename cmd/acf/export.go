package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schrittweiter/extended-acf/pkg/export"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Resolve field groups and write them for the host plugin",
		Long: `Resolve every definition under the source directory and write the
field groups as JSON, YAML or a PHP file registering them on acf/include_fields.
The PHP hook can be changed with --php-hook, and --template-dir names a
directory whose php.tpl replaces the built-in template.

With --split, --output names a directory and each group is written to its own
file named after the group key.`,
		Args: cobra.NoArgs,
		RunE: a.runExport,
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "", "output format ("+strings.Join(export.Formats(), ", ")+")")
	flags.StringP("output", "o", "", "output file, or directory with --split (stdout when empty)")
	flags.Bool("split", false, "write one file per group")
	flags.Bool("sanitize", true, "strip unsafe markup from editor facing texts")
	flags.String("preset", "", "JSON preset patched into the resolved groups")
	flags.StringSlice("group", nil, "only export these group keys")
	flags.String("template-dir", "", "directory with a php.tpl replacing the built-in PHP template")
	flags.String("php-hook", "", "action the PHP file registers its groups on (default "+export.DefaultPHPHook+")")
	return cmd
}

func (a *app) runExport(cmd *cobra.Command, _ []string) error {
	orch, err := a.orchestrator()
	if err != nil {
		return err
	}
	req, err := a.request()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if a.cfg.Split {
		if a.cfg.Output == "" {
			return errors.New("export: --split needs --output")
		}
		written, err := orch.ExportDir(ctx, req, a.cfg.Output)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := orch.Export(ctx, req, &buf); err != nil {
		return err
	}
	return a.writeOutput(cmd.OutOrStdout(), a.cfg.Output, buf.Bytes())
}
