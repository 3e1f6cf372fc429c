package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/schrittweiter/extended-acf/internal/prompt"
	"github.com/schrittweiter/extended-acf/internal/scaffold"
)

func newNewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a definition file by answering questions",
		Args:  cobra.NoArgs,
		RunE:  a.runNew,
	}
	cmd.Flags().StringP("output", "o", "", "definition file to write (stdout when empty)")
	return cmd
}

func (a *app) runNew(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		exists, err := afero.Exists(a.files, output)
		if err != nil {
			return err
		}
		if exists {
			overwrite, err := a.driver.Confirm(ctx, prompt.ConfirmConfig{
				Message: fmt.Sprintf("%s exists. Overwrite?", output),
			})
			if err != nil {
				return err
			}
			if !overwrite {
				return prompt.ErrAborted
			}
		}
	}

	doc, err := scaffold.New(a.driver, a.registry).Run(ctx)
	if errors.Is(err, prompt.ErrAborted) {
		a.log.Warn("scaffold aborted")
		return err
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := scaffold.Write(&buf, doc); err != nil {
		return err
	}
	if err := a.writeOutput(cmd.OutOrStdout(), output, buf.Bytes()); err != nil {
		return err
	}
	if output != "" {
		return a.driver.Info(ctx, fmt.Sprintf("Run `acf lint` to check %s.", output))
	}
	return nil
}
