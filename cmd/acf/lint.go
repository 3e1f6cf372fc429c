package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check definitions without writing anything",
		Long: `Load and resolve every definition under the source directory and report
invalid options, unknown field types and conditional logic pointing at fields
that are not siblings.`,
		Args: cobra.NoArgs,
		RunE: a.runLint,
	}
}

func (a *app) runLint(cmd *cobra.Command, _ []string) error {
	orch, err := a.orchestrator()
	if err != nil {
		return err
	}
	req, err := a.request()
	if err != nil {
		return err
	}
	issues, err := orch.Lint(cmd.Context(), req)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintln(out, "no issues found")
		return nil
	}
	for _, issue := range issues {
		fmt.Fprintln(out, issue.Error())
	}
	if len(issues) == 1 {
		return errors.New("lint: 1 issue")
	}
	return fmt.Errorf("lint: %d issues", len(issues))
}
