// Package acf defines custom field groups for Advanced Custom Fields and ACF
// Extended in Go, either with the fluent builders in pkg/fields or from YAML
// and JSON definition files, and exports them as local JSON, YAML or PHP.
//
//	hero := group.New("Hero").
//		Fields(
//			fields.NewButton("Send").ButtonType("submit"),
//			fields.NewRepeater("Slides").Fields(fields.NewImage("Picture")),
//		).
//		Location(location.Is("post_type", "page"))
//
//	err := acf.ExportGroups(ctx, os.Stdout, "php", hero)
package acf

import (
	"context"
	"io"
	"io/fs"

	"github.com/schrittweiter/extended-acf/pkg/definition"
	"github.com/schrittweiter/extended-acf/pkg/group"
	"github.com/schrittweiter/extended-acf/pkg/orchestrator"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Option aliases orchestrator.Option.
type Option = orchestrator.Option

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Export loads every definition in fsys and writes the groups to w in format.
func Export(ctx context.Context, w io.Writer, fsys fs.FS, format string, options ...orchestrator.Option) error {
	return orchestrator.New(options...).Export(ctx, Request{Source: fsys, Format: format}, w)
}

// ExportGroups writes groups built in code to w in format.
func ExportGroups(ctx context.Context, w io.Writer, format string, groups ...*group.Group) error {
	return orchestrator.New().Export(ctx, Request{Groups: groups, Format: format}, w)
}

// LoadFS loads definition files without resolving them.
func LoadFS(fsys fs.FS, options ...definition.Option) (*definition.Store, error) {
	return definition.LoadFS(fsys, options...)
}
