package acf_test

import (
	"bytes"
	"context"
	"testing"
	"testing/fstest"

	"github.com/tidwall/gjson"

	acf "github.com/schrittweiter/extended-acf"
	"github.com/schrittweiter/extended-acf/pkg/fields"
	"github.com/schrittweiter/extended-acf/pkg/group"
	"github.com/schrittweiter/extended-acf/pkg/location"
)

func TestExportGroups(t *testing.T) {
	t.Parallel()

	hero := group.New("Hero").
		Fields(fields.NewButton("Send").ButtonType("submit")).
		Location(location.Is("post_type", "page"))

	var buf bytes.Buffer
	if err := acf.ExportGroups(context.Background(), &buf, "json", hero); err != nil {
		t.Fatalf("ExportGroups: %v", err)
	}
	if got := gjson.GetBytes(buf.Bytes(), "0.fields.0.button_type").String(); got != "submit" {
		t.Fatalf("button_type = %q", got)
	}
}

func TestExportFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"contact.json": {Data: []byte(`{"groups": [{"title": "Contact", "fields": [{"type": "table", "label": "Hours"}]}]}`)}}

	store, err := acf.LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one group, got %d", store.Len())
	}

	var buf bytes.Buffer
	if err := acf.Export(context.Background(), &buf, fsys, "yaml"); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("key: group_contact")) {
		t.Fatalf("unexpected yaml:\n%s", buf.String())
	}
}
