package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/mj1618/kodi-search/internal/search"
)

func TestSearchCommand_Flags(t *testing.T) {
	flags := searchCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"query", "string"},
		{"method", "string"},
		{"window", "string"},
		{"lock", "bool"},
		{"lock-timeout", "int"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestSearchCommand_NoQueryIsNoop(t *testing.T) {
	for _, args := range [][]string{
		{"search", "--format", "json"},
		{"search", "--format", "json", "method=global"},
		{"search", "--format", "json", "search="},
	} {
		out, err := runCLI(t, args...)
		if err != nil {
			t.Fatalf("%v: expected exit 0, got %v", args, err)
		}
		var report search.Report
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("%v: output is not valid JSON: %v\n%s", args, err, out)
		}
		if !report.OK || len(report.Steps) != 0 {
			t.Errorf("%v: report = %+v, want ok with no steps", args, report)
		}
	}
}

func TestSkinsCommand_IDs(t *testing.T) {
	out, err := runCLI(t, "skins", "--format", "json", "--ids")
	if err != nil {
		t.Fatal(err)
	}
	skinsCmd.Flags().Set("ids", "false")

	var ids []string
	if err := json.Unmarshal([]byte(out), &ids); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(ids) != 2 || ids[0] != "default" || ids[1] != "skin.arctic.fuse.2" {
		t.Errorf("ids = %v", ids)
	}
}

func TestAcquireSearchLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locks", "search.lock")

	unlock, err := acquireSearchLock(path, time.Second)
	if err != nil {
		t.Fatal(err)
	}

	_, err = acquireSearchLock(path, 150*time.Millisecond)
	if err == nil {
		t.Error("second acquire should time out while the lock is held")
	}

	unlock()
	unlock2, err := acquireSearchLock(path, time.Second)
	if err != nil {
		t.Fatalf("acquire after unlock: %v", err)
	}
	unlock2()
}

func TestPullUpCommand_RejectsUnknownType(t *testing.T) {
	_, err := runCLI(t, "pullup", "--type", "music", "Dune")
	pullupCmd.Flags().Set("type", "all")
	if err == nil {
		t.Error("expected error for unknown media type")
	}
}

func TestPullUpCommand_RequiresTitle(t *testing.T) {
	if _, err := runCLI(t, "pullup"); err == nil {
		t.Error("expected error without a title")
	}
}
