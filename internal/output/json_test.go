package output

import (
	"bytes"
	"encoding/json"
	"testing"
)

type sample struct {
	OK      bool   `yaml:"ok"                json:"ok"`
	Action  string `yaml:"action"            json:"action"`
	Query   string `yaml:"query,omitempty"   json:"query,omitempty"`
	Profile string `yaml:"profile,omitempty" json:"profile,omitempty"`
}

// capture redirects Writer for the duration of fn.
func capture(t *testing.T, fn func() error) string {
	t.Helper()
	var buf bytes.Buffer
	old := Writer
	Writer = &buf
	defer func() { Writer = old }()
	if err := fn(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestPrintJSON_Compact(t *testing.T) {
	out := capture(t, func() error {
		return PrintJSON(sample{OK: true, Action: "search", Query: "Rock & Roll <live>"})
	})

	// Compact output should be a single line (plus newline from Encode)
	if bytes.Count([]byte(out), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("Rock & Roll <live>")) {
		t.Errorf("HTML characters should not be escaped, got %s", out)
	}

	var decoded sample
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Query != "Rock & Roll <live>" {
		t.Errorf("query: got %q", decoded.Query)
	}
}

func TestPrintJSON_Pretty(t *testing.T) {
	out := capture(t, func() error {
		return PrintPrettyJSON(sample{OK: true, Action: "skin", Profile: "default"})
	})

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", out)
	}
	var decoded sample
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestPrint_UsesCurrentFormat(t *testing.T) {
	oldFormat := OutputFormat
	defer func() { OutputFormat = oldFormat }()

	OutputFormat = FormatJSON
	out := capture(t, func() error { return Print(sample{Action: "status"}) })
	if out[0] != '{' {
		t.Errorf("expected JSON, got %q", out)
	}

	OutputFormat = FormatYAML
	out = capture(t, func() error { return Print(sample{Action: "status"}) })
	if !bytes.HasPrefix([]byte(out), []byte("ok: false\n")) {
		t.Errorf("expected YAML, got %q", out)
	}
}

func TestOmitEmpty(t *testing.T) {
	data, err := json.Marshal(sample{Action: "search"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["query"]; ok {
		t.Error("empty query should be omitted")
	}
	if _, ok := m["ok"]; !ok {
		t.Error("ok should always be present")
	}
}
