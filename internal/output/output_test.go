package output

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPrintYAML(t *testing.T) {
	out := capture(t, func() error {
		return PrintYAML(sample{OK: true, Action: "search", Query: "Breaking Bad", Profile: "skin.arctic.fuse.2"})
	})

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded sample
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Profile != "skin.arctic.fuse.2" {
		t.Errorf("profile: got %q", decoded.Profile)
	}
}

func TestRender(t *testing.T) {
	text, err := Render(sample{OK: true, Action: "wait"})
	if err != nil {
		t.Fatal(err)
	}
	if text != "ok: true\naction: wait\n" {
		t.Errorf("Render() = %q", text)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"agent", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
