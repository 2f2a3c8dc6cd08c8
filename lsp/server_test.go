package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/braces/balance"
)

func TestDiagnostics(t *testing.T) {
	result, err := balance.Scan(strings.NewReader("}\nok();\n  )\n"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	diagnostics := Diagnostics(result)
	if len(diagnostics) != 2 {
		t.Fatalf("len(diagnostics) = %d, want 2", len(diagnostics))
	}

	first := diagnostics[0]
	if first.Range.Start.Line != 0 {
		t.Errorf("Start.Line = %d, want 0 (LSP lines are zero-based)", first.Range.Start.Line)
	}
	if first.Severity == nil || *first.Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("Severity = %v, want warning", first.Severity)
	}
	if first.Source == nil || *first.Source != "braces" {
		t.Errorf("Source = %v, want braces", first.Source)
	}
	if !strings.Contains(first.Message, "braces=-1") {
		t.Errorf("Message = %q, want it to mention braces=-1", first.Message)
	}

	second := diagnostics[1]
	if second.Range.Start.Line != 2 {
		t.Errorf("second Start.Line = %d, want 2", second.Range.Start.Line)
	}
	if !strings.Contains(second.Message, "parens=-1") {
		t.Errorf("second Message = %q, want it to mention parens=-1", second.Message)
	}
}

func TestDiagnosticsEmpty(t *testing.T) {
	result, err := balance.Scan(strings.NewReader("balanced();\n"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if diagnostics := Diagnostics(result); len(diagnostics) != 0 {
		t.Errorf("diagnostics = %v, want none", diagnostics)
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///home/user/app.ts", "/home/user/app.ts"},
		{"/already/a/path.ts", "/already/a/path.ts"},
	}

	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		if err != nil {
			t.Errorf("uriToPath(%q): %v", tt.uri, err)
			continue
		}
		if got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
