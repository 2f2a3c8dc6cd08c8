package balance

import (
	"strings"
	"testing"
)

func TestWriteReportFormat(t *testing.T) {
	result, err := Scan(strings.NewReader("}\n{\n"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var buf strings.Builder
	result.WriteReport(&buf, DefaultLimit)

	want := "Lines where balance goes negative:\n" +
		"Line 1: braces=-1, parens=0\n" +
		"  }\n" +
		"\n" +
		"Final counts: braces=0, parens=0\n"
	if buf.String() != want {
		t.Errorf("report = %q, want %q", buf.String(), want)
	}
}

func TestWriteReportEmpty(t *testing.T) {
	result, err := Scan(strings.NewReader("foo();\n"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var buf strings.Builder
	result.WriteReport(&buf, DefaultLimit)

	want := "Lines where balance goes negative:\n" +
		"\n" +
		"Final counts: braces=0, parens=0\n"
	if buf.String() != want {
		t.Errorf("report = %q, want %q", buf.String(), want)
	}
}

func TestWriteReportLimitsProblemLines(t *testing.T) {
	result, err := Scan(strings.NewReader(strings.Repeat(")\n", 15)))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var buf strings.Builder
	result.WriteReport(&buf, DefaultLimit)
	report := buf.String()

	if got := strings.Count(report, "Line "); got != DefaultLimit {
		t.Errorf("printed %d problem lines, want %d", got, DefaultLimit)
	}
	// The totals cover all 15 lines, not just the printed ten.
	if !strings.Contains(report, "Final counts: braces=0, parens=-15") {
		t.Errorf("report %q is missing final counts over the whole input", report)
	}
}

func TestWriteReportTruncatesText(t *testing.T) {
	line := strings.Repeat("x", 100) + ")"

	result, err := Scan(strings.NewReader(line))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var buf strings.Builder
	result.WriteReport(&buf, DefaultLimit)

	want := "  " + strings.Repeat("x", 80) + "\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("report %q does not contain the 80-char truncation", buf.String())
	}
	if strings.Contains(buf.String(), strings.Repeat("x", 81)) {
		t.Errorf("report %q contains more than 80 characters of the line", buf.String())
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 80, "short"},
		{"abcdef", 3, "abc"},
		{"héllo wörld", 7, "héllo w"},
		{"", 10, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}
