package balance

import (
	"fmt"
	"io"
)

const (
	// DefaultLimit is how many problem lines a report shows by default.
	DefaultLimit = 10

	truncateAt = 80
)

// WriteReport prints the problem lines followed by the final counts.
// At most limit problems are printed; the final counts always reflect
// the entire input. Problem text is truncated to 80 characters.
func (r *Result) WriteReport(w io.Writer, limit int) {
	fmt.Fprintln(w, "Lines where balance goes negative:")

	problems := r.Problems
	if limit >= 0 && len(problems) > limit {
		problems = problems[:limit]
	}
	for _, p := range problems {
		fmt.Fprintf(w, "Line %d: braces=%d, parens=%d\n", p.Line, p.Braces, p.Parens)
		fmt.Fprintf(w, "  %s\n", truncate(p.Text, truncateAt))
	}

	fmt.Fprintf(w, "\nFinal counts: braces=%d, parens=%d\n", r.Braces, r.Parens)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
