// Package balance reports lines in a source file where the running
// count of braces or parentheses goes negative, which usually means a
// closing delimiter appears before its opener. Strings and line
// comments are stripped with regular expressions before counting, so
// the result is a debugging aid, not a parse.
package balance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	quotedRe  = regexp.MustCompile(`["'].*?["']`)
	commentRe = regexp.MustCompile(`//.*$`)
)

// Problem captures a line after which a delimiter counter is negative.
// Braces and Parens are the counter values at that point in the scan,
// Text is the raw line with surrounding whitespace trimmed.
type Problem struct {
	Line   int    `json:"line"`
	Braces int    `json:"braces"`
	Parens int    `json:"parens"`
	Text   string `json:"text"`
}

// Result holds every problem found in a scan together with the final
// counter values after the whole input was processed.
type Result struct {
	Path     string    `json:"path,omitempty"`
	Problems []Problem `json:"problems"`
	Braces   int       `json:"braces"`
	Parens   int       `json:"parens"`
}

// CleanLine removes quoted substrings and // line comments from a
// single line. The quote match is non-greedy and does not understand
// escaped quotes; the comment match does not understand block
// comments. Both limitations are intentional: the cleaning is a
// heuristic and changing it would change reported counts.
func CleanLine(line string) string {
	line = quotedRe.ReplaceAllString(line, "")
	return commentRe.ReplaceAllString(line, "")
}

// Scan reads r line by line and counts braces and parentheses in the
// cleaned text of each line. Lines have no length limit: malformed or
// minified input can only count wrong, never fail. Every line is
// processed even when more problems accumulate than a report will
// show.
func Scan(r io.Reader) (*Result, error) {
	result := &Result{}

	br := bufio.NewReader(r)

	lineNum := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("read input: %w", readErr)
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNum++

		raw = strings.TrimSuffix(raw, "\n")
		raw = strings.TrimSuffix(raw, "\r")
		clean := CleanLine(raw)

		for i := 0; i < len(clean); i++ {
			switch clean[i] {
			case '{':
				result.Braces++
			case '}':
				result.Braces--
			case '(':
				result.Parens++
			case ')':
				result.Parens--
			}
		}

		if result.Braces < 0 || result.Parens < 0 {
			result.Problems = append(result.Problems, Problem{
				Line:   lineNum,
				Braces: result.Braces,
				Parens: result.Parens,
				Text:   strings.TrimSpace(raw),
			})
		}

		if readErr == io.EOF {
			break
		}
	}

	return result, nil
}

// ScanFile scans the file at path. File access errors propagate;
// malformed source text cannot fail, it can only count wrong.
func ScanFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	result, err := Scan(f)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	result.Path = path
	return result, nil
}
