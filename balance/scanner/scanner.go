// Package scanner runs balance scans in the background and keeps their
// results addressable by ID, so the web UI can submit a path and poll
// for progress.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dhamidi/braces/balance"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// DefaultExtensions lists the file types worth scanning: languages
// with `//` line comments and brace/paren syntax, where the counting
// heuristic means something.
var DefaultExtensions = []string{
	".ts", ".tsx", ".js", ".jsx",
	".go", ".java", ".c", ".h", ".cpp", ".hpp", ".cs", ".rs",
}

type Request struct {
	ID         string
	Path       string
	Extensions []string
	CreatedAt  time.Time
}

type Result struct {
	ID        string
	Status    Status
	Request   Request
	Files     []*balance.Result
	Error     string
	Errors    []string
	StartedAt time.Time
	EndedAt   time.Time
	Progress  int
	Total     int
}

func (r *Result) ProgressPercent() int {
	if r.Total == 0 {
		return 0
	}
	return (r.Progress * 100) / r.Total
}

// ProblemCount is the number of problem lines across all scanned files.
func (r *Result) ProblemCount() int {
	count := 0
	for _, f := range r.Files {
		count += len(f.Problems)
	}
	return count
}

type Scanner struct {
	mu       sync.RWMutex
	scans    map[string]*Result
	requests chan Request
	nextID   int
}

func New() *Scanner {
	s := &Scanner{
		scans:    make(map[string]*Result),
		requests: make(chan Request, 100),
	}
	go s.run()
	return s
}

func (s *Scanner) run() {
	for req := range s.requests {
		s.processScan(req)
	}
}

func (s *Scanner) processScan(req Request) {
	s.mu.Lock()
	result := s.scans[req.ID]
	result.Status = StatusInProgress
	result.StartedAt = time.Now()
	s.mu.Unlock()

	exts := req.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var files []string
	var errors []string

	info, err := os.Stat(req.Path)
	switch {
	case err != nil:
		errors = append(errors, fmt.Sprintf("stat %s: %v", req.Path, err))
	case info.IsDir():
		files, errors = CollectFiles(req.Path, exts)
	default:
		files = []string{req.Path}
	}

	s.mu.Lock()
	result.Total = len(files)
	s.mu.Unlock()

	var scanned []*balance.Result
	for i, file := range files {
		fileResult, err := balance.ScanFile(file)
		if err != nil {
			errors = append(errors, err.Error())
		} else {
			scanned = append(scanned, fileResult)
		}

		s.mu.Lock()
		result.Progress = i + 1
		s.mu.Unlock()
	}

	// The slices are assigned once here and never written again, so
	// snapshots taken by Get and List can share them.
	s.mu.Lock()
	defer s.mu.Unlock()
	result.EndedAt = time.Now()
	result.Files = scanned
	result.Errors = errors
	if len(errors) > 0 && len(scanned) == 0 {
		result.Status = StatusFailed
		result.Error = errors[0]
	} else {
		result.Status = StatusCompleted
	}
}

// CollectFiles walks root and returns every file whose extension is in
// exts, plus a message per path that could not be visited.
func CollectFiles(root string, exts []string) ([]string, []string) {
	var files []string
	var errors []string

	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			errors = append(errors, fmt.Sprintf("walk %s: %v", p, err))
			return nil
		}
		if !info.IsDir() && MatchesExtension(p, exts) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		errors = append(errors, fmt.Sprintf("walk %s: %v", root, err))
	}

	return files, errors
}

func MatchesExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func (s *Scanner) Submit(req Request) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	req.ID = fmt.Sprintf("%d", s.nextID)
	req.CreatedAt = time.Now()

	s.scans[req.ID] = &Result{
		ID:      req.ID,
		Status:  StatusPending,
		Request: req,
	}

	s.requests <- req
	return req.ID
}

// Get returns a snapshot of the scan. The worker goroutine keeps
// writing to the live record until the scan finishes, so callers never
// see the internal pointer.
func (s *Scanner) Get(id string) (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.scans[id]
	if !ok {
		return nil, false
	}
	snapshot := *result
	return &snapshot, true
}

// List returns snapshots of all scans, newest first.
func (s *Scanner) List() []*Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]*Result, 0, len(s.scans))
	for _, r := range s.scans {
		snapshot := *r
		results = append(results, &snapshot)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Request.CreatedAt.After(results[j].Request.CreatedAt)
	})
	return results
}
