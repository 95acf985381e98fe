package twconf

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks content glob expansion statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesMatched    int // Files kept after filtering
	FilesSkipped    int // Files skipped due to gitignore
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// Gracefully degrade - no .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a matched file is excluded from the content
// set. Only relative paths are checked against the project .gitignore;
// absolute paths (like /tmp fixtures) are outside the project's rules.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// ExpandContent expands the descriptor's content globs relative to dir and
// returns the files the build tool would scan. Results are deduplicated,
// directories are dropped, and gitignored files are skipped.
//
// This enumerates the content set only; scanning those files for class usage
// is the build tool's job.
func ExpandContent(dir string, globs []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range globs {
		fullPattern := pattern
		if dir != "" {
			fullPattern = filepath.Join(dir, pattern)
		}

		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}

			files = append(files, match)
			seen[match] = true
			stats.FilesMatched++
		}
	}

	return files, stats, nil
}
