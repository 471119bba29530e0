package scopedcss

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultIncludes matches template files when Config.Includes is empty.
var DefaultIncludes = []string{"**/*.scoped.css"}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads .gitignore from the working directory once.
// A missing file disables ignore filtering.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a discovered template is gitignored.
// Only relative paths are checked; absolute paths are outside the project's
// ignore rules.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// DiscoverStats counts what template discovery saw.
type DiscoverStats struct {
	FilesDiscovered int
	FilesSkipped    int
}

// discoverTemplates expands include globs under sourceDir into a sorted,
// deduplicated list of regular files.
func discoverTemplates(sourceDir string, includes []string) ([]string, DiscoverStats, error) {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	var stats DiscoverStats
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range includes {
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

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
		}
	}

	sort.Strings(files)
	return files, stats, nil
}
