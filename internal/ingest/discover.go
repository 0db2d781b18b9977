// Package ingest reads Claude Code JSONL logs and turns them into
// canonical usage entries.
package ingest

import (
	"bufio"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LogExt is the extension of Claude Code transcript files.
const LogExt = ".jsonl"

// orderKeyLines is how many leading lines are inspected when computing a
// file's processing-order key.
const orderKeyLines = 10

// LogFile is one discovered transcript file together with the encoded
// project folder name it sits under (used as the project-path fallback
// when no record in the file carries a working directory).
type LogFile struct {
	Path        string
	ProjectName string
}

// Discover recursively collects all transcript files under root. A
// nonexistent root yields an empty list, not an error; unreadable
// subtrees are skipped.
func Discover(root string) []LogFile {
	if _, err := os.Stat(root); err != nil {
		return nil
	}

	var files []LogFile
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), LogExt) {
			return nil
		}
		files = append(files, LogFile{
			Path:        path,
			ProjectName: encodedProjectName(root, path),
		})
		return nil
	})

	return files
}

// encodedProjectName returns the first path segment of path relative to
// root, i.e. the project folder the file belongs to.
func encodedProjectName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) < 2 {
		return ""
	}
	return parts[0]
}

// SortForProcessing orders files by the timestamp of the first parseable
// record within each file's leading lines, comparing keys as plain
// strings. The order exists so that the run-wide dedup set produces
// identical results regardless of filesystem enumeration order; ties
// fall back to the path.
func SortForProcessing(files []LogFile) {
	keys := make(map[string]string, len(files))
	for _, f := range files {
		keys[f.Path] = orderKey(f.Path)
	}
	sort.SliceStable(files, func(i, j int) bool {
		ki, kj := keys[files[i].Path], keys[files[j].Path]
		if ki != kj {
			return ki < kj
		}
		return files[i].Path < files[j].Path
	})
}

func orderKey(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for i := 0; i < orderKeyLines && scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec struct {
			Timestamp string `json:"timestamp"`
		}
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		if rec.Timestamp != "" {
			return rec.Timestamp
		}
	}
	return ""
}
