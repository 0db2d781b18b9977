package ingest

import (
	"path/filepath"
	"testing"
)

func TestDiscoverMissingRoot(t *testing.T) {
	files := Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	if len(files) != 0 {
		t.Errorf("got %d files for missing root, want 0", len(files))
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeLog(t, filepath.Join(root, "-proj-a", "s1"), "one.jsonl", "{}")
	writeLog(t, filepath.Join(root, "-proj-a", "s2"), "two.jsonl", "{}")
	writeLog(t, filepath.Join(root, "-proj-b", "s3"), "three.jsonl", "{}")
	writeLog(t, filepath.Join(root, "-proj-b", "s3"), "notes.txt", "ignored")

	files := Discover(root)
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}

	projects := make(map[string]int)
	for _, f := range files {
		projects[f.ProjectName]++
	}
	if projects["-proj-a"] != 2 || projects["-proj-b"] != 1 {
		t.Errorf("project attribution wrong: %v", projects)
	}
}

func TestSortForProcessing(t *testing.T) {
	root := t.TempDir()
	late := writeLog(t, filepath.Join(root, "p", "s1"), "late.jsonl",
		`{"timestamp":"2025-08-02T00:00:00Z"}`)
	early := writeLog(t, filepath.Join(root, "p", "s2"), "early.jsonl",
		`{"timestamp":"2025-08-01T00:00:00Z"}`)
	// No parseable timestamp in the first lines: empty key, sorts first.
	blank := writeLog(t, filepath.Join(root, "p", "s3"), "blank.jsonl",
		"garbage", `{"other":"field"}`)

	files := []LogFile{
		{Path: late, ProjectName: "p"},
		{Path: early, ProjectName: "p"},
		{Path: blank, ProjectName: "p"},
	}
	SortForProcessing(files)

	want := []string{blank, early, late}
	for i, f := range files {
		if f.Path != want[i] {
			t.Errorf("position %d = %s, want %s", i, filepath.Base(f.Path), filepath.Base(want[i]))
		}
	}
}

func TestSortForProcessingIgnoresLateTimestamps(t *testing.T) {
	// The order key only looks at the leading lines of a file.
	root := t.TempDir()
	lines := make([]string, 0, orderKeyLines+1)
	for i := 0; i < orderKeyLines; i++ {
		lines = append(lines, "not json")
	}
	lines = append(lines, `{"timestamp":"2025-01-01T00:00:00Z"}`)
	path := writeLog(t, filepath.Join(root, "p", "s"), "deep.jsonl", lines...)

	if key := orderKey(path); key != "" {
		t.Errorf("orderKey() = %q, want empty for timestamp past line %d", key, orderKeyLines)
	}
}
