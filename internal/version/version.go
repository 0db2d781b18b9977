// Package version provides build version information and runtime metadata.
package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// These are set via ldflags at build time
	Version = ""
	Commit  = ""
	Date    = ""

	once sync.Once

	execCommand = exec.CommandContext
)

func ensureInitialized() {
	once.Do(func() {
		if Date == "" {
			Date = time.Now().Format("2006-01-02")
		}
		if Commit == "" {
			Commit = getGitCommit()
		}
		if Version == "" {
			Version = getGitVersion()
		}
	})
}

// Reset clears cached values so they are recomputed on next use.
func Reset() {
	once = sync.Once{}
	Version = ""
	Commit = ""
	Date = ""
}

func getGitCommit() string {
	cmd := execCommand(context.Background(), "git", "describe", "--always", "--dirty")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out.String())
}

func getGitVersion() string {
	cmd := execCommand(context.Background(), "git", "describe", "--tags", "--abbrev=0")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err == nil {
		v := strings.TrimSpace(out.String())
		if v != "" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return "dev"
}

// GetVersion returns the release version.
func GetVersion() string {
	ensureInitialized()
	return Version
}

// GetCommit returns the git commit hash.
func GetCommit() string {
	ensureInitialized()
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	ensureInitialized()
	return Date
}

func Info() string {
	ensureInitialized()
	return fmt.Sprintf("ccdash %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
