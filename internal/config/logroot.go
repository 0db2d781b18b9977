package config

import (
	"os"
	"path/filepath"
)

// DefaultLogRoot locates the Claude Code projects directory. The legacy
// location under ~/.claude is probed first, then the XDG-style location
// under ~/.config. When neither exists the legacy path is returned so
// callers have a stable value to watch for.
func DefaultLogRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".claude", "projects")
	}

	candidates := []string{
		filepath.Join(home, ".claude", "projects"),
		filepath.Join(home, ".config", "claude", "projects"),
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return candidates[0]
}
