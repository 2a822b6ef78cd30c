package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxPathLength bounds file paths taken from config and flags.
const MaxPathLength = 4096

// PrepareFilePath checks a state or log file path and creates its parent
// directory. It returns the cleaned absolute path.
func PrepareFilePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if len(path) > MaxPathLength {
		return "", fmt.Errorf("path too long (max %d characters)", MaxPathLength)
	}
	for _, char := range path {
		if char < 32 {
			return "", fmt.Errorf("path contains control characters")
		}
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if strings.HasPrefix(path, "~") {
		return "", fmt.Errorf("invalid tilde usage in %q", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot make path absolute: %w", err)
	}

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", abs)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", abs, err)
	}

	return abs, nil
}
