package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the directory created under the user's config dir.
const AppDirName = "passkeeper"

// DefaultDataDir returns <user config dir>/passkeeper, falling back to the
// working directory when the platform has no config dir (e.g. $HOME unset).
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			base = cwd
		} else {
			base = "."
		}
	}
	return filepath.Join(base, AppDirName)
}

// EnsureDir creates dir (and parents) with owner-only permissions and
// returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
