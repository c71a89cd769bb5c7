// Package workdir locates the config file for a working directory.
package workdir

import (
	"os"
	"path/filepath"

	"github.com/marcus/dropdown/internal/config"
)

// EnvConfig names a config file that bypasses the directory search.
const EnvConfig = "DROPDOWN_CONFIG"

// FindConfig returns the config path for dir. $DROPDOWN_CONFIG wins;
// otherwise the nearest existing config in dir or one of its parents.
// With neither, the path under dir is returned so init has a place to
// write.
func FindConfig(dir string) string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir = filepath.Clean(dir)
	for d := dir; ; {
		if p := config.Path(d); isFile(p) {
			return p
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}
	return config.Path(dir)
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
