package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver finds word list files relative to the places a user is
// likely to keep them.
type PathResolver struct {
	executableDir string
	workingDir    string
	configDir     string
}

// NewPathResolver creates a resolver searching the executable directory,
// the working directory and configDir.
func NewPathResolver(configDir string) *PathResolver {
	pr := &PathResolver{configDir: configDir}
	if dir, err := GetExecutableDir(); err == nil {
		pr.executableDir = dir
	} else {
		log.Warnf("Could not determine executable directory: %v", err)
	}
	if cwd, err := os.Getwd(); err == nil {
		pr.workingDir = cwd
	}
	return pr
}

// ResolveFile returns the first existing candidate for path. Absolute paths
// are only checked as given.
func (pr *PathResolver) ResolveFile(path string) (string, error) {
	candidates := pr.candidates(path)
	for _, c := range candidates {
		if FileExists(c) {
			log.Debugf("Resolved %s to %s", path, c)
			return c, nil
		}
		log.Debugf("Word list candidate not found: %s", c)
	}
	return "", fmt.Errorf("%s not found in %v: %w", path, candidates, os.ErrNotExist)
}

func (pr *PathResolver) candidates(path string) []string {
	if path == "" {
		return nil
	}
	if filepath.IsAbs(path) {
		return []string{path}
	}

	var out []string
	for _, dir := range []string{pr.workingDir, pr.executableDir, pr.configDir} {
		if dir != "" {
			out = append(out, filepath.Join(dir, path))
		}
	}
	if pr.executableDir != "" {
		out = append(out, filepath.Join(pr.executableDir, "data", filepath.Base(path)))
	}
	return out
}
