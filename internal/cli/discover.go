package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Matches reports whether a file base name is a shorthand input.
func Matches(name, readExt string, pattern *regexp.Regexp) bool {
	if !strings.Contains(name, readExt) {
		return false
	}
	return pattern == nil || pattern.MatchString(name)
}

// Discover walks root and returns every matching file, sorted.
func Discover(root, readExt string, pattern *regexp.Regexp) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if Matches(d.Name(), readExt, pattern) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// OutputPath replaces the first occurrence of readExt in the base name with
// writeExt.
func OutputPath(path, readExt, writeExt string) (string, error) {
	dir, base := filepath.Split(path)
	if !strings.Contains(base, readExt) {
		return "", fmt.Errorf("%s: name does not contain %q", path, readExt)
	}
	out := dir + strings.Replace(base, readExt, writeExt, 1)
	if out == path {
		return "", fmt.Errorf("%s: output path equals input path", path)
	}
	return out, nil
}

// isYAML reports whether path should be decoded as YAML.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
