package main

import (
	"path"
	"path/filepath"
	"strings"
)

// outputPath inserts "_overscan" before the extension of the file
// name. Names without an extension get the suffix appended.
func outputPath(in string) string {
	ext := filepath.Ext(in)
	if ext == filepath.Base(in) {
		ext = ""
	}
	return strings.TrimSuffix(in, ext) + "_overscan" + ext
}

func safePath(base, name string) (bool, string) {
	if filepath.Separator != '/' && strings.ContainsRune(name, filepath.Separator) {
		return false, ""
	}
	dir := base
	if dir == "" {
		dir = "."
	}
	fullName := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name)))
	return true, fullName
}
