package utils

import (
	"path/filepath"
	"strings"
)

// sourceExt is the on-disk extension for a module's source file, used
// by the path helpers below. The concrete search-path/file-resolution
// strategy itself remains an external collaborator per the module
// system's interface boundary.
const sourceExt = ".lc"

// ResolveImportPath resolves an import path relative to a base
// directory when it is written as a relative (dot-prefixed) path;
// otherwise it is returned unchanged.
func ResolveImportPath(baseDir, importPath string) string {
	if len(importPath) > 0 && importPath[0] == '.' {
		if baseDir != "." && baseDir != "" {
			return filepath.Join(baseDir, importPath)
		}
	}
	return importPath
}

// ExtractModuleName derives a module name from a file path by taking
// the base filename and stripping the source extension.
func ExtractModuleName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, sourceExt)
}

// GetModuleDir returns the directory context for a module path: the
// file's directory if path points at a source file, or path itself if
// it already names a directory.
func GetModuleDir(path string) string {
	if strings.HasSuffix(path, sourceExt) {
		return filepath.Dir(path)
	}
	return path
}
