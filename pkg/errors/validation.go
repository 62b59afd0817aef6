package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxEntityIDLength bounds identifiers read from scene files.
const MaxEntityIDLength = 256

// SceneExtensions lists the file extensions a scene can be read from.
var SceneExtensions = []string{".json", ".yaml", ".yml"}

// ValidateEntityID checks an identifier read from a scene file. IDs end up
// in cache keys, DOT node names and SVG attributes, so control characters
// and quoting characters are rejected.
func ValidateEntityID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidScene, "entity id cannot be empty")
	}

	if len(id) > MaxEntityIDLength {
		return New(ErrCodeInvalidScene, "entity id too long (max %d characters)", MaxEntityIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "entity id contains invalid control characters")
		}
	}

	if strings.ContainsAny(id, "\"<>&") {
		return New(ErrCodeInvalidScene, "entity id contains invalid characters: %q", id)
	}

	return nil
}

// ValidateSceneFilename checks that a scene path has a supported extension
// and no parent directory traversal.
func ValidateSceneFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "scene path cannot be empty")
	}

	if path == "-" {
		return nil
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, ok := range SceneExtensions {
		if ext == ok {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported scene extension %q (want one of %s)",
		ext, strings.Join(SceneExtensions, ", "))
}

// ValidateViewport checks that both viewport dimensions are positive.
func ValidateViewport(width, height float64) error {
	if !(width > 0) || !(height > 0) {
		return New(ErrCodeInvalidViewport, "viewport must be positive, got %vx%v", width, height)
	}
	return nil
}
