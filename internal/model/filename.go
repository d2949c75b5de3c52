package model

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultExtension is used when a stream does not report its container.
const DefaultExtension = "mp4"

// FileNamePolicy controls how much of an audio file name is sanitized.
type FileNamePolicy int

const (
	// FileNamePolicySlash only replaces "/" with "-" so the name stays a
	// single path segment.
	FileNamePolicySlash FileNamePolicy = iota

	// FileNamePolicyStrict also replaces characters that are invalid on
	// Windows filesystems (<>:"\|?* and control chars) with underscores.
	FileNamePolicyStrict
)

// String returns the configuration name of the policy.
func (p FileNamePolicy) String() string {
	switch p {
	case FileNamePolicyStrict:
		return "strict"
	default:
		return "slash"
	}
}

// ParseFileNamePolicy converts a configuration name to a FileNamePolicy.
func ParseFileNamePolicy(name string) (FileNamePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "slash":
		return FileNamePolicySlash, nil
	case "strict":
		return FileNamePolicyStrict, nil
	default:
		return FileNamePolicySlash, fmt.Errorf("unknown file name policy %q", name)
	}
}

var (
	invalidChars   = regexp.MustCompile(`[<>:"\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// AudioFileName derives the file name for a downloaded audio track.
//
// The name has the form "{author} - {title}.{ext}" with every "/" in the
// combined string replaced by "-". With FileNamePolicyStrict the rest of the
// Windows-invalid characters are replaced as well.
//
// Example:
//
//	AudioFileName("A/B", "C", "mp4", FileNamePolicySlash) // "A-B - C.mp4"
func AudioFileName(author, title, ext string, policy FileNamePolicy) string {
	if ext == "" {
		ext = DefaultExtension
	}

	name := strings.ReplaceAll(fmt.Sprintf("%s - %s", author, title), "/", "-")
	if policy == FileNamePolicyStrict {
		name = sanitizeFileName(name)
	}

	return name + "." + ext
}

// sanitizeFileName removes or replaces characters that are invalid in file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
