package util

import (
	"regexp"
	"strings"
	"unicode"

	"go-admin-panel/pkg/apierror"
)

const maxNameLength = 255

var invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeName cleans a display name for the in-memory file tree: control and
// invisible characters are dropped, path separators and shell metacharacters
// become "_", and the result is capped at 255 runes.
func SanitizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apierror.BadRequest("name cannot be empty", "name")
	}

	builder := strings.Builder{}
	builder.Grow(len(trimmed))
	for _, char := range trimmed {
		if unicode.IsControl(char) || unicode.Is(unicode.Cf, char) {
			continue
		}
		builder.WriteRune(char)
	}

	cleaned := strings.TrimSpace(invalidNameChars.ReplaceAllString(builder.String(), "_"))
	if cleaned == "" {
		return "", apierror.BadRequest("name is invalid after sanitization", "name")
	}

	if cleaned == "." || cleaned == ".." {
		return "", apierror.BadRequest("name cannot be current or parent directory", "name")
	}

	runes := []rune(cleaned)
	if len(runes) > maxNameLength {
		cleaned = string(runes[:maxNameLength])
	}

	return cleaned, nil
}

// ContainsFold reports whether substr is within s, ignoring case. An empty
// substr always matches.
func ContainsFold(s string, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// UniqueStrings trims, drops empties and removes duplicates, keeping first
// occurrence order. The result is never nil.
func UniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
