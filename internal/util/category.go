package util

import "strings"

const (
	CategoryFolder  = "folder"
	CategoryText    = "text"
	CategoryImage   = "image"
	CategoryVideo   = "video"
	CategoryAudio   = "audio"
	CategoryArchive = "archive"
	CategoryCode    = "code"
	CategoryOther   = "other"
)

// Extension returns the lowercase text after the last dot, or "" when the name
// has no dot or ends with one.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// FileCategory classifies a file tree entry for icon selection.
func FileCategory(isFolder bool, extension string) string {
	if isFolder {
		return CategoryFolder
	}

	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), ".")) {
	case "txt", "md":
		return CategoryText
	case "png", "jpg", "jpeg", "gif", "svg":
		return CategoryImage
	case "mp4", "avi", "mkv":
		return CategoryVideo
	case "mp3", "wav", "flac":
		return CategoryAudio
	case "zip", "rar", "7z":
		return CategoryArchive
	case "js", "ts", "jsx", "tsx", "html", "css", "json":
		return CategoryCode
	default:
		return CategoryOther
	}
}
