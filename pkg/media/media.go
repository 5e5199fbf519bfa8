// Package media classifies target files by extension.
package media

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the window family a file opens in.
type Kind int

const (
	KindAudio Kind = iota + 1
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindImage:
		return "image"
	}
	return "unknown"
}

// ErrNoPath is returned when no target file was given.
var ErrNoPath = errors.New("please provide a file path")

// UnsupportedError reports an extension outside the audio and image sets.
type UnsupportedError struct {
	Ext string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

var (
	audioExts = map[string]struct{}{
		"mp3": {}, "wav": {}, "ogg": {}, "flac": {},
	}
	imageExts = map[string]struct{}{
		"png": {}, "jpg": {}, "jpeg": {}, "bmp": {}, "tiff": {}, "gif": {}, "ico": {},
	}
)

// Extension returns the lowercased extension of path without the dot,
// or "" when the base name has none. A leading dot (".png") starts a
// hidden file name, not an extension.
func Extension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

// Classify picks the window kind for path.
func Classify(path string) (Kind, error) {
	if strings.TrimSpace(path) == "" {
		return 0, ErrNoPath
	}
	ext := Extension(path)
	if _, ok := audioExts[ext]; ok {
		return KindAudio, nil
	}
	if _, ok := imageExts[ext]; ok {
		return KindImage, nil
	}
	return 0, &UnsupportedError{Ext: ext}
}

// AudioExtensions lists the audio extensions in a stable order.
func AudioExtensions() []string {
	return []string{"mp3", "wav", "ogg", "flac"}
}

// ImageExtensions lists the image extensions in a stable order.
func ImageExtensions() []string {
	return []string{"png", "jpg", "jpeg", "bmp", "tiff", "gif", "ico"}
}
