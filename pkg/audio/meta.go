package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// TrackInfo holds the tag fields shown next to the controls.
type TrackInfo struct {
	Title  string
	Artist string
	Album  string
}

// ReadTrackInfo reads ID3, Vorbis comment or FLAC tags from path.
func ReadTrackInfo(path string) (TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return TrackInfo{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return TrackInfo{}, fmt.Errorf("read tags: %w", err)
	}
	return TrackInfo{
		Title:  strings.TrimSpace(m.Title()),
		Artist: strings.TrimSpace(m.Artist()),
		Album:  strings.TrimSpace(m.Album()),
	}, nil
}

// Label formats the track for display, falling back to the file name.
func (t TrackInfo) Label(path string) string {
	title := t.Title
	if title == "" {
		title = filepath.Base(path)
	}
	if t.Artist == "" {
		return title
	}
	return t.Artist + " - " + title
}
