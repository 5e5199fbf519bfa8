package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/olivierh59500/mediaview/pkg/media"
)

// DecodeFunc opens path and returns its decoded stream.
type DecodeFunc func(path string) (beep.StreamCloser, beep.Format, error)

type decoder func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// decoders maps an audio extension to its beep decoder.
var decoders = map[string]decoder{
	"mp3":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) },
	"wav":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) },
	"ogg":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) },
	"flac": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) },
}

// Decode opens path and picks the decoder from its extension.
func Decode(path string) (beep.StreamCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open audio file: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	ext := media.Extension(path)
	if decode, ok := decoders[ext]; ok {
		stream, format, err = decode(f)
	} else {
		err = fmt.Errorf("no decoder for %q", ext)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return &fileStream{StreamSeekCloser: stream, file: f}, format, nil
}

// fileStream closes the decoder and the file under it exactly once.
type fileStream struct {
	beep.StreamSeekCloser
	file *os.File
}

func (s *fileStream) Close() error {
	err := s.StreamSeekCloser.Close()
	if ferr := s.file.Close(); ferr != nil && !errors.Is(ferr, os.ErrClosed) && err == nil {
		err = ferr
	}
	return err
}
