package config

import (
	"time"

	"github.com/olivierh59500/mediaview/pkg/picture"
)

const (
	defaultWindowWidth     = 800
	defaultWindowHeight    = 600
	defaultSampleRate      = 44100
	defaultBufferSize      = 100 * time.Millisecond
	defaultResampleQuality = 4
	defaultMaxTextureSize  = picture.DefaultMaxDimension
	defaultLogLevel        = "info"
	defaultLogFormat       = "auto"
)

// Default returns a Config populated with application defaults.
func Default() Config {
	return Config{
		Window: Window{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
		Audio: Audio{
			SampleRate:      defaultSampleRate,
			BufferSize:      defaultBufferSize,
			ResampleQuality: defaultResampleQuality,
		},
		Image: Image{
			MaxTextureSize: defaultMaxTextureSize,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
