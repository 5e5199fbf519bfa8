// Package config holds the compiled-in settings of the viewer.
package config

import "time"

// Window contains the initial window geometry.
type Window struct {
	Width  float32
	Height float32
}

// Audio contains output device settings.
type Audio struct {
	SampleRate      int
	BufferSize      time.Duration
	ResampleQuality int
}

// Image contains image display settings.
type Image struct {
	// MaxTextureSize bounds the displayed texture side; 0 disables the limit.
	MaxTextureSize int
}

// Logging contains logger settings.
type Logging struct {
	Level  string
	Format string
}

// Config is the full application configuration.
type Config struct {
	Window  Window
	Audio   Audio
	Image   Image
	Logging Logging
}
