// Package audio drives playback of decoded audio files on an output device.
//
// An Output is a live handle on the sound device and a Sink is one queued
// playback destination bound to it. Player ties both to a single file and
// exposes the Play/Pause/Resume/Stop state machine used by the GUI.
package audio

import (
	"io"
	"time"
)

// Channels is the channel count of every PCM stream handed to a Sink.
const Channels = 2

// bytesPerFrame covers one stereo frame of 32-bit float samples.
const bytesPerFrame = Channels * 4

// DeviceConfig describes how an Output is opened.
type DeviceConfig struct {
	SampleRate int
	BufferSize time.Duration
}

// Output interface for audio output device handles
type Output interface {
	// NewSink binds a PCM stream (stereo, float32 little-endian) to the device.
	NewSink(r io.Reader) (Sink, error)
	// SampleRate is the rate the device actually runs at.
	SampleRate() int
	Close() error
}

// Sink is a playback destination bound to one Output.
type Sink interface {
	Play()
	Pause()
	Stop() error
}

// Opener acquires a fresh Output handle.
type Opener func(cfg DeviceConfig) (Output, error)
