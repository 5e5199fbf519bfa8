package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

var (
	// oto allows a single context per process; handles share it.
	globalOtoMutex sync.Mutex
	globalContext  *oto.Context
	globalRate     int
	globalHandles  int
)

// OtoOutput is a device handle backed by the shared Oto v3 context.
type OtoOutput struct {
	context *oto.Context
	rate    int
	mu      sync.Mutex
	closed  bool
}

// OpenOto acquires a device handle. The first handle creates the context;
// a handle opened after all others were released resumes it.
func OpenOto(cfg DeviceConfig) (Output, error) {
	globalOtoMutex.Lock()
	defer globalOtoMutex.Unlock()

	if globalContext == nil {
		op := &oto.NewContextOptions{
			SampleRate:   cfg.SampleRate,
			ChannelCount: Channels,
			Format:       oto.FormatFloat32LE,
			BufferSize:   cfg.BufferSize,
		}

		context, ready, err := oto.NewContext(op)
		if err != nil {
			return nil, fmt.Errorf("failed to create oto context: %w", err)
		}

		<-ready
		globalContext = context
		globalRate = cfg.SampleRate
	} else if globalHandles == 0 {
		if err := globalContext.Resume(); err != nil {
			return nil, fmt.Errorf("failed to resume oto context: %w", err)
		}
	}

	if err := globalContext.Err(); err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}

	globalHandles++
	return &OtoOutput{context: globalContext, rate: globalRate}, nil
}

// NewSink creates a paused Oto player reading from r.
func (o *OtoOutput) NewSink(r io.Reader) (Sink, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil, errors.New("output closed")
	}
	return &otoSink{player: o.context.NewPlayer(r)}, nil
}

// SampleRate returns the rate of the shared context.
func (o *OtoOutput) SampleRate() int {
	return o.rate
}

// Close releases the handle and suspends the context when it was the last one.
func (o *OtoOutput) Close() error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	o.mu.Unlock()

	globalOtoMutex.Lock()
	defer globalOtoMutex.Unlock()

	globalHandles--
	if globalHandles > 0 {
		return nil
	}
	if err := o.context.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend oto context: %w", err)
	}
	return nil
}

type otoSink struct {
	player *oto.Player
}

func (s *otoSink) Play() {
	s.player.Play()
}

func (s *otoSink) Pause() {
	s.player.Pause()
}

func (s *otoSink) Stop() error {
	s.player.Pause()
	return s.player.Close()
}
