package audio

import (
	"errors"
	"io"
	"sync"
)

// MemoryDevice opens Outputs that never touch a sound device. Sinks keep
// their PCM reader so callers can pull samples on demand.
type MemoryDevice struct {
	rate int

	mu       sync.Mutex
	opened   int
	released int
	outputs  []*MemoryOutput
	fail     error
	closeErr error
}

// NewMemoryDevice creates a device running at rate.
func NewMemoryDevice(rate int) *MemoryDevice {
	return &MemoryDevice{rate: rate}
}

// FailWith makes subsequent Open calls return err.
func (d *MemoryDevice) FailWith(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fail = err
}

// FailCloseWith makes every handle's Close return err after releasing it.
func (d *MemoryDevice) FailCloseWith(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeErr = err
}

// Open satisfies Opener.
func (d *MemoryDevice) Open(cfg DeviceConfig) (Output, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fail != nil {
		return nil, d.fail
	}
	d.opened++
	out := &MemoryOutput{device: d, rate: d.rate}
	d.outputs = append(d.outputs, out)
	return out, nil
}

// Opened returns how many handles were ever acquired.
func (d *MemoryDevice) Opened() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened
}

// Live returns how many handles are currently held.
func (d *MemoryDevice) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened - d.released
}

// Outputs returns every handle opened so far, oldest first.
func (d *MemoryDevice) Outputs() []*MemoryOutput {
	d.mu.Lock()
	defer d.mu.Unlock()

	result := make([]*MemoryOutput, len(d.outputs))
	copy(result, d.outputs)
	return result
}

// MemoryOutput is a handle opened by MemoryDevice.
type MemoryOutput struct {
	device *MemoryDevice
	rate   int

	mu     sync.Mutex
	closed bool
	sinks  []*MemorySink
}

// NewSink records a sink reading from r.
func (o *MemoryOutput) NewSink(r io.Reader) (Sink, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil, errors.New("output closed")
	}
	s := &MemorySink{reader: r}
	o.sinks = append(o.sinks, s)
	return s, nil
}

// SampleRate returns the device rate.
func (o *MemoryOutput) SampleRate() int {
	return o.rate
}

// Close releases the handle once.
func (o *MemoryOutput) Close() error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	o.mu.Unlock()

	o.device.mu.Lock()
	defer o.device.mu.Unlock()
	o.device.released++
	return o.device.closeErr
}

// Closed reports whether Close was called.
func (o *MemoryOutput) Closed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

// Sinks returns the sinks bound to this handle.
func (o *MemoryOutput) Sinks() []*MemorySink {
	o.mu.Lock()
	defer o.mu.Unlock()

	result := make([]*MemorySink, len(o.sinks))
	copy(result, o.sinks)
	return result
}

// MemorySink tracks the play/pause/stop calls it receives.
type MemorySink struct {
	mu      sync.Mutex
	reader  io.Reader
	playing bool
	stopped bool
}

func (s *MemorySink) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
}

func (s *MemorySink) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

func (s *MemorySink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.stopped = true
	return nil
}

// Playing reports whether the sink is currently producing samples.
func (s *MemorySink) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Stopped reports whether Stop was called.
func (s *MemorySink) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Read pulls PCM bytes from the bound stream.
func (s *MemorySink) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}
