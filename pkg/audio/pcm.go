package audio

import (
	"encoding/binary"
	"io"
	"math"
	"sync"

	"github.com/gopxl/beep/v2"
)

const pcmChunkFrames = 512

// pcmReader encodes a beep stream as interleaved float32 little-endian PCM.
// Read runs on the output's goroutine; Close fences it off from the
// streamer before the source is released.
type pcmReader struct {
	mu       sync.Mutex
	closed   bool
	streamer beep.Streamer
	frames   [][2]float64
	buf      []byte
	pending  []byte
	done     bool
}

func newPCMReader(s beep.Streamer) *pcmReader {
	return &pcmReader{
		streamer: s,
		frames:   make([][2]float64, pcmChunkFrames),
		buf:      make([]byte, pcmChunkFrames*bytesPerFrame),
	}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) {
		if len(r.pending) > 0 {
			c := copy(p[n:], r.pending)
			r.pending = r.pending[c:]
			n += c
			continue
		}
		if r.done {
			break
		}

		want := (len(p) - n + bytesPerFrame - 1) / bytesPerFrame
		if want > len(r.frames) {
			want = len(r.frames)
		}
		got, ok := r.streamer.Stream(r.frames[:want])
		if !ok {
			r.done = true
		}
		if got == 0 {
			if ok {
				break
			}
			continue
		}

		out := r.buf[:got*bytesPerFrame]
		for i, frame := range r.frames[:got] {
			binary.LittleEndian.PutUint32(out[i*bytesPerFrame:], math.Float32bits(clamp(frame[0])))
			binary.LittleEndian.PutUint32(out[i*bytesPerFrame+4:], math.Float32bits(clamp(frame[1])))
		}
		r.pending = out
	}

	if n == 0 && r.done {
		if err := r.streamer.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	return n, nil
}

// Close waits for an in-flight Read and makes later reads return io.EOF.
func (r *pcmReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.pending = nil
	return nil
}

func clamp(v float64) float32 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return float32(v)
}
