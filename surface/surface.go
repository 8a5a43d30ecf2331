// Package surface owns a pool of frame buffers and dispatches
// whole-frame rendering to a user draw callback, either inline
// or pipelined across worker goroutines.
package surface

import (
	"runtime"
	"sync/atomic"

	"github.com/softrast/softrast/font"
	"github.com/softrast/softrast/pixel"
	"github.com/softrast/softrast/render"
)

// DrawFunc renders one frame. It is called once per Render with
// the graphics instance of the frame's slot, and must only touch
// that instance.
type DrawFunc func(*render.Graphics)

// Surface is a virtual screen backed by a ring of one or more
// graphics instances. With more than one render thread, frames
// are drawn ahead on worker goroutines while the application
// consumes finished frame buffers through AdvanceFrameBuffer.
//
// Renders never overlap on the same slot, and the write cursor
// never laps the read cursor; the per-slot done flags and join
// channels are the only state shared between the workers and
// the caller.
type Surface struct {
	draw     DrawFunc
	slots    []*render.Graphics
	enable3D bool

	read  int
	write int
	done  []atomic.Bool
	join  []chan struct{}
}

// New returns a surface for the configuration. A config with
// RenderThreads <= 1 renders synchronously inside Render.
func New(cfg Config, draw DrawFunc) (*Surface, error) {
	format, err := cfg.format()
	if err != nil {
		return nil, err
	}
	n := cfg.RenderThreads
	if n < 1 {
		n = 1
	}
	s := &Surface{
		draw:     draw,
		slots:    make([]*render.Graphics, n),
		enable3D: cfg.Enable3D,
		write:    n - 1,
		done:     make([]atomic.Bool, n),
		join:     make([]chan struct{}, n),
	}
	for i := range s.slots {
		s.slots[i] = render.NewGraphics(cfg.Width, cfg.Height, format, cfg.Enable3D)
		s.done[i].Store(true)
		s.join[i] = make(chan struct{}, 1)
		s.join[i] <- struct{}{} // no worker has run on the slot yet
	}
	return s, nil
}

// Width returns the frame buffer width in pixels.
func (s *Surface) Width() int { return s.slots[0].Width() }

// Height returns the frame buffer height in pixels.
func (s *Surface) Height() int { return s.slots[0].Height() }

// PixelWidthInBits returns the size of one pixel in bits.
func (s *Surface) PixelWidthInBits() int {
	return s.slots[0].FrameBuffer().Format().Bits()
}

// SetFont sets the font on every slot's graphics instance.
func (s *Surface) SetFont(f *font.Font) {
	for _, g := range s.slots {
		g.SetFont(f)
	}
}

// Render schedules the next frame. It reports false without
// scheduling when advancing the write cursor would land it on
// the read cursor, as on a new surface before the first
// AdvanceFrameBuffer; the caller decides whether to retry or
// drop the frame.
// With a single slot the frame is drawn before Render returns,
// and the result is always false.
func (s *Surface) Render() bool {
	n := len(s.slots)
	if n == 1 {
		g := s.slots[0]
		if s.enable3D {
			g.ClearDepthBuffer()
		}
		s.draw(g)
		return false
	}

	// refuse when advancing would land the writer on the reader
	if (s.write < s.read && s.write == s.read-1) ||
		(s.write > s.read && s.write == n-1 && s.read == 0) {
		return false
	}
	s.write = (s.write + 1) % n

	// wait for the slot's previous worker before reusing it
	<-s.join[s.write]

	s.done[s.write].Store(false)
	go s.drawFrame(s.write)
	return true
}

func (s *Surface) drawFrame(slot int) {
	g := s.slots[slot]
	if s.enable3D {
		g.ClearDepthBuffer()
	}
	s.draw(g)
	s.done[slot].Store(true)
	s.join[slot] <- struct{}{}
}

// AdvanceFrameBuffer moves the reader to the next finished frame
// and returns its frame buffer, busy-waiting until that frame's
// worker publishes its done flag. With a single slot it returns
// the slot's buffer directly.
func (s *Surface) AdvanceFrameBuffer() *pixel.FrameBuffer {
	if len(s.slots) == 1 {
		return s.slots[0].FrameBuffer()
	}
	next := (s.read + 1) % len(s.slots)
	for !s.done[next].Load() {
		runtime.Gosched()
	}
	s.read = next
	return s.slots[s.read].FrameBuffer()
}
