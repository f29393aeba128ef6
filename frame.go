package pixframe

import (
	"log/slog"
	"slices"
)

// Frame is a drawable view over a Buffer.
//
// In full mode drawing covers the whole buffer. In clipped ("sub") mode
// coordinates are relative to the selection, and anything outside it is
// dropped. A frame also owns an ordered list of callbacks run by Update.
type Frame struct {
	selection Selection
	buffer    *Buffer
	sub       bool

	reg       registry
	log       *slog.Logger
	inclusive bool
	released  bool
	stats     Stats
}

// Stats counts frame activity since creation.
type Stats struct {
	Updates   int // Update calls
	Callbacks int // callback invocations
	Written   int // pixels written
	Rejected  int // pixels dropped by clipping
}

// NewFrame wraps b. The selection starts as the whole buffer and the frame
// starts in full mode. The frame does not copy b and never releases it.
func NewFrame(b *Buffer, opts ...Option) (*Frame, error) {
	if b == nil {
		return nil, ErrNilBuffer
	}
	o := buildOptions(opts)

	f := &Frame{
		selection: Selection{Pos: V(0, 0), Size: b.Size()},
		buffer:    b,
		reg:       registry{alloc: o.alloc},
		log:       o.logger,
		inclusive: o.inclusiveEdges,
	}
	f.logger().Debug("pixframe: frame created", "width", b.Width(), "height", b.Height())
	return f, nil
}

func (f *Frame) logger() *slog.Logger {
	if f.log != nil {
		return f.log
	}
	return Logger()
}

// Release releases every registered Param and the registry storage.
// The buffer is left untouched. Release is idempotent and safe on nil.
func (f *Frame) Release() {
	if f == nil || f.released {
		return
	}
	n := len(f.reg.entries)
	f.reg.reset()
	f.released = true
	f.buffer = nil
	f.logger().Debug("pixframe: frame released", "callbacks", n)
}

// ReleaseFrame releases *f and sets it to nil.
func ReleaseFrame(f **Frame) {
	if f == nil || *f == nil {
		return
	}
	(*f).Release()
	*f = nil
}

// Buffer returns the wrapped buffer, or nil once the frame is released.
func (f *Frame) Buffer() *Buffer {
	if f == nil {
		return nil
	}
	return f.buffer
}

// Selection returns the current selection rectangle.
func (f *Frame) Selection() Selection {
	return f.selection
}

// IsSub reports whether the frame is in clipped mode.
func (f *Frame) IsSub() bool {
	return f.sub
}

// Select sets the selection and switches to clipped mode.
// An invalid selection is accepted but makes every SetPixel a no-op.
func (f *Frame) Select(s Selection) {
	f.selection = s
	f.sub = true
}

// SetSelection sets the selection without changing mode.
func (f *Frame) SetSelection(s Selection) {
	f.selection = s
}

// SetSub switches between clipped and full mode.
func (f *Frame) SetSub(sub bool) {
	f.sub = sub
}

// Deselect returns to full mode. The selection rectangle is kept, so
// FillSelection and Clear still use its size.
func (f *Frame) Deselect() {
	f.sub = false
}

// Stats returns activity counters.
func (f *Frame) Stats() Stats {
	return f.stats
}

// Push appends cb to the callback list with an optional param, whose
// ownership moves to the frame.
//
// If the allocator refuses the new slot, the whole list is reset to empty,
// every Param it held (p included) is released, and an error wrapping
// [ErrAllocation] is returned.
func (f *Frame) Push(cb Callback, p *Param) (ID, error) {
	if f == nil || f.released {
		p.Release()
		return 0, ErrNilFrame
	}
	if cb == nil {
		p.Release()
		return 0, ErrNilCallback
	}
	id, err := f.reg.push(cb, p)
	if err != nil {
		f.logger().Warn("pixframe: callback registry reset", "err", err)
		return 0, err
	}
	f.logger().Debug("pixframe: callback pushed", "id", id, "callbacks", len(f.reg.entries))
	return id, nil
}

// PushData copies data into a new Param, charged to the frame's allocator,
// and pushes cb with it.
func (f *Frame) PushData(cb Callback, data []byte) (ID, error) {
	if f == nil || f.released {
		return 0, ErrNilFrame
	}
	if cb == nil {
		return 0, ErrNilCallback
	}
	p, err := NewParam(data, WithAllocator(f.reg.alloc), WithLogger(f.log))
	if err != nil {
		return 0, err
	}
	return f.Push(cb, p)
}

// Pop removes the last callback and releases its Param.
// It is a no-op on an empty list.
func (f *Frame) Pop() {
	if f == nil {
		return
	}
	f.reg.pop()
}

// RemoveAt removes the callback at index i, keeping the order of the rest.
// An index at or past the last entry removes the last entry; a negative
// index removes the first.
func (f *Frame) RemoveAt(i int) {
	if f == nil {
		return
	}
	f.reg.removeAt(i)
}

// RemoveAll removes every registration of cb and returns how many were
// removed. Callbacks compare by code pointer only. Closures created from the
// same function literal are the same callback, and so are method values of
// one method bound to different receivers (every text.Callback result, for
// example). Use the ID returned by Push with [Frame.Remove] to remove a single
// registration.
func (f *Frame) RemoveAll(cb Callback) int {
	if f == nil || cb == nil {
		return 0
	}
	n := f.reg.removeAll(cb)
	if n > 0 {
		f.logger().Debug("pixframe: callbacks removed", "removed", n, "callbacks", len(f.reg.entries))
	}
	return n
}

// Remove removes the registration with the given ID.
func (f *Frame) Remove(id ID) bool {
	if f == nil {
		return false
	}
	return f.reg.removeID(id)
}

// Len returns the number of registered callbacks.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.reg.entries)
}

// Entries returns a copy of the callback list in invocation order.
func (f *Frame) Entries() []Entry {
	if f == nil {
		return nil
	}
	return f.reg.list()
}

// Update clears the selection area to black, then runs every callback in
// registration order.
//
// The list is snapshotted after clearing. Callbacks pushed during the pass
// first run on the next Update; callbacks removed during the pass are skipped
// if they have not run yet; releasing the frame ends the pass. Panics in a
// callback propagate to the caller.
func (f *Frame) Update() {
	if f == nil || f.released {
		return
	}
	f.Clear()
	f.stats.Updates++

	for _, e := range slices.Clone(f.reg.entries) {
		if f.released {
			return
		}
		if e.removed {
			continue
		}
		f.stats.Callbacks++
		e.cb(f, e.param)
	}
}
