package pixframe

import "fmt"

// Param is an owned copy of caller data attached to one callback
// registration. Once pushed, the frame's registry owns it and releases it
// when the registration is removed or the frame is released.
type Param struct {
	data     []byte
	alloc    Allocator
	charged  int
	released bool
}

// NewParam copies src into a new Param. Later changes to src are not seen.
// It fails with an error wrapping [ErrAllocation] when the allocator refuses
// the bytes; nothing is charged on failure.
func NewParam(src []byte, opts ...Option) (*Param, error) {
	o := buildOptions(opts)

	n := len(src)
	if err := o.alloc.Acquire(n); err != nil {
		o.log().Warn("pixframe: param allocation refused", "bytes", n, "err", err)
		return nil, fmt.Errorf("new param: %w", err)
	}

	data := make([]byte, n)
	copy(data, src)
	return &Param{data: data, alloc: o.alloc, charged: n}, nil
}

// Bytes returns the owned bytes. The slice is nil once released.
func (p *Param) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.data
}

// Len returns the number of owned bytes.
func (p *Param) Len() int {
	if p == nil {
		return 0
	}
	return len(p.data)
}

// Released reports whether Release has been called.
func (p *Param) Released() bool {
	return p == nil || p.released
}

// Release drops the bytes and credits the allocator.
// It is safe to call on a nil or already released Param.
func (p *Param) Release() {
	if p == nil || p.released {
		return
	}
	p.released = true
	p.data = nil
	allocOr(p.alloc).Release(p.charged)
	p.charged = 0
}

// ReleaseParam releases *p and sets it to nil.
func ReleaseParam(p **Param) {
	if p == nil || *p == nil {
		return
	}
	(*p).Release()
	*p = nil
}
