package pixframe

import (
	"fmt"
	"reflect"
	"slices"
)

// Callback draws into a frame during [Frame.Update].
// p is the Param bound at registration, or nil.
type Callback func(f *Frame, p *Param)

// ID names one callback registration.
type ID uint64

// Entry describes one registration.
type Entry struct {
	ID       ID
	Callback Callback
	Param    *Param
}

type entry struct {
	id      ID
	cb      Callback
	code    uintptr
	param   *Param
	removed bool
}

// registry is the ordered callback list owned by a Frame.
// Insertion order is invocation order.
type registry struct {
	entries []*entry
	nextID  ID
	alloc   Allocator
}

// codeOf returns the code pointer of cb, used as its identity.
func codeOf(cb Callback) uintptr {
	return reflect.ValueOf(cb).Pointer()
}

func (r *registry) push(cb Callback, p *Param) (ID, error) {
	if err := allocOr(r.alloc).Acquire(EntrySize); err != nil {
		p.Release()
		r.reset()
		return 0, fmt.Errorf("push callback: %w", err)
	}
	r.nextID++
	r.entries = append(r.entries, &entry{
		id:    r.nextID,
		cb:    cb,
		code:  codeOf(cb),
		param: p,
	})
	return r.nextID, nil
}

// drop detaches e from the list bookkeeping: its param is released and its
// slot charge credited, exactly once.
func (r *registry) drop(e *entry) {
	if e.removed {
		return
	}
	e.removed = true
	e.param.Release()
	e.param = nil
	allocOr(r.alloc).Release(EntrySize)
}

// truncate shrinks the list to n entries. Storage is reallocated once it
// falls to a quarter of its capacity.
func (r *registry) truncate(n int) {
	clear(r.entries[n:])
	r.entries = r.entries[:n]
	if n == 0 {
		r.entries = nil
		return
	}
	if n <= cap(r.entries)/4 {
		r.entries = slices.Clone(r.entries)
	}
}

func (r *registry) pop() {
	n := len(r.entries)
	if n == 0 {
		return
	}
	r.drop(r.entries[n-1])
	r.truncate(n - 1)
}

func (r *registry) removeAt(i int) {
	n := len(r.entries)
	if n == 0 {
		return
	}
	if i >= n-1 {
		r.pop()
		return
	}
	i = max(i, 0)

	removed := r.entries[i]
	// Shift left, then drop the duplicated tail slot.
	copy(r.entries[i:], r.entries[i+1:])
	r.drop(removed)
	r.truncate(n - 1)
}

func (r *registry) removeAll(cb Callback) int {
	code := codeOf(cb)
	removed := 0
	for i := 0; i < len(r.entries); {
		if r.entries[i].code == code {
			r.removeAt(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

func (r *registry) removeID(id ID) bool {
	for i, e := range r.entries {
		if e.id == id {
			r.removeAt(i)
			return true
		}
	}
	return false
}

// reset releases every entry and leaves the list empty.
func (r *registry) reset() {
	for _, e := range r.entries {
		r.drop(e)
	}
	r.truncate(0)
}

func (r *registry) list() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = Entry{ID: e.id, Callback: e.cb, Param: e.param}
	}
	return out
}
