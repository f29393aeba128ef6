package pixframe

import "fmt"

// Allocator accounts for the memory held by buffers, parameters and
// registry slots.
//
// Acquire is called before storage is created and must return an error
// wrapping [ErrAllocation] to refuse it. Release is called exactly once for
// every successful Acquire, with the same size.
type Allocator interface {
	Acquire(n int) error
	Release(n int)
}

// Unlimited is the default Allocator. It never refuses.
var Unlimited Allocator = unlimited{}

type unlimited struct{}

func (unlimited) Acquire(int) error { return nil }
func (unlimited) Release(int)       {}

// allocOr returns a, or Unlimited when a is nil.
func allocOr(a Allocator) Allocator {
	if a == nil {
		return Unlimited
	}
	return a
}

// Sizes charged to an Allocator.
const (
	// CellSize is the number of bytes charged per buffer cell.
	CellSize = 4

	// EntrySize is the number of bytes charged per registry slot.
	EntrySize = 16
)

// Budget is an Allocator with a byte limit that counts every charge.
// The zero value has a limit of zero and refuses everything but empty
// charges; use [NewBudget].
type Budget struct {
	limit    int
	inUse    int
	acquired int
	released int
	acquires int
	releases int
}

// NewBudget creates a Budget that refuses charges once more than limit bytes
// would be in use. A negative limit never refuses.
func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

// Acquire charges n bytes.
func (b *Budget) Acquire(n int) error {
	if b.limit >= 0 && b.inUse+n > b.limit {
		return fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrAllocation, n, b.inUse, b.limit)
	}
	b.inUse += n
	b.acquired += n
	b.acquires++
	return nil
}

// Release credits n bytes.
func (b *Budget) Release(n int) {
	b.inUse -= n
	b.released += n
	b.releases++
}

// SetLimit changes the limit. Bytes already in use are unaffected.
func (b *Budget) SetLimit(limit int) {
	b.limit = limit
}

// Limit returns the byte limit.
func (b *Budget) Limit() int { return b.limit }

// InUse returns the bytes currently charged.
func (b *Budget) InUse() int { return b.inUse }

// Acquired returns the total bytes ever charged.
func (b *Budget) Acquired() int { return b.acquired }

// Released returns the total bytes ever credited.
func (b *Budget) Released() int { return b.released }

// Acquires returns the number of successful Acquire calls.
func (b *Budget) Acquires() int { return b.acquires }

// Releases returns the number of Release calls.
func (b *Budget) Releases() int { return b.releases }
