package kura

import "sync/atomic"

// borrowState is a non-blocking reader/writer guard. A positive count is the
// number of shared borrows, -1 is an exclusive borrow, 0 is free.
type borrowState struct {
	n atomic.Int32
}

func (b *borrowState) tryShared() bool {
	for {
		n := b.n.Load()
		if n < 0 {
			return false
		}
		if b.n.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (b *borrowState) tryExclusive() bool {
	return b.n.CompareAndSwap(0, -1)
}

func (b *borrowState) try(mode Mode) bool {
	if mode == Exclusive {
		return b.tryExclusive()
	}
	return b.tryShared()
}

func (b *borrowState) release(mode Mode) {
	if mode == Exclusive {
		b.n.Store(0)
		return
	}
	b.n.Add(-1)
}

// guard is embedded in every view so Release is idempotent. parent, when
// set, is the shared hold on the World's all-storages borrow. owner, when
// set, is the guard whose borrow covers this view.
type guard struct {
	state  *borrowState
	parent *borrowState
	owner  *guard
	mode   Mode
	done   atomic.Bool
}

func (g *guard) init(state, parent *borrowState, mode Mode) {
	g.state = state
	g.parent = parent
	g.mode = mode
}

// Release gives the borrow back. Calling it more than once is a no-op.
func (g *guard) Release() {
	if !g.done.CompareAndSwap(false, true) {
		return
	}
	if g.state != nil {
		g.state.release(g.mode)
	}
	if g.parent != nil {
		g.parent.release(Shared)
	}
}

func (g *guard) check() {
	if g.done.Load() || (g.owner != nil && g.owner.done.Load()) {
		panic("ecs: use of a released view")
	}
}
