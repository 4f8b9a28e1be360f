package capi

import (
	"sync"
	"sync/atomic"

	"github.com/min1324/posintset"
)

// registry maps live handles to their sets.
// handles are never reused, so a released handle stays invalid.
type registry struct {
	next  atomic.Uintptr
	count atomic.Int64
	m     sync.Map // Handle -> *posintset.PosIntSet
}

// add stores s under a fresh handle.
func (r *registry) add(s *posintset.PosIntSet) Handle {
	h := Handle(r.next.Add(1))
	r.m.Store(h, s)
	r.count.Add(1)
	return h
}

// load return the set of h.
func (r *registry) load(h Handle) (*posintset.PosIntSet, bool) {
	v, ok := r.m.Load(h)
	if !ok {
		return nil, false
	}
	return v.(*posintset.PosIntSet), true
}

// remove forgets h.
// loaded report h if it was live.
func (r *registry) remove(h Handle) (*posintset.PosIntSet, bool) {
	v, loaded := r.m.LoadAndDelete(h)
	if !loaded {
		return nil, false
	}
	r.count.Add(-1)
	return v.(*posintset.PosIntSet), true
}

// len return the number of live handles.
func (r *registry) len() int { return int(r.count.Load()) }
