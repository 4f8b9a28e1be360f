package posintset_test

import (
	"fmt"

	"github.com/min1324/posintset"
)

// Interface is the method set shared by the sets under test
// and the reference implementation.
type Interface interface {
	posintset.Set
	LoadOrStore(x int32) (loaded bool, err error)
	LoadAndDelete(x int32) (loaded bool)
	Clear()
}

// MapSet is a map backed reference set that follows
// the PosIntSet contract, including the reserved values.
type MapSet struct {
	m map[int32]struct{}
}

var _ Interface = (*MapSet)(nil)
var _ Interface = (*posintset.PosIntSet)(nil)

func NewMapSet(args ...int32) *MapSet {
	s := &MapSet{m: make(map[int32]struct{})}
	for _, x := range args {
		s.Store(x)
	}
	return s
}

func (s *MapSet) Load(x int32) bool {
	_, ok := s.m[x]
	return ok
}

func (s *MapSet) Store(x int32) error {
	_, err := s.LoadOrStore(x)
	return err
}

func (s *MapSet) LoadOrStore(x int32) (loaded bool, err error) {
	if posintset.IsReserved(x) {
		return false, fmt.Errorf("%w: %d", posintset.ErrReservedValue, x)
	}
	if s.m == nil {
		s.m = make(map[int32]struct{})
	}
	if _, loaded = s.m[x]; !loaded {
		s.m[x] = struct{}{}
	}
	return loaded, nil
}

func (s *MapSet) Delete(x int32) { s.LoadAndDelete(x) }

func (s *MapSet) LoadAndDelete(x int32) (loaded bool) {
	if _, loaded = s.m[x]; loaded {
		delete(s.m, x)
	}
	return loaded
}

func (s *MapSet) Range(f func(x int32) bool) {
	for x := range s.m {
		if !f(x) {
			return
		}
	}
}

func (s *MapSet) Len() int { return len(s.m) }

func (s *MapSet) Clear() { clear(s.m) }
