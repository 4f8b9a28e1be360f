package posintset

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"
)

const (
	// EmptyKey marks a slot that held no value since the last rehash.
	EmptyKey int32 = -1

	// DeletedKey marks a slot whose value was removed.
	// probe sequences walk through it, lookups never stop on it.
	DeletedKey int32 = -2

	// default slots of a new table.
	initSize = 32

	// smallest table ever allocated.
	minSize = 4

	// occupied slots (live + deleted) may fill at most
	// len(table)>>loadShift before the table is rehashed.
	loadShift = 1

	// 2^64 / golden ratio
	hashMul = 0x9E3779B97F4A7C15
)

// PosIntSet is an open-addressed hash set of int32.
// Its zero value represents the empty set.
//
// Every slot of the table holds a live value, EmptyKey or DeletedKey,
// so EmptyKey and DeletedKey can never be members of the set.
//
// A PosIntSet is not safe for concurrent use; callers must serialize
// access to one set. Distinct sets are independent.
type PosIntSet struct {
	// number of live items
	count int

	// number of DeletedKey slots
	deleted int

	// 64 - log2(len(table))
	shift uint

	// len(table) is zero or a power of two
	table []int32
}

// IsReserved reports whether x is one of the slot markers
// that can not be stored in a set.
func IsReserved(x int32) bool { return x == EmptyKey || x == DeletedKey }

// tableSize return the slots needed to hold n items
// without crossing the load threshold.
func tableSize(n int) int {
	if n < 1 {
		return minSize
	}
	size := 1 << bits.Len(uint(n<<loadShift-1))
	if size < minSize {
		size = minSize
	}
	return size
}

func newTable(size int) []int32 {
	t := make([]int32, size)
	for i := range t {
		t[i] = EmptyKey
	}
	return t
}

func (s *PosIntSet) init(cap int) {
	size := initSize
	if cap > 0 {
		size = tableSize(cap)
	}
	s.table = newTable(size)
	s.shift = uint(64 - bits.TrailingZeros(uint(size)))
	s.count = 0
	s.deleted = 0
}

// OnceInit initialize set with room for cap items.
// it only takes effect before the first Store.
// if cap<1, will use 32 slots.
func (s *PosIntSet) OnceInit(cap int) {
	if s.table == nil {
		s.init(cap)
	}
}

// home return the first slot of the probe sequence of x.
func (s *PosIntSet) home(x int32) uint64 {
	return (uint64(uint32(x)) * hashMul) >> s.shift
}

// find return the slot holding x.
func (s *PosIntSet) find(x int32) (pos int, ok bool) {
	if s.table == nil {
		return -1, false
	}
	mask := uint64(len(s.table) - 1)
	i := s.home(x)
	// triangular probing visits every slot of a power of two table,
	// and at least one slot is always empty.
	for n := uint64(1); ; n++ {
		switch s.table[i] {
		case x:
			return int(i), true
		case EmptyKey:
			return -1, false
		}
		i = (i + n) & mask
	}
}

// findSlot return the slot holding x, or the slot x should be placed in:
// the first deleted slot on its probe sequence, else the empty one.
func (s *PosIntSet) findSlot(x int32) (pos int, ok bool) {
	mask := uint64(len(s.table) - 1)
	i := s.home(x)
	pos = -1
	for n := uint64(1); ; n++ {
		switch s.table[i] {
		case x:
			return int(i), true
		case EmptyKey:
			if pos < 0 {
				pos = int(i)
			}
			return pos, false
		case DeletedKey:
			if pos < 0 {
				pos = int(i)
			}
		}
		i = (i + n) & mask
	}
}

// rehash move all live items into a fresh table of size slots.
// deleted slots are dropped.
func (s *PosIntSet) rehash(size int) {
	old := s.table
	s.table = newTable(size)
	s.shift = uint(64 - bits.TrailingZeros(uint(size)))
	s.deleted = 0
	mask := uint64(size - 1)
	for _, x := range old {
		if IsReserved(x) {
			continue
		}
		i := s.home(x)
		for n := uint64(1); s.table[i] != EmptyKey; n++ {
			i = (i + n) & mask
		}
		s.table[i] = x
	}
}

// growWork make room for one more item in an empty slot.
// the table doubles while live items alone would cross the threshold,
// otherwise it is rehashed in place to clear deleted slots.
func (s *PosIntSet) growWork() {
	size := len(s.table)
	for (s.count+1)<<loadShift > size {
		size <<= 1
	}
	s.rehash(size)
}

// insert adds x, which must not be reserved.
// loaded report x if already in set.
func (s *PosIntSet) insert(x int32) (loaded bool) {
	if s.table == nil {
		s.init(0)
	}
	pos, ok := s.findSlot(x)
	if ok {
		return true
	}
	if s.table[pos] == DeletedKey {
		s.table[pos] = x
		s.deleted--
		s.count++
		return false
	}
	if (s.count+s.deleted+1)<<loadShift > len(s.table) {
		s.growWork()
		pos, _ = s.findSlot(x)
	}
	s.table[pos] = x
	s.count++
	return false
}

// Load reports whether the set contains x.
// reserved values are never in the set.
// time complexity: O(1)
func (s *PosIntSet) Load(x int32) (ok bool) {
	if IsReserved(x) {
		return false
	}
	_, ok = s.find(x)
	return ok
}

// Store adds x to the set.
// return ErrReservedValue if x is EmptyKey or DeletedKey.
// time complexity: O(1), amortized over growth
func (s *PosIntSet) Store(x int32) error {
	_, err := s.LoadOrStore(x)
	return err
}

// LoadOrStore adds x to the set.
// loaded report x if in set, err is ErrReservedValue if x can not be stored.
func (s *PosIntSet) LoadOrStore(x int32) (loaded bool, err error) {
	if IsReserved(x) {
		return false, fmt.Errorf("%w: %d", ErrReservedValue, x)
	}
	return s.insert(x), nil
}

// Delete remove x from the set.
// time complexity: O(1)
func (s *PosIntSet) Delete(x int32) {
	s.LoadAndDelete(x)
}

// LoadAndDelete remove x from the set
// loaded report x if in set
func (s *PosIntSet) LoadAndDelete(x int32) (loaded bool) {
	if IsReserved(x) {
		return false
	}
	pos, ok := s.find(x)
	if !ok {
		return false
	}
	s.table[pos] = DeletedKey
	s.count--
	s.deleted++
	return true
}

// Adds Store all x in args to the set.
// reserved values are skipped and reported in the returned error.
func (s *PosIntSet) Adds(args ...int32) error {
	return Adds(s, args...)
}

// Removes Delete all x in args from the set
func (s *PosIntSet) Removes(args ...int32) {
	for _, x := range args {
		s.Delete(x)
	}
}

// Range calls f sequentially for each item present in the set.
// If f returns false, range stops the iteration.
//
// The order follows the table layout and is not specified.
// f must not modify the set.
func (s *PosIntSet) Range(f func(x int32) bool) {
	for _, x := range s.table {
		if IsReserved(x) {
			continue
		}
		if !f(x) {
			return
		}
	}
}

// All return an iterator over the items of the set, in unspecified order.
func (s *PosIntSet) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		s.Range(yield)
	}
}

// Len return the number of elements in set
// time complexity: O(1)
func (s *PosIntSet) Len() int { return s.count }

// Cap return the number of slots of the table
func (s *PosIntSet) Cap() int { return len(s.table) }

// Null report set if empty
func (s *PosIntSet) Null() bool { return s.count == 0 }

// Clear remove all elements from the set, keeping the table.
// time complexity: O(Cap)
func (s *PosIntSet) Clear() {
	for i := range s.table {
		s.table[i] = EmptyKey
	}
	s.count = 0
	s.deleted = 0
}

// Release drops the table of the set.
// the set must not be used after Release.
func (s *PosIntSet) Release() {
	s.table = nil
	s.count = 0
	s.deleted = 0
	s.shift = 0
}

// Items return all element in the set, in unspecified order.
// time complexity: O(Cap)
func (s *PosIntSet) Items() []int32 {
	array := make([]int32, 0, s.count)
	s.Range(func(x int32) bool {
		array = append(array, x)
		return true
	})
	return array
}

// Copy return a copy of the set
func (s *PosIntSet) Copy() *PosIntSet {
	return &PosIntSet{
		count:   s.count,
		deleted: s.deleted,
		shift:   s.shift,
		table:   slices.Clone(s.table),
	}
}

// Equal report whether s and t hold the same items.
// the table layout of the two sets is never compared.
// worst time complexity: O(N)
// best  time complexity: O(1)
func (s *PosIntSet) Equal(t Set) bool { return Equal(s, t) }

// String returns the set as a string of the form "{1 2 3}".
// items are sorted.
func (s *PosIntSet) String() string { return String(s) }
