// Package posintset provides an open-addressed hash set of 32-bit integers.
//
// Two values, EmptyKey (-1) and DeletedKey (-2), mark free and removed
// slots of the table and can not be stored. Every other int32 can.
package posintset

import "errors"

// ErrReservedValue is returned when storing EmptyKey or DeletedKey.
var ErrReservedValue = errors.New("posintset: reserved value")

// Set
type Set interface {
	// Load reports whether the set contains x.
	Load(x int32) (ok bool)

	// Store adds x to the set.
	// return an error if x can not be stored.
	Store(x int32) error

	// Delete remove x from the set
	Delete(x int32)

	// Range calls f sequentially for each item present in the set.
	// If f returns false, range stops the iteration.
	Range(f func(x int32) bool)

	// Len return the number of elements in set
	Len() int
}

var _ Set = (*PosIntSet)(nil)

// New return a set with items args.
// cap is the number of items the set holds before growing,
// if cap<1, will use 32 slots.
// reserved values in args are skipped.
func New(cap int, args ...int32) *PosIntSet {
	var s PosIntSet
	s.OnceInit(max(cap, len(args)))
	for _, x := range args {
		if !IsReserved(x) {
			s.insert(x)
		}
	}
	return &s
}
