package posintset

// common public function

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
)

// String returns the set as a string of the form "{1 2 3}".
// items are sorted, the set order is not.
func String(s Set) string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, x := range Sorted(s) {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d", x)
	}
	buf.WriteByte('}')
	return buf.String()
}

// Items return all element in the set, in unspecified order.
// time complexity: O(N)
func Items(s Set) []int32 {
	if p, ok := s.(*PosIntSet); ok {
		return p.Items()
	}
	array := make([]int32, 0, s.Len())
	s.Range(func(x int32) bool {
		array = append(array, x)
		return true
	})
	return array
}

// Sorted return all element in the set in ascending order.
func Sorted(s Set) []int32 {
	array := Items(s)
	slices.Sort(array)
	return array
}

// Size return the number of elements in set
func Size(s Set) int { return s.Len() }

// Null report set if empty
func Null(s Set) bool { return s.Len() == 0 }

// Clear remove all elements from the set
func Clear(s Set) {
	if p, ok := s.(*PosIntSet); ok {
		p.Clear()
		return
	}
	// s must not be modified while ranging
	for _, x := range Items(s) {
		s.Delete(x)
	}
}

// Adds Store all x in args to the set.
// every x is tried, errors of the failed ones are joined.
func Adds(s Set, args ...int32) error {
	var errs []error
	for _, x := range args {
		if err := s.Store(x); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Removes Delete all x in args from the set
func Removes(s Set, args ...int32) {
	for _, x := range args {
		s.Delete(x)
	}
}

// Copy return a copy of s
// time complexity: O(N)
func Copy(s Set) *PosIntSet {
	if p, ok := s.(*PosIntSet); ok {
		return p.Copy()
	}
	p := New(s.Len())
	s.Range(func(x int32) bool {
		p.add(x)
		return true
	})
	return p
}

// Equal return set if equal, s <==> t
// sets are equal when they have the same size and every item of s is in t.
// worst time complexity: O(N)
// best  time complexity: O(1)
func Equal(s, t Set) bool {
	if s.Len() != t.Len() {
		return false
	}
	// range the smaller table
	ps, sok := s.(*PosIntSet)
	pt, tok := t.(*PosIntSet)
	if sok && tok && pt.Cap() < ps.Cap() {
		s, t = t, s
	}
	equal := true
	s.Range(func(x int32) bool {
		equal = t.Load(x)
		return equal
	})
	return equal
}

// Union return the union set of s and t.
// item in s or in t.
// time complexity: O(N)
func Union(s, t Set) *PosIntSet {
	p := New(s.Len() + t.Len())
	s.Range(func(x int32) bool {
		p.add(x)
		return true
	})
	t.Range(func(x int32) bool {
		p.add(x)
		return true
	})
	return p
}

// Intersect return the intersection set of s and t
// item in s and t
// time complexity: O(N)
func Intersect(s, t Set) *PosIntSet {
	if t.Len() < s.Len() {
		s, t = t, s
	}
	p := New(s.Len())
	s.Range(func(x int32) bool {
		if t.Load(x) {
			p.add(x)
		}
		return true
	})
	return p
}

// Difference return the difference set of s and t
// item in s and not in t
// time complexity: O(N)
func Difference(s, t Set) *PosIntSet {
	p := New(s.Len())
	s.Range(func(x int32) bool {
		if !t.Load(x) {
			p.add(x)
		}
		return true
	})
	return p
}

// Complement return the complement set of s and t
// item in s but not in t, and not in s but in t.
// time complexity: O(N)
func Complement(s, t Set) *PosIntSet {
	p := Difference(s, t)
	t.Range(func(x int32) bool {
		if !s.Load(x) {
			p.add(x)
		}
		return true
	})
	return p
}

// add stores x unless it is reserved,
// a foreign Set may hold values a PosIntSet can not.
func (s *PosIntSet) add(x int32) {
	if !IsReserved(x) {
		s.insert(x)
	}
}
