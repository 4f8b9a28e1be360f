// Package capi exposes sets through opaque handles, for hosts that can not
// hold Go pointers.
//
// Every function takes the handle returned by New. Handles of distinct sets
// may be used from different goroutines at the same time; calls on one handle
// must be serialized by the caller. Calls with an unknown or finalized handle
// are logged and do nothing.
package capi

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/min1324/posintset"
)

// Handle identifies a set created by New. The zero Handle is never valid.
type Handle uintptr

// ErrInvalidHandle is returned for handles that are unknown or finalized.
var ErrInvalidHandle = errors.New("capi: invalid handle")

var (
	sets registry

	nop    = zap.NewNop()
	logger atomic.Pointer[zap.Logger]
)

// SetLogger sets the logger used to report contract violations.
// nil restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = nop
	}
	logger.Store(l)
}

func log() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

func lookup(h Handle, op string) (*posintset.PosIntSet, bool) {
	s, ok := sets.load(h)
	if !ok {
		invalidHandleCalls.WithLabelValues(op).Inc()
		log().Error("invalid handle", zap.String("op", op), zap.Uintptr("handle", uintptr(h)))
	}
	return s, ok
}

// New creates an empty set and return its handle.
func New() Handle {
	h := sets.add(posintset.New(0))
	handlesCreated.Inc()
	log().Debug("set created", zap.Uintptr("handle", uintptr(h)))
	return h
}

// Finalize releases the set of h. h must not be used afterwards.
func Finalize(h Handle) {
	s, ok := sets.remove(h)
	if !ok {
		invalidHandleCalls.WithLabelValues("finalize").Inc()
		log().Error("finalize of invalid handle", zap.Uintptr("handle", uintptr(h)))
		return
	}
	s.Release()
	handlesFinalized.Inc()
	log().Debug("set finalized", zap.Uintptr("handle", uintptr(h)))
}

// Clear removes all items of the set of h.
func Clear(h Handle) {
	if s, ok := lookup(h, "clear"); ok {
		s.Clear()
	}
}

// Push adds x to the set of h.
// reserved values are rejected with posintset.ErrReservedValue.
func Push(h Handle, x int32) error {
	s, ok := lookup(h, "push")
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	if err := s.Store(x); err != nil {
		rejectedValues.Inc()
		log().Warn("push rejected", zap.Uintptr("handle", uintptr(h)), zap.Int32("value", x), zap.Error(err))
		return err
	}
	return nil
}

// Includes reports whether the set of h contains x.
func Includes(h Handle, x int32) bool {
	s, ok := lookup(h, "includes")
	return ok && s.Load(x)
}

// Delete removes x from the set of h.
func Delete(h Handle, x int32) {
	if s, ok := lookup(h, "delete"); ok {
		s.Delete(x)
	}
}

// Iterate calls f once for every item of the set of h, in unspecified order.
// data is handed to every call unmodified.
// f must not modify the set of h.
func Iterate[T any](h Handle, f func(x int32, data T), data T) {
	s, ok := lookup(h, "iterate")
	if !ok {
		return
	}
	s.Range(func(x int32) bool {
		f(x, data)
		return true
	})
}

// Size return the number of items in the set of h.
func Size(h Handle) uint {
	s, ok := lookup(h, "size")
	if !ok {
		return 0
	}
	return uint(s.Len())
}

// Eq reports whether the sets of a and b hold the same items.
func Eq(a, b Handle) bool {
	s, ok := lookup(a, "eq")
	if !ok {
		return false
	}
	t, ok := lookup(b, "eq")
	if !ok {
		return false
	}
	return s.Equal(t)
}

// Live return the number of sets created and not finalized.
func Live() int { return sets.len() }
