// Command libposintset builds the set as a C shared library:
//
//	go build -buildmode=c-shared -o libposintset.so ./cmd/libposintset
//
// Handles cross the boundary as uintptr_t and must be released with
// posint_set_finalize exactly once.
package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
#include "posintset.h"
*/
import "C"

import (
	"unsafe"

	"github.com/min1324/posintset/capi"
)

//export posint_set_new
func posint_set_new() C.uintptr_t {
	return C.uintptr_t(capi.New())
}

//export posint_set_finalize
func posint_set_finalize(self C.uintptr_t) {
	capi.Finalize(capi.Handle(self))
}

//export posint_set_clear
func posint_set_clear(self C.uintptr_t) {
	capi.Clear(capi.Handle(self))
}

//export posint_set_push
func posint_set_push(self C.uintptr_t, x C.int32_t) {
	// rejected values are logged by capi, C has no error to receive them
	_ = capi.Push(capi.Handle(self), int32(x))
}

//export posint_set_includes
func posint_set_includes(self C.uintptr_t, x C.int32_t) C.bool {
	return C.bool(capi.Includes(capi.Handle(self), int32(x)))
}

//export posint_set_delete
func posint_set_delete(self C.uintptr_t, x C.int32_t) {
	capi.Delete(capi.Handle(self), int32(x))
}

//export posint_set_iterate
func posint_set_iterate(self C.uintptr_t, iteratee C.posint_set_iteratee, data unsafe.Pointer) {
	if iteratee == nil {
		return
	}
	capi.Iterate(capi.Handle(self), func(x int32, data unsafe.Pointer) {
		visit(iteratee, x, data)
	}, data)
}

//export posint_set_size
func posint_set_size(self C.uintptr_t) C.size_t {
	return C.size_t(capi.Size(capi.Handle(self)))
}

//export posint_set_eq
func posint_set_eq(self, other C.uintptr_t) C.bool {
	return C.bool(capi.Eq(capi.Handle(self), capi.Handle(other)))
}

func main() {}
