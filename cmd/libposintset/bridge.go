package main

/*
#include "posintset.h"

static inline void posint_set_call(posint_set_iteratee f, int32_t x, void* data) {
	f(x, data);
}
*/
import "C"

import "unsafe"

// visit calls the C iteratee f. The call lives here because files with
// //export may not define C functions in their preamble.
func visit(f C.posint_set_iteratee, x int32, data unsafe.Pointer) {
	C.posint_set_call(f, C.int32_t(x), data)
}
