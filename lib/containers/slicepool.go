// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"math/bits"

	"git.lukeshu.com/go/typedsync"
)

// slicePoolBuckets is the number of size classes in a SlicePool;
// slices with a capacity of 1<<slicePoolBuckets or more are not
// pooled.
const slicePoolBuckets = 24

// SlicePool is a pool of scratch slices.  Slices are bucketed by
// power-of-two capacity, so that a Get will only ever be handed a
// slice that is big enough, and will never be handed one that is
// wildly too big.
//
// The zero SlicePool is ready to use.
type SlicePool[T any] struct {
	buckets [slicePoolBuckets]typedsync.Pool[[]T]
}

// Get returns a slice of length size.  The contents are not zeroed.
func (p *SlicePool[T]) Get(size int) []T {
	if size == 0 {
		return nil
	}
	// smallest b such that 1<<b >= size
	b := bits.Len(uint(size - 1))
	if b >= slicePoolBuckets {
		return make([]T, size)
	}
	if ret, ok := p.buckets[b].Get(); ok {
		return ret[:size]
	}
	return make([]T, size, 1<<b)
}

// Put returns a slice to the pool.  The caller must not use the slice
// after putting it.
func (p *SlicePool[T]) Put(slice []T) {
	if cap(slice) == 0 {
		return
	}
	// largest b such that 1<<b <= cap
	b := bits.Len(uint(cap(slice))) - 1
	if b >= slicePoolBuckets {
		return
	}
	p.buckets[b].Put(slice[:0])
}
