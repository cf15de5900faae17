// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.lukeshu.com/array-bytes-ng/lib/containers"
)

func TestLRUCache(t *testing.T) {
	t.Parallel()
	cache := containers.NewLRUCache[string, int](2)

	_, ok := cache.Get("a")
	assert.False(t, ok)

	cache.Add("a", 1)
	cache.Add("b", 2)
	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, cache.Len())

	cache.Add("c", 3)
	assert.Equal(t, 2, cache.Len())

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestLRUCacheGetOrElse(t *testing.T) {
	t.Parallel()
	cache := containers.NewLRUCache[int, int](4)
	calls := 0
	square := func(k int) func() int {
		return func() int {
			calls++
			return k * k
		}
	}
	assert.Equal(t, 9, cache.GetOrElse(3, square(3)))
	assert.Equal(t, 9, cache.GetOrElse(3, square(3)))
	assert.Equal(t, 16, cache.GetOrElse(4, square(4)))
	assert.Equal(t, 2, calls)
}

func TestLRUCacheBadSize(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { containers.NewLRUCache[int, int](0) })
}
