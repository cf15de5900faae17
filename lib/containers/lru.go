// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	lru "github.com/hashicorp/golang-lru"
)

// LRUCache is a typed least-recently-used(ish) cache; it is backed by
// an Adaptive Replacement Cache.  A zero LRUCache is not usable; it
// must be initialized with NewLRUCache.
type LRUCache[K comparable, V any] struct {
	inner *lru.ARCCache
}

// NewLRUCache returns a cache that holds at most size entries.  It
// panics if size is not positive.
func NewLRUCache[K comparable, V any](size int) *LRUCache[K, V] {
	inner, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return &LRUCache[K, V]{inner: inner}
}

func (c *LRUCache[K, V]) Add(key K, value V) {
	c.inner.Add(key, value)
}

func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	_value, ok := c.inner.Get(key)
	if ok {
		//nolint:forcetypeassert // Typed wrapper around untyped lib.
		value = _value.(V)
	}
	return value, ok
}

func (c *LRUCache[K, V]) Len() int {
	return c.inner.Len()
}

func (c *LRUCache[K, V]) Purge() {
	c.inner.Purge()
}

// GetOrElse returns the cached value for key, calling fn to fill the
// cache on a miss.
func (c *LRUCache[K, V]) GetOrElse(key K, fn func() V) V {
	if value, ok := c.Get(key); ok {
		return value
	}
	value := fn()
	c.Add(key, value)
	return value
}
