// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package arrays

// PrefixWith returns s as an array of type A.  If s is shorter than
// the array, it is padded at the start with elem; if s is longer, only
// its first N elements are used.
//
//	PrefixWith[[5]int]([]int{5, 2, 0}, 0) ⇒ [5]int{0, 0, 5, 2, 0}
func PrefixWith[A, T any](s []T, elem T) A {
	return pad[A](s, elem, true)
}

// SuffixWith returns s as an array of type A.  If s is shorter than
// the array, it is padded at the end with elem; if s is longer, only
// its first N elements are used.
//
//	SuffixWith[[5]int]([]int{5, 2, 0}, 0) ⇒ [5]int{5, 2, 0, 0, 0}
func SuffixWith[A, T any](s []T, elem T) A {
	return pad[A](s, elem, false)
}

func pad[A, T any](s []T, elem T, atStart bool) A {
	var ret A
	dst := AsSlice[A, T](&ret)
	if len(s) >= len(dst) {
		copy(dst, s[:len(dst)])
		return ret
	}
	for i := range dst {
		dst[i] = elem
	}
	if atStart {
		copy(dst[len(dst)-len(s):], s)
	} else {
		copy(dst, s)
	}
	return ret
}
