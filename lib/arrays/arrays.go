// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package arrays implements conversions between slices and
// fixed-length arrays.
//
// Go has no way to be generic over an array length, so every function
// here is parameterized on the array type itself; A must be a type
// whose underlying type is [N]T for the element type T, and N is read
// from A at runtime.  Passing any other type for A is a programming
// error, and panics.
package arrays

import (
	"fmt"
	"reflect"
	"unsafe"
)

// MismatchedLengthError is returned when a buffer's length is not the
// length that the conversion requires.
type MismatchedLengthError struct {
	Expect int
	Actual int
}

func (e *MismatchedLengthError) Error() string {
	return fmt.Sprintf("arrays: mismatched length: expected %d, got %d", e.Expect, e.Actual)
}

// Len returns N for an array type A whose underlying type is [N]T.
func Len[A, T any]() int {
	typ := reflect.TypeOf((*A)(nil)).Elem()
	elem := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() != reflect.Array || typ.Elem() != elem {
		panic(fmt.Errorf("arrays: %v is not an array of %v", typ, elem))
	}
	return typ.Len()
}

// AsSlice returns a slice that aliases the array pointed to by a.
func AsSlice[A, T any](a *A) []T {
	return view[A, T](a, Len[A, T]())
}

func view[A, T any](a *A, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(a)), n)
}

// SliceToArray copies s in to a new array of type A, failing unless
// len(s) is exactly the length of A.
func SliceToArray[A, T any](s []T) (A, error) {
	var ret A
	n := Len[A, T]()
	if len(s) != n {
		return ret, &MismatchedLengthError{Expect: n, Actual: len(s)}
	}
	copy(view[A, T](&ret, n), s)
	return ret, nil
}

// SliceToArrayPtr is like SliceToArray, but instead of copying it
// returns a pointer to an array that shares memory with s; writes
// through either are visible through the other.
func SliceToArrayPtr[A, T any](s []T) (*A, error) {
	n := Len[A, T]()
	if len(s) != n {
		return nil, &MismatchedLengthError{Expect: n, Actual: len(s)}
	}
	if n == 0 {
		return new(A), nil
	}
	return (*A)(unsafe.Pointer(unsafe.SliceData(s))), nil
}

// VecToArray is SliceToArray for a caller that is giving up v: the
// caller must not use v after the call, whether or not it succeeds.
// The returned array never shares memory with v.
func VecToArray[A, T any](v []T) (A, error) {
	ptr, err := SliceToArrayPtr[A, T](v)
	if err != nil {
		var zero A
		return zero, err
	}
	return *ptr, nil
}

// SliceToArrayUnchecked is SliceToArray without the length check.
//
// The caller promises that len(s) is the length of A.  If that promise
// is broken, the result is the first min(len(s), N) elements of s
// followed by zero values; this is not an error and is not reported.
func SliceToArrayUnchecked[A, T any](s []T) A {
	var ret A
	copy(AsSlice[A, T](&ret), s)
	return ret
}

// VecToArrayUnchecked is VecToArray without the length check; see
// SliceToArrayUnchecked for what happens if the length is wrong.
func VecToArrayUnchecked[A, T any](v []T) A {
	return SliceToArrayUnchecked[A, T](v)
}
