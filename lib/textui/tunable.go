// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package textui

// Tunable annotates a value as something that might want to be tuned
// as the program gets optimized; cache sizes, chunk lengths, and log
// intervals are all marked with it.  It returns x unchanged.
func Tunable[T any](x T) T {
	return x
}
