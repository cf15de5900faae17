// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hex

import (
	"fmt"
)

// Style selects the case of the digits and whether to emit Prefix
// when encoding.  It is usable as a github.com/spf13/pflag.Value.
type Style uint8

const (
	StyleLower    = Style(0)
	StyleUpper    = Style(1 << 0)
	StylePrefixed = Style(1 << 1)

	StylePrefixedUpper = StylePrefixed | StyleUpper
)

var styleNames = map[Style]string{
	StyleLower:         "lower",
	StyleUpper:         "upper",
	StylePrefixed:      "prefixed",
	StylePrefixedUpper: "prefixed-upper",
}

// ParseStyle parses the output of Style.String.
func ParseStyle(str string) (Style, error) {
	for style, name := range styleNames {
		if name == str {
			return style, nil
		}
	}
	return 0, fmt.Errorf("hex: invalid style %q (must be one of lower, upper, prefixed, prefixed-upper)", str)
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// Set implements pflag.Value.
func (s *Style) Set(str string) error {
	style, err := ParseStyle(str)
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// Type implements pflag.Value.
func (*Style) Type() string {
	return "style"
}

// Prefix returns the prefix that the style emits; either Prefix or "".
func (s Style) Prefix() string {
	if s&StylePrefixed != 0 {
		return Prefix
	}
	return ""
}

func (s Style) digits() string {
	if s&StyleUpper != 0 {
		return digitsUpper
	}
	return digitsLower
}
