// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"strings"
	"unicode/utf8"
)

// Unescape decodes percent-encoded sequences in s. Unlike [net/url.PathUnescape] it never fails:
// a '%' not followed by two hexadecimal digits is kept as is. '+' is not decoded to a space.
// Each maximal run of decoded bytes that starts a UTF-8 sequence but does not complete it, and each
// byte that cannot start one, is replaced by a single U+FFFD. If s holds no escape sequence, s is
// returned unchanged.
//
// For example:
//   - scheme://host/caf%C3%A9      → scheme://host/café
//   - scheme://host/?q=one+two%21  → scheme://host/?q=one+two!
//   - scheme://host/100%           → scheme://host/100%
func Unescape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isEscape(s, i) {
			n++
			i += 2
		}
	}

	if n == 0 {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) - 2*n)
	for i := 0; i < len(s); i++ {
		if isEscape(s, i) {
			buf.WriteByte(byte(unhex(s[i+1])<<4 | unhex(s[i+2])))
			i += 2
			continue
		}
		buf.WriteByte(s[i])
	}

	decoded := buf.String()
	if utf8.ValidString(decoded) {
		return decoded
	}
	return replaceInvalidUTF8(decoded)
}

func replaceInvalidUTF8(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + utf8.UTFMax)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune(utf8.RuneError)
			i += invalidPrefixLen(s[i:])
			continue
		}
		buf.WriteString(s[i : i+size])
		i += size
	}
	return buf.String()
}

// invalidPrefixLen returns the length of the truncated sequence at the start of s, or 1 if s[0]
// cannot start a sequence. s must not start with a valid encoding.
func invalidPrefixLen(s string) int {
	n, lo, hi := 0, byte(0x80), byte(0xBF)
	switch b := s[0]; {
	case 0xC2 <= b && b <= 0xDF:
		n = 2
	case b == 0xE0:
		n, lo = 3, 0xA0
	case b == 0xED:
		n, hi = 3, 0x9F
	case 0xE1 <= b && b <= 0xEF:
		n = 3
	case b == 0xF0:
		n, lo = 4, 0x90
	case b == 0xF4:
		n, hi = 4, 0x8F
	case 0xF1 <= b && b <= 0xF3:
		n = 4
	default:
		return 1
	}

	k := 1
	for ; k < n && k < len(s); k++ {
		c := s[k]
		if k > 1 {
			lo, hi = 0x80, 0xBF
		}
		if c < lo || c > hi {
			break
		}
	}
	return k
}

func isEscape(s string, i int) bool {
	return s[i] == '%' && i+2 < len(s) && unhex(s[i+1]) >= 0 && unhex(s[i+2]) >= 0
}

func unhex(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
