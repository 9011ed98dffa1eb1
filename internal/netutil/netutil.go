package netutil

import (
	"math/big"
	"net/netip"
	"strconv"
	"strings"
)

// ParseUint32 parses s in the given base as a 32-bit address value. For base 16 an optional
// "0x" or "0X" prefix is accepted. It reports false if s is not a valid number in that base
// or if the value does not fit in 32 bits.
func ParseUint32(s string, base int) (uint32, bool) {
	if base == 16 {
		s = trimHexPrefix(s)
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// ParseOctets parses dot-separated groups in the given base and packs them into a 32-bit
// address value, most significant group first. Exactly four groups are required and each
// must fit in a byte.
func ParseOctets(s string, base int) (uint32, bool) {
	var v uint32
	n := 0
	for group := range strings.SplitSeq(s, ".") {
		if n == 4 {
			return 0, false
		}
		if base == 16 {
			group = trimHexPrefix(group)
		}
		b, err := strconv.ParseUint(group, base, 8)
		if err != nil {
			return 0, false
		}
		v = v<<8 | uint32(b)
		n++
	}
	if n != 4 {
		return 0, false
	}
	return v, true
}

// FormatIPv4 renders a 32-bit address value in dotted-decimal notation.
func FormatIPv4(v uint32) string {
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}).String()
}

// ParseDecimalIPv6 interprets s as the base 10 representation of a 128-bit address value.
// It reports false if s is not a non-negative integer or if the value needs more than 128 bits.
func ParseDecimalIPv6(s string) (netip.Addr, bool) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 || n.BitLen() > 128 {
		return netip.Addr{}, false
	}
	var b [16]byte
	n.FillBytes(b[:])
	return netip.AddrFrom16(b), true
}

// FormatIPv6Decimal converts the base 10 representation of a 128-bit address value to
// its RFC 5952 text form: leading zeros suppressed and the longest run of zero groups
// collapsed to "::". IPv4-mapped values are rendered with a dotted-quad suffix.
func FormatIPv6Decimal(s string) (string, bool) {
	addr, ok := ParseDecimalIPv6(s)
	if !ok {
		return "", false
	}
	return addr.String(), true
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
