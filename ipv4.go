// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"regexp"

	"github.com/tigerwill90/urld/internal/netutil"
)

// IPv4Notation is the textual form in which an IPv4 literal was written.
type IPv4Notation uint8

const (
	// IPv4DottedDecimal is the canonical form, e.g. 192.0.2.235.
	IPv4DottedDecimal IPv4Notation = iota
	// IPv4DottedHex writes each octet in hexadecimal, e.g. 0xC0.0x00.0x02.0xEB.
	IPv4DottedHex
	// IPv4DottedOctal writes each octet as four octal digits, e.g. 0300.0000.0002.0353.
	IPv4DottedOctal
	// IPv4Hex is the whole address as 8 hexadecimal digits, e.g. 0xC00002EB.
	IPv4Hex
	// IPv4Octal is the whole address as 12 octal digits, e.g. 030000001353.
	IPv4Octal
	// IPv4Decimal is the whole address as 10 decimal digits, e.g. 3221226219.
	IPv4Decimal

	ipv4NotationSentinel
)

var ipv4NotationTags = [ipv4NotationSentinel]string{"dotnot", "dothex", "dotoct", "hexdec", "oct", "dec"}

func (n IPv4Notation) String() string {
	if n >= ipv4NotationSentinel {
		return "unknown"
	}
	return ipv4NotationTags[n]
}

// IPv4 is a recognized IPv4 literal.
type IPv4 struct {
	// Address is the literal as written.
	Address string
	// Notation is the dotted-decimal form of Address. It is empty when Address is already
	// dotted-decimal.
	Notation string
	Type     IPv4Notation
	Port     string
}

func (*IPv4) Component() Component { return IPv4Component }

func (ip *IPv4) mergeInto(r *Result) { r.IPv4 = ip }

func (ip *IPv4) fields() map[string]string {
	m := map[string]string{"address": ip.Address, "type": ip.Type.String()}
	if ip.Notation != "" {
		m["notation"] = ip.Notation
	}
	if ip.Port != "" {
		m["port"] = ip.Port
	}
	return m
}

type ipv4Pattern struct {
	notation IPv4Notation
	re       *regexp.Regexp
	// value reinterprets the literal as a 32-bit address. Nil for the canonical notation.
	value func(literal string) (uint32, bool)
}

func octetsIn(base int) func(string) (uint32, bool) {
	return func(s string) (uint32, bool) { return netutil.ParseOctets(s, base) }
}

func uint32In(base int) func(string) (uint32, bool) {
	return func(s string) (uint32, bool) { return netutil.ParseUint32(s, base) }
}

// ipv4Patterns overlap structurally, their order is significant.
var ipv4Patterns = [...]ipv4Pattern{
	{
		notation: IPv4DottedDecimal,
		re:       regexp.MustCompile(`^((?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?))` + portTail),
	},
	{
		notation: IPv4DottedHex,
		re:       regexp.MustCompile(`(?i)^(0x[0-9a-f]{2}\.0x[0-9a-f]{2}\.0x[0-9a-f]{2}\.0x[0-9a-f]{2})` + portTail),
		value:    octetsIn(16),
	},
	{
		notation: IPv4DottedOctal,
		re:       regexp.MustCompile(`^(\d{4}\.\d{4}\.\d{4}\.\d{4})` + portTail),
		value:    octetsIn(8),
	},
	{
		notation: IPv4Hex,
		re:       regexp.MustCompile(`(?i)^(0x[0-9a-f]{8})` + portTail),
		value:    uint32In(16),
	},
	{
		notation: IPv4Octal,
		re:       regexp.MustCompile(`^(\d{12})` + portTail),
		value:    uint32In(8),
	},
	{
		notation: IPv4Decimal,
		re:       regexp.MustCompile(`^(\d{10})` + portTail),
		value:    uint32In(10),
	},
}

// RecognizeIPv4 recognizes an IPv4 literal, with an optional port, at the start of s. The
// first notation whose pattern matches decides; if that literal does not denote a 32-bit
// value (e.g. an octal group above 0377) nothing is recognized. The path separator that
// follows the literal is consumed.
func RecognizeIPv4(s string) (Match, bool) {
	for _, p := range ipv4Patterns {
		hm, ok := matchHost(p.re, s)
		if !ok {
			continue
		}

		ip := &IPv4{Address: hm.literal, Type: p.notation, Port: hm.port}
		if p.value != nil {
			v, ok := p.value(hm.literal)
			if !ok {
				return Match{}, false
			}
			ip.Notation = netutil.FormatIPv4(v)
		}
		return Match{Fragment: ip, Remainder: s[hm.end:]}, true
	}
	return Match{}, false
}
