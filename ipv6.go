// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"regexp"

	"github.com/tigerwill90/urld/internal/netutil"
	"github.com/tigerwill90/urld/internal/stringutil"
)

// IPv6Notation is the textual form in which an IPv6 literal was written.
type IPv6Notation uint8

const (
	// IPv6Standard is a bracketed literal, e.g. [fe80::1%4] or [::ffff:10.0.0.1/96].
	IPv6Standard IPv6Notation = iota
	// IPv6Decimal is the whole 128-bit address as 39 decimal digits.
	IPv6Decimal

	ipv6NotationSentinel
)

var ipv6NotationTags = [ipv6NotationSentinel]string{"std", "oct"}

func (n IPv6Notation) String() string {
	if n >= ipv6NotationSentinel {
		return "unknown"
	}
	return ipv6NotationTags[n]
}

// IPv6 is a recognized IPv6 literal.
type IPv6 struct {
	// Address is the literal, lower-cased, without brackets.
	Address string
	// Standard is the compressed text form of a decimal literal. Empty for bracketed literals.
	Standard string
	Type     IPv6Notation
	Port     string
}

func (*IPv6) Component() Component { return IPv6Component }

func (ip *IPv6) mergeInto(r *Result) { r.IPv6 = ip }

func (ip *IPv6) fields() map[string]string {
	m := map[string]string{"address": ip.Address, "type": ip.Type.String()}
	if ip.Standard != "" {
		m["standard"] = ip.Standard
	}
	if ip.Port != "" {
		m["port"] = ip.Port
	}
	return m
}

type ipv6Pattern struct {
	notation IPv6Notation
	re       *regexp.Regexp
	// standard renders the literal in compressed form. Nil when the literal is kept as written.
	standard func(literal string) (string, bool)
}

var ipv6Patterns = [...]ipv6Pattern{
	{
		notation: IPv6Standard,
		re:       regexp.MustCompile(`(?i)^\[([0-9a-f:%./]*)\]` + portTail),
	},
	{
		notation: IPv6Decimal,
		re:       regexp.MustCompile(`^(\d{39})` + portTail),
		standard: netutil.FormatIPv6Decimal,
	},
}

// RecognizeIPv6 recognizes an IPv6 literal, with an optional port, at the start of s: either a
// bracketed literal, kept verbatim, or a 39 digit decimal integer. The path separator that
// follows the literal is consumed.
func RecognizeIPv6(s string) (Match, bool) {
	for _, p := range ipv6Patterns {
		hm, ok := matchHost(p.re, s)
		if !ok {
			continue
		}

		ip := &IPv6{Address: stringutil.ToLower(hm.literal), Type: p.notation, Port: hm.port}
		if p.standard != nil {
			std, ok := p.standard(hm.literal)
			if !ok {
				return Match{}, false
			}
			ip.Standard = std
		}
		return Match{Fragment: ip, Remainder: s[hm.end:]}, true
	}
	return Match{}, false
}
