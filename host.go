// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"regexp"
)

// portTail matches what may follow a network location literal: an optional port and the
// path separator, or the end of the input. The separator is consumed.
const portTail = `(?::(\d{1,5})(?:/|$)|/|$)`

var portTailPattern = regexp.MustCompile(`^` + portTail)

// hostRecognizers are tried in order, the first match wins.
var hostRecognizers = [...]Recognizer{RecognizeIPv6, RecognizeIPv4, RecognizeDomain}

type hostMatch struct {
	literal string
	port    string
	end     int
}

// matchHost runs re at the start of s. The literal must be captured by the first group,
// the port by the second.
func matchHost(re *regexp.Regexp, s string) (hostMatch, bool) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return hostMatch{}, false
	}
	hm := hostMatch{literal: s[loc[2]:loc[3]], end: loc[1]}
	if loc[4] >= 0 {
		hm.port = s[loc[4]:loc[5]]
	}
	return hm, true
}

// matchPortTail matches portTail at the start of s and returns the port, if any, and the
// number of bytes consumed.
func matchPortTail(s string) (port string, n int, ok bool) {
	loc := portTailPattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return "", 0, false
	}
	if loc[2] >= 0 {
		port = s[loc[2]:loc[3]]
	}
	return port, loc[1], true
}

// RecognizeHost recognizes the network location at the start of s. An IPv6 literal is tried
// first, then an IPv4 literal, then a domain name; the first to match wins and the others
// are not attempted.
func RecognizeHost(s string) (Match, bool) {
	for _, recognize := range hostRecognizers {
		if m, ok := recognize(s); ok {
			return m, true
		}
	}
	return Match{}, false
}
