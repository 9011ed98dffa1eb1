// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"regexp"
	"strings"

	"github.com/tigerwill90/urld/internal/stringutil"
)

const localhost = "localhost"

// Domain is a recognized host name.
type Domain struct {
	// FQDN is the host name as written, or "localhost".
	FQDN string
	Port string
	// TLD is the label after the final dot.
	TLD string
	// SLD is the label immediately before TLD.
	SLD string
	// Host is every label before SLD, dots included. Set when the name has three or more labels.
	Host string
}

func (*Domain) Component() Component { return DomainComponent }

func (d *Domain) mergeInto(r *Result) { r.Domain = d }

func (d *Domain) fields() map[string]string {
	m := map[string]string{"fqdn": d.FQDN}
	if d.Port != "" {
		m["port"] = d.Port
	}
	// Labels may be empty (e.g. "domain." has an empty TLD), presence follows the dot count.
	switch dots := strings.Count(d.FQDN, "."); {
	case dots >= 2:
		m["host"] = d.Host
		fallthrough
	case dots == 1:
		m["sld"] = d.SLD
		m["tld"] = d.TLD
	}
	return m
}

var dottedNamePattern = regexp.MustCompile(`^([\w.-]*\.\w*)` + portTail)

// domainCandidates are tried in order, the first match wins.
var domainCandidates = [...]func(s string) (hostMatch, bool){
	matchLocalhost,
	func(s string) (hostMatch, bool) { return matchHost(dottedNamePattern, s) },
}

func matchLocalhost(s string) (hostMatch, bool) {
	if !stringutil.HasPrefixIgnoreCase(s, localhost) {
		return hostMatch{}, false
	}
	port, n, ok := matchPortTail(s[len(localhost):])
	if !ok {
		return hostMatch{}, false
	}
	return hostMatch{literal: s[:len(localhost)], port: port, end: len(localhost) + n}, true
}

// RecognizeDomain recognizes "localhost" (any case) or a dotted host name, with an optional
// port, at the start of s and splits a dotted name into its labels. The path separator that
// follows the name is consumed.
func RecognizeDomain(s string) (Match, bool) {
	for _, match := range domainCandidates {
		hm, ok := match(s)
		if !ok {
			continue
		}
		d := &Domain{FQDN: hm.literal, Port: hm.port}
		splitLabels(d)
		return Match{Fragment: d, Remainder: s[hm.end:]}, true
	}
	return Match{}, false
}

func splitLabels(d *Domain) {
	last := strings.LastIndexByte(d.FQDN, '.')
	if last < 0 {
		return
	}
	d.TLD = d.FQDN[last+1:]

	prev := strings.LastIndexByte(d.FQDN[:last], '.')
	if prev < 0 {
		d.SLD = d.FQDN[:last]
		return
	}
	d.SLD = d.FQDN[prev+1 : last]
	d.Host = d.FQDN[:prev]
}
