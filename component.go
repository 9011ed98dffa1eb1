// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

// Component identifies a part of a deconstructed URL. Its string form is the key under which
// the part is rendered in [Result.Map].
type Component uint8

const (
	SchemeComponent Component = iota
	CredentialComponent
	IPv4Component
	IPv6Component
	DomainComponent
	PathComponent
	QueryComponent

	componentSentinel
)

var componentKeys = [componentSentinel]string{"scheme", "credential", "ipv4", "ipv6", "domain", "path", "cgi"}

func (c Component) String() string {
	if c >= componentSentinel {
		return "unknown"
	}
	return componentKeys[c]
}

// Fragment is the structured payload produced by a successful recognizer. It is one of
// [Scheme], [*Credential], [*IPv4], [*IPv6], [*Domain], [Path] or [*Query].
type Fragment interface {
	Component() Component
	mergeInto(r *Result)
}

// Match is the outcome of a successful recognizer: the recognized fragment and the
// unconsumed suffix of the input.
type Match struct {
	Fragment  Fragment
	Remainder string
}

// Recognizer consumes a prefix of s. It reports false when nothing at the start of s is
// recognized, in which case the returned Match is the zero value and must be ignored.
type Recognizer func(s string) (Match, bool)
