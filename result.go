// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"fmt"
	"maps"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Keys of the rendered result that are not a Component. AnchorKey is a key of the "cgi" payload.
const (
	InputURLKey = "input_url"
	CleanURLKey = "clean_url"
	AnchorKey   = "#"
)

// json sorts map keys, so a rendered Result is deterministic.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result accumulates the components recognized in a single URL. A nil pointer field or an
// empty string field means the component was not recognized.
type Result struct {
	// InputURL is the text as given to the parser.
	InputURL string
	// CleanURL is the percent-decoded input, set only when decoding changed it.
	CleanURL   string
	Scheme     Scheme
	Credential *Credential
	IPv4       *IPv4
	IPv6       *IPv6
	Domain     *Domain
	Path       Path
	Query      *Query
}

// Has reports whether the component c was recognized.
func (r *Result) Has(c Component) bool {
	switch c {
	case SchemeComponent:
		return r.Scheme != ""
	case CredentialComponent:
		return r.Credential != nil
	case IPv4Component:
		return r.IPv4 != nil
	case IPv6Component:
		return r.IPv6 != nil
	case DomainComponent:
		return r.Domain != nil
	case PathComponent:
		return r.Path != ""
	case QueryComponent:
		return r.Query != nil
	default:
		return false
	}
}

// Map returns the result keyed the way it is rendered: "input_url", "clean_url" and one key per
// recognized [Component]. Component payloads are map[string]string, the anchor is stored in the
// "cgi" payload under "#".
func (r *Result) Map() map[string]any {
	m := map[string]any{InputURLKey: r.InputURL}
	if r.CleanURL != "" {
		m[CleanURLKey] = r.CleanURL
	}
	if r.Scheme != "" {
		m[SchemeComponent.String()] = string(r.Scheme)
	}
	if r.Credential != nil {
		m[CredentialComponent.String()] = r.Credential.fields()
	}
	if r.IPv4 != nil {
		m[IPv4Component.String()] = r.IPv4.fields()
	}
	if r.IPv6 != nil {
		m[IPv6Component.String()] = r.IPv6.fields()
	}
	if r.Domain != nil {
		m[DomainComponent.String()] = r.Domain.fields()
	}
	if r.Path != "" {
		m[PathComponent.String()] = string(r.Path)
	}
	if r.Query != nil {
		params := make(map[string]string, len(r.Query.Params)+1)
		maps.Copy(params, r.Query.Params)
		if r.Query.Anchor != "" {
			params[AnchorKey] = r.Query.Anchor
		}
		m[QueryComponent.String()] = params
	}
	return m
}

// MarshalJSON renders [Result.Map] as a JSON object with sorted keys.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// MarshalIndent is like [Result.MarshalJSON] but applies indent to each nesting level. The indent
// may only contain spaces, otherwise an error wrapping [ErrInvalidIndent] is returned.
func (r *Result) MarshalIndent(indent string) ([]byte, error) {
	if strings.Trim(indent, " ") != "" {
		return nil, fmt.Errorf("%w: %q must only contain spaces", ErrInvalidIndent, indent)
	}
	return json.MarshalIndent(r.Map(), "", indent)
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	cp := *r
	if r.Credential != nil {
		c := *r.Credential
		cp.Credential = &c
	}
	if r.IPv4 != nil {
		ip := *r.IPv4
		cp.IPv4 = &ip
	}
	if r.IPv6 != nil {
		ip := *r.IPv6
		cp.IPv6 = &ip
	}
	if r.Domain != nil {
		d := *r.Domain
		cp.Domain = &d
	}
	if r.Query != nil {
		cp.Query = &Query{Params: maps.Clone(r.Query.Params), Anchor: r.Query.Anchor}
	}
	return &cp
}

// State is the parse state threaded through the recognizer pipeline: the accumulated
// [Result] and the suffix of the decoded input not yet consumed. The zero value is ready
// to use. A State is not safe for concurrent use.
type State struct {
	result    *Result
	remainder string
}

// Result returns the accumulated result.
func (s *State) Result() *Result {
	if s.result == nil {
		s.result = new(Result)
	}
	return s.result
}

// Remainder returns the unconsumed input.
func (s *State) Remainder() string {
	return s.remainder
}

// Reset clears the accumulated result and the remainder. Results previously returned by
// [State.Result] are left untouched.
func (s *State) Reset() {
	s.result = nil
	s.remainder = ""
}

func (s *State) apply(m Match) {
	m.Fragment.mergeInto(s.Result())
	s.remainder = m.Remainder
}
