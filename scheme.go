// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"regexp"
)

// Scheme is the application scheme including the "://" separator, e.g. "http://".
type Scheme string

func (Scheme) Component() Component { return SchemeComponent }

func (s Scheme) mergeInto(r *Result) { r.Scheme = s }

var schemePattern = regexp.MustCompile(`^[\w-]*://`)

// RecognizeScheme recognizes a run of word and hyphen characters followed by "://" at the
// start of s.
func RecognizeScheme(s string) (Match, bool) {
	loc := schemePattern.FindStringIndex(s)
	if loc == nil {
		return Match{}, false
	}
	return Match{Fragment: Scheme(s[:loc[1]]), Remainder: s[loc[1]:]}, true
}
