// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"regexp"
)

// Path is the path of the URL as written, without the delimiter that ends it.
type Path string

func (Path) Component() Component { return PathComponent }

func (p Path) mergeInto(r *Result) { r.Path = p }

var pathPattern = regexp.MustCompile(`^[\w./]*`)

// RecognizePath recognizes a non-empty run of letters, digits, '_', '.' and '/' at the start of s.
// The character following the run, normally the '?' or '#' delimiter, is skipped as well,
// whatever it is.
func RecognizePath(s string) (Match, bool) {
	n := len(pathPattern.FindString(s))
	if n == 0 {
		return Match{}, false
	}
	return Match{Fragment: Path(s[:n]), Remainder: s[min(n+1, len(s)):]}, true
}
