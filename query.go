// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"regexp"
)

// Query holds the CGI parameters and the anchor of the URL.
type Query struct {
	// Params maps a parameter name to its value, empty for a bare name. The last occurrence
	// of a name wins.
	Params map[string]string
	// Anchor is the fragment following '#'. Empty if there is none.
	Anchor string
}

func (*Query) Component() Component { return QueryComponent }

func (q *Query) mergeInto(r *Result) { r.Query = q }

// queryToken yields, per match, either a name and a value (groups 1 and 2), a bare word
// (group 3) or the anchor marker (group 4). Names and values may be separated by '=' or ':',
// optionally followed by a space, and the value may be double quoted.
var queryToken = regexp.MustCompile(`(\w+)[:=] ?"?([\w+()]+)"?|(\w+)|(#)`)

// RecognizeQuery tokenizes the whole of s into parameters and an anchor. Characters that are
// not part of a token, such as '&', ';' and '?', act as separators. The token following a
// '#' becomes the anchor (the value, for a name and value token); later tokens are parameters
// again. Nothing is recognized if s holds no token. The remainder is always empty.
func RecognizeQuery(s string) (Match, bool) {
	tokens := queryToken.FindAllStringSubmatchIndex(s, -1)
	if len(tokens) == 0 {
		return Match{}, false
	}

	q := &Query{Params: make(map[string]string, len(tokens))}
	inAnchor := false
	for _, loc := range tokens {
		var name, value string
		switch {
		case loc[8] >= 0:
			inAnchor = true
			continue
		case loc[2] >= 0:
			name, value = s[loc[2]:loc[3]], s[loc[4]:loc[5]]
		default:
			name = s[loc[6]:loc[7]]
		}

		if inAnchor {
			if value != "" {
				q.Anchor = value
			} else {
				q.Anchor = name
			}
			inAnchor = false
			continue
		}
		q.Params[name] = value
	}

	return Match{Fragment: q}, true
}
