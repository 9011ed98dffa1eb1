// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urld

import (
	"regexp"
)

// Credential is the user information preceding the network location.
type Credential struct {
	Username string
	Password string
	// PasswordSet reports whether a password was written, possibly empty as in "user:@".
	PasswordSet bool
}

func (*Credential) Component() Component { return CredentialComponent }

func (c *Credential) mergeInto(r *Result) { r.Credential = c }

func (c *Credential) fields() map[string]string {
	m := map[string]string{"username": c.Username}
	if c.PasswordSet {
		m["password"] = c.Password
	}
	return m
}

// credentialPatterns are tried in order. The username is captured by the first group, the
// password, when present, by the second.
var credentialPatterns = [...]*regexp.Regexp{
	regexp.MustCompile(`^(\w+):(\w*)@`),
	regexp.MustCompile(`^(\w+)@`),
}

// RecognizeCredential recognizes "user:pass@" or "user@" at the start of s. The "@" is consumed.
func RecognizeCredential(s string) (Match, bool) {
	for _, re := range credentialPatterns {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		c := &Credential{Username: s[loc[2]:loc[3]]}
		if len(loc) > 4 && loc[4] >= 0 {
			c.Password = s[loc[4]:loc[5]]
			c.PasswordSet = true
		}
		return Match{Fragment: c, Remainder: s[loc[1]:]}, true
	}
	return Match{}, false
}
