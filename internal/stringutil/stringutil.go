package stringutil

// HasPrefixIgnoreCase reports whether s begins with prefix, comparing ASCII letters
// without regard to case. Bytes outside A-Z/a-z must match exactly. Used for keyword
// literals such as "localhost" in the network location.
func HasPrefixIgnoreCase(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if !EqualASCIIIgnoreCase(s[i], prefix[i]) {
			return false
		}
	}
	return true
}

// EqualASCIIIgnoreCase performs case-insensitive comparison of two ASCII bytes.
func EqualASCIIIgnoreCase(s, t uint8) bool {
	if t == s {
		return true
	}

	// Make s < t to simplify what follows.
	if t < s {
		t, s = s, t
	}

	return 'A' <= s && s <= 'Z' && t == s+'a'-'A'
}

// ToLower returns s with every ASCII uppercase letter mapped to lowercase. Other bytes,
// including multibyte UTF-8 sequences, are copied unchanged. If s has no uppercase
// letter, s is returned without allocating.
func ToLower(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	b := make([]byte, len(s))
	copy(b, s[:i])
	for ; i < len(s); i++ {
		b[i] = ToLowerASCII(s[i])
	}
	return string(b)
}

// ToLowerASCII converts an ASCII uppercase letter (A-Z) to lowercase (a-z).
// All other bytes are returned unchanged.
func ToLowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
