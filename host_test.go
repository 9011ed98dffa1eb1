package urld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizeIPv4(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		want          *IPv4
		wantRemainder string
	}{
		{
			name:          "dotted decimal",
			input:         "127.0.0.1:8080/p1/p2.do",
			want:          &IPv4{Address: "127.0.0.1", Type: IPv4DottedDecimal, Port: "8080"},
			wantRemainder: "p1/p2.do",
		},
		{
			name:          "dotted hexadecimal",
			input:         "0xC0.0x00.0x02.0xEB:8080/p1/p2.do",
			want:          &IPv4{Address: "0xC0.0x00.0x02.0xEB", Notation: "192.0.2.235", Type: IPv4DottedHex, Port: "8080"},
			wantRemainder: "p1/p2.do",
		},
		{
			name:          "dotted octal",
			input:         "0300.0000.0002.0353:8080/p1/p2.do",
			want:          &IPv4{Address: "0300.0000.0002.0353", Notation: "192.0.2.235", Type: IPv4DottedOctal, Port: "8080"},
			wantRemainder: "p1/p2.do",
		},
		{
			name:          "hexadecimal",
			input:         "0xC00002EB:8080/p1/p2.do",
			want:          &IPv4{Address: "0xC00002EB", Notation: "192.0.2.235", Type: IPv4Hex, Port: "8080"},
			wantRemainder: "p1/p2.do",
		},
		{
			name:          "octal",
			input:         "030000001353/p1/p2.do",
			want:          &IPv4{Address: "030000001353", Notation: "192.0.2.235", Type: IPv4Octal},
			wantRemainder: "p1/p2.do",
		},
		{
			name:          "decimal",
			input:         "3221226219:8080/p1/p2.do",
			want:          &IPv4{Address: "3221226219", Notation: "192.0.2.235", Type: IPv4Decimal, Port: "8080"},
			wantRemainder: "p1/p2.do",
		},
		{
			name:  "dotted decimal at end of input",
			input: "10.0.0.1",
			want:  &IPv4{Address: "10.0.0.1", Type: IPv4DottedDecimal},
		},
		{
			name:  "port at end of input",
			input: "10.0.0.1:443",
			want:  &IPv4{Address: "10.0.0.1", Type: IPv4DottedDecimal, Port: "443"},
		},
		{
			name:  "octet out of range",
			input: "256.1.1.1/",
		},
		{
			name:  "octal group out of range",
			input: "0400.0000.0002.0353/",
		},
		{
			name:  "decimal out of range",
			input: "9999999999/",
		},
		{
			name:  "port too long",
			input: "127.0.0.1:123456/",
		},
		{
			name:  "not followed by separator",
			input: "127.0.0.1.nip.io/",
		},
		{
			name:  "domain name",
			input: "www.domain.com/",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := RecognizeIPv4(tc.input)
			if tc.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.want, m.Fragment)
			assert.Equal(t, tc.wantRemainder, m.Remainder)
		})
	}
}

func TestRecognizeIPv4SameValue(t *testing.T) {
	literals := []string{
		"0xC0.0x00.0x02.0xEB",
		"0300.0000.0002.0353",
		"0xC00002EB",
		"030000001353",
		"3221226219",
	}

	for _, lit := range literals {
		t.Run(lit, func(t *testing.T) {
			m, ok := RecognizeIPv4(lit + "/")
			require.True(t, ok)
			ip := m.Fragment.(*IPv4)
			assert.Equal(t, "192.0.2.235", ip.Notation)
			assert.NotEqual(t, IPv4DottedDecimal, ip.Type)
		})
	}
}

func TestRecognizeIPv4DottedDecimalHasNoNotation(t *testing.T) {
	for _, lit := range []string{"0.0.0.0", "127.0.0.1", "192.168.1.254", "255.255.255.255", "01.02.03.04"} {
		t.Run(lit, func(t *testing.T) {
			m, ok := RecognizeIPv4(lit)
			require.True(t, ok)
			ip := m.Fragment.(*IPv4)
			assert.Equal(t, IPv4DottedDecimal, ip.Type)
			assert.Equal(t, "dotnot", ip.Type.String())
			assert.Empty(t, ip.Notation)
			assert.NotContains(t, ip.fields(), "notation")
		})
	}
}

func TestRecognizeIPv6(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		want          *IPv6
		wantRemainder string
	}{
		{
			name:          "loopback",
			input:         "[::1]:8080/p1/p2.do",
			want:          &IPv6{Address: "::1", Type: IPv6Standard, Port: "8080"},
			wantRemainder: "p1/p2.do",
		},
		{
			name:          "ipv4 compatible with prefix length",
			input:         "[::ffff:10.0.0.1/96]:8080/p1/p2.do",
			want:          &IPv6{Address: "::ffff:10.0.0.1/96", Type: IPv6Standard, Port: "8080"},
			wantRemainder: "p1/p2.do",
		},
		{
			name:          "full form is lower cased",
			input:         "[FEDC:BA98:7654:3210:FEDC:BA98:7654:3210]:8080/p1/p2.do",
			want:          &IPv6{Address: "fedc:ba98:7654:3210:fedc:ba98:7654:3210", Type: IPv6Standard, Port: "8080"},
			wantRemainder: "p1/p2.do",
		},
		{
			name:          "numeric zone",
			input:         "[fe80::1%4]/index.html",
			want:          &IPv6{Address: "fe80::1%4", Type: IPv6Standard},
			wantRemainder: "index.html",
		},
		{
			name:  "no port at end of input",
			input: "[::1]",
			want:  &IPv6{Address: "::1", Type: IPv6Standard},
		},
		{
			name:          "decimal integer",
			input:         "338288524927261089654170743795120240736:8080/p1/p2.do",
			want:          &IPv6{Address: "338288524927261089654170743795120240736", Standard: "fe80::21b:77ff:fbd6:7860", Type: IPv6Decimal, Port: "8080"},
			wantRemainder: "p1/p2.do",
		},
		{
			name:  "decimal integer out of range",
			input: "999999999999999999999999999999999999999/",
		},
		{
			name:  "too many digits",
			input: "33828852492726108965417074379512024073600/",
		},
		{
			name:  "missing closing bracket",
			input: "[::1/p1",
		},
		{
			name:  "bracket not followed by separator",
			input: "[::1]x/p1",
		},
		{
			name:  "ipv4",
			input: "127.0.0.1/",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := RecognizeIPv6(tc.input)
			if tc.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.want, m.Fragment)
			assert.Equal(t, tc.wantRemainder, m.Remainder)
		})
	}
}

func TestRecognizeDomain(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		want          *Domain
		wantFields    map[string]string
		wantRemainder string
	}{
		{
			name:          "three labels",
			input:         "www.domain.com:8080/p1",
			want:          &Domain{FQDN: "www.domain.com", Port: "8080", TLD: "com", SLD: "domain", Host: "www"},
			wantFields:    map[string]string{"fqdn": "www.domain.com", "port": "8080", "tld": "com", "sld": "domain", "host": "www"},
			wantRemainder: "p1",
		},
		{
			name:       "two labels",
			input:      "domain.com",
			want:       &Domain{FQDN: "domain.com", TLD: "com", SLD: "domain"},
			wantFields: map[string]string{"fqdn": "domain.com", "tld": "com", "sld": "domain"},
		},
		{
			name:          "many labels",
			input:         "a.b-c.www.domain.co/index",
			want:          &Domain{FQDN: "a.b-c.www.domain.co", TLD: "co", SLD: "domain", Host: "a.b-c.www"},
			wantFields:    map[string]string{"fqdn": "a.b-c.www.domain.co", "tld": "co", "sld": "domain", "host": "a.b-c.www"},
			wantRemainder: "index",
		},
		{
			name:          "localhost",
			input:         "localhost:8080/p1",
			want:          &Domain{FQDN: "localhost", Port: "8080"},
			wantFields:    map[string]string{"fqdn": "localhost", "port": "8080"},
			wantRemainder: "p1",
		},
		{
			name:          "localhost any case",
			input:         "LocalHost/p1",
			want:          &Domain{FQDN: "LocalHost"},
			wantFields:    map[string]string{"fqdn": "LocalHost"},
			wantRemainder: "p1",
		},
		{
			name:          "localhost prefixed name",
			input:         "localhost.localdomain/p1",
			want:          &Domain{FQDN: "localhost.localdomain", TLD: "localdomain", SLD: "localhost"},
			wantFields:    map[string]string{"fqdn": "localhost.localdomain", "tld": "localdomain", "sld": "localhost"},
			wantRemainder: "p1",
		},
		{
			name:       "trailing dot",
			input:      "domain.",
			want:       &Domain{FQDN: "domain.", SLD: "domain"},
			wantFields: map[string]string{"fqdn": "domain.", "tld": "", "sld": "domain"},
		},
		{
			name:  "single label",
			input: "intranet/p1",
		},
		{
			name:  "port not followed by separator",
			input: "domain.com:8080x",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := RecognizeDomain(tc.input)
			if tc.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.want, m.Fragment)
			assert.Equal(t, tc.wantFields, m.Fragment.(*Domain).fields())
			assert.Equal(t, tc.wantRemainder, m.Remainder)
		})
	}
}

func TestRecognizeHost(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		want   Component
		wantOk bool
	}{
		{"ipv6 first", "[::1]:8080/", IPv6Component, true},
		{"decimal ipv6 before ipv4", "338288524927261089654170743795120240736/", IPv6Component, true},
		{"ipv4 before domain", "127.0.0.1/", IPv4Component, true},
		{"domain", "www.domain.com/", DomainComponent, true},
		{"localhost", "localhost", DomainComponent, true},
		{"invalid octal ipv4 falls back to domain", "1234.1234.1234.1234/", DomainComponent, true},
		{"nothing", "/p1/p2", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := RecognizeHost(tc.input)
			require.Equal(t, tc.wantOk, ok)
			if ok {
				assert.Equal(t, tc.want, m.Fragment.Component())
			}
		})
	}
}
