package netutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint32(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		base   int
		want   uint32
		wantOk bool
	}{
		{
			name:   "hexadecimal with prefix",
			input:  "0xC00002EB",
			base:   16,
			want:   0xC00002EB,
			wantOk: true,
		},
		{
			name:   "hexadecimal upper prefix",
			input:  "0XC00002EB",
			base:   16,
			want:   0xC00002EB,
			wantOk: true,
		},
		{
			name:   "decimal",
			input:  "3221226219",
			base:   10,
			want:   3221226219,
			wantOk: true,
		},
		{
			name:   "octal",
			input:  "030000001353",
			base:   8,
			want:   0xC00002EB,
			wantOk: true,
		},
		{
			name:   "decimal overflow",
			input:  "9999999999",
			base:   10,
			wantOk: false,
		},
		{
			name:   "octal with invalid digit",
			input:  "030000001359",
			base:   8,
			wantOk: false,
		},
		{
			name:   "empty string",
			input:  "",
			base:   10,
			wantOk: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseUint32(tc.input, tc.base)
			require.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseOctets(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		base   int
		want   uint32
		wantOk bool
	}{
		{
			name:   "dotted hexadecimal",
			input:  "0xC0.0x00.0x02.0xEB",
			base:   16,
			want:   0xC00002EB,
			wantOk: true,
		},
		{
			name:   "dotted octal",
			input:  "0300.0000.0002.0353",
			base:   8,
			want:   0xC00002EB,
			wantOk: true,
		},
		{
			name:   "dotted decimal",
			input:  "127.0.0.1",
			base:   10,
			want:   0x7F000001,
			wantOk: true,
		},
		{
			name:   "octal group overflow",
			input:  "0400.0000.0002.0353",
			base:   8,
			wantOk: false,
		},
		{
			name:   "too few groups",
			input:  "0xC0.0x00.0x02",
			base:   16,
			wantOk: false,
		},
		{
			name:   "too many groups",
			input:  "1.2.3.4.5",
			base:   10,
			wantOk: false,
		},
		{
			name:   "empty group",
			input:  "1..3.4",
			base:   10,
			wantOk: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseOctets(tc.input, tc.base)
			require.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatIPv4(t *testing.T) {
	assert.Equal(t, "192.0.2.235", FormatIPv4(0xC00002EB))
	assert.Equal(t, "0.0.0.0", FormatIPv4(0))
	assert.Equal(t, "255.255.255.255", FormatIPv4(0xFFFFFFFF))
}

func TestFormatIPv6Decimal(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		want   string
		wantOk bool
	}{
		{
			name:   "link local",
			input:  "338288524927261089654170743795120240736",
			want:   "fe80::21b:77ff:fbd6:7860",
			wantOk: true,
		},
		{
			name:   "loopback with leading zeros",
			input:  "000000000000000000000000000000000000001",
			want:   "::1",
			wantOk: true,
		},
		{
			name:   "unspecified",
			input:  "000000000000000000000000000000000000000",
			want:   "::",
			wantOk: true,
		},
		{
			name:   "all ones",
			input:  "340282366920938463463374607431768211455",
			want:   "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
			wantOk: true,
		},
		{
			name:   "ipv4 mapped",
			input:  "000000000000000000000000281470849515521",
			want:   "::ffff:10.0.0.1",
			wantOk: true,
		},
		{
			name:   "overflow",
			input:  "340282366920938463463374607431768211456",
			wantOk: false,
		},
		{
			name:   "not a number",
			input:  "fe80::1",
			wantOk: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FormatIPv6Decimal(tc.input)
			require.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
