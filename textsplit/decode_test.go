// SPDX-License-Identifier: MIT

package textsplit_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/textsplit"
	"github.com/stretchr/testify/require"
)

// TestDecode covers plain UTF-8, BOM-marked UTF-8 and UTF-16 input.
func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"plain", []byte("1 2\n3 4\n"), "1 2\n3 4\n"},
		{"crlf", []byte("1 2\r\n3 4\r\n"), "1 2\n3 4\n"},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "ab"...), "ab"},
		{"utf16 le bom", []byte{0xFF, 0xFE, 'a', 0, '\n', 0, 'b', 0}, "a\nb"},
		{"utf16 be bom", []byte{0xFE, 0xFF, 0, 'a', 0, 'b'}, "ab"},
		{"empty", nil, ""},
		{"invalid utf8", []byte{'a', 0xFF, 'b'}, "a�b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := textsplit.Decode(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
