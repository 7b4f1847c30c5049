// SPDX-License-Identifier: MIT

package textsplit

import (
	"fmt"
	"strings"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw input bytes to text. A UTF-8 or UTF-16 (LE/BE) byte
// order mark selects the encoding and is stripped; without one the input is
// read as UTF-8, with invalid sequences replaced by U+FFFD. CRLF line
// endings are normalized to LF.
func Decode(raw []byte) (string, error) {
	dec := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
	b, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}
