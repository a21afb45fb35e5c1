// Package encoding decodes rotation documents written in legacy charsets.
package encoding

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset is returned for a charset name htmlindex does not know.
var ErrUnknownCharset = errors.New("unknown charset")

// Lookup returns the decoder for a WHATWG charset label such as "euc-kr",
// "shift_jis" or "utf-16le". The empty label means UTF-8.
func Lookup(charset string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(charset))
	if label == "" || label == "utf-8" || label == "utf8" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}
	return enc, nil
}

// ToUTF8 converts data from charset to UTF-8. A leading byte order mark
// selects UTF-8 or UTF-16 regardless of charset and is dropped.
func ToUTF8(data []byte, charset string) ([]byte, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	dec := unicode.BOMOverride(enc.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", charsetName(charset), err)
	}
	return out, nil
}

func charsetName(charset string) string {
	if charset == "" {
		return "utf-8"
	}
	return charset
}
