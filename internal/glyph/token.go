package glyph

import "strings"

// alphabet maps a row value to its share-token character: base-32
// positional digits, 0-9 then A-V.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

// TokenLength is the fixed length of a share token, one character per row.
const TokenLength = Height

// EncodeToken renders the row vector as an 8-character share token.
func EncodeToken(r Rows) string {
	var b [TokenLength]byte
	for i, v := range r {
		b[i] = alphabet[v&rowMask]
	}
	return string(b[:])
}

// DecodeToken parses a share token back into a row vector. Lookup is
// case-insensitive. A token of the wrong length, or containing any
// character outside the alphabet, yields ok == false and no partial
// result; callers must leave their state untouched in that case.
func DecodeToken(s string) (r Rows, ok bool) {
	if len(s) != TokenLength {
		return Rows{}, false
	}
	for i := 0; i < TokenLength; i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		n := strings.IndexByte(alphabet, c)
		if n < 0 {
			return Rows{}, false
		}
		r[i] = uint8(n)
	}
	return r, true
}
