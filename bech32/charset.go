package bech32

// Charset is the 32 character alphabet, indexed by 5-bit value. It leaves out
// '1', 'b', 'i' and 'o'.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Separator divides the human readable part from the data part.
const Separator = '1'

// invalid marks a byte that has no 5-bit value in charsetRev.
const invalid = 0xff

// charsetRev maps an ASCII byte to its 5-bit value. Upper case letters map to
// the same value as their lower case form.
var charsetRev = [128]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	15, 0xff, 10, 17, 21, 20, 26, 30, 7, 5, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 29, 0xff, 24, 13, 25, 9, 8, 23, 0xff, 18, 22, 31, 27, 19, 0xff,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 29, 0xff, 24, 13, 25, 9, 8, 23, 0xff, 18, 22, 31, 27, 19, 0xff,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// ValueToChar returns the charset character for a 5-bit value. It panics if v
// is larger than 31.
func ValueToChar(v byte) byte { return Charset[v] }

// CharToValue returns the 5-bit value of c, ignoring case. ok is false when c
// is not in the charset.
func CharToValue(c rune) (v byte, ok bool) {
	if c < 0 || c >= 128 {
		return
	}
	if v = charsetRev[c]; v == invalid {
		return 0, false
	}
	return v, true
}
