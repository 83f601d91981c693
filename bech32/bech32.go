package bech32

import (
	"strings"
)

const (
	// MinLength is the shortest valid string: one character of human readable
	// part, the separator and the checksum.
	MinLength = 8
	// MaxLength is the longest valid string.
	MaxLength = 90
	// MaxHRPLength is the longest human readable part.
	MaxHRPLength = 83
)

// Decoded is the result of Decode. A failed decode is the zero value: empty
// HRP, nil Data and Variant None.
type Decoded struct {
	HRP     string
	Data    []byte
	Variant Variant
}

// Ok reports whether the string verified against either checksum constant.
func (d Decoded) Ok() bool { return d.Variant != None }

// MaxEncodedLen is the length of the string Encode produces for a human
// readable part of hrpLen characters and dataLen 5-bit values.
func MaxEncodedLen(hrpLen, dataLen int) int {
	return hrpLen + 1 + dataLen + ChecksumLength
}

// Encode encodes hrp and the 5-bit values in data with the bech32m checksum.
func Encode(hrp string, data []byte) (string, error) {
	return EncodeWith(hrp, data, Bech32m)
}

// EncodeOriginal encodes with the checksum constant of the original format.
func EncodeOriginal(hrp string, data []byte) (string, error) {
	return EncodeWith(hrp, data, Bech32)
}

// EncodeWith encodes hrp and data with the checksum constant c. The human
// readable part is lower cased in the output.
func EncodeWith(hrp string, data []byte, c Constant) (s string, err error) {
	if len(hrp) < 1 || len(hrp) > MaxHRPLength {
		err = ErrHRPLength(len(hrp))
		return
	}
	if n := MaxEncodedLen(len(hrp), len(data)); n > MaxLength {
		err = ErrCombinedLength(n)
		return
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			err = ErrInvalidCharacter(hrp[i])
			return
		}
	}
	for _, b := range data {
		if b > 31 {
			err = ErrInvalidDataByte(b)
			return
		}
	}
	hrp = strings.ToLower(hrp)
	sum := CreateChecksum(hrp, data, c)
	var sb strings.Builder
	sb.Grow(MaxEncodedLen(len(hrp), len(data)))
	sb.WriteString(hrp)
	sb.WriteByte(Separator)
	for _, b := range data {
		sb.WriteByte(Charset[b])
	}
	for _, b := range sum {
		sb.WriteByte(Charset[b])
	}
	s = sb.String()
	return
}

// Decode decodes a bech32 or bech32m string.
//
// Errors are returned only for strings that can not be a bech32 string at all:
// a length outside 8 to 90, a character outside printable ASCII, mixed case, no
// separator, or a data part character outside the charset. A string that is
// shaped right but fails to verify returns the zero Decoded and a nil error.
func Decode(s string) (d Decoded, err error) {
	var soft error
	if d, soft, err = decode(s); chk.T(err) {
		return
	}
	if soft != nil {
		log.T.F("no bech32 result for %q: %v", s, soft)
		d = Decoded{}
	}
	return
}

// DecodeStrict is Decode with the data quality failures reported as errors:
// ErrInvalidSeparatorIndex for an empty human readable part or short data
// part, ErrHRPLength for an overlong human readable part and
// ErrInvalidChecksum when neither constant verifies.
func DecodeStrict(s string) (d Decoded, err error) {
	var soft error
	if d, soft, err = decode(s); chk.T(err) {
		return
	}
	if soft != nil {
		d, err = Decoded{}, soft
	}
	return
}

func decode(s string) (d Decoded, soft, err error) {
	if len(s) < MinLength || len(s) > MaxLength {
		err = ErrInvalidLength(len(s))
		return
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 33 || s[i] > 126 {
			err = ErrInvalidCharacter(s[i])
			return
		}
	}
	lower := strings.ToLower(s)
	if s != lower && s != strings.ToUpper(s) {
		err = ErrMixedCase{}
		return
	}
	// the human readable part may itself contain '1', only the last one
	// separates it from the data part.
	one := strings.LastIndexByte(lower, Separator)
	if one < 0 {
		err = ErrInvalidSeparatorIndex(one)
		return
	}
	hrp, part := lower[:one], lower[one+1:]
	switch {
	case len(hrp) < 1:
		soft = ErrInvalidSeparatorIndex(one)
		return
	case len(hrp) > MaxHRPLength:
		soft = ErrHRPLength(len(hrp))
		return
	case len(part) < ChecksumLength:
		soft = ErrInvalidSeparatorIndex(one)
		return
	}
	data := make([]byte, len(part))
	for i := 0; i < len(part); i++ {
		v, ok := CharToValue(rune(part[i]))
		if !ok {
			err = ErrNonCharsetChar(part[i])
			return
		}
		data[i] = v
	}
	variant := verify(hrp, data)
	if variant == None {
		payload := data[:len(data)-ChecksumLength]
		soft = ErrInvalidChecksum{
			Expected:  toChars(CreateChecksum(hrp, payload, Bech32)),
			ExpectedM: toChars(CreateChecksum(hrp, payload, Bech32m)),
			Actual:    part[len(part)-ChecksumLength:],
		}
		return
	}
	d = Decoded{
		HRP:     hrp,
		Data:    data[:len(data)-ChecksumLength:len(data)-ChecksumLength],
		Variant: variant,
	}
	return
}

func toChars(values []byte) string {
	b := make([]byte, len(values))
	for i, v := range values {
		b[i] = Charset[v]
	}
	return string(b)
}

// StripUnknownChars removes every character that is neither the separator
// nor, lower cased, in the charset. Retained characters keep their order and
// case.
func StripUnknownChars(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r == Separator {
			sb.WriteRune(r)
			continue
		}
		if _, ok := CharToValue(r); ok {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
