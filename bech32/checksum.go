package bech32

import (
	"fmt"
)

// Constant is the value a valid string's polymod must equal. It tells the two
// checksum variants apart.
type Constant uint32

const (
	// Bech32 is the constant of the original format.
	Bech32 Constant = 1
	// Bech32m is the constant of the modern format.
	Bech32m Constant = 0x2bc830a3
)

// Variant reports which checksum constant a decoded string verified against.
type Variant int

const (
	None Variant = iota
	Original
	Modern
)

func (v Variant) String() string {
	switch v {
	case Original:
		return "bech32"
	case Modern:
		return "bech32m"
	}
	return "none"
}

func (c Constant) String() string {
	switch c {
	case Bech32:
		return "bech32"
	case Bech32m:
		return "bech32m"
	}
	return fmt.Sprintf("0x%08x", uint32(c))
}

// ChecksumLength is the number of 5-bit groups in a checksum.
const ChecksumLength = 6

var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// Polymod computes the BCH checksum remainder of a sequence of 5-bit values,
// in order.
func Polymod(values []byte) (chk uint32) {
	chk = 1
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := range gen {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return
}

// ExpandHRP spreads the human readable part into 5-bit values: the high 3
// bits of each character, a zero, then the low 5 bits of each character.
func ExpandHRP(hrp string) (v []byte) {
	n := len(hrp)
	v = make([]byte, n*2+1)
	for i := 0; i < n; i++ {
		v[i] = hrp[i] >> 5
		v[i+n+1] = hrp[i] & 31
	}
	return
}

// CreateChecksum returns the six checksum values for hrp and data against the
// given constant, most significant group first.
func CreateChecksum(hrp string, data []byte, c Constant) (sum []byte) {
	values := make([]byte, 0, len(hrp)*2+1+len(data)+ChecksumLength)
	values = append(values, ExpandHRP(hrp)...)
	values = append(values, data...)
	values = append(values, make([]byte, ChecksumLength)...)
	mod := Polymod(values) ^ uint32(c)
	sum = make([]byte, ChecksumLength)
	for i := range sum {
		sum[i] = byte(mod>>uint(5*(5-i))) & 31
	}
	return
}

// VerifyChecksum reports whether data, which ends in its checksum, verifies
// against c for hrp.
func VerifyChecksum(hrp string, data []byte, c Constant) bool {
	return polymodOf(hrp, data) == uint32(c)
}

func polymodOf(hrp string, data []byte) uint32 {
	values := make([]byte, 0, len(hrp)*2+1+len(data))
	values = append(values, ExpandHRP(hrp)...)
	values = append(values, data...)
	return Polymod(values)
}

// verify works out which variant, if either, data verifies against. The
// modern constant is tried first.
func verify(hrp string, data []byte) Variant {
	switch Constant(polymodOf(hrp, data)) {
	case Bech32m:
		return Modern
	case Bech32:
		return Original
	}
	return None
}

// MarshalText renders the variant name, for JSON and YAML output.
func (v Variant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
