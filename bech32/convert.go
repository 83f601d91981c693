package bech32

// ConvertBits regroups a slice of fromBits-wide values into toBits-wide
// values. With pad set a trailing partial group is zero padded; without it a
// non-zero or overlong remainder is an error.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) (out []byte, err error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		err = ErrInvalidBitGroups{}
		return
	}
	out = make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	var acc uint32
	var bits uint8
	maxv := uint32(1)<<toBits - 1
	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			err = ErrInvalidDataByte(b)
			return nil, err
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits&maxv))
		}
		acc &= uint32(1)<<bits - 1
	}
	switch {
	case pad:
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits)&maxv))
		}
	case bits >= fromBits:
		return nil, ErrInvalidIncompleteGroup{}
	case acc<<(toBits-bits)&maxv != 0:
		return nil, ErrInvalidIncompleteGroup{}
	}
	return
}
