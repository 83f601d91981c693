package txref

import (
	"fmt"
)

// Values holds the integer fields of a reference before packing or after
// unpacking.
type Values struct {
	Magic               uint32
	Version             uint32
	BlockHeight         uint32
	TransactionPosition uint32
	TxoIndex            uint32
	Reserved            uint32
}

func (vals *Values) field(id FieldID) *uint32 {
	switch id {
	case FieldMagic:
		return &vals.Magic
	case FieldVersion:
		return &vals.Version
	case FieldHeight:
		return &vals.BlockHeight
	case FieldPosition:
		return &vals.TransactionPosition
	case FieldIndex:
		return &vals.TxoIndex
	case FieldReserved:
		return &vals.Reserved
	}
	panic(fmt.Sprintf("unknown field id %d", id))
}

// Pack distributes the fields of vals into the 5-bit groups of variant v.
// Values are range checked by the codec first, a value wider than its field
// is a programming error and panics. Fields absent from v must be zero.
func Pack(v *Variant, vals Values) (groups []byte) {
	for id := FieldMagic; id <= FieldReserved; id++ {
		if _, ok := v.Field(id); !ok && *vals.field(id) != 0 {
			panic(fmt.Sprintf("%s has no %s field, got %d", v, id, *vals.field(id)))
		}
	}
	groups = make([]byte, v.Groups)
	for _, f := range v.Fields {
		x := *vals.field(f.ID)
		if x > f.Max() {
			panic(fmt.Sprintf("%s %d does not fit in %d bits", f.ID, x, f.Width))
		}
		for done := uint(0); done < f.Width; {
			bit := f.Offset + done
			g, shift := bit/5, bit%5
			n := min(5-shift, f.Width-done)
			groups[g] |= byte(x>>done&(1<<n-1)) << shift
			done += n
		}
	}
	return
}

// Unpack extracts the fields of variant v from groups. It panics if groups is
// not v.Groups long.
func Unpack(v *Variant, groups []byte) (vals Values) {
	if len(groups) != v.Groups {
		panic(fmt.Sprintf("%s needs %d groups, got %d", v, v.Groups, len(groups)))
	}
	for _, f := range v.Fields {
		var x uint32
		for done := uint(0); done < f.Width; {
			bit := f.Offset + done
			g, shift := bit/5, bit%5
			n := min(5-shift, f.Width-done)
			x |= uint32(groups[g]>>shift&(1<<n-1)) << done
			done += n
		}
		*vals.field(f.ID) = x
	}
	return
}
