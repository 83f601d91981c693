package txref

import (
	"fmt"
	"slices"

	"txref.mleku.dev/bech32"
)

// Layout names one of the two incompatible bit layouts for txref payloads.
type Layout int

const (
	// LayoutLegacy has network specific field widths: 8 and 11 groups on
	// mainnet, 10 and 13 on testnet.
	LayoutLegacy Layout = iota + 1
	// LayoutUniform uses the same 9 and 12 group layout on every network. It
	// is the layout for new references.
	LayoutUniform
)

func (l Layout) String() string {
	switch l {
	case LayoutLegacy:
		return "legacy"
	case LayoutUniform:
		return "uniform"
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// ParseLayout reads a layout name as printed by Layout.String.
func ParseLayout(s string) (l Layout, err error) {
	switch s {
	case "legacy":
		l = LayoutLegacy
	case "uniform":
		l = LayoutUniform
	default:
		err = ErrLayout(s)
	}
	return
}

// Network selects the default human readable part and magic codes.
type Network int

const (
	Mainnet Network = iota
	Testnet
)

const (
	HRPMain = "tx"
	HRPTest = "txtest"
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "main"
	case Testnet:
		return "test"
	}
	return fmt.Sprintf("network(%d)", int(n))
}

// MarshalText renders the network name, for JSON and YAML output.
func (n Network) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// ParseNetwork reads "main" or "test".
func ParseNetwork(s string) (n Network, err error) {
	switch s {
	case "main", "mainnet":
		n = Mainnet
	case "test", "testnet":
		n = Testnet
	default:
		err = ErrNetwork(s)
	}
	return
}

// DefaultHRP is the human readable part used when the caller gives none.
func (n Network) DefaultHRP() string {
	if n == Testnet {
		return HRPTest
	}
	return HRPMain
}

// Default magic codes. The first data character of a reference is the magic
// code, so these show up as 'r', 'y', 'x' and '8'.
const (
	MagicMain         = 0x03
	MagicMainExtended = 0x04
	MagicTest         = 0x06
	MagicTestExtended = 0x07
	MaxMagicCode      = 0x1f
)

// FieldID identifies a packed field.
type FieldID int

const (
	FieldMagic FieldID = iota
	FieldVersion
	FieldHeight
	FieldPosition
	FieldIndex
	FieldReserved
)

var fieldNames = [...]string{"magic code", "version", "block height",
	"transaction position", "txo index", "reserved"}

func (f FieldID) String() string { return fieldNames[f] }

// Field places a value at a bit offset in the concatenated 5-bit groups of a
// payload. Bit i of the value lands at Offset+i, that is group (Offset+i)/5,
// bit (Offset+i)%5.
type Field struct {
	ID     FieldID
	Offset uint
	Width  uint
}

// Max is the largest value the field holds.
func (f Field) Max() uint32 { return uint32(1)<<f.Width - 1 }

// Variant is one packing of a reference: a layout, a network and standard or
// extended size.
type Variant struct {
	Layout   Layout
	Network  Network
	Extended bool
	// Magic is the default magic code.
	Magic  uint8
	Groups int
	Fields []Field
}

func (v *Variant) String() string {
	size := "standard"
	if v.Extended {
		size = "extended"
	}
	return fmt.Sprintf("%s/%s/%s", v.Layout, v.Network, size)
}

// Field returns the field with the given id, ok is false if the variant has
// no such field.
func (v *Variant) Field(id FieldID) (f Field, ok bool) {
	for _, f = range v.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// Limit is the largest value the variant can carry in field id, 0 if it has
// no such field.
func (v *Variant) Limit(id FieldID) int {
	f, ok := v.Field(id)
	if !ok {
		return 0
	}
	return int(f.Max())
}

// clone copies v, fields included, so the copy can be changed freely.
func (v *Variant) clone() *Variant {
	c := *v
	c.Fields = slices.Clone(v.Fields)
	return &c
}

// magicChar is the first character of the data part under the default magic
// code.
func (v *Variant) magicChar() byte { return bech32.Charset[v.Magic] }

var (
	legacyMain = []Field{
		{FieldMagic, 0, 5},
		{FieldVersion, 5, 1},
		{FieldHeight, 6, 21},
		{FieldPosition, 27, 13},
	}
	legacyMainExt = append(legacyMain[:len(legacyMain):len(legacyMain)],
		Field{FieldIndex, 40, 13},
		Field{FieldReserved, 53, 2},
	)
	legacyTest = []Field{
		{FieldMagic, 0, 5},
		{FieldVersion, 5, 1},
		{FieldHeight, 6, 26},
		{FieldPosition, 32, 18},
	}
	legacyTestExt = append(legacyTest[:len(legacyTest):len(legacyTest)],
		Field{FieldIndex, 50, 15},
	)
	uniform = []Field{
		{FieldMagic, 0, 5},
		{FieldVersion, 5, 1},
		{FieldHeight, 6, 24},
		{FieldPosition, 30, 15},
	}
	uniformExt = append(uniform[:len(uniform):len(uniform)],
		Field{FieldIndex, 45, 15},
	)
)

// variants is every known packing. It is never handed out, callers get copies.
var variants = []*Variant{
	{LayoutLegacy, Mainnet, false, MagicMain, 8, legacyMain},
	{LayoutLegacy, Mainnet, true, MagicMainExtended, 11, legacyMainExt},
	{LayoutLegacy, Testnet, false, MagicTest, 10, legacyTest},
	{LayoutLegacy, Testnet, true, MagicTestExtended, 13, legacyTestExt},
	{LayoutUniform, Mainnet, false, MagicMain, 9, uniform},
	{LayoutUniform, Mainnet, true, MagicMainExtended, 12, uniformExt},
	{LayoutUniform, Testnet, false, MagicTest, 9, uniform},
	{LayoutUniform, Testnet, true, MagicTestExtended, 12, uniformExt},
}

// Lookup returns a copy of the variant for a layout, network and size, nil if
// there is none.
func Lookup(l Layout, n Network, extended bool) *Variant {
	if v := lookup(l, n, extended); v != nil {
		return v.clone()
	}
	return nil
}

func lookup(l Layout, n Network, extended bool) *Variant {
	for _, v := range variants {
		if v.Layout == l && v.Network == n && v.Extended == extended {
			return v
		}
	}
	return nil
}

// bySize finds the variant of a layout with the given payload length. Where
// two networks share a size the magic code picks the network, anything but a
// testnet code reading as mainnet.
func bySize(l Layout, groups int, magic uint8) (found *Variant) {
	for _, v := range variants {
		if v.Layout != l || v.Groups != groups {
			continue
		}
		if found == nil || v.Magic == magic {
			found = v
		}
	}
	return
}
