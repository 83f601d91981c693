// Package txref encodes the position of a transaction, or of one of its
// outputs, in a blockchain as a short bech32 reference string.
//
// A reference packs a magic code, a version bit, the block height, the
// transaction's position in the block and, for extended references, a txo
// index into 5-bit groups. Two bit layouts exist and they are not compatible,
// so a Codec is bound to one of them.
package txref

import (
	"strings"

	"github.com/pkg/errors"

	"txref.mleku.dev/bech32"
)

// Codec encodes and decodes references in one layout.
type Codec struct {
	layout   Layout
	checksum bech32.Constant
}

// Option configures a Codec.
type Option func(c *Codec)

// WithChecksum sets the checksum constant Encode uses. Decode accepts both.
func WithChecksum(k bech32.Constant) Option { return func(c *Codec) { c.checksum = k } }

// New returns a Codec for layout l. References are checksummed with bech32m
// unless WithChecksum says otherwise.
func New(l Layout, opts ...Option) (c *Codec, err error) {
	if l != LayoutLegacy && l != LayoutUniform {
		err = ErrLayout(l.String())
		return
	}
	c = &Codec{layout: l, checksum: bech32.Bech32m}
	for _, opt := range opts {
		opt(c)
	}
	return
}

// Layout is the layout the codec reads and writes.
func (c *Codec) Layout() Layout { return c.layout }

// Params are the inputs of Encode.
type Params struct {
	Network Network
	// HRP defaults to the network's human readable part.
	HRP string
	// MagicCode defaults to the network's code for the chosen size.
	MagicCode           *uint8
	BlockHeight         int
	TransactionPosition int
	TxoIndex            int
	// ForceExtended selects the extended size even for a zero TxoIndex, for
	// callers that want references of a stable length.
	ForceExtended bool
}

// LocationData is a decoded reference.
type LocationData struct {
	HRP                 string         `json:"hrp" yaml:"hrp"`
	TxRef               string         `json:"txref" yaml:"txref"`
	BlockHeight         int            `json:"blockHeight" yaml:"blockHeight"`
	TransactionPosition int            `json:"transactionPosition" yaml:"transactionPosition"`
	TxoIndex            int            `json:"txoIndex" yaml:"txoIndex"`
	MagicCode           uint8          `json:"magicCode" yaml:"magicCode"`
	Network             Network        `json:"network" yaml:"network"`
	Extended            bool           `json:"extended" yaml:"extended"`
	Checksum            bech32.Variant `json:"checksum" yaml:"checksum"`
}

// Variant returns a copy of the variant Encode would use for p.
func (c *Codec) Variant(p Params) *Variant {
	return Lookup(c.layout, p.Network, p.TxoIndex != 0 || p.ForceExtended)
}

// Encode produces the dash formatted reference for p. The human readable part
// may only use characters Decode keeps, the bech32 charset and '1', in either
// case.
func (c *Codec) Encode(p Params) (s string, err error) {
	v := lookup(c.layout, p.Network, p.TxoIndex != 0 || p.ForceExtended)
	if v == nil {
		err = ErrNetwork(p.Network.String())
		return
	}
	magic := int(v.Magic)
	if p.MagicCode != nil {
		magic = int(*p.MagicCode)
	}
	checks := []struct {
		id    FieldID
		value int
	}{
		{FieldMagic, magic},
		{FieldHeight, p.BlockHeight},
		{FieldPosition, p.TransactionPosition},
		{FieldIndex, p.TxoIndex},
	}
	for _, ck := range checks {
		if limit := v.Limit(ck.id); ck.value < 0 || ck.value > limit {
			err = ErrRange{Field: ck.id, Value: ck.value, Max: limit}
			return
		}
	}
	hrp := p.HRP
	if hrp == "" {
		hrp = p.Network.DefaultHRP()
	}
	if !strings.EqualFold(Strip(hrp), hrp) {
		err = ErrHRP(hrp)
		return
	}
	groups := Pack(v, Values{
		Magic:               uint32(magic),
		BlockHeight:         uint32(p.BlockHeight),
		TransactionPosition: uint32(p.TransactionPosition),
		TxoIndex:            uint32(p.TxoIndex),
	})
	var raw string
	if raw, err = bech32.EncodeWith(hrp, groups, c.checksum); chk.T(err) {
		err = errors.Wrap(err, "txref encode")
		return
	}
	log.T.F("encoded %s as %s", v, raw)
	s = Pretty(raw, len(hrp))
	return
}

// EncodeMain encodes a mainnet reference with the default human readable part
// and magic code.
func (c *Codec) EncodeMain(height, position, index int, forceExtended bool) (string, error) {
	return c.Encode(Params{Network: Mainnet, BlockHeight: height,
		TransactionPosition: position, TxoIndex: index, ForceExtended: forceExtended})
}

// EncodeTest encodes a testnet reference with the default human readable part
// and magic code.
func (c *Codec) EncodeTest(height, position, index int, forceExtended bool) (string, error) {
	return c.Encode(Params{Network: Testnet, BlockHeight: height,
		TransactionPosition: position, TxoIndex: index, ForceExtended: forceExtended})
}

// Decode reads a reference. Anything outside the bech32 alphabet, dashes and
// spaces included, is ignored, and a reference written without its human
// readable part gets the default one back when its length and first character
// identify the variant.
func (c *Codec) Decode(s string) (ld LocationData, err error) {
	clean := Strip(s)
	if clean == "" {
		err = ErrEmpty{}
		return
	}
	clean = restoreHRP(c.layout, clean)
	var d bech32.Decoded
	if d, err = bech32.DecodeStrict(clean); chk.T(err) {
		err = errors.Wrapf(err, "txref decode %q", s)
		return
	}
	var magic uint8
	if len(d.Data) > 0 {
		magic = d.Data[0]
	}
	v := bySize(c.layout, len(d.Data), magic)
	if v == nil {
		err = ErrUnknownFormat{Layout: c.layout, Groups: len(d.Data)}
		return
	}
	vals := Unpack(v, d.Data)
	if vals.Version != 0 {
		err = ErrVersion(vals.Version)
		return
	}
	if vals.Reserved != 0 {
		err = ErrReserved(vals.Reserved)
		return
	}
	ld = LocationData{
		HRP:                 d.HRP,
		TxRef:               Pretty(strings.ToLower(clean), len(d.HRP)),
		BlockHeight:         int(vals.BlockHeight),
		TransactionPosition: int(vals.TransactionPosition),
		TxoIndex:            int(vals.TxoIndex),
		MagicCode:           uint8(vals.Magic),
		Network:             v.Network,
		Extended:            v.Extended,
		Checksum:            d.Variant,
	}
	return
}

// MaxLength is the longest formatted reference the codec produces for a human
// readable part of hrpLen characters.
func (c *Codec) MaxLength(hrpLen int) (n int) {
	for _, v := range variants {
		if v.Layout != c.layout {
			continue
		}
		n = max(n, PrettyLength(hrpLen, v.Groups+bech32.ChecksumLength))
	}
	return
}
