package txref

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"txref.mleku.dev/bech32"
)

func newCodec(t *testing.T, l Layout, opts ...Option) *Codec {
	c, err := New(l, opts...)
	require.NoError(t, err)
	return c
}

func TestEncodeVectors(t *testing.T) {
	tests := []struct {
		l    Layout
		opts []Option
		p    Params
		want string
	}{
		{LayoutLegacy, nil,
			Params{BlockHeight: 466793, TransactionPosition: 2205},
			"tx1-rjk0-u5ng-qwq9-76"},
		{LayoutLegacy, []Option{WithChecksum(bech32.Bech32)},
			Params{BlockHeight: 466793, TransactionPosition: 2205},
			"tx1-rjk0-u5ng-4jsf-mc"},
		{LayoutUniform, nil,
			Params{BlockHeight: 466793, TransactionPosition: 2205},
			"tx1-rjk0-uqay-z9l7-m9m"},
		{LayoutUniform, nil,
			Params{BlockHeight: 466793, TransactionPosition: 2205, ForceExtended: true},
			"tx1-yjk0-uqay-zqqq-hnlp-dm"},
		{LayoutUniform, nil,
			Params{Network: Testnet, BlockHeight: 1152000, TransactionPosition: 1, TxoIndex: 42},
			"txtest1-8qq2-xzpq-q2pq-d7yu-l3"},
		{LayoutUniform, []Option{WithChecksum(bech32.Bech32)},
			Params{},
			"tx1-rqqq-qqqq-qmhu-qhp"},
	}
	for _, tt := range tests {
		s, err := newCodec(t, tt.l, tt.opts...).Encode(tt.p)
		require.NoError(t, err)
		require.Equal(t, tt.want, s)
	}
}

func TestDecodeVectors(t *testing.T) {
	tests := []struct {
		l    Layout
		in   string
		want LocationData
	}{
		{LayoutLegacy, "tx1-rjk0-u5ng-4jsf-mc", LocationData{
			HRP: "tx", TxRef: "tx1-rjk0-u5ng-4jsf-mc", BlockHeight: 466793,
			TransactionPosition: 2205, MagicCode: MagicMain, Checksum: bech32.Original}},
		{LayoutLegacy, "tx1!rjk0\\u5ng*4jsf^^mc", LocationData{
			HRP: "tx", TxRef: "tx1-rjk0-u5ng-4jsf-mc", BlockHeight: 466793,
			TransactionPosition: 2205, MagicCode: MagicMain, Checksum: bech32.Original}},
		{LayoutLegacy, "TX1-RJK0-U5NG-QWQ9-76", LocationData{
			HRP: "tx", TxRef: "tx1-rjk0-u5ng-qwq9-76", BlockHeight: 466793,
			TransactionPosition: 2205, MagicCode: MagicMain, Checksum: bech32.Modern}},
		{LayoutUniform, "tx1:rqqq-qqqq-qmhu-qhp", LocationData{
			HRP: "tx", TxRef: "tx1-rqqq-qqqq-qmhu-qhp", MagicCode: MagicMain,
			Checksum: bech32.Original}},
		{LayoutUniform, "tx1:yqqq-qqqq-qqqq-ksvh-26", LocationData{
			HRP: "tx", TxRef: "tx1-yqqq-qqqq-qqqq-ksvh-26", MagicCode: MagicMainExtended,
			Extended: true, Checksum: bech32.Original}},
		{LayoutUniform, " txtest1-8qq2-xzpq-q2pq-d7yu-l3 ", LocationData{
			HRP: "txtest", TxRef: "txtest1-8qq2-xzpq-q2pq-d7yu-l3", BlockHeight: 1152000,
			TransactionPosition: 1, TxoIndex: 42, MagicCode: MagicTestExtended,
			Network: Testnet, Extended: true, Checksum: bech32.Modern}},
	}
	for _, tt := range tests {
		ld, err := newCodec(t, tt.l).Decode(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, ld, tt.in)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, l := range []Layout{LayoutLegacy, LayoutUniform} {
		c := newCodec(t, l)
		for _, n := range []Network{Mainnet, Testnet} {
			for i := 0; i < 1000; i++ {
				ext := i%2 == 1
				v := Lookup(l, n, ext)
				p := Params{
					Network:             n,
					BlockHeight:         frand.Intn(v.Limit(FieldHeight) + 1),
					TransactionPosition: frand.Intn(v.Limit(FieldPosition) + 1),
					ForceExtended:       ext,
				}
				if ext {
					p.TxoIndex = frand.Intn(v.Limit(FieldIndex) + 1)
				}
				require.Equal(t, v, c.Variant(p))
				s, err := c.Encode(p)
				require.NoError(t, err)
				require.LessOrEqual(t, len(s), c.MaxLength(len(n.DefaultHRP())))
				ld, err := c.Decode(s)
				require.NoError(t, err)
				require.Equal(t, s, ld.TxRef)
				require.Equal(t, n.DefaultHRP(), ld.HRP)
				require.Equal(t, p.BlockHeight, ld.BlockHeight)
				require.Equal(t, p.TransactionPosition, ld.TransactionPosition)
				require.Equal(t, p.TxoIndex, ld.TxoIndex)
				require.Equal(t, v.Magic, ld.MagicCode)
				require.Equal(t, n, ld.Network)
				require.Equal(t, ext, ld.Extended)
				require.Equal(t, bech32.Modern, ld.Checksum)
			}
		}
	}
}

func TestExtendedSelection(t *testing.T) {
	c := newCodec(t, LayoutUniform)
	std, err := c.EncodeMain(10, 2, 0, false)
	require.NoError(t, err)
	forced, err := c.EncodeMain(10, 2, 0, true)
	require.NoError(t, err)
	indexed, err := c.EncodeMain(10, 2, 1, false)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(std, "tx1-r"))
	require.True(t, strings.HasPrefix(forced, "tx1-y"))
	require.True(t, strings.HasPrefix(indexed, "tx1-y"))
	require.Len(t, forced, len(indexed))
	require.Greater(t, len(forced), len(std))
	ld, err := c.Decode(forced)
	require.NoError(t, err)
	require.True(t, ld.Extended)
	require.Zero(t, ld.TxoIndex)
	test, err := c.EncodeTest(10, 2, 0, false)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(test, "txtest1-x"))
}

func TestEncodeRange(t *testing.T) {
	c := newCodec(t, LayoutLegacy)
	big := uint8(32)
	tests := []struct {
		p     Params
		field FieldID
	}{
		{Params{BlockHeight: -1}, FieldHeight},
		{Params{BlockHeight: 0x200000}, FieldHeight},
		{Params{TransactionPosition: 0x2000}, FieldPosition},
		{Params{TxoIndex: 0x2000}, FieldIndex},
		{Params{TxoIndex: -1}, FieldIndex},
		{Params{MagicCode: &big}, FieldMagic},
	}
	for _, tt := range tests {
		_, err := c.Encode(tt.p)
		var re ErrRange
		require.ErrorAs(t, err, &re)
		require.Equal(t, tt.field, re.Field)
		require.Equal(t, bech32.KindValueRange, bech32.KindOf(err))
	}
	// testnet widths are larger under the legacy layout
	_, err := c.EncodeTest(0x200000, 0x2000, 0, false)
	require.NoError(t, err)
	_, err = c.Encode(Params{Network: Network(9)})
	require.Equal(t, bech32.KindArgument, bech32.KindOf(err))
}

func TestEncodeCustomTagAndMagic(t *testing.T) {
	c := newCodec(t, LayoutUniform)
	magic := uint8(0x0a)
	s, err := c.Encode(Params{HRP: "XYZ", MagicCode: &magic, BlockHeight: 7, TransactionPosition: 8})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(s, "xyz1-2"))
	ld, err := c.Decode(s)
	require.NoError(t, err)
	require.Equal(t, "xyz", ld.HRP)
	require.Equal(t, magic, ld.MagicCode)
	require.Equal(t, 7, ld.BlockHeight)
	require.Equal(t, 8, ld.TransactionPosition)

	// a '1' inside the human readable part survives stripping
	s, err = c.Encode(Params{HRP: "tx1a", BlockHeight: 7})
	require.NoError(t, err)
	ld, err = c.Decode(s)
	require.NoError(t, err)
	require.Equal(t, "tx1a", ld.HRP)

	_, err = c.Encode(Params{HRP: strings.Repeat("a", 84)})
	require.Equal(t, bech32.KindLength, bech32.KindOf(err))
}

// Human readable parts that Decode would strip characters from can not be
// read back, so Encode refuses them.
func TestEncodeUnreadableHRP(t *testing.T) {
	c := newCodec(t, LayoutUniform)
	for _, hrp := range []string{"btc", "bc", "tx-main", "BTC", "t x", "tb"} {
		_, err := c.Encode(Params{HRP: hrp, BlockHeight: 7})
		require.Equal(t, ErrHRP(hrp), err, hrp)
		require.Equal(t, bech32.KindFormat, bech32.KindOf(err))
	}
}

func TestVariantTableUnchangedByCallers(t *testing.T) {
	c := newCodec(t, LayoutLegacy)
	v := Lookup(LayoutLegacy, Mainnet, false)
	v.Magic = 9
	v.Groups = 3
	v.Fields[2].Width = 1
	pv := c.Variant(Params{})
	pv.Fields[0].Offset = 7
	s, err := c.EncodeMain(466793, 2205, 0, false)
	require.NoError(t, err)
	require.Equal(t, "tx1-rjk0-u5ng-qwq9-76", s)
	fresh := Lookup(LayoutLegacy, Mainnet, false)
	require.Equal(t, uint8(MagicMain), fresh.Magic)
	require.Equal(t, legacyMain, fresh.Fields)
	require.Nil(t, Lookup(LayoutLegacy, Network(9), false))
}

func TestRestoreHRP(t *testing.T) {
	tests := []struct {
		l   Layout
		in  string
		hrp string
	}{
		{LayoutLegacy, "rjk0-u5ng-4jsf-mc", "tx"},
		{LayoutLegacy, "RJK0-U5NG-4JSF-MC", "tx"},
		{LayoutUniform, "rjk0-uqay-z9l7-m9m", "tx"},
		{LayoutUniform, "8qq2-xzpq-q2pq-d7yu-l3", "txtest"},
	}
	for _, tt := range tests {
		ld, err := newCodec(t, tt.l).Decode(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.hrp, ld.HRP)
		require.True(t, strings.HasPrefix(ld.TxRef, tt.hrp+"1-"))
	}
	// the length has to match exactly
	require.Equal(t, "rjk0u5ng4jsfm", restoreHRP(LayoutLegacy, "rjk0u5ng4jsfm"))
	// and so does the first character
	require.Equal(t, "qjk0u5ng4jsfmc", restoreHRP(LayoutLegacy, "qjk0u5ng4jsfmc"))
	// a legacy length is not restored by the uniform codec
	require.Equal(t, "rjk0u5ng4jsfmc", restoreHRP(LayoutUniform, "rjk0u5ng4jsfmc"))
}

func TestDecodeErrors(t *testing.T) {
	legacy, uniform := newCodec(t, LayoutLegacy), newCodec(t, LayoutUniform)
	tests := []struct {
		c    *Codec
		in   string
		kind bech32.Kind
		err  error
	}{
		{legacy, "", bech32.KindArgument, ErrEmpty{}},
		{legacy, "---", bech32.KindArgument, ErrEmpty{}},
		{legacy, "tx1-rjk0-u5ng-4jsf-mq", bech32.KindChecksum, nil},
		{legacy, "tx1-rjk0-u5ng-4jsg-mc", bech32.KindChecksum, nil},
		{legacy, "tx1-rjk1-u5ng-4jsf-mc", bech32.KindChecksum, nil},
		{legacy, "tx1-rjk", bech32.KindLength, nil},
		{legacy, "tx1yqqqqqqqqqg7eej8n", bech32.KindFormat, ErrReserved(1)},
		{uniform, "tx1rpqqqqqqqn5va6f", bech32.KindFormat, ErrVersion(1)},
		{uniform, "tx1rqqqqqqqqq8xfeqj", bech32.KindFormat,
			ErrUnknownFormat{Layout: LayoutUniform, Groups: 10}},
		{uniform, "tx1-rjk0-u5ng-qwq9-76", bech32.KindFormat,
			ErrUnknownFormat{Layout: LayoutUniform, Groups: 8}},
		{legacy, "tx1-rjk0-uqay-z9l7-m9m", bech32.KindFormat,
			ErrUnknownFormat{Layout: LayoutLegacy, Groups: 9}},
	}
	for _, tt := range tests {
		ld, err := tt.c.Decode(tt.in)
		require.Error(t, err, tt.in)
		require.Equal(t, LocationData{}, ld)
		require.Equal(t, tt.kind, bech32.KindOf(err), "%s: %v", tt.in, err)
		if tt.err != nil {
			require.Equal(t, tt.err, err, tt.in)
		}
	}
}

func TestNewUnknownLayout(t *testing.T) {
	_, err := New(Layout(0))
	require.Equal(t, bech32.KindArgument, bech32.KindOf(err))
	l, err := ParseLayout("legacy")
	require.NoError(t, err)
	require.Equal(t, LayoutLegacy, l)
	_, err = ParseLayout("modern")
	require.Equal(t, ErrLayout("modern"), err)
	n, err := ParseNetwork("testnet")
	require.NoError(t, err)
	require.Equal(t, Testnet, n)
}

func TestPretty(t *testing.T) {
	require.Equal(t, "tx1-rjk0-u5ng-4jsf-mc", Pretty("tx1rjk0u5ng4jsfmc", 2))
	require.Equal(t, "tx1-rjk0-u5ng-4jsf", Pretty("tx1rjk0u5ng4jsf", 2))
	require.Equal(t, "tx1", Pretty("tx1", 2))
	require.Equal(t, len("tx1-rjk0-u5ng-4jsf-mc"), PrettyLength(2, 14))
	require.Equal(t, "tx1rjk0u5ng4jsfmc", Strip(Pretty("tx1rjk0u5ng4jsfmc", 2)))
	require.Equal(t, PrettyLength(6, 19), newCodec(t, LayoutLegacy).MaxLength(6))
}
