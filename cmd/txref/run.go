package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/templexxx/xhex"
	"gopkg.in/yaml.v3"

	"txref.mleku.dev/bech32"
	"txref.mleku.dev/config"
	"txref.mleku.dev/txref"
)

func run(cfg *config.C, cmd any, w io.Writer) (err error) {
	switch c := cmd.(type) {
	case *EncodeCmd:
		return encode(cfg, c, w)
	case *DecodeCmd:
		return decode(cfg, c, w)
	case *StripCmd:
		_, err = fmt.Fprintln(w, txref.Strip(strings.Join(c.Text, " ")))
	case *Bech32EncodeCmd:
		return bech32Encode(c, w)
	case *Bech32DecodeCmd:
		return bech32Decode(c, w)
	case *EnvCmd:
		cfg.PrintEnv(w)
	default:
		err = errorf.E("unknown command %T", cmd)
	}
	return
}

func encode(cfg *config.C, c *EncodeCmd, w io.Writer) (err error) {
	var codec *txref.Codec
	if codec, err = cfg.Codec(); chk.D(err) {
		return
	}
	network := cfg.Network
	if c.Network != "" {
		network = c.Network
	}
	p := txref.Params{
		HRP:                 c.HRP,
		BlockHeight:         c.Height,
		TransactionPosition: c.Position,
		TxoIndex:            c.Index,
		ForceExtended:       c.Extended,
	}
	if p.Network, err = txref.ParseNetwork(network); chk.D(err) {
		return
	}
	if c.Magic >= 0 {
		if c.Magic > txref.MaxMagicCode {
			return txref.ErrRange{Field: txref.FieldMagic, Value: c.Magic, Max: txref.MaxMagicCode}
		}
		magic := uint8(c.Magic)
		p.MagicCode = &magic
	}
	var s string
	if s, err = codec.Encode(p); chk.D(err) {
		return
	}
	_, err = fmt.Fprintln(w, s)
	return
}

func decode(cfg *config.C, c *DecodeCmd, w io.Writer) (err error) {
	var codec *txref.Codec
	if codec, err = cfg.Codec(); chk.D(err) {
		return
	}
	out := make([]txref.LocationData, 0, len(c.Refs))
	for _, ref := range c.Refs {
		var ld txref.LocationData
		if ld, err = codec.Decode(ref); chk.D(err) {
			return
		}
		out = append(out, ld)
	}
	switch cfg.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(out); chk.D(err) {
			return
		}
		return enc.Close()
	}
	for _, ld := range out {
		if _, err = fmt.Fprintf(w, "%s %s height=%d position=%d index=%d magic=%d network=%s checksum=%s\n",
			ld.TxRef, kind(ld), ld.BlockHeight, ld.TransactionPosition, ld.TxoIndex,
			ld.MagicCode, ld.Network, ld.Checksum); chk.D(err) {
			return
		}
	}
	return
}

func kind(ld txref.LocationData) string {
	if ld.Extended {
		return "extended"
	}
	return "standard"
}

func bech32Encode(c *Bech32EncodeCmd, w io.Writer) (err error) {
	var data []byte
	if c.Hex != "" {
		if len(c.Values) > 0 {
			return errorf.D("give either 5-bit values or --hex, not both")
		}
		if data, err = hexToGroups(c.Hex); chk.D(err) {
			return
		}
	} else {
		data = make([]byte, len(c.Values))
		for i, v := range c.Values {
			if v < 0 || v > 31 {
				return bech32.ErrDataValue(v)
			}
			data[i] = byte(v)
		}
	}
	k := bech32.Bech32m
	if c.Original {
		k = bech32.Bech32
	}
	var s string
	if s, err = bech32.EncodeWith(c.HRP, data, k); chk.D(err) {
		return
	}
	_, err = fmt.Fprintln(w, s)
	return
}

// hexToGroups reads hex bytes and regroups them into zero padded 5-bit values.
func hexToGroups(h string) (groups []byte, err error) {
	if len(h)%2 != 0 {
		return nil, errorf.D("odd length hex payload %q", h)
	}
	b := make([]byte, len(h)/2)
	if err = xhex.Decode(b, []byte(h)); chk.D(err) {
		return
	}
	return bech32.ConvertBits(b, 8, 5, true)
}

func bech32Decode(c *Bech32DecodeCmd, w io.Writer) (err error) {
	var d bech32.Decoded
	if d, err = bech32.DecodeStrict(c.String); chk.D(err) {
		return
	}
	if c.Hex {
		var b []byte
		if b, err = bech32.ConvertBits(d.Data, 5, 8, false); chk.D(err) {
			return
		}
		h := make([]byte, len(b)*2)
		xhex.Encode(h, b)
		_, err = fmt.Fprintf(w, "%s %s %s\n", d.HRP, d.Variant, h)
		return
	}
	values := make([]string, len(d.Data))
	for i, v := range d.Data {
		values[i] = fmt.Sprint(v)
	}
	_, err = fmt.Fprintf(w, "%s %s [%s]\n", d.HRP, d.Variant, strings.Join(values, " "))
	return
}
