// Package main is a command line front end for txref references and plain
// bech32 strings.
package main

import (
	"os"

	"github.com/alexflint/go-arg"

	"txref.mleku.dev/config"
	"txref.mleku.dev/lol"
)

type EncodeCmd struct {
	Height   int    `arg:"positional,required" help:"block height"`
	Position int    `arg:"positional,required" help:"position of the transaction in the block"`
	Index    int    `arg:"positional" help:"txo index, leave out for a transaction reference"`
	Extended bool   `arg:"-e,--extended" help:"produce an extended reference even for txo index 0"`
	Network  string `arg:"-n,--network" help:"[main|test] overrides TXREF_NETWORK"`
	HRP      string `arg:"--hrp" help:"human readable part, default tx or txtest"`
	Magic    int    `arg:"--magic" default:"-1" help:"magic code 0-31, default depends on network and size"`
}

type DecodeCmd struct {
	Refs []string `arg:"positional,required" help:"references to decode, dashes and noise are ignored"`
}

type StripCmd struct {
	Text []string `arg:"positional,required" help:"text to strip down to bech32 characters"`
}

type Bech32EncodeCmd struct {
	HRP      string `arg:"positional,required" help:"human readable part"`
	Values   []int  `arg:"positional" help:"5-bit values 0-31"`
	Hex      string `arg:"--hex" help:"payload as hex bytes, regrouped into 5-bit values, in place of VALUES"`
	Original bool   `arg:"--original" help:"use the original bech32 checksum instead of bech32m"`
}

type Bech32DecodeCmd struct {
	String string `arg:"positional,required" help:"bech32 or bech32m string"`
	Hex    bool   `arg:"--hex" help:"print the data part regrouped into bytes, as hex"`
}

type EnvCmd struct{}

var args struct {
	Encode       *EncodeCmd       `arg:"subcommand:encode" help:"encode a block height, transaction position and txo index"`
	Decode       *DecodeCmd       `arg:"subcommand:decode" help:"decode txref references"`
	Strip        *StripCmd        `arg:"subcommand:strip" help:"remove characters that can not be in a reference"`
	Bech32Encode *Bech32EncodeCmd `arg:"subcommand:bech32-encode" help:"encode raw 5-bit values"`
	Bech32Decode *Bech32DecodeCmd `arg:"subcommand:bech32-decode" help:"decode a raw bech32 string"`
	Env          *EnvCmd          `arg:"subcommand:env" help:"print the configuration as a shell script"`
}

func main() {
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.Fail("missing subcommand")
	}
	cfg, err := config.New()
	if chk.E(err) {
		cfg = &config.C{AppName: "txref"}
		cfg.Usage(os.Stderr)
		os.Exit(1)
	}
	lol.SetLogLevel(cfg.LogLevel)
	if err = run(cfg, p.Subcommand(), os.Stdout); chk.E(err) {
		os.Exit(1)
	}
}
