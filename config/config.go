// Package config loads the settings of the txref command from the
// environment.
package config

import (
	"fmt"
	"io"

	"go-simpler.org/env"

	"txref.mleku.dev/bech32"
	"txref.mleku.dev/config/keyvalue"
	"txref.mleku.dev/txref"
)

// C is the configuration of the txref command.
type C struct {
	AppName  string `env:"APP_NAME" default:"txref"`
	LogLevel string `env:"LOG_LEVEL" default:"info" usage:"debug level: off fatal error warn info debug trace"`
	Layout   string `env:"TXREF_LAYOUT" default:"uniform" usage:"txref bit layout: [uniform|legacy]"`
	Checksum string `env:"TXREF_CHECKSUM" default:"bech32m" usage:"checksum written by encode: [bech32m|bech32]"`
	Network  string `env:"TXREF_NETWORK" default:"main" usage:"default network for encode: [main|test]"`
	Format   string `env:"TXREF_FORMAT" default:"text" usage:"output format of decoded references: [text|json|yaml]"`
}

// ErrSetting is returned for a configuration value that is not one of the
// allowed choices.
type ErrSetting struct{ Key, Value string }

func (err ErrSetting) Error() string {
	return fmt.Sprintf("invalid value %q for %s", err.Value, err.Key)
}

// New loads the configuration from the process environment.
func New() (c *C, err error) { return Load(nil) }

// Load reads the configuration from src, the process environment when src is
// nil, and checks the choice settings.
func Load(src env.Source) (c *C, err error) {
	c = &C{}
	var opts *env.Options
	if src != nil {
		opts = &env.Options{Source: src}
	}
	if err = env.Load(c, opts); chk.D(err) {
		return
	}
	if _, err = c.Codec(); chk.D(err) {
		return
	}
	if _, err = c.NetworkID(); chk.D(err) {
		return
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		err = ErrSetting{"TXREF_FORMAT", c.Format}
		return
	}
	log.D.F("loaded configuration %+v", *c)
	return
}

// Codec builds the txref codec the configuration describes.
func (c *C) Codec() (codec *txref.Codec, err error) {
	var l txref.Layout
	if l, err = txref.ParseLayout(c.Layout); chk.D(err) {
		return
	}
	var k bech32.Constant
	switch c.Checksum {
	case "bech32m":
		k = bech32.Bech32m
	case "bech32":
		k = bech32.Bech32
	default:
		err = ErrSetting{"TXREF_CHECKSUM", c.Checksum}
		return
	}
	return txref.New(l, txref.WithChecksum(k))
}

// NetworkID is the configured default network.
func (c *C) NetworkID() (txref.Network, error) { return txref.ParseNetwork(c.Network) }

// Usage writes the list of environment variables and their defaults.
func (c *C) Usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\nenvironment variables that configure %s\n\n", c.AppName)
	env.Usage(c, w, nil)
}

// PrintEnv writes the configuration as a shell script that can be edited and
// sourced.
func (c *C) PrintEnv(w io.Writer) { keyvalue.PrintEnv(*c, w) }
