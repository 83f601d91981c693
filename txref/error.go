package txref

import (
	"fmt"

	"txref.mleku.dev/bech32"
)

// ErrRange is returned by Encode when a value does not fit its field.
type ErrRange struct {
	Field FieldID
	Value int
	Max   int
}

func (err ErrRange) Error() string {
	return fmt.Sprintf("%s %d out of range 0 to %d", err.Field, err.Value, err.Max)
}

func (err ErrRange) Kind() bech32.Kind { return bech32.KindValueRange }

// ErrUnknownFormat is returned by Decode when the payload length matches no
// variant of the codec's layout.
type ErrUnknownFormat struct {
	Layout Layout
	Groups int
}

func (err ErrUnknownFormat) Error() string {
	return fmt.Sprintf("no %s txref has a %d group payload", err.Layout, err.Groups)
}

func (err ErrUnknownFormat) Kind() bech32.Kind { return bech32.KindFormat }

// ErrVersion is returned by Decode for a non-zero version bit.
type ErrVersion uint32

func (err ErrVersion) Error() string {
	return fmt.Sprintf("unsupported txref version %d", uint32(err))
}

func (err ErrVersion) Kind() bech32.Kind { return bech32.KindFormat }

// ErrReserved is returned by Decode when reserved bits are set.
type ErrReserved uint32

func (err ErrReserved) Error() string {
	return fmt.Sprintf("reserved bits set: %b", uint32(err))
}

func (err ErrReserved) Kind() bech32.Kind { return bech32.KindFormat }

// ErrHRP is returned by Encode for a human readable part with characters that
// Decode would strip.
type ErrHRP string

func (err ErrHRP) Error() string {
	return fmt.Sprintf("human readable part %q has characters outside the bech32 charset", string(err))
}

func (err ErrHRP) Kind() bech32.Kind { return bech32.KindFormat }

// ErrEmpty is returned by Decode when nothing is left after stripping.
type ErrEmpty struct{}

func (err ErrEmpty) Error() string { return "no txref characters in input" }

func (err ErrEmpty) Kind() bech32.Kind { return bech32.KindArgument }

// ErrLayout is returned for an unknown layout.
type ErrLayout string

func (err ErrLayout) Error() string { return fmt.Sprintf("unknown txref layout %q", string(err)) }

func (err ErrLayout) Kind() bech32.Kind { return bech32.KindArgument }

// ErrNetwork is returned for an unknown network name.
type ErrNetwork string

func (err ErrNetwork) Error() string { return fmt.Sprintf("unknown network %q", string(err)) }

func (err ErrNetwork) Kind() bech32.Kind { return bech32.KindArgument }
