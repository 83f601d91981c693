// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
// Kind and the length and data value errors were added for txref.

package bech32

import (
	"errors"
	"fmt"
)

// Kind classifies a codec error.
type Kind int

const (
	// KindNone is reported for nil and foreign errors.
	KindNone Kind = iota
	// KindArgument is an empty or missing argument.
	KindArgument
	// KindLength is a human readable part or total length out of bounds.
	KindLength
	// KindValueRange is a number or 5-bit value outside its domain.
	KindValueRange
	// KindFormat is a structural problem with the text: separator, case,
	// character range or unrecognised payload size.
	KindFormat
	// KindChecksum is a well formed string whose checksum matches neither
	// constant.
	KindChecksum
)

var kindNames = [...]string{"none", "argument", "length", "value range", "format", "checksum"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinded is implemented by every error type of the codec packages.
type Kinded interface {
	error
	Kind() Kind
}

// KindOf returns the Kind of the first error in err's chain that has one.
func KindOf(err error) Kind {
	var k Kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindNone
}

// ErrMixedCase is returned when the bech32 string has both lower and uppercase
// characters.
type ErrMixedCase struct{}

func (err ErrMixedCase) Error() string {
	return "string not all lowercase or all uppercase"
}

func (err ErrMixedCase) Kind() Kind { return KindFormat }

// ErrInvalidBitGroups is returned when conversion is attempted between byte
// slices using bit-per-element of unsupported value.
type ErrInvalidBitGroups struct{}

func (err ErrInvalidBitGroups) Error() string {
	return "only bit groups between 1 and 8 allowed"
}

func (err ErrInvalidBitGroups) Kind() Kind { return KindArgument }

// ErrInvalidIncompleteGroup is returned when then byte slice used as input has
// data of wrong length.
type ErrInvalidIncompleteGroup struct{}

func (err ErrInvalidIncompleteGroup) Error() string {
	return "invalid incomplete group"
}

func (err ErrInvalidIncompleteGroup) Kind() Kind { return KindFormat }

// ErrInvalidLength is returned when the bech32 string is shorter than 8 or
// longer than 90 characters.
type ErrInvalidLength int

func (err ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid bech32 string length %d", int(err))
}

func (err ErrInvalidLength) Kind() Kind { return KindLength }

// ErrHRPLength is returned when the human readable part is empty or longer
// than MaxHRPLength.
type ErrHRPLength int

func (err ErrHRPLength) Error() string {
	return fmt.Sprintf("invalid human readable part length %d, must be 1 to %d",
		int(err), MaxHRPLength)
}

func (err ErrHRPLength) Kind() Kind { return KindLength }

// ErrCombinedLength is returned by Encode when the human readable part, the
// separator, the data and the checksum together exceed MaxLength.
type ErrCombinedLength int

func (err ErrCombinedLength) Error() string {
	return fmt.Sprintf("encoded length %d exceeds %d", int(err), MaxLength)
}

func (err ErrCombinedLength) Kind() Kind { return KindLength }

// ErrInvalidCharacter is returned when the bech32 string has a character
// outside the printable ASCII range 33 to 126.
type ErrInvalidCharacter rune

func (err ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character in string: '%c'", rune(err))
}

func (err ErrInvalidCharacter) Kind() Kind { return KindFormat }

// ErrInvalidSeparatorIndex is returned when the separator character '1' is
// missing or in an invalid position in the bech32 string.
type ErrInvalidSeparatorIndex int

func (err ErrInvalidSeparatorIndex) Error() string {
	return fmt.Sprintf("invalid separator index %d", int(err))
}

func (err ErrInvalidSeparatorIndex) Kind() Kind { return KindFormat }

// ErrNonCharsetChar is returned when a character outside of the specific
// bech32 charset is used in the data part.
type ErrNonCharsetChar rune

func (err ErrNonCharsetChar) Error() string {
	return fmt.Sprintf("invalid character not part of charset: '%c'", rune(err))
}

func (err ErrNonCharsetChar) Kind() Kind { return KindValueRange }

// ErrInvalidChecksum is returned when the extracted checksum of the string
// is different than what was expected. Both the original version, as well as
// the new bech32m checksum are given.
type ErrInvalidChecksum struct {
	Expected  string
	ExpectedM string
	Actual    string
}

func (err ErrInvalidChecksum) Error() string {
	return fmt.Sprintf("invalid checksum (expected (bech32=%v, "+
		"bech32m=%v), got %v)", err.Expected, err.ExpectedM, err.Actual)
}

func (err ErrInvalidChecksum) Kind() Kind { return KindChecksum }

// ErrInvalidDataByte is returned when a byte outside the range required for
// conversion into a string was found.
type ErrInvalidDataByte byte

func (err ErrInvalidDataByte) Error() string {
	return fmt.Sprintf("invalid data byte: %v", byte(err))
}

func (err ErrInvalidDataByte) Kind() Kind { return KindValueRange }

// ErrDataValue is returned for a 5-bit value given as an int that is outside
// 0 to 31. It carries the value as given.
type ErrDataValue int

func (err ErrDataValue) Error() string {
	return fmt.Sprintf("data value %d out of range 0 to 31", int(err))
}

func (err ErrDataValue) Kind() Kind { return KindValueRange }
