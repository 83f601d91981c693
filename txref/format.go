package txref

import (
	"strings"

	"txref.mleku.dev/bech32"
)

// GroupSize is the number of data characters between dashes.
const GroupSize = 4

// Pretty inserts dashes into a raw reference: one after the human readable
// part and separator, then one before every GroupSize characters of the data
// part. Dashes carry no meaning and are dropped again by Strip.
func Pretty(raw string, hrpLen int) string {
	start := hrpLen + 1
	if start >= len(raw) {
		return raw
	}
	var sb strings.Builder
	sb.Grow(PrettyLength(hrpLen, len(raw)-start))
	sb.WriteString(raw[:start])
	for i := start; i < len(raw); i += GroupSize {
		sb.WriteByte('-')
		sb.WriteString(raw[i:min(i+GroupSize, len(raw))])
	}
	return sb.String()
}

// PrettyLength is the length of Pretty's output for a human readable part of
// hrpLen characters and a data part, checksum included, of dataLen characters.
func PrettyLength(hrpLen, dataLen int) int {
	return hrpLen + 1 + dataLen + (dataLen+GroupSize-1)/GroupSize
}

// Strip removes everything that can not be part of a reference.
func Strip(s string) string { return bech32.StripUnknownChars(s) }

// restoreHRP puts back the default human readable part of a reference that
// was written without one. It fires only when the string has no separator,
// its length is exactly that of a variant's data part and its first character
// is that variant's magic character.
func restoreHRP(l Layout, clean string) string {
	if len(clean) == 0 || strings.IndexByte(clean, bech32.Separator) >= 0 {
		return clean
	}
	first := clean[0]
	upper := first >= 'A' && first <= 'Z'
	if upper {
		first += 'a' - 'A'
	}
	for _, v := range variants {
		if v.Layout != l || len(clean) != v.Groups+bech32.ChecksumLength ||
			first != v.magicChar() {
			continue
		}
		hrp := v.Network.DefaultHRP()
		if upper {
			hrp = strings.ToUpper(hrp)
		}
		log.D.F("restored human readable part %q for %s", hrp, v)
		return hrp + string(bech32.Separator) + clean
	}
	return clean
}
