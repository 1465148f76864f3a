package wpspin

import "fmt"

const fragmentLength = 4

// A MACFragment holds the four least significant nibbles of a BSSID. Index
// 0 is the rightmost character.
type MACFragment [fragmentLength]uint8

// A SerialFragment holds the four least significant digits of a serial
// number, indexed the same way as a MACFragment. The digits are parsed as
// hexadecimal so a letter yields a value of 10 or more.
type SerialFragment [fragmentLength]uint8

// nibble converts a single hexadecimal character. Anything else is 0.
func nibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10 //nolint:gomnd
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10 //nolint:gomnd
	default:
		return 0
	}
}

func suffix(s string) [fragmentLength]uint8 {
	var f [fragmentLength]uint8

	for i := range f {
		f[i] = nibble(s[len(s)-1-i])
	}

	return f
}

// Extract returns the fragments of mac and serial consulted by the PIN
// algorithm. Only the last four characters of each string are read and no
// delimiters are stripped from mac.
func Extract(mac, serial string) (MACFragment, SerialFragment, error) {
	if len(mac) < fragmentLength {
		return MACFragment{}, SerialFragment{}, fmt.Errorf("mac %q: %w", mac, ErrInputTooShort)
	}

	if len(serial) < fragmentLength {
		return MACFragment{}, SerialFragment{}, fmt.Errorf("serial %q: %w", serial, ErrInputTooShort)
	}

	return MACFragment(suffix(mac)), SerialFragment(suffix(serial)), nil
}
