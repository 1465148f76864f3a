package wpspin

import (
	"errors"
	"strings"
)

var (
	// ErrInputTooShort is returned when the BSSID or serial number has
	// fewer than four characters.
	ErrInputTooShort = errors.New("input too short")
	// ErrInvalidMACFormat is returned by CheckMAC when the BSSID contains
	// delimiter characters.
	ErrInvalidMACFormat = errors.New("invalid mac format")
	// ErrInvalidPIN is returned by Verify when the PIN is not eight decimal
	// digits.
	ErrInvalidPIN = errors.New("invalid pin")
	// ErrBadChecksum is returned by Verify when the final digit does not
	// match the checksum of the first seven.
	ErrBadChecksum = errors.New("bad pin checksum")
)

const macDelimiters = ":-"

// CheckMAC reports whether mac is in the undelimited form expected by
// Compute. Compute itself does not call it; a delimited address would
// silently contribute a delimiter as one of its nibbles.
func CheckMAC(mac string) error {
	if strings.ContainsAny(mac, macDelimiters) {
		return ErrInvalidMACFormat
	}

	return nil
}
