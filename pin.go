// Package wpspin derives the default WPS PIN of a family of Arcadyan built
// Belkin routers from the BSSID and serial number, both of which are
// broadcast in the clear.
package wpspin

import (
	"bytes"
	"fmt"

	"github.com/bodgit/wpspin/internal/checksum"
)

const (
	pinLength = 8
	pinBase   = 10

	pinModulus = seedModulus * pinBase
)

// A PIN is an eight digit WPS PIN, the seven digit seed followed by its
// check digit.
type PIN uint32

// String returns the PIN zero-padded to eight digits.
func (p PIN) String() string {
	return fmt.Sprintf("%0*d", pinLength, uint32(p))
}

// Seed returns the first seven digits of the PIN.
func (p PIN) Seed() int {
	return int(p) / pinBase
}

// Checksum returns the final digit of the PIN.
func (p PIN) Checksum() int {
	return int(p) % pinBase
}

// Valid reports whether the final digit of the PIN is the check digit of
// the first seven.
func (p PIN) Valid() bool {
	return p < pinModulus && checksum.Digit(p.Seed()) == p.Checksum()
}

func newPIN(seed int32) PIN {
	return PIN(seed)*pinBase + PIN(checksum.Digit(int(seed)))
}

// Compute returns the default PIN for the device with the given BSSID and
// serial number. Only the last four characters of each are used. mac must
// not contain delimiters, see CheckMAC; characters that are not
// hexadecimal digits are read as 0 in either argument.
func Compute(mac, serial string) (PIN, error) {
	m, s, err := Extract(mac, serial)
	if err != nil {
		return 0, err
	}

	return newPIN(Seed(m, s)), nil
}

// Verify checks that pin is eight decimal digits ending in the correct
// check digit.
func Verify(pin string) error {
	if len(pin) != pinLength {
		return fmt.Errorf("%q: %w", pin, ErrInvalidPIN)
	}

	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return fmt.Errorf("%q: %w", pin, ErrInvalidPIN)
		}
	}

	h := checksum.New()
	_, _ = h.Write([]byte(pin[:pinLength-1]))

	if !bytes.Equal(h.Sum(nil), []byte(pin[pinLength-1:])) {
		return fmt.Errorf("%q: %w", pin, ErrBadChecksum)
	}

	return nil
}
