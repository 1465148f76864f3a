package checksum

import "hash"

const (
	// BlockSize is the preferred block size.
	BlockSize = 1
	// Size is the size of the checksum in bytes.
	Size = 1

	base   = 10
	weight = 3
)

// Digit returns the WPS check digit for the seven digit pin. Digits are
// consumed in pairs from the least significant end, the first of each
// pair weighted by three.
func Digit(pin int) int {
	accum := 0

	for pin != 0 {
		accum += weight * (pin % base)
		pin /= base
		accum += pin % base
		pin /= base
	}

	return (base - accum%base) % base
}

// digest accumulates the digits in odd and even positions counted from the
// start of the input. Which of the two gets the weight of three depends on
// the total length and is only decided in Sum.
type digest struct {
	sums [2]int
	n    int
}

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() { d.sums, d.n = [2]int{}, 0 }

func (d *digest) Size() int { return Size }

func (d *digest) Sum(data []byte) []byte {
	// The last digit written is weighted
	last := (d.n + 1) % 2
	accum := weight*d.sums[last] + d.sums[1-last]

	return append(data, byte('0'+(base-accum%base)%base))
}

func (d *digest) Write(p []byte) (int, error) {
	for _, c := range p {
		if c < '0' || c > '9' {
			continue
		}

		d.sums[d.n%2] += int(c - '0')
		d.n++
	}

	return len(p), nil
}

// New returns a new hash.Hash computing the check digit of a string of
// ASCII decimal digits, most significant first. Any other byte is skipped.
// Sum appends the check digit as an ASCII character.
func New() hash.Hash {
	d := new(digest)
	d.Reset()

	return d
}
