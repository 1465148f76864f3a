package checksum_test

import (
	"fmt"
	"testing"

	"github.com/bodgit/wpspin/internal/checksum"
	"github.com/stretchr/testify/assert"
)

const seeds = 10000000

// reference weights the seven digits 3, 1, 3, 1, 3, 1, 3 from the most
// significant end.
func reference(pin int) int {
	var digits [7]int

	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = pin % 10
		pin /= 10
	}

	sum := 0

	for i, d := range digits {
		if i%2 == 0 {
			sum += 3 * d
		} else {
			sum += d
		}
	}

	return (10 - sum%10) % 10
}

func TestDigit(t *testing.T) {
	t.Parallel()

	tables := map[int]int{
		0:       0,
		1234567: 0,
		6031709: 4,
		114240:  2,
		9999999: 5,
	}

	for pin, want := range tables {
		assert.Equal(t, want, checksum.Digit(pin), pin)
	}
}

func TestDigitExhaustive(t *testing.T) {
	t.Parallel()

	for pin := 0; pin < seeds; pin++ {
		if got, want := checksum.Digit(pin), reference(pin); got != want {
			t.Fatalf("Digit(%d) = %d, want %d", pin, got, want)
		}
	}
}

func TestHash(t *testing.T) {
	t.Parallel()

	h := checksum.New()

	assert.Equal(t, 1, h.Size())
	assert.Equal(t, 1, h.BlockSize())

	if _, err := h.Write([]byte("1234567")); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, []byte("0"), h.Sum(nil))
	assert.Equal(t, []byte("12345670"), h.Sum([]byte("1234567")))

	h.Reset()

	if _, err := h.Write([]byte("603")); err != nil {
		t.Fatal(err)
	}

	if _, err := h.Write([]byte("1709")); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, []byte("4"), h.Sum(nil))

	h.Reset()

	assert.Equal(t, []byte("0"), h.Sum(nil))
}

func TestHashSkipsNonDigits(t *testing.T) {
	t.Parallel()

	h := checksum.New()

	n, err := h.Write([]byte("12a34-567"))
	assert.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, []byte("0"), h.Sum(nil))

	h.Reset()

	n, err = h.Write([]byte("x:y"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("0"), h.Sum(nil))
}

func TestHashMatchesDigit(t *testing.T) {
	t.Parallel()

	h := checksum.New()

	for pin := 0; pin < seeds; pin += 9973 {
		h.Reset()

		if _, err := fmt.Fprintf(h, "%07d", pin); err != nil {
			t.Fatal(err)
		}

		if got, want := h.Sum(nil), []byte{byte('0' + checksum.Digit(pin))}; string(got) != string(want) {
			t.Fatalf("Sum for %07d = %q, want %q", pin, got, want)
		}
	}
}
