package wpspin

// The key schedule below matches the default PIN derivation found in
// Arcadyan built Belkin firmware.

const (
	nibble0 = iota
	nibble1
	nibble2
	nibble3
)

const (
	keyModulus = 16
	radix      = 16

	seedModulus = 10000000
)

// Seed mixes the fragments into the seven digit seed of a PIN.
//
// Each fragment value is masked to a nibble, so every key and XOR term is
// at most 0xf and the multiply chain stays below 1<<28. int32
// arithmetic never wraps.
func Seed(mac MACFragment, serial SerialFragment) int32 {
	var (
		sn  [fragmentLength]int32
		nic [fragmentLength]int32
	)

	for i := range sn {
		sn[i], nic[i] = int32(serial[i]&0xf), int32(mac[i]&0xf)
	}

	k1 := (sn[nibble2] + sn[nibble3] + nic[nibble0] + nic[nibble1]) % keyModulus
	k2 := (sn[nibble0] + sn[nibble1] + nic[nibble3] + nic[nibble2]) % keyModulus

	pin := k1 ^ sn[nibble1]

	t1 := k1 ^ sn[nibble0]
	t2 := k2 ^ nic[nibble1]

	p1 := nic[nibble0] ^ sn[nibble1] ^ t1
	p2 := k2 ^ nic[nibble0] ^ t2
	p3 := k1 ^ sn[nibble2] ^ k2 ^ nic[nibble2]

	k1 ^= k2

	pin = (pin ^ k1) * radix
	pin = (pin + t1) * radix
	pin = (pin + p1) * radix
	pin = (pin + t2) * radix
	pin = (pin + p2) * radix
	pin = (pin + k1) * radix
	pin += p3

	// The second term is always zero for a non-negative pin
	return (pin % seedModulus) - ((pin%seedModulus)/seedModulus)*k1
}
