package wpspin_test

import (
	"testing"

	"github.com/bodgit/wpspin"
)

func FuzzCompute(f *testing.F) {
	f.Add("010203040506", "1234GB1234567")
	f.Add("0506", "4567")
	f.Add("FFFF", "ABCD")
	f.Add("zz:zz", "\xff\xff\xff\xff")

	f.Fuzz(func(t *testing.T, mac, serial string) {
		pin, err := wpspin.Compute(mac, serial)
		if len(mac) < 4 || len(serial) < 4 {
			if err == nil {
				t.Fatalf("expected error for %q %q", mac, serial)
			}

			return
		}

		if err != nil {
			t.Fatal(err)
		}

		if !pin.Valid() {
			t.Fatalf("invalid pin %s for %q %q", pin, mac, serial)
		}

		if err := wpspin.Verify(pin.String()); err != nil {
			t.Fatal(err)
		}

		suffix, err := wpspin.Compute(mac[len(mac)-4:], serial[len(serial)-4:])
		if err != nil {
			t.Fatal(err)
		}

		if suffix != pin {
			t.Fatalf("pin %s differs from suffix pin %s", pin, suffix)
		}
	})
}
