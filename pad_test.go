package otp

import "testing"

func TestXORSelfInverse(t *testing.T) {
	e, err := New("0123456789ABCDEFGHIJKLMNOPQRSTUV")
	if err != nil {
		t.Fatal(err)
	}
	n := len(e.alphabet)
	for p := 0; p < n; p++ {
		for k := 0; k < n; k++ {
			c := e.pair(p, k, encrypt)
			if c < 0 || c >= n {
				t.Fatalf("pair(%d, %d) = %d out of range", p, k, c)
			}
			if got := e.pair(c, k, decrypt); got != p {
				t.Errorf("(%d xor %d) xor %d = %d", p, k, k, got)
			}
		}
	}
}

func TestModularInverse(t *testing.T) {
	for _, alphabet := range []string{"ABC", "0123456789", DefaultAlphabet} {
		e, err := New(alphabet)
		if err != nil {
			t.Fatal(err)
		}
		n := len(e.alphabet)
		for p := 0; p < n; p++ {
			for k := 0; k < n; k++ {
				c := e.pair(p, k, encrypt)
				if c < 0 || c >= n {
					t.Fatalf("pair(%d, %d) = %d out of range", p, k, c)
				}
				if got := e.pair(c, k, decrypt); got != p {
					t.Errorf("n=%d: ((%d+%d) mod n - %d) mod n = %d", n, p, k, k, got)
				}
			}
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct{ a, n, want int }{
		{5, 3, 2},
		{0, 3, 0},
		{-1, 27, 26},
		{-27, 27, 0},
		{-28, 27, 26},
	}
	for _, tt := range tests {
		if got := mod(tt.a, tt.n); got != tt.want {
			t.Errorf("mod(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}
