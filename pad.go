package otp

type direction int

const (
	encrypt direction = iota
	decrypt
)

// oneTimePad combines text with key position by position. It is the single
// transform behind Encrypt and Decrypt and stops at the first invalid symbol.
// len(key) must be at least len(text).
func (e *Engine) oneTimePad(text, key []rune, dir direction) ([]rune, error) {
	out := make([]rune, len(text))
	for i, r := range text {
		p, ok := e.index[r]
		if !ok {
			return nil, &InvalidSymbolError{Symbol: r, Source: SourceMessage, Position: i}
		}
		k, ok := e.index[key[i]]
		if !ok {
			return nil, &InvalidSymbolError{Symbol: key[i], Source: SourceKey, Position: i}
		}
		c, err := e.SymbolAt(e.pair(p, k, dir))
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// pair combines a text index and a key index according to the engine mode.
func (e *Engine) pair(p, k int, dir direction) int {
	if e.mode == XOR {
		return p ^ k
	}
	n := len(e.alphabet)
	if dir == decrypt {
		return mod(p-k, n)
	}
	return mod(p+k, n)
}

// mod returns a mod n in [0, n) for any sign of a.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
