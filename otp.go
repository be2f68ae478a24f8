// Package otp implements a one-time pad cipher over a caller defined alphabet.
//
// Alphabets whose size is a power of two combine symbol indexes with XOR,
// every other alphabet uses addition and subtraction modulo its size. Messages
// shorter than the key are padded so every ciphertext is as long as its key.
package otp

import (
	"strings"
)

const (
	// DefaultAlphabet is the uppercase English alphabet followed by a space.
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ "
	// DefaultPad is the pad symbol used when the alphabet contains it.
	DefaultPad = ' '
	// DefaultKeyLength is the size of a generated key when none is requested.
	DefaultKeyLength = 48
)

// Mode is the pairing used to combine a text index with a key index.
type Mode int

const (
	// Modular combines indexes with addition modulo the alphabet size.
	Modular Mode = iota
	// XOR combines indexes with exclusive or. Only used for power of two alphabets.
	XOR
)

func (m Mode) String() string {
	switch m {
	case XOR:
		return "xor"
	case Modular:
		return "modular"
	default:
		return "unknown"
	}
}

// Alphabet is an ordered set of symbols. Order is significant.
type Alphabet []rune

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int { return len(a) }

// IndexOf returns the position of the first occurrence of r, or -1.
func (a Alphabet) IndexOf(r rune) int {
	for i, s := range a {
		if s == r {
			return i
		}
	}
	return -1
}

// Contains reports whether r is a member of this alphabet.
func (a Alphabet) Contains(r rune) bool {
	return a.IndexOf(r) >= 0
}

func (a Alphabet) String() string { return string(a) }

// isPowerOfTwo reports whether n is an exact power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	// Pad is the symbol appended to short messages. Defaults to DefaultPad
	// when the alphabet contains it, otherwise the first alphabet symbol.
	Pad rune
	// Random is the source used by RandomKey. Defaults to CryptoSource.
	Random RandomSource
}

// Engine encrypts and decrypts over a fixed alphabet. An Engine is immutable
// after construction and safe for concurrent use.
type Engine struct {
	alphabet Alphabet
	index    map[rune]int
	mode     Mode
	pad      rune
	random   RandomSource
}

// New returns an Engine for alphabet with default options.
func New(alphabet string) (*Engine, error) {
	return NewWithOptions(alphabet, Options{})
}

// NewWithOptions validates alphabet and returns an Engine. The alphabet must
// hold at least two distinct symbols.
func NewWithOptions(alphabet string, opts Options) (*Engine, error) {
	a := Alphabet(alphabet)
	if len(a) < 2 {
		return nil, ErrAlphabetTooSmall
	}

	index := make(map[rune]int, len(a))
	for i, r := range a {
		if first, ok := index[r]; ok {
			return nil, &DuplicateSymbolError{Symbol: r, First: first, Second: i}
		}
		index[r] = i
	}

	pad := opts.Pad
	switch {
	case pad == 0 && a.Contains(DefaultPad):
		pad = DefaultPad
	case pad == 0:
		pad = a[0]
	case !a.Contains(pad):
		return nil, &InvalidSymbolError{Symbol: pad, Source: SourcePad, Position: -1}
	}

	random := opts.Random
	if random == nil {
		random = CryptoSource{}
	}

	mode := Modular
	if isPowerOfTwo(len(a)) {
		mode = XOR
	}

	return &Engine{
		alphabet: a,
		index:    index,
		mode:     mode,
		pad:      pad,
		random:   random,
	}, nil
}

// Mode returns the pairing selected for the alphabet size.
func (e *Engine) Mode() Mode { return e.mode }

// Pad returns the symbol used to pad short messages.
func (e *Engine) Pad() rune { return e.pad }

// Alphabet returns a copy of the engine alphabet.
func (e *Engine) Alphabet() Alphabet {
	a := make(Alphabet, len(e.alphabet))
	copy(a, e.alphabet)
	return a
}

// IndexOf returns the alphabet position of r.
func (e *Engine) IndexOf(r rune) (int, error) {
	i, ok := e.index[r]
	if !ok {
		return 0, &InvalidSymbolError{Symbol: r, Position: -1}
	}
	return i, nil
}

// SymbolAt returns the symbol at alphabet position i.
func (e *Engine) SymbolAt(i int) (rune, error) {
	if i < 0 || i >= len(e.alphabet) {
		return 0, ErrIndexOutOfRange
	}
	return e.alphabet[i], nil
}

// InvalidSymbols returns every distinct symbol of text that is not in the
// alphabet, in the order they first appear. It does not stop at the first one.
func (e *Engine) InvalidSymbols(text string) []rune {
	var invalid []rune
	seen := make(map[rune]bool)
	for _, r := range text {
		if _, ok := e.index[r]; ok || seen[r] {
			continue
		}
		seen[r] = true
		invalid = append(invalid, r)
	}
	return invalid
}

// Encrypt pads message to the length of key and combines it with key.
// The ciphertext always has the same length as key.
func (e *Engine) Encrypt(message, key string) (string, error) {
	m, k := []rune(message), []rune(key)
	diff := len(k) - len(m)
	if diff < 0 {
		return "", &KeyTooShortError{Required: len(m), KeyLen: len(k)}
	}
	padded := []rune(message + strings.Repeat(string(e.pad), diff))
	out, err := e.oneTimePad(padded, k, encrypt)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decrypt reverses Encrypt. Any padding added during encryption is kept.
func (e *Engine) Decrypt(ciphertext, key string) (string, error) {
	c, k := []rune(ciphertext), []rune(key)
	if len(c) > len(k) {
		return "", &KeyExhaustedError{TextLen: len(c), KeyLen: len(k)}
	}
	out, err := e.oneTimePad(c, k, decrypt)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Unpad removes trailing pad symbols from a decrypted message.
func (e *Engine) Unpad(text string) string {
	return strings.TrimRight(text, string(e.pad))
}
