package otp

import (
	"errors"
	"fmt"
)

var (
	// ErrAlphabetTooSmall is returned when an alphabet has fewer than two symbols.
	ErrAlphabetTooSmall = errors.New("alphabet must contain at least 2 symbols")
	// ErrDuplicateSymbol is wrapped by DuplicateSymbolError.
	ErrDuplicateSymbol = errors.New("alphabet contains duplicate symbol")
	// ErrKeyTooShort is wrapped by KeyTooShortError.
	ErrKeyTooShort = errors.New("key too short")
	// ErrKeyExhausted is wrapped by KeyExhaustedError.
	ErrKeyExhausted = errors.New("key exhausted")
	// ErrInvalidSymbol is wrapped by InvalidSymbolError.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrIndexOutOfRange is returned by SymbolAt for an index outside the alphabet.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNegativeLength is returned when a negative key length is requested.
	ErrNegativeLength = errors.New("negative length")
)

// Source names the input an invalid symbol was found in.
type Source string

const (
	SourceMessage Source = "message"
	SourceKey     Source = "key"
	SourcePad     Source = "pad"
)

// DuplicateSymbolError reports the first repeated symbol of an alphabet.
type DuplicateSymbolError struct {
	Symbol rune
	First  int
	Second int
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("alphabet contains duplicate symbol %q at positions %d and %d", e.Symbol, e.First, e.Second)
}

func (e *DuplicateSymbolError) Unwrap() error { return ErrDuplicateSymbol }

// KeyTooShortError is returned by Encrypt when the message is longer than the key.
// Required is the minimum key length for the message.
type KeyTooShortError struct {
	Required int
	KeyLen   int
}

func (e *KeyTooShortError) Error() string {
	return fmt.Sprintf("Message too long for key of size %d", e.KeyLen)
}

func (e *KeyTooShortError) Unwrap() error { return ErrKeyTooShort }

// KeyExhaustedError is returned by Decrypt when the ciphertext is longer than the key.
type KeyExhaustedError struct {
	TextLen int
	KeyLen  int
}

func (e *KeyExhaustedError) Error() string {
	return fmt.Sprintf("ciphertext of length %d exhausts key of size %d", e.TextLen, e.KeyLen)
}

func (e *KeyExhaustedError) Unwrap() error { return ErrKeyExhausted }

// InvalidSymbolError reports a symbol that is not part of the alphabet.
type InvalidSymbolError struct {
	Symbol   rune
	Source   Source
	Position int
}

func (e *InvalidSymbolError) Error() string {
	switch e.Source {
	case SourceMessage:
		return fmt.Sprintf("Message contains invalid symbol %q at position %d", e.Symbol, e.Position)
	case SourceKey:
		return fmt.Sprintf("Key contains invalid symbol %q at position %d", e.Symbol, e.Position)
	case "":
		return fmt.Sprintf("symbol %q is not in the alphabet", e.Symbol)
	default:
		return fmt.Sprintf("%s symbol %q is not in the alphabet", e.Source, e.Symbol)
	}
}

func (e *InvalidSymbolError) Unwrap() error { return ErrInvalidSymbol }
