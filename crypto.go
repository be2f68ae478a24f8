package otp

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// fingerprintLength is the number of digest bytes shown by Fingerprint.
const fingerprintLength = 8

// RandomSource supplies uniformly distributed integers. Implementations used
// for real keys must be cryptographically secure and, if shared between
// goroutines, safe for concurrent use.
type RandomSource interface {
	// Intn returns a uniform random int in [0, n).
	Intn(n int) (int, error)
}

// CryptoSource is a RandomSource backed by crypto/rand.
type CryptoSource struct{}

// Intn returns a cryptographically random int in [0, n).
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("invalid upper bound")
	}
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(i.Int64()), nil
}

// RandomKey returns n symbols drawn independently and uniformly from the
// alphabet using the engine's RandomSource.
func (e *Engine) RandomKey(n int) (string, error) {
	if n < 0 {
		return "", ErrNegativeLength
	}
	key := make([]rune, n)
	for i := range key {
		j, err := e.random.Intn(len(e.alphabet))
		if err != nil {
			return "", err
		}
		s, err := e.SymbolAt(j)
		if err != nil {
			return "", err
		}
		key[i] = s
	}
	return string(key), nil
}

// Fingerprint returns a short hex digest of key taken from blake2b-256. It lets
// two parties compare keys without showing them.
func Fingerprint(key string) string {
	h := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(h[:fingerprintLength])
}
