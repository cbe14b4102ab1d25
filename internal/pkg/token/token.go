package token

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// Invitation codes are short, human-typeable identifiers drawn from an
// unambiguous uppercase alphabet.
const (
	Alphabet       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength     = 8
	FallbackLength = 12
	maxAttempts    = 5
)

// ExistsFunc reports whether a candidate code is already taken
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generate draws a uniformly random code of the given length from Alphabet
func Generate(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(Alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[i] = Alphabet[n.Int64()]
	}
	return string(buf), nil
}

// GenerateUnique draws codes until exists reports the candidate free.
// After maxAttempts collisions at the standard length it widens the code
// instead of looping unboundedly.
func GenerateUnique(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := Generate(CodeLength)
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}

	code, err := Generate(FallbackLength)
	if err != nil {
		return "", err
	}
	taken, err := exists(ctx, code)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("could not generate a unique code after %d attempts", maxAttempts+1)
	}
	return code, nil
}
