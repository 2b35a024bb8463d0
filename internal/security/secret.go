// Package security generates cryptographically secure secrets for
// token signing when no key is provided through the environment.
package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// secretAlphabet avoids characters that are awkward in shell or URL
// contexts so a generated key can be copied into an env file verbatim.
const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var errNonPositiveLength = errors.New("secret length must be positive")

// NewSecret returns an unbiased random string of the requested length
// drawn from secretAlphabet.
func NewSecret(length int) (string, error) {
	if length <= 0 {
		return "", errNonPositiveLength
	}

	limit := big.NewInt(int64(len(secretAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = secretAlphabet[position.Int64()]
	}

	return string(value), nil
}
