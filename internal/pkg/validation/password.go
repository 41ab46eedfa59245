package validation

import (
	"crypto/rand"
	"math/big"
)

// Password alphabet categories. Every generated password carries at least one
// character from each.
const (
	passwordUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordLowercase = "abcdefghijklmnopqrstuvwxyz"
	passwordDigits    = "0123456789"
	passwordSymbols   = "!@#$%^&*_-+="
)

// DefaultPasswordLength is the length used when GeneratePassword is called
// with a non-positive length.
const DefaultPasswordLength = 12

// GeneratePassword produces a random password of the given length containing
// at least one uppercase letter, one lowercase letter, one digit and one
// symbol, with the remaining characters drawn from the combined alphabet and
// the result shuffled.
func GeneratePassword(length int) string {
	if length < 4 {
		length = DefaultPasswordLength
	}

	all := passwordUppercase + passwordLowercase + passwordDigits + passwordSymbols

	chars := make([]byte, 0, length)
	chars = append(chars,
		passwordUppercase[randIndex(len(passwordUppercase))],
		passwordLowercase[randIndex(len(passwordLowercase))],
		passwordDigits[randIndex(len(passwordDigits))],
		passwordSymbols[randIndex(len(passwordSymbols))],
	)
	for len(chars) < length {
		chars = append(chars, all[randIndex(len(all))])
	}

	// Fisher-Yates shuffle so the category characters are not positional.
	for i := len(chars) - 1; i > 0; i-- {
		j := randIndex(i + 1)
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars)
}

// randIndex returns a uniform random index in [0, n) from crypto/rand.
func randIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the platform source is broken; treat
		// that as unrecoverable rather than degrade to a guessable password.
		panic(err)
	}
	return int(v.Int64())
}
