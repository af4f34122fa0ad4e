// Package randompkg provides functionality for generating random exercise input in tests.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/go-petr/ledger-quiz/internal/domain"
)

const noise = "$ ,.-abcxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int64) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Amount generates a random whole amount between 0 and max inclusive.
func Amount(max int64) int64 {
	return Intn(max + 1)
}

// Amounts generates a random cargo/abono pair where only one side is set.
func Amounts(max int64) domain.Amounts {
	if Intn(2) == 0 {
		return domain.Amounts{Debit: Amount(max)}
	}

	return domain.Amounts{Credit: Amount(max)}
}

// Entries generates random entries for every account of the key.
func Entries(key domain.AnswerKey, max int64) domain.UserEntries {
	entries := make(domain.UserEntries, key.Len())
	for _, k := range key.Keys() {
		entries[k] = Amounts(max)
	}

	return entries
}

// Noisy interleaves the digits of s with characters that are not digits,
// the way a student might type an amount.
func Noisy(s string) string {
	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		if Intn(3) == 0 {
			_ = sb.WriteByte(noise[Intn(int64(len(noise)))]) // The returned err is always nil.
		}

		_ = sb.WriteByte(s[i])
	}

	return sb.String()
}
