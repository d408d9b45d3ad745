// Package reservation contains the pure business logic for hotel reservations.
// This is part of the Functional Core - no I/O, only pure functions.
package reservation

import (
	"math/rand/v2"
	"unicode"
)

// ID composition rules.
const (
	IDDigits = 5
	IDLower  = 2
	IDUpper  = 3
	IDLength = IDDigits + IDLower + IDUpper
)

const (
	digits = "0123456789"
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateReservationID builds one candidate ID: 5 digits, 2 lowercase and
// 3 uppercase letters, shuffled together. It does not check uniqueness.
func GenerateReservationID(rng *rand.Rand) string {
	buf := make([]byte, 0, IDLength)
	buf = appendRandom(rng, buf, digits, IDDigits)
	buf = appendRandom(rng, buf, lower, IDLower)
	buf = appendRandom(rng, buf, upper, IDUpper)
	rng.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})
	return string(buf)
}

// AssignUniqueID generates IDs until one is not reported as issued.
// Retry is unbounded.
func AssignUniqueID(rng *rand.Rand, issued func(id string) bool) string {
	for {
		id := GenerateReservationID(rng)
		if !issued(id) {
			return id
		}
	}
}

// IsValidReservationID reports whether id has the reservation ID composition
// (in any order).
func IsValidReservationID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	var nDigit, nLower, nUpper int
	for _, r := range id {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsDigit(r):
			nDigit++
		case unicode.IsLower(r):
			nLower++
		case unicode.IsUpper(r):
			nUpper++
		default:
			return false
		}
	}
	return nDigit == IDDigits && nLower == IDLower && nUpper == IDUpper
}

func appendRandom(rng *rand.Rand, buf []byte, alphabet string, n int) []byte {
	for range n {
		buf = append(buf, alphabet[rng.IntN(len(alphabet))])
	}
	return buf
}
