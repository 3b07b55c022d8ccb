package booking

import (
	"crypto/rand"
	"math/big"

	"github.com/Domenick1991/airbooking-console/internal/domain"
)

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReference returns a random booking reference of domain.BookingRefLength
// characters drawn from A-Z and 0-9.
func GenerateReference() (string, error) {
	max := big.NewInt(int64(len(referenceAlphabet)))
	ref := make([]byte, domain.BookingRefLength)
	for i := range ref {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		ref[i] = referenceAlphabet[n.Int64()]
	}
	return string(ref), nil
}
