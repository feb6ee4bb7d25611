package utils

import (
	"crypto/rand"
	"math/big"
)

const orderTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewOrderToken returns the human-shareable order identifier, e.g.
// "ORD-7K2M9X". It is independent of the database row id and is the only
// identifier customers and staff ever see.
func NewOrderToken() string {
	buf := make([]byte, 6)
	max := big.NewInt(int64(len(orderTokenAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform source is broken;
			// fall back to a fixed char rather than panic mid-checkout.
			buf[i] = 'X'
			continue
		}
		buf[i] = orderTokenAlphabet[n.Int64()]
	}
	return "ORD-" + string(buf)
}
