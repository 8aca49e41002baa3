package id

import (
	"crypto/rand"
	"encoding/hex"

	crerr "github.com/cockroachdb/errors"
)

const defaultSize = 8

// Generator creates opaque hex IDs, used to correlate request logs.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	size int
}

// NewRandomGenerator returns a generator producing size random bytes per ID.
// A non-positive size falls back to 8 bytes.
func NewRandomGenerator(size int) *RandomGenerator {
	if size <= 0 {
		size = defaultSize
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", crerr.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
