package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderTokenFormat(t *testing.T) {
	re := regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		tok := NewOrderToken()
		assert.Regexp(t, re, tok)
		seen[tok] = true
	}
	// Collisions over 200 draws from a 36^6 space would mean a broken source.
	assert.Greater(t, len(seen), 190)
}
