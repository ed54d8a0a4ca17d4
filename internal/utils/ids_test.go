package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomHex(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{32}$`)

	a := NewRandomHex()
	b := NewRandomHex()

	assert.Regexp(t, re, a)
	assert.NotEqual(t, a, b)
}
