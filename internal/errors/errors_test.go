package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSecond, "loading products")

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
}

func TestCause_UnwrapsStack(t *testing.T) {
	err := Wrapf(errFirst, "order %s", "ORD-1")

	assert.Equal(t, errFirst, Cause(err))
	assert.Contains(t, err.Error(), "order ORD-1")
}
