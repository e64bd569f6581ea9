package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "200", FormatAmount(200.0))
	assert.Equal(t, "99.5", FormatAmount(99.5))
	assert.Equal(t, "0", FormatAmount(0))
}

func TestPtrHelpers(t *testing.T) {
	s := StringPtr("Apple")
	assert.Equal(t, "Apple", *s)

	n := IntPtr(15)
	assert.Equal(t, 15, *n)
}
