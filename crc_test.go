package bmpcat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRCBytes(t *testing.T) {
	// The CRC-32 check value.
	assert.Equal(t, "CBF43926", crcBytes([]byte("123456789")))
	assert.Equal(t, "00000000", crcBytes(nil))
}
