package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeOffsetToken(t *testing.T) {
	token := EncodeOffsetToken(40)
	assert.NotEmpty(t, token, "Token should not be empty")

	offset, err := DecodeOffsetToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 40, offset)

	// Zero offset round-trips as well.
	zeroToken := EncodeOffsetToken(0)
	offset, err = DecodeOffsetToken(zeroToken)
	assert.NoError(t, err)
	assert.Equal(t, 0, offset)
}

func TestDecodeOffsetTokenError(t *testing.T) {
	// Invalid base64
	_, err := DecodeOffsetToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Valid base64, not a number
	_, err = DecodeOffsetToken("bm90YW51bWJlcg==")
	assert.Error(t, err, "Should return an error for a non-numeric payload")

	// Negative offsets are rejected.
	_, err = DecodeOffsetToken(EncodeOffsetToken(-5))
	assert.Error(t, err, "Should return an error for a negative offset")
}
