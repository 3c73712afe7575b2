package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSlug(t *testing.T) {
	assert.Equal(t, "my-card123", SanitizeSlug("My-Card_123!"))
	assert.Equal(t, "abc-123", SanitizeSlug("ABC-123"))
	assert.Equal(t, "", SanitizeSlug("!!!"))
}

func TestSanitizeSlugIdempotent(t *testing.T) {
	once := SanitizeSlug("My-Card_123!")
	assert.Equal(t, once, SanitizeSlug(once))
}

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("abc-123"))
	assert.ErrorIs(t, ValidateSlug("ab"), ErrSlugTooShort)
	assert.ErrorIs(t, ValidateSlug("ABC"), ErrSlugInvalidChar)
	assert.ErrorIs(t, ValidateSlug("abc_123"), ErrSlugInvalidChar)
}

func TestRandomSlug(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{3}-\d{3}$`)
	for i := 0; i < 20; i++ {
		s, err := RandomSlug()
		require.NoError(t, err)
		assert.Regexp(t, pattern, s)
		assert.NoError(t, ValidateSlug(s))
	}
}
