package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("maria"))
	assert.NoError(t, ValidateUsername("carlos_2024"))
	assert.NoError(t, ValidateUsername("abc"))

	assert.Error(t, ValidateUsername("ab"), "too short")
	assert.Error(t, ValidateUsername(strings.Repeat("a", 31)), "too long")
	assert.Error(t, ValidateUsername("maria silva"), "spaces not allowed")
	assert.Error(t, ValidateUsername("_maria"), "leading underscore")
	assert.Error(t, ValidateUsername("maria-"), "trailing hyphen")
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("maria@email.com"))
	assert.NoError(t, ValidateEmail("a.b+c@sub.domain.org"))

	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("@missing-local.com"))
	assert.Error(t, ValidateEmail("missing-domain@"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@b.co"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("x"))
	assert.NoError(t, ValidatePassword("admin123"))
	assert.NoError(t, ValidatePassword(strings.Repeat("p", 72)))

	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword(strings.Repeat("p", 73)))
}
