package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferralCode(t *testing.T) {
	t.Run("FullName", func(t *testing.T) {
		assert.Equal(t, "JUANDE", GenerateReferralCode("Juan Dela Cruz"))
	})

	t.Run("ShortName_PaddedWithX", func(t *testing.T) {
		assert.Equal(t, "JOLIXX", GenerateReferralCode("Jo Li"))
	})

	t.Run("NonAlphaStripped", func(t *testing.T) {
		assert.Equal(t, "MARIAS", GenerateReferralCode("Mar-ia 2.0 Santos"))
	})

	t.Run("EmptyName", func(t *testing.T) {
		assert.Equal(t, "XXXXXX", GenerateReferralCode(""))
	})

	t.Run("NumericOnly", func(t *testing.T) {
		assert.Equal(t, "XXXXXX", GenerateReferralCode("12345 678"))
	})

	t.Run("Deterministic", func(t *testing.T) {
		first := GenerateReferralCode("Juan Dela Cruz")
		second := GenerateReferralCode("Juan Dela Cruz")
		assert.Equal(t, first, second)
	})

	t.Run("AlwaysSixUppercase", func(t *testing.T) {
		for _, name := range []string{"a", "élan", "O'Neil-Smith", "   ", "Xu"} {
			code := GenerateReferralCode(name)
			assert.Len(t, code, 6, "name %q", name)
			for _, r := range code {
				assert.True(t, r >= 'A' && r <= 'Z', "name %q produced %q", name, code)
			}
		}
	})
}
