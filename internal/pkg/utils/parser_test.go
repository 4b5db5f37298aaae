package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseValidityWindowHours(t *testing.T) {
	t.Run("empty value falls back to default", func(t *testing.T) {
		window, err := ParseValidityWindowHours("", 72)

		assert.NoError(t, err)
		assert.Equal(t, 72*time.Hour, window)
	})

	t.Run("explicit value overrides default", func(t *testing.T) {
		window, err := ParseValidityWindowHours("24", 72)

		assert.NoError(t, err)
		assert.Equal(t, 24*time.Hour, window)
	})

	t.Run("non-numeric value is rejected", func(t *testing.T) {
		_, err := ParseValidityWindowHours("soon", 72)

		assert.Error(t, err)
	})

	t.Run("zero and negative values are rejected", func(t *testing.T) {
		for _, raw := range []string{"0", "-5"} {
			_, err := ParseValidityWindowHours(raw, 72)
			assert.Error(t, err)
		}
	})
}

func TestParsePositiveIntQuery(t *testing.T) {
	t.Run("explicit value overrides default", func(t *testing.T) {
		assert.Equal(t, 3, ParsePositiveIntQuery("3", 1))
	})

	t.Run("empty, junk and non-positive values fall back", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "0", "-2"} {
			assert.Equal(t, 10, ParsePositiveIntQuery(raw, 10), raw)
		}
	})
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Code   string `validate:"required,icd10"`
		Reason string `validate:"required,not_blank"`
	}

	t.Run("well-formed input passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(sample{Code: "M79.3", Reason: "valid"}))
	})

	t.Run("icd10 accepts category-level codes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(sample{Code: "I10", Reason: "valid"}))
	})

	t.Run("malformed codes fail", func(t *testing.T) {
		for _, code := range []string{"banana", "U07", "m79.3", "M7", "M79."} {
			assert.Error(t, ValidateStruct(sample{Code: code, Reason: "valid"}), code)
		}
	})

	t.Run("whitespace-only reason fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(sample{Code: "M79.3", Reason: "   "}))
	})
}
