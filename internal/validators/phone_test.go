package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"11999990000",
		"(11) 99999-0000",
		"+55 11 99999-0000",
		"99999000",
	}
	for _, phone := range valid {
		assert.True(t, IsPhoneValid(phone), "phone=%q", phone)
	}

	invalid := []string{
		"",
		"abc",
		"123",
		"12345678901234567890",
		"9999-abc0",
	}
	for _, phone := range invalid {
		assert.False(t, IsPhoneValid(phone), "phone=%q", phone)
	}
}
