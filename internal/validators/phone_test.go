package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "0244123456", PhoneDigits("024-412-3456"))
	assert.Equal(t, "233244123456", PhoneDigits("+233 (24) 412 3456"))
	assert.Equal(t, "", PhoneDigits("no digits"))
}

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, IsPhoneValid("0244123456"))
	assert.True(t, IsPhoneValid("+233 24 412 3456"))
	assert.False(t, IsPhoneValid("12345"))
	assert.False(t, IsPhoneValid(""))
}
