package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidVenueClass(t *testing.T) {
	for _, class := range []string{"nightclub", "late_night_lounge", "member_club", "supper_club"} {
		assert.True(t, IsValidVenueClass(class), class)
	}
	// 空字串代表未分類場館
	assert.True(t, IsValidVenueClass(""))

	assert.False(t, IsValidVenueClass("Nightclub"))
	assert.False(t, IsValidVenueClass("dive_bar"))
}
