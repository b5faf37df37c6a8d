package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanValue(t *testing.T) {
	assert.Equal(t, "JOHN DOE", CleanValue("  JOHN   DOE \t"))
	assert.Equal(t, "", CleanValue("   "))
}

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "Nee a Rabat", StripDiacritics("Née à Rabat"))
	assert.Equal(t, "PRENOM", StripDiacritics("PRÉNOM"))
}

func TestNormalizeUpper(t *testing.T) {
	assert.Equal(t, "NEE A RABAT", NormalizeUpper("Née à Rabat"))
	assert.Equal(t, "CIN: AB-123456", NormalizeUpper("cin: ab-123456"))
	assert.Equal(t, "CARTE DIDENTITE", NormalizeUpper("carte d'identité"))
}

func TestCompactAlnum(t *testing.T) {
	assert.Equal(t, "AB123456", CompactAlnum("AB 123-456"))
	assert.Equal(t, "", CompactAlnum("  /:- "))
}
