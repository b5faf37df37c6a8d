package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseQRPayload(t *testing.T) {
	fields, err := ParseQRPayload("AB123456;JOHN DOE;01/02/1985;RABAT;99 RUE EXEMPLE RABAT", true)
	assert.NoError(t, err)

	assert.Equal(t, "AB123456", fields.CIN)
	assert.Equal(t, "JOHN DOE", fields.FullName)
	assert.Equal(t, time.Date(1985, time.February, 1, 0, 0, 0, 0, time.UTC), fields.DateOfBirth)
	assert.Equal(t, "RABAT", fields.City)
	assert.Equal(t, "99 RUE EXEMPLE RABAT", fields.Address)
}

func TestParseQRPayloadWithoutAddress(t *testing.T) {
	fields, err := ParseQRPayload("AB123456;JOHN DOE;01/02/1985;RABAT;99 RUE EXEMPLE RABAT", false)
	assert.NoError(t, err)
	assert.Equal(t, "", fields.Address)

	// A four-field payload is a card without a printed address.
	fields, err = ParseQRPayload("AB123456;JOHN DOE;01/02/1985;RABAT", true)
	assert.NoError(t, err)
	assert.Equal(t, "", fields.Address)
}

func TestParseQRPayloadRejectsBadData(t *testing.T) {
	_, err := ParseQRPayload("JOHN DOE;01/02/1985", true)
	assert.Error(t, err)

	_, err = ParseQRPayload("123456;JOHN DOE;01/02/1985;RABAT", true)
	assert.Error(t, err)

	_, err = ParseQRPayload("AB123456;JOHN DOE;31/02/1985;RABAT", true)
	assert.Error(t, err)

	_, err = ParseQRPayload("AB123456;;01/02/1985;RABAT", true)
	assert.Error(t, err)
}
