package types

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLead_Validate(t *testing.T) {
	tests := []struct {
		name    string
		lead    Lead
		wantErr error
	}{
		{"full name and phone", Lead{FullName: "Ana Ana", PhoneE164: "+38970000000"}, nil},
		{"first and last name", Lead{FirstName: "Jane", LastName: "Doe", PhoneE164: "+38970000000"}, nil},
		{"first name only", Lead{FirstName: "Jane", PhoneE164: "+38970000000"}, ErrMissingName},
		{"last name only", Lead{LastName: "Doe", PhoneE164: "+38970000000"}, ErrMissingName},
		{"nothing at all", Lead{}, ErrMissingName},
		{"name without phone", Lead{FullName: "Ana Ana"}, ErrMissingPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, tt.lead.Validate())
		})
	}
}

func TestValidate_ErrorMessages(t *testing.T) {
	assert.Equal(t, "Missing name fields", ErrMissingName.Error())
	assert.Equal(t, "Missing phone_e164", ErrMissingPhone.Error())
}

func TestLeadFromFields(t *testing.T) {
	var fields map[string]any
	dec := json.NewDecoder(strings.NewReader(`{
		"full_name": "Ana Ana",
		"first_name": false,
		"phone_e164": 0,
		"requested_amount_mkd": 150000,
		"target_installment_mkd": "5000",
		"consent": true,
		"partner": null,
		"source": {"utm": "fb"}
	}`))
	dec.UseNumber()
	assert.NoError(t, dec.Decode(&fields))

	lead := LeadFromFields(fields)

	assert.Equal(t, "Ana Ana", lead.FullName)
	assert.Equal(t, "", lead.FirstName)
	assert.Equal(t, "", lead.PhoneE164)
	assert.Equal(t, "150000", lead.RequestedAmountMKD)
	assert.Equal(t, "5000", lead.TargetInstallmentMKD)
	assert.Equal(t, "true", lead.Consent)
	assert.Equal(t, "", lead.Partner)
	assert.Equal(t, `{"utm":"fb"}`, lead.Source)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{json.Number("1.50"), "1.5"},
		{json.Number("150000"), "150000"},
		{float64(2.25), "2.25"},
		{3, "3"},
		{false, "false"},
		{[]any{"a", json.Number("1")}, `["a",1]`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stringify(tt.in))
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(json.Number("0")))
	assert.False(t, Truthy(float64(0)))
	assert.True(t, Truthy(" "))
	assert.True(t, Truthy(json.Number("0.1")))
	assert.True(t, Truthy(map[string]any{}))
}

func TestLead_Stamp(t *testing.T) {
	var l Lead
	l.ReceivedAt = "client supplied"
	loc := time.FixedZone("CET", 3600)
	l.Stamp(time.Date(2025, 3, 4, 13, 5, 6, 789_000_000, loc))
	assert.Equal(t, "2025-03-04T12:05:06.789Z", l.ReceivedAt)
}

func TestLead_DisplayAndPartnerName(t *testing.T) {
	assert.Equal(t, "Ana Ana", Lead{FullName: "Ana Ana", FirstName: "X"}.DisplayName())
	assert.Equal(t, "Jane Doe", Lead{FirstName: "Jane", LastName: "Doe"}.DisplayName())
	assert.Equal(t, "Jane", Lead{FirstName: "Jane"}.DisplayName())
	assert.Equal(t, "", Lead{}.DisplayName())

	assert.Equal(t, "Acme", Lead{Partner: "Acme", PartnerID: "42"}.PartnerName())
	assert.Equal(t, "42", Lead{PartnerID: "42"}.PartnerName())
}
