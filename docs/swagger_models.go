package docs

// This file contains models used by Swagger documentation
// It doesn't affect the actual application logic, just documentation

// LeadRequest is the body the landing page posts. Any field may also be sent
// form-encoded. Numbers and booleans are accepted where strings are shown.
// @Description Lead submission
type LeadRequest struct {
	// Full name; required unless both first_name and last_name are set
	FullName string `json:"full_name,omitempty" example:"Ana Petrovska"`

	FirstName string `json:"first_name,omitempty" example:"Ana"`
	LastName  string `json:"last_name,omitempty" example:"Petrovska"`

	// Phone number in E.164 form; required
	PhoneE164 string `json:"phone_e164" example:"+38970123456"`

	RequestedAmountMKD   string `json:"requested_amount_mkd,omitempty" example:"150000"`
	TargetInstallmentMKD string `json:"target_installment_mkd,omitempty" example:"4500"`

	// Partner display name and identifier
	Partner   string `json:"partner,omitempty" example:"Auto Centar"`
	PartnerID string `json:"partner_id,omitempty" example:"p-017"`

	// Receives the lead instead of the default recipient
	PartnerEmail string `json:"partner_email,omitempty" example:"leads@partner.mk"`

	Consent          string `json:"consent,omitempty" example:"true"`
	ConsentTimestamp string `json:"consent_timestamp,omitempty" example:"2025-03-04T12:05:06.789Z"`
	Source           string `json:"source,omitempty" example:"landing"`
}
