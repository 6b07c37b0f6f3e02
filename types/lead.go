package types

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout matches the millisecond ISO-8601 form browsers emit.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	ErrMissingName  = errors.New("Missing name fields")
	ErrMissingPhone = errors.New("Missing phone_e164")
)

// Lead is a single loan-inquiry submission. Every field is kept in its
// display form; an empty string means the field was absent.
type Lead struct {
	FullName             string `json:"full_name"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	PhoneE164            string `json:"phone_e164"`
	RequestedAmountMKD   string `json:"requested_amount_mkd"`
	TargetInstallmentMKD string `json:"target_installment_mkd"`
	Partner              string `json:"partner"`
	PartnerID            string `json:"partner_id"`
	PartnerEmail         string `json:"partner_email"`
	Consent              string `json:"consent"`
	ConsentTimestamp     string `json:"consent_timestamp"`
	Source               string `json:"source"`
	ReceivedAt           string `json:"received_at"`
}

// LeadFromFields builds a Lead from a decoded request object. Name and phone
// fields only count when their raw value is truthy, so `false` or `0` there
// reads as missing. All other fields keep their stringified value.
func LeadFromFields(fields map[string]any) Lead {
	return Lead{
		FullName:             presentString(fields["full_name"]),
		FirstName:            presentString(fields["first_name"]),
		LastName:             presentString(fields["last_name"]),
		PhoneE164:            presentString(fields["phone_e164"]),
		RequestedAmountMKD:   Stringify(fields["requested_amount_mkd"]),
		TargetInstallmentMKD: Stringify(fields["target_installment_mkd"]),
		Partner:              Stringify(fields["partner"]),
		PartnerID:            Stringify(fields["partner_id"]),
		PartnerEmail:         Stringify(fields["partner_email"]),
		Consent:              Stringify(fields["consent"]),
		ConsentTimestamp:     Stringify(fields["consent_timestamp"]),
		Source:               Stringify(fields["source"]),
		ReceivedAt:           Stringify(fields["received_at"]),
	}
}

// Validate enforces the acceptance rule: a full name or a first+last pair,
// and a phone number. The name check runs first.
func (l Lead) Validate() error {
	if l.FullName == "" && (l.FirstName == "" || l.LastName == "") {
		return ErrMissingName
	}
	if l.PhoneE164 == "" {
		return ErrMissingPhone
	}
	return nil
}

// Stamp overwrites ReceivedAt with t in UTC.
func (l *Lead) Stamp(t time.Time) {
	l.ReceivedAt = t.UTC().Format(TimestampLayout)
}

// DisplayName is the full name, else the trimmed first and last name.
func (l Lead) DisplayName() string {
	if l.FullName != "" {
		return l.FullName
	}
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

// PartnerName is the partner label, else the partner ID.
func (l Lead) PartnerName() string {
	if l.Partner != "" {
		return l.Partner
	}
	return l.PartnerID
}

// Stringify renders a decoded JSON value the way it is shown to people:
// numbers in canonical decimal form, booleans as true/false, nested values as
// compact JSON and null as the empty string.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		if d, err := decimal.NewFromString(val.String()); err == nil {
			return d.String()
		}
		return val.String()
	case float64:
		return decimal.NewFromFloat(val).String()
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Truthy reports whether v counts as provided: not null, empty, false or zero.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		return err != nil || !d.IsZero()
	case float64:
		return val != 0
	case int:
		return val != 0
	default:
		return true
	}
}

func presentString(v any) string {
	if !Truthy(v) {
		return ""
	}
	return Stringify(v)
}
