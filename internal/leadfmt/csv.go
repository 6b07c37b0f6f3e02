package leadfmt

import (
	"strings"
	"time"

	"github.com/ideamk/leadmail/types"
)

// CSVColumns is the fixed column order of the attachment.
var CSVColumns = []string{
	"full_name", "first_name", "last_name", "phone_e164",
	"requested_amount_mkd", "target_installment_mkd",
	"partner", "partner_id", "partner_email",
	"consent", "consent_timestamp", "source", "received_at",
}

// CSV renders a header row and one data row, each ending in "\n". The
// received_at column carries renderedAt, not the lead's own stamp.
func CSV(l types.Lead, renderedAt time.Time) []byte {
	values := []string{
		l.FullName, l.FirstName, l.LastName, l.PhoneE164,
		l.RequestedAmountMKD, l.TargetInstallmentMKD,
		l.Partner, l.PartnerID, l.PartnerEmail,
		l.Consent, l.ConsentTimestamp, l.Source,
		renderedAt.UTC().Format(types.TimestampLayout),
	}

	var b strings.Builder
	b.WriteString(strings.Join(CSVColumns, ","))
	b.WriteByte('\n')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSV(v))
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// escapeCSV quotes values containing a comma, a double quote or a newline
// and doubles any inner quotes. Everything else is written verbatim.
func escapeCSV(v string) string {
	if !strings.ContainsAny(v, ",\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// AttachmentName is lead-YYYYMMDDHHMMSS.csv for the UTC render time.
func AttachmentName(renderedAt time.Time) string {
	return "lead-" + renderedAt.UTC().Format("20060102150405") + ".csv"
}
