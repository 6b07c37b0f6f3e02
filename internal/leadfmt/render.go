package leadfmt

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/ideamk/leadmail/types"
)

const (
	// Fallbacks shared by every language.
	anonymousLead  = "Lead"
	noPartner      = "(no partner)"
	partnerUnknown = "(n/a)"

	CSVContentType = "text/csv"
)

// Rendered is everything the mail step needs for one lead.
type Rendered struct {
	Subject        string
	Text           string
	HTML           string
	CSV            []byte
	AttachmentName string
}

// Renderer holds the label set and the default source shown when a lead has none.
type Renderer struct {
	labels        Labels
	defaultSource string
}

// NewRenderer returns a Renderer. An empty defaultSource becomes "landing".
func NewRenderer(labels Labels, defaultSource string) *Renderer {
	if defaultSource == "" {
		defaultSource = "landing"
	}
	return &Renderer{labels: labels, defaultSource: defaultSource}
}

// Render produces all artifacts for l. renderedAt stamps the CSV and names
// the attachment.
func (r *Renderer) Render(l types.Lead, renderedAt time.Time) (Rendered, error) {
	text, err := r.PlainText(l)
	if err != nil {
		return Rendered{}, err
	}
	html, err := r.HTML(l)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		Subject:        r.Subject(l),
		Text:           text,
		HTML:           html,
		CSV:            CSV(l, renderedAt),
		AttachmentName: AttachmentName(renderedAt),
	}, nil
}

// Subject renders the subject line with the renderer's labels.
func (r *Renderer) Subject(l types.Lead) string {
	return Subject(l, r.labels)
}

// Subject joins prefix, who and partner with em dashes. "Lead" and
// "(no partner)" stand in for missing values.
func Subject(l types.Lead, labels Labels) string {
	who := l.DisplayName()
	if who == "" {
		who = anonymousLead
	}
	partner := l.PartnerName()
	if partner == "" {
		partner = noPartner
	}
	return fmt.Sprintf("%s — %s — %s", labels.SubjectPrefix, who, partner)
}

type bodyView struct {
	Labels           Labels
	Name             string
	Phone            string
	Amount           string
	Installment      string
	Partner          string
	PartnerEmail     string
	Source           string
	Consent          string
	ConsentTimestamp string
}

func (r *Renderer) view(l types.Lead, partnerFallback string) bodyView {
	partner := l.PartnerName()
	if partner == "" {
		partner = partnerFallback
	}
	source := l.Source
	if source == "" {
		source = r.defaultSource
	}
	return bodyView{
		Labels:           r.labels,
		Name:             l.DisplayName(),
		Phone:            l.PhoneE164,
		Amount:           l.RequestedAmountMKD,
		Installment:      l.TargetInstallmentMKD,
		Partner:          partner,
		PartnerEmail:     l.PartnerEmail,
		Source:           source,
		Consent:          l.Consent,
		ConsentTimestamp: l.ConsentTimestamp,
	}
}

var textBody = texttemplate.Must(texttemplate.New("text").
	Funcs(texttemplate.FuncMap{"partnerLine": partnerLine}).
	Parse(`{{.Labels.Name}}: {{.Name}}
{{.Labels.Phone}}: {{.Phone}}
{{.Labels.Amount}}: {{.Amount}}
{{.Labels.Installment}}: {{.Installment}}
{{.Labels.Partner}}: {{partnerLine .Partner .PartnerEmail}}
{{.Labels.Source}}: {{.Source}}
{{.Labels.Consent}}: {{.Consent}}{{if .ConsentTimestamp}} — {{.ConsentTimestamp}}{{end}}
`))

// PlainText restates the lead one field per line.
func (r *Renderer) PlainText(l types.Lead) (string, error) {
	var buf bytes.Buffer
	if err := textBody.Execute(&buf, r.view(l, "")); err != nil {
		return "", fmt.Errorf("render text body: %w", err)
	}
	return buf.String(), nil
}

var htmlBody = htmltemplate.Must(htmltemplate.New("html").Parse(
	`<h2>{{.Labels.Heading}}</h2>
<ul>
  <li><b>{{.Labels.Name}}:</b> {{.Name}}</li>
  <li><b>{{.Labels.Phone}}:</b> {{.Phone}}</li>
  <li><b>{{.Labels.Amount}}:</b> {{.Amount}}</li>
  <li><b>{{.Labels.Installment}}:</b> {{.Installment}}</li>
  <li><b>{{.Labels.Partner}}:</b> {{.Partner}}{{if .PartnerEmail}} &lt;{{.PartnerEmail}}&gt;{{end}}</li>
  <li><b>{{.Labels.Source}}:</b> {{.Source}}</li>
  <li><b>{{.Labels.Consent}}:</b> {{.Consent}}{{if .ConsentTimestamp}} — {{.ConsentTimestamp}}{{end}}</li>
</ul>
<p>{{.Labels.AttachmentNote}}</p>
`))

// HTML restates the lead as a list. All values are escaped.
func (r *Renderer) HTML(l types.Lead) (string, error) {
	var buf bytes.Buffer
	if err := htmlBody.Execute(&buf, r.view(l, partnerUnknown)); err != nil {
		return "", fmt.Errorf("render html body: %w", err)
	}
	return buf.String(), nil
}

func partnerLine(partner, email string) string {
	if email == "" {
		return partner
	}
	return strings.TrimSpace(partner + " <" + email + ">")
}
