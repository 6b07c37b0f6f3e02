// Package leadfmt turns a lead into the pieces of the notification email:
// subject line, plain-text and HTML bodies and the CSV attachment.
// Everything here is a pure function of the lead, the label set and the
// render time.
package leadfmt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Labels is the display-language text used by the renderers.
type Labels struct {
	SubjectPrefix  string `yaml:"subject_prefix"`
	Heading        string `yaml:"heading"`
	Name           string `yaml:"name"`
	Phone          string `yaml:"phone"`
	Amount         string `yaml:"amount"`
	Installment    string `yaml:"installment"`
	Partner        string `yaml:"partner"`
	Source         string `yaml:"source"`
	Consent        string `yaml:"consent"`
	AttachmentNote string `yaml:"attachment_note"`
}

var builtinLabels = map[string]Labels{
	"en": {
		SubjectPrefix:  "New credit request",
		Heading:        "New consumer credit request",
		Name:           "Full name",
		Phone:          "Phone",
		Amount:         "Amount (MKD)",
		Installment:    "Desired installment (MKD)",
		Partner:        "Partner",
		Source:         "Source",
		Consent:        "Consent",
		AttachmentNote: "A CSV with the same data is attached.",
	},
	"mk": {
		SubjectPrefix:  "Ново барање за кредит",
		Heading:        "Ново барање за потрошувачки кредит",
		Name:           "Име и презиме",
		Phone:          "Телефон",
		Amount:         "Износ (МКД)",
		Installment:    "Посакувана рата (МКД)",
		Partner:        "Партнер",
		Source:         "Извор",
		Consent:        "Согласност",
		AttachmentNote: "Во прилог има CSV со истите податоци.",
	},
}

// BuiltinLabels returns the label set for lang ("en" or "mk").
func BuiltinLabels(lang string) (Labels, error) {
	l, ok := builtinLabels[lang]
	if !ok {
		return Labels{}, fmt.Errorf("no labels for language %q", lang)
	}
	return l, nil
}

// LoadLabels returns the built-in labels for lang, with any non-empty entry
// from the YAML file at path layered on top. An empty path skips the file.
func LoadLabels(lang, path string) (Labels, error) {
	base, err := BuiltinLabels(lang)
	if err != nil {
		return Labels{}, err
	}
	if path == "" {
		return base, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Labels{}, fmt.Errorf("read labels file: %w", err)
	}

	var override Labels
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Labels{}, fmt.Errorf("parse labels file %s: %w", path, err)
	}

	return base.merge(override), nil
}

func (l Labels) merge(o Labels) Labels {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&l.SubjectPrefix, o.SubjectPrefix)
	pick(&l.Heading, o.Heading)
	pick(&l.Name, o.Name)
	pick(&l.Phone, o.Phone)
	pick(&l.Amount, o.Amount)
	pick(&l.Installment, o.Installment)
	pick(&l.Partner, o.Partner)
	pick(&l.Source, o.Source)
	pick(&l.Consent, o.Consent)
	pick(&l.AttachmentNote, o.AttachmentNote)
	return l
}
