package detectors

import (
	"regexp"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// Common-PII recognizers, matched anywhere in the sampled text (not
// anchored). Patterns follow the CommonRegex corpus; KTP is the 16-digit
// Indonesian national identity number.
var (
	phonePattern  = regexp.MustCompile(`(?:\+?\d{1,2}[-.\s]?)?(?:\(\d{3}\)|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}`)
	emailPattern  = regexp.MustCompile(`(?i)[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?`)
	creditPattern = regexp.MustCompile(`(?:\d{4}[- ]){3}\d{4}|\d{15,16}`)
	streetPattern = regexp.MustCompile(`(?i)\d{1,4} [\w\s]{1,20}(?:street|st|avenue|ave|road|rd|highway|hwy|square|sq|trail|trl|drive|dr|court|ct|park|parkway|pkwy|circle|cir|boulevard|blvd)\W?(?:\s|$)`)
	ssnPattern    = regexp.MustCompile(`\d{3}-\d{2}-\d{4}`)
	zipPattern    = regexp.MustCompile(`\b\d{5}(?:[-\s]\d{4})?\b`)
	poBoxPattern  = regexp.MustCompile(`(?i)p\.? ?o\.? box \d+`)
	ktpPattern    = regexp.MustCompile(`\b\d{16}\b`)
)

// datumRule binds one PII category to its value recognizer.
type datumRule struct {
	piiType piiscan.PiiType
	pattern *regexp.Regexp
}

// DatumRegexDetector classifies columns from sampled cell values using a
// fixed, ordered sequence of common PII recognizers. The sequence order is
// part of the contract: a bare 16-digit number is a credit card, not a KTP,
// because the credit card recognizer runs first.
type DatumRegexDetector struct {
	rules []datumRule
}

// NewDatumRegexDetector creates the built-in value detector.
func NewDatumRegexDetector() *DatumRegexDetector {
	return &DatumRegexDetector{rules: []datumRule{
		{piiscan.Phone, phonePattern},
		{piiscan.Email, emailPattern},
		{piiscan.CreditCard, creditPattern},
		{piiscan.Address, streetPattern},
		{piiscan.SSN, ssnPattern},
		{piiscan.ZipCode, zipPattern},
		{piiscan.PoBox, poBoxPattern},
		{piiscan.KTP, ktpPattern},
	}}
}

// Name identifies the detector in classification provenance.
func (d *DatumRegexDetector) Name() string { return "DatumRegexDetector" }

// DetectDatum returns the category of the first recognizer whose pattern
// matches anywhere in the sampled value. The column is accepted only to
// satisfy the detector contract; its name never influences the result.
func (d *DatumRegexDetector) DetectDatum(_ piiscan.Column, datum string) (piiscan.PiiType, bool) {
	for _, rule := range d.rules {
		if rule.pattern.MatchString(datum) {
			return rule.piiType, true
		}
	}
	return piiscan.PiiType{}, false
}
