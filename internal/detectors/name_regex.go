package detectors

import (
	"regexp"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// nameRule binds one PII category to its column-name pattern.
type nameRule struct {
	piiType piiscan.PiiType
	pattern *regexp.Regexp
}

// NameRegexDetector classifies columns by their declared name. The rule
// table is ordered and the first matching rule wins; overlapping patterns
// are resolved purely by position (e.g. "user_email" hits Email before the
// catch-all UserName rule further down). Reordering the table changes
// classifications.
//
// Patterns are case-insensitive, anchored at both ends, and carry English
// and Indonesian naming tokens side by side. Both token sets must be kept
// when extending a category.
type NameRegexDetector struct {
	rules []nameRule
}

// NewNameRegexDetector creates the built-in column-name detector.
func NewNameRegexDetector() *NameRegexDetector {
	return &NameRegexDetector{rules: []nameRule{
		{piiscan.Person, regexp.MustCompile(`(?i)^.*(firstname|fname|lastname|lname|fullname|maidenname|_name|nickname|name_suffix|name|person|nama|nama_lengkap|nama_panjang).*$`)},
		{piiscan.Email, regexp.MustCompile(`(?i)^.*(email|e-mail|mail).*$`)},
		{piiscan.BirthDate, regexp.MustCompile(`(?i)^.*(date_of_birth|dateofbirth|dob|birthday|date_of_death|dateofdeath|birthdate|tanggal_lahir).*$`)},
		{piiscan.Gender, regexp.MustCompile(`(?i)^.*(gender|jenis_kelamin).*$`)},
		{piiscan.Nationality, regexp.MustCompile(`(?i)^.*(nationality).*$`)},
		{piiscan.Address, regexp.MustCompile(`(?i)^.*(address|city|state|county|country|zone|borough|alamat|provinsi|kota|kabupaten|kecamatan|kelurahan|desa|nomor_rumah).*$`)},
		{piiscan.ZipCode, regexp.MustCompile(`(?i)^.*(zipcode|zip_code|postal|postal_code|zip|kode_pos|pos).*$`)},
		{piiscan.UserName, regexp.MustCompile(`(?i)^.*user(id|name|).*$`)},
		{piiscan.Password, regexp.MustCompile(`(?i)^.*pass.*$`)},
		{piiscan.SSN, regexp.MustCompile(`(?i)^.*(ssn|social_number|social_security|social_security_number|social_security_no).*$`)},
		{piiscan.PoBox, regexp.MustCompile(`(?i)^.*(po_box|pobox).*$`)},
		{piiscan.CreditCard, regexp.MustCompile(`(?i)^.*(credit_card|cc_number|cc_num|creditcard|credit_card_num|creditcardnumber|kartu_kredit|nomor_rekening|rekening).*$`)},
		{piiscan.Phone, regexp.MustCompile(`(?i)^.*(phone|phone_number|phone_no|phone_num|telephone|telephone_num|telephone_no|telp|nomor_telepon|nomor_handphone|handphone|telepon|no_telepon|no_handphone).*$`)},
		{piiscan.KTP, regexp.MustCompile(`(?i)^.*(ktp|ktp_name|ktp_number|nama_ktp|nomor_ktp|ktp_nama|ktp_nomor|ktp_no).*$`)},
	}}
}

// Name identifies the detector in classification provenance.
func (d *NameRegexDetector) Name() string { return "ColumnNameRegexDetector" }

// DetectColumn returns the category of the first rule whose pattern matches
// the column's bare name, or ok=false when no rule matches.
func (d *NameRegexDetector) DetectColumn(column piiscan.Column) (piiscan.PiiType, bool) {
	for _, rule := range d.rules {
		if rule.pattern.MatchString(column.Name) {
			return rule.piiType, true
		}
	}
	return piiscan.PiiType{}, false
}
