package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

func TestNameRegexDetector_Classification(t *testing.T) {
	tests := []struct {
		column string
		want   piiscan.PiiType
	}{
		// English tokens
		{"fname", piiscan.Person},
		{"full_name", piiscan.Person},
		{"email", piiscan.Email},
		{"e-mail_address", piiscan.Email},
		{"date_of_birth", piiscan.BirthDate},
		{"dob", piiscan.BirthDate},
		{"gender", piiscan.Gender},
		{"nationality", piiscan.Nationality},
		{"home_address", piiscan.Address},
		{"city", piiscan.Address},
		{"zip_code", piiscan.ZipCode},
		{"postal_code", piiscan.ZipCode},
		{"user_id", piiscan.UserName},
		{"password_hash", piiscan.Password},
		{"ssn", piiscan.SSN},
		{"social_security_number", piiscan.SSN},
		{"po_box", piiscan.PoBox},
		{"credit_card_num", piiscan.CreditCard},
		{"phone_number", piiscan.Phone},
		{"telephone", piiscan.Phone},

		// Indonesian tokens
		{"nama_lengkap", piiscan.Person},
		{"tanggal_lahir", piiscan.BirthDate},
		{"jenis_kelamin", piiscan.Gender},
		{"alamat", piiscan.Address},
		{"kode_pos", piiscan.ZipCode},
		{"kartu_kredit", piiscan.CreditCard},
		{"nomor_telepon", piiscan.Phone},
		{"nomor_ktp", piiscan.KTP},

		// Case-insensitivity
		{"EMAIL_ADDRESS", piiscan.Email},
		{"Phone", piiscan.Phone},
	}

	detector := NewNameRegexDetector()
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got, ok := detector.DetectColumn(piiscan.Column{Name: tt.column})
			assert.True(t, ok, "expected %q to classify", tt.column)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameRegexDetector_NoMatch(t *testing.T) {
	detector := NewNameRegexDetector()
	for _, column := range []string{"notes", "created_at", "id", "quantity"} {
		t.Run(column, func(t *testing.T) {
			got, ok := detector.DetectColumn(piiscan.Column{Name: column})
			assert.False(t, ok)
			assert.True(t, got.IsZero())
		})
	}
}

// Rule order resolves overlapping patterns: "user_email" matches both the
// Email rule and the UserName catch-all, and Email sits earlier in the
// table.
func TestNameRegexDetector_RuleOrderResolvesOverlap(t *testing.T) {
	detector := NewNameRegexDetector()

	got, ok := detector.DetectColumn(piiscan.Column{Name: "user_email"})
	assert.True(t, ok)
	assert.Equal(t, piiscan.Email, got)

	// "username" without any earlier token falls through to UserName.
	got, ok = detector.DetectColumn(piiscan.Column{Name: "login_user"})
	assert.True(t, ok)
	assert.Equal(t, piiscan.UserName, got)
}

func TestNameRegexDetector_Name(t *testing.T) {
	assert.Equal(t, "ColumnNameRegexDetector", NewNameRegexDetector().Name())
}
