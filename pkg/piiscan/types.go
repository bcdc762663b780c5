package piiscan

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"
)

// PiiType is a category tag assigned to a column, such as Email or Phone.
// Types are identity-only values: two PiiTypes are the same category exactly
// when their slugs are equal. The built-in set below is what the bundled
// detectors produce; new categories can be created with NewPiiType without
// touching the scan drivers.
type PiiType struct {
	name string
	slug string
}

// NewPiiType creates a PII category tag with a human-readable name and a
// stable slug used for persistence and comparison.
func NewPiiType(name, slug string) PiiType {
	return PiiType{name: name, slug: slug}
}

// Name returns the human-readable category name (e.g. "Credit Card").
func (t PiiType) Name() string { return t.name }

// Slug returns the stable identifier persisted to the catalog (e.g. "credit_card").
func (t PiiType) Slug() string { return t.slug }

// IsZero reports whether t is the zero value (no category).
func (t PiiType) IsZero() bool { return t.slug == "" }

func (t PiiType) String() string { return t.name }

// Built-in PII categories. The set is open: detectors hard-code which of
// these they can produce, but callers may define additional categories.
var (
	Person      = NewPiiType("Person", "person")
	Email       = NewPiiType("Email", "email")
	BirthDate   = NewPiiType("Birth Date", "birth_date")
	Gender      = NewPiiType("Gender", "gender")
	Nationality = NewPiiType("Nationality", "nationality")
	Address     = NewPiiType("Address", "address")
	ZipCode     = NewPiiType("Zip Code", "zip_code")
	UserName    = NewPiiType("User Name", "user_name")
	Password    = NewPiiType("Password", "password")
	SSN         = NewPiiType("SSN", "ssn")
	PoBox       = NewPiiType("PO Box", "po_box")
	CreditCard  = NewPiiType("Credit Card", "credit_card")
	Phone       = NewPiiType("Phone", "phone")
	KTP         = NewPiiType("KTP", "ktp")
)

// Column identifies a fully-qualified column within the scanned database.
// The scan core only reads from it; the catalog layer owns its lifecycle.
type Column struct {
	// Schema and Table qualify the column within the database.
	Schema string
	Table  string

	// Name is the bare column name that metadata detectors match against.
	Name string

	// DataType is the declared type from information_schema.columns.
	// Data scans only sample columns whose DataType is text-like.
	DataType string
}

// FQDN returns the fully-qualified "schema.table.column" identifier.
// Used for logging and label persistence, never for detection.
func (c Column) FQDN() string {
	return fmt.Sprintf("%s.%s.%s", c.Schema, c.Table, c.Name)
}

// textTypes are the information_schema data types eligible for data scans.
var textTypes = map[string]struct{}{
	"text":              {},
	"character varying": {},
	"character":         {},
	"varchar":           {},
	"char":              {},
	"citext":            {},
}

// IsText reports whether the column holds text-like data and is therefore
// eligible for value sampling in a data scan.
func (c Column) IsText() bool {
	_, ok := textTypes[strings.ToLower(c.DataType)]
	return ok
}

// Sample is one data-scan work item: a column together with one sampled
// cell value. Valid is false when the sampled cell was NULL; such items are
// counted as processed but never reach a detector.
type Sample struct {
	Column Column
	Value  string
	Valid  bool
}

// ColumnSeq is a lazily-produced stream of columns. Ranging over the same
// ColumnSeq value again re-enumerates from the start, which is what lets the
// scan drivers take a sizing view and a work view over the same logical set.
type ColumnSeq = iter.Seq2[Column, error]

// SampleSeq is a lazily-produced stream of sampled values, one item per
// (column, value) pair in producer order.
type SampleSeq = iter.Seq2[Sample, error]

// ScanConfig contains all parameters needed for a scan operation.
type ScanConfig struct {
	// ConnectionString is the PostgreSQL connection string for the target database.
	ConnectionString string

	// DatabaseName is the target database name, used for logging only.
	DatabaseName string

	// IncludeSchemas restricts enumeration to the listed schemas.
	// Empty means all non-system schemas.
	IncludeSchemas []string

	// ExcludeSchemas removes schemas from enumeration after IncludeSchemas
	// is applied. System schemas are always excluded.
	ExcludeSchemas []string

	// SampleSize is the number of cell values sampled per text column in a
	// data scan. Ignored by metadata scans.
	SampleSize int

	// Timeout is the global timeout for the entire scan.
	Timeout time.Duration

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the ScanConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ScanConfig) Validate() error {
	var errs []error

	if c.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("ConnectionString is required: %w", ErrInvalidConfig))
	}

	if c.SampleSize < 0 {
		errs = append(errs, fmt.Errorf("sample size cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConnectionConfig represents resolved connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// Additional connection parameters
	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string
}
