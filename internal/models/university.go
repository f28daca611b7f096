package models

// Attribute names a requested admissions field. Values match the university
// table's attribute names verbatim.
type Attribute string

const (
	AttributeApplicationFee Attribute = "ApplicationFee"
	AttributeTuition        Attribute = "Tuition"
	AttributeFinancialAid   Attribute = "FinancialAid"
	AttributeAdmissionRate  Attribute = "AdmissionRate"
)

// KeyAttributeName is the university table's primary key attribute.
const KeyAttributeName = "UniversityName"

// ImageAttributeName is the optional image reference attribute.
const ImageAttributeName = "ImageLink"

// LookupResult is the transient outcome of a single university lookup. Value
// may be blank when the record exists but carries no data for the requested
// attribute; that is distinct from the record being absent.
type LookupResult struct {
	UniversityName string `json:"universityName"`
	Value          string `json:"value,omitempty"`
	ImageLink      string `json:"imageLink,omitempty"`
}
