package consent

import (
	"fmt"
	"strings"
	"time"

	vstrings "vincula/pkg/platform/strings"
)

// SubjectKind discriminates the two onboarding branches. Required-field
// validation is exhaustive per branch, never shared.
type SubjectKind string

const (
	SubjectNaturalPerson SubjectKind = "natural"
	SubjectLegalEntity   SubjectKind = "entity"
)

// Labels used in the traceability log and the rendered document.
func (k SubjectKind) Label() string {
	if k == SubjectLegalEntity {
		return "Persona Jurídica"
	}
	return "Persona Natural"
}

// IDType is the identity document type of a natural person or legal
// representative.
type IDType string

const (
	IDTypeCC IDType = "C.C."
	IDTypeCE IDType = "C.E."
)

// NaturalPerson holds the data entered on the natural-person branch.
type NaturalPerson struct {
	FullName     string `json:"full_name"`
	IDType       IDType `json:"id_type"`
	IDNumber     string `json:"id_number"`
	IDIssuePlace string `json:"id_issue_place"`
	BirthDate    string `json:"birth_date"` // yyyy-mm-dd
	Address      string `json:"address"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// Contact is an optional auxiliary contact on the legal-entity branch
// (purchasing or collections).
type Contact struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// LegalEntity holds the data entered on the legal-entity branch.
type LegalEntity struct {
	LegalName string `json:"legal_name"`
	TradeName string `json:"trade_name"`
	TaxID     string `json:"tax_id"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Landline  string `json:"landline"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`

	RepName         string `json:"rep_name"`
	RepIDType       IDType `json:"rep_id_type"`
	RepIDNumber     string `json:"rep_id_number"`
	RepIDIssuePlace string `json:"rep_id_issue_place"`

	Purchasing  Contact `json:"purchasing"`
	Collections Contact `json:"collections"`
}

// Request is the draft data a subject enters, discriminated by Kind. Exactly
// one of Natural or Entity is set. The signature is a normalized opaque PNG.
type Request struct {
	Kind      SubjectKind    `json:"kind"`
	Natural   *NaturalPerson `json:"natural,omitempty"`
	Entity    *LegalEntity   `json:"entity,omitempty"`
	Signature []byte         `json:"signature"`
	CreatedAt time.Time      `json:"created_at"`
}

// SignerName is the person who draws the signature: the subject on the
// natural branch, the legal representative on the entity branch.
func (r *Request) SignerName() string {
	if r.Kind == SubjectLegalEntity {
		return r.Entity.RepName
	}
	return r.Natural.FullName
}

// SubjectName is the party granting consent: the legal name for entities,
// the full name for natural persons.
func (r *Request) SubjectName() string {
	if r.Kind == SubjectLegalEntity {
		return r.Entity.LegalName
	}
	return r.Natural.FullName
}

// IdentityNumber is the NIT for entities and the cédula for natural persons.
// It feeds the document id and the traceability row.
func (r *Request) IdentityNumber() string {
	if r.Kind == SubjectLegalEntity {
		return r.Entity.TaxID
	}
	return r.Natural.IDNumber
}

// SignerIdentity renders the signer identification line for the signature
// block, e.g. "C.C. No. 123 de Bogotá".
func (r *Request) SignerIdentity() string {
	if r.Kind == SubjectLegalEntity {
		return fmt.Sprintf("%s No. %s de %s", r.Entity.RepIDType, r.Entity.RepIDNumber, r.Entity.RepIDIssuePlace)
	}
	return fmt.Sprintf("%s No. %s de %s", r.Natural.IDType, r.Natural.IDNumber, r.Natural.IDIssuePlace)
}

// Email is the declared notification address, the OTP destination.
func (r *Request) Email() string {
	if r.Kind == SubjectLegalEntity {
		return r.Entity.Email
	}
	return r.Natural.Email
}

// City of the subject.
func (r *Request) City() string {
	if r.Kind == SubjectLegalEntity {
		return r.Entity.City
	}
	return r.Natural.City
}

// Phones is the combined phone column value for the traceability row. Blank
// and duplicate numbers collapse so the column never reads " / ".
func (r *Request) Phones() string {
	if r.Kind == SubjectLegalEntity {
		return strings.Join(vstrings.DedupeAndTrim([]string{r.Entity.Landline, r.Entity.Mobile}), " / ")
	}
	return r.Natural.Phone
}
