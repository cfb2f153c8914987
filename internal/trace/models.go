package trace

import (
	"time"

	"vincula/internal/consent"
)

// Row statuses. Error rows carry detail after the prefix, e.g.
// "Error: smtp dial timeout". Rows are appended, never rewritten.
const (
	StatusSent        = "Verificado y Enviado"
	StatusErrorPrefix = "Error: "
)

// Record is the flat append-only audit tuple correlating a document to its
// issuance metadata. Column order is versioned: consumers of the log index by
// position, so fields must only ever be appended, never reordered.
type Record struct {
	Timestamp         string `json:"timestamp"`
	DocumentID        string `json:"document_id"`
	SubjectName       string `json:"subject_name"`
	IdentityNumber    string `json:"identity_number"`
	SignerName        string `json:"signer_name"`
	Email             string `json:"email"`
	City              string `json:"city"`
	Phones            string `json:"phones"`
	SubjectKind       string `json:"subject_kind"`
	Status            string `json:"status"`
	VerificationCode  string `json:"verification_code"`
	PurchasingName    string `json:"purchasing_name"`
	PurchasingEmail   string `json:"purchasing_email"`
	PurchasingMobile  string `json:"purchasing_mobile"`
	CollectionsName   string `json:"collections_name"`
	CollectionsEmail  string `json:"collections_email"`
	CollectionsMobile string `json:"collections_mobile"`
	BirthDate         string `json:"birth_date"`
}

// Columns is the fixed, versioned column order of the log.
const Columns = 18

// Row flattens the record into the versioned 18-column layout.
func (r Record) Row() []string {
	return []string{
		r.Timestamp,
		r.DocumentID,
		r.SubjectName,
		r.IdentityNumber,
		r.SignerName,
		r.Email,
		r.City,
		r.Phones,
		r.SubjectKind,
		r.Status,
		r.VerificationCode,
		r.PurchasingName,
		r.PurchasingEmail,
		r.PurchasingMobile,
		r.CollectionsName,
		r.CollectionsEmail,
		r.CollectionsMobile,
		r.BirthDate,
	}
}

// NewRecord builds the row and the document traceability fields from a
// verified consent request. The entity branch fills the auxiliary contact
// columns; the natural branch fills the birth-date column. The unused columns
// stay empty strings so the layout never varies.
func NewRecord(req *consent.Request, documentID string, issuedAt time.Time, code, status string) Record {
	rec := Record{
		Timestamp:        issuedAt.Format("2006-01-02 15:04:05"),
		DocumentID:       documentID,
		SubjectName:      req.SubjectName(),
		IdentityNumber:   req.IdentityNumber(),
		SignerName:       req.SignerName(),
		Email:            req.Email(),
		City:             req.City(),
		Phones:           req.Phones(),
		SubjectKind:      req.Kind.Label(),
		Status:           status,
		VerificationCode: code,
	}
	switch req.Kind {
	case consent.SubjectLegalEntity:
		rec.PurchasingName = req.Entity.Purchasing.Name
		rec.PurchasingEmail = req.Entity.Purchasing.Email
		rec.PurchasingMobile = req.Entity.Purchasing.Mobile
		rec.CollectionsName = req.Entity.Collections.Name
		rec.CollectionsEmail = req.Entity.Collections.Email
		rec.CollectionsMobile = req.Entity.Collections.Mobile
	case consent.SubjectNaturalPerson:
		rec.BirthDate = req.Natural.BirthDate
	}
	return rec
}
