package admin

// LoginRequest carries the management panel password.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse returns the bearer token for the management surface.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// RecordResponse is the HTTP DTO for one traceability row.
type RecordResponse struct {
	Timestamp        string `json:"timestamp"`
	DocumentID       string `json:"document_id"`
	SubjectName      string `json:"subject_name"`
	IdentityNumber   string `json:"identity_number"`
	SignerName       string `json:"signer_name"`
	Email            string `json:"email"`
	City             string `json:"city"`
	Phones           string `json:"phones"`
	SubjectKind      string `json:"subject_kind"`
	Status           string `json:"status"`
	VerificationCode string `json:"verification_code"`
	BirthDate        string `json:"birth_date,omitempty"`
}

// RecordsListResponse wraps the traceability listing.
type RecordsListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}
