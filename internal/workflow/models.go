package workflow

import (
	"time"

	"vincula/internal/consent"
	"vincula/internal/otp"
)

// State is the position of one interactive session in the consent workflow.
type State string

const (
	// StateTermsPending is the entry state: terms shown, not yet accepted.
	StateTermsPending State = "terms_pending"
	// StateSubjectTypeSelection follows term acceptance. Accepting terms is
	// irreversible forward for the session; going back from here clears any
	// branch data.
	StateSubjectTypeSelection State = "subject_type_selection"
	// StateNaturalForm and StateEntityForm are the two data-entry branches.
	StateNaturalForm State = "natural_form"
	StateEntityForm  State = "entity_form"
	// StateAwaitingVerification holds the validated request plus the active
	// challenge until the subject proves control of the declared email.
	StateAwaitingVerification State = "awaiting_verification"
	// StateCompleted is terminal until the subject starts over.
	StateCompleted State = "completed"
)

// IssuedDocument summarizes the finalized artifact for the completed view.
type IssuedDocument struct {
	DocumentID  string    `json:"document_id"`
	Link        string    `json:"link"`
	SubjectName string    `json:"subject_name"`
	IssuedAt    time.Time `json:"issued_at"`
}

// Session is the owned state of one subject's run through the workflow.
// All mutation happens inside the service under the session's lock; the
// stores only serialize and fetch it.
type Session struct {
	ID          string            `json:"id"`
	State       State             `json:"state"`
	Request     *consent.Request  `json:"request,omitempty"`
	Challenge   *otp.Challenge    `json:"challenge,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	Completed   *IssuedDocument   `json:"completed,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// formState maps a subject kind to its data-entry state.
func formState(kind consent.SubjectKind) State {
	if kind == consent.SubjectLegalEntity {
		return StateEntityForm
	}
	return StateNaturalForm
}

// inFormState reports whether the session sits on a data-entry branch.
func (s *Session) inFormState() bool {
	return s.State == StateNaturalForm || s.State == StateEntityForm
}

// FormSubmission carries one form submit: the branch data plus the raw
// signature PNG from the drawing surface.
type FormSubmission struct {
	Kind         consent.SubjectKind    `json:"kind"`
	Natural      *consent.NaturalPerson `json:"natural,omitempty"`
	Entity       *consent.LegalEntity   `json:"entity,omitempty"`
	SignaturePNG []byte                 `json:"signature_png"`
}

// FinalizeResult is returned when a submitted code matches and finalization
// succeeds. Warnings carry degraded-but-continue conditions (traceability log
// unreachable) that the shell must surface to the operator.
type FinalizeResult struct {
	Session  *Session
	Document IssuedDocument
	Warnings []string
}
