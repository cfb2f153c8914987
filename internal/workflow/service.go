package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vincula/internal/archive"
	"vincula/internal/consent"
	"vincula/internal/document"
	"vincula/internal/notify"
	"vincula/internal/otp"
	"vincula/internal/platform/metrics"
	"vincula/internal/signature"
	"vincula/internal/trace"
	dErrors "vincula/pkg/domain-errors"
	"vincula/pkg/platform/sentinel"
)

// SessionStore persists sessions between requests. Implementations live in
// the store subpackages; the service depends only on this surface.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// CodeManager issues and checks verification challenges.
type CodeManager interface {
	Issue(ctx context.Context, destination string) (*otp.Challenge, error)
	Verify(challenge *otp.Challenge, submitted string) bool
}

// Composer renders the finalized consent document.
type Composer interface {
	Compose(req *consent.Request, tr document.Traceability) ([]byte, error)
}

// ServiceConfig carries the service's collaborators and policy knobs.
type ServiceConfig struct {
	Sessions SessionStore
	Codes    CodeManager
	Composer Composer
	Trace    trace.Log
	Notifier notify.Sender
	Archive  archive.Store
	Metrics  *metrics.Metrics
	Logger   *slog.Logger

	// Clock defaults to time.Now. Zone is the subject's civil time zone and
	// defaults to UTC; issuedAt and the document id derive from it.
	Clock   func() time.Time
	Zone    *time.Location
	Channel string
}

// Service runs the consent capture state machine. All session mutation
// happens under the session's lock; a given session sees strictly sequential
// transitions even when requests race.
type Service struct {
	sessions SessionStore
	codes    CodeManager
	composer Composer
	trace    trace.Log
	notifier notify.Sender
	archive  archive.Store
	metrics  *metrics.Metrics
	logger   *slog.Logger

	clock   func() time.Time
	zone    *time.Location
	channel string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService builds the workflow service.
func NewService(cfg ServiceConfig) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	zone := cfg.Zone
	if zone == nil {
		zone = time.UTC
	}
	return &Service{
		sessions: cfg.Sessions,
		codes:    cfg.Codes,
		composer: cfg.Composer,
		trace:    cfg.Trace,
		notifier: cfg.Notifier,
		archive:  cfg.Archive,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		clock:    clock,
		zone:     zone,
		channel:  cfg.Channel,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockSession returns the per-session mutex, creating it on first use.
// Entries are never reaped; session counts are small and bounded by store TTL.
func (s *Service) lockSession(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// CreateSession opens a fresh session at the terms step.
func (s *Service) CreateSession(ctx context.Context) (*Session, error) {
	now := s.clock().UTC()
	session := &Session{
		ID:        uuid.NewString(),
		State:     StateTermsPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not create session", err)
	}
	s.metrics.SessionsCreated.Inc()
	s.logger.InfoContext(ctx, "session created", "session_id", session.ID)
	return session, nil
}

// GetSession returns the current session state for rendering.
func (s *Service) GetSession(ctx context.Context, id string) (*Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(id, err)
	}
	return session, nil
}

// AcceptTerms moves the session past the terms step. Acceptance is a forward
// step; returning to terms later wipes any branch data (see BackToTerms).
func (s *Service) AcceptTerms(ctx context.Context, id string) (*Session, error) {
	return s.transition(ctx, id, func(session *Session) error {
		if session.State != StateTermsPending {
			return invalidState("accept terms", session.State)
		}
		session.State = StateSubjectTypeSelection
		return nil
	})
}

// BackToTerms returns from subject-type selection to the terms step and
// discards any subject-type choice and entered data. Full branch reset.
func (s *Service) BackToTerms(ctx context.Context, id string) (*Session, error) {
	return s.transition(ctx, id, func(session *Session) error {
		if session.State != StateSubjectTypeSelection {
			return invalidState("back to terms", session.State)
		}
		session.State = StateTermsPending
		session.Request = nil
		session.Challenge = nil
		session.FieldErrors = nil
		return nil
	})
}

// SelectSubjectType branches the session into the natural-person or
// legal-entity form.
func (s *Service) SelectSubjectType(ctx context.Context, id string, kind consent.SubjectKind) (*Session, error) {
	if kind != consent.SubjectNaturalPerson && kind != consent.SubjectLegalEntity {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown subject type %q", kind))
	}
	return s.transition(ctx, id, func(session *Session) error {
		if session.State != StateSubjectTypeSelection {
			return invalidState("select subject type", session.State)
		}
		session.State = formState(kind)
		session.Request = nil
		session.FieldErrors = nil
		return nil
	})
}

// SubmitForm validates the branch data and the signature, and on success
// issues a verification code to the declared email and advances the session
// to the verification step. Submitting again while a code is pending is
// allowed and supersedes the previous challenge.
//
// Validation failure keeps the session on the form with field errors set; no
// code is issued and nothing reaches the traceability log. Code delivery
// failure also keeps the session on the form: advancing would strand the
// subject waiting for a code that never arrives.
func (s *Service) SubmitForm(ctx context.Context, id string, sub FormSubmission) (*Session, error) {
	lock := s.lockSession(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(id, err)
	}
	if !session.inFormState() && session.State != StateAwaitingVerification {
		return nil, invalidState("submit form", session.State)
	}
	if session.inFormState() && formState(sub.Kind) != session.State {
		return nil, dErrors.New(dErrors.CodeBadRequest, "submitted subject type does not match the session")
	}

	req := &consent.Request{
		Kind:      sub.Kind,
		Natural:   sub.Natural,
		Entity:    sub.Entity,
		CreatedAt: s.clock().UTC(),
	}

	fieldErrs := req.Validate()
	normalized, sigErr := normalizeSignature(sub.SignaturePNG)
	if sigErr != nil {
		if fieldErrs == nil {
			fieldErrs = map[string]string{}
		}
		fieldErrs["signature"] = "Por favor, dibuje su firma para continuar."
	}
	if len(fieldErrs) > 0 {
		session.State = formState(sub.Kind)
		session.FieldErrors = fieldErrs
		session.Challenge = nil
		session.UpdatedAt = s.clock().UTC()
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, dErrors.Wrap(dErrors.CodeInternal, "could not save session", err)
		}
		return nil, dErrors.NewValidation("por favor complete los campos marcados", fieldErrs)
	}
	req.Signature = normalized

	challenge, err := s.codes.Issue(ctx, req.Email())
	if err != nil {
		// Stay on the form. The error is already coded by the manager.
		s.metrics.FinalizeFailures.WithLabelValues("delivery").Inc()
		return nil, err
	}
	s.metrics.OTPIssued.Inc()

	session.State = StateAwaitingVerification
	session.Request = req
	session.Challenge = challenge
	session.FieldErrors = nil
	session.UpdatedAt = s.clock().UTC()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not save session", err)
	}
	s.logger.InfoContext(ctx, "verification code issued",
		"session_id", session.ID,
		"destination", req.Email(),
	)
	return session, nil
}

// EditForm returns from the verification step to the form with the entered
// data intact. The pending challenge is discarded, so any code already in the
// subject's inbox becomes useless.
func (s *Service) EditForm(ctx context.Context, id string) (*Session, error) {
	return s.transition(ctx, id, func(session *Session) error {
		if session.State != StateAwaitingVerification {
			return invalidState("edit form", session.State)
		}
		session.State = formState(session.Request.Kind)
		session.Challenge = nil
		return nil
	})
}

// Restart resets a completed session back to the terms step, clearing all
// captured data.
func (s *Service) Restart(ctx context.Context, id string) (*Session, error) {
	return s.transition(ctx, id, func(session *Session) error {
		if session.State != StateCompleted {
			return invalidState("start over", session.State)
		}
		session.State = StateTermsPending
		session.Request = nil
		session.Challenge = nil
		session.FieldErrors = nil
		session.Completed = nil
		return nil
	})
}

// SubmitCode checks the submitted verification code and, on a match, runs
// finalization: render the document, append the traceability row, email the
// document, then archive it. Archival is gated on the email succeeding: the
// artifact is only stored once the subject actually has it.
//
// A render or delivery failure leaves the session awaiting verification so
// the subject can retry with the same code; an error row is appended when the
// log is reachable. A trace append failure alone never blocks issuance: it is
// reported as a warning on the result.
func (s *Service) SubmitCode(ctx context.Context, id, submitted string) (*FinalizeResult, error) {
	lock := s.lockSession(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(id, err)
	}
	if session.State != StateAwaitingVerification {
		return nil, invalidState("verify code", session.State)
	}
	if !s.codes.Verify(session.Challenge, submitted) {
		s.metrics.OTPMismatches.Inc()
		s.logger.WarnContext(ctx, "verification code mismatch", "session_id", session.ID)
		return nil, dErrors.New(dErrors.CodeValidation, "el código ingresado no es correcto")
	}

	result, err := s.finalize(ctx, session, submitted)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// finalize runs the issuance sequence for a session whose code just matched.
// The caller holds the session lock.
func (s *Service) finalize(ctx context.Context, session *Session, code string) (*FinalizeResult, error) {
	req := session.Request
	issuedAt := s.clock().In(s.zone)
	documentID := fmt.Sprintf("FER-%s-%s", issuedAt.Format("20060102150405"), req.IdentityNumber())
	var warnings []string

	pdf, err := s.composer.Compose(req, document.Traceability{
		DocumentID: documentID,
		IssuedAt:   issuedAt,
		Channel:    s.channel,
		Email:      req.Email(),
	})
	if err != nil {
		s.metrics.FinalizeFailures.WithLabelValues("render").Inc()
		s.appendErrorRow(ctx, req, documentID, issuedAt, code, err)
		return nil, dErrors.Wrap(dErrors.CodeRender, "no fue posible generar el documento", err)
	}

	rec := trace.NewRecord(req, documentID, issuedAt, code, trace.StatusSent)
	if err := s.trace.Append(ctx, rec); err != nil {
		s.metrics.TraceAppendFailures.Inc()
		s.metrics.FinalizeFailures.WithLabelValues("append").Inc()
		s.logger.ErrorContext(ctx, "traceability append failed",
			"session_id", session.ID,
			"document_id", documentID,
			"error", err,
		)
		warnings = append(warnings, "el registro de trazabilidad no está disponible; la fila debe reconstruirse manualmente")
	}

	filename := documentFilename(req.SubjectName(), req.IdentityNumber())
	msg := notify.Message{
		To:       req.Email(),
		Subject:  fmt.Sprintf("Confirmación Vinculación - %s", req.SubjectName()),
		HTMLBody: documentEmailBody(req, documentID, issuedAt),
		Attachment: &notify.Attachment{
			Filename: filename,
			Content:  pdf,
		},
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.metrics.FinalizeFailures.WithLabelValues("delivery").Inc()
		s.appendErrorRow(ctx, req, documentID, issuedAt, code, err)
		return nil, dErrors.Wrap(dErrors.CodeDelivery,
			"el documento no pudo enviarse a su correo; intente de nuevo", err)
	}

	handle, err := s.archive.Store(ctx, filename, pdf)
	if err != nil {
		s.metrics.FinalizeFailures.WithLabelValues("archive").Inc()
		s.appendErrorRow(ctx, req, documentID, issuedAt, code, err)
		return nil, dErrors.Wrap(dErrors.CodeStore,
			"el documento fue enviado a su correo pero no pudo archivarse", err)
	}

	issued := IssuedDocument{
		DocumentID:  documentID,
		Link:        handle.Link,
		SubjectName: req.SubjectName(),
		IssuedAt:    issuedAt,
	}
	session.State = StateCompleted
	session.Completed = &issued
	session.Request = nil
	session.Challenge = nil
	session.FieldErrors = nil
	session.UpdatedAt = s.clock().UTC()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not save session", err)
	}

	s.metrics.DocumentsIssued.Inc()
	s.logger.InfoContext(ctx, "document issued",
		"session_id", session.ID,
		"document_id", documentID,
		"subject", req.SubjectName(),
	)
	return &FinalizeResult{Session: session, Document: issued, Warnings: warnings}, nil
}

// appendErrorRow records a failed issuance attempt. Best-effort: if the log
// itself is down the failure is only visible in the service log.
func (s *Service) appendErrorRow(ctx context.Context, req *consent.Request, documentID string, issuedAt time.Time, code string, cause error) {
	status := trace.StatusErrorPrefix + cause.Error()
	rec := trace.NewRecord(req, documentID, issuedAt, code, status)
	if err := s.trace.Append(ctx, rec); err != nil {
		s.metrics.TraceAppendFailures.Inc()
		s.logger.ErrorContext(ctx, "could not append error row",
			"document_id", documentID,
			"error", err,
		)
	}
}

// transition applies fn to the session under its lock and persists the
// result. fn mutates the session in place; returning an error aborts without
// saving.
func (s *Service) transition(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	lock := s.lockSession(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(id, err)
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = s.clock().UTC()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not save session", err)
	}
	return session, nil
}

// normalizeSignature decodes and normalizes the raw canvas PNG. A missing,
// undecodable or blank drawing reports ErrMissingSignature.
func normalizeSignature(raw []byte) ([]byte, error) {
	img, err := signature.Decode(raw)
	if err != nil {
		return nil, err
	}
	if signature.IsBlank(img) {
		return nil, signature.ErrMissingSignature
	}
	return signature.Normalize(img)
}

func invalidState(action string, state State) error {
	return dErrors.New(dErrors.CodeInvalidState,
		fmt.Sprintf("cannot %s from state %q", action, state))
}

func mapStoreErr(id string, err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("session %s not found", id))
	}
	return dErrors.Wrap(dErrors.CodeInternal, "session store unavailable", err)
}

// documentFilename builds the attachment and archive name,
// e.g. "Autorizacion_Acme_SAS_900111222.pdf".
func documentFilename(subjectName, identityNumber string) string {
	return fmt.Sprintf("Autorizacion_%s_%s.pdf",
		strings.ReplaceAll(strings.TrimSpace(subjectName), " ", "_"), identityNumber)
}
