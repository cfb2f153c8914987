// Package handler exposes the interactive consent workflow over HTTP. Every
// route addresses one session; the handler stays thin and defers all
// transition rules to the workflow service.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vincula/internal/consent"
	"vincula/internal/platform/metrics"
	"vincula/internal/platform/middleware"
	"vincula/internal/transport/http/shared"
	"vincula/internal/workflow"
	dErrors "vincula/pkg/domain-errors"
)

// Service defines the workflow operations the handler drives.
type Service interface {
	CreateSession(ctx context.Context) (*workflow.Session, error)
	GetSession(ctx context.Context, id string) (*workflow.Session, error)
	AcceptTerms(ctx context.Context, id string) (*workflow.Session, error)
	BackToTerms(ctx context.Context, id string) (*workflow.Session, error)
	SelectSubjectType(ctx context.Context, id string, kind consent.SubjectKind) (*workflow.Session, error)
	SubmitForm(ctx context.Context, id string, sub workflow.FormSubmission) (*workflow.Session, error)
	SubmitCode(ctx context.Context, id, code string) (*workflow.FinalizeResult, error)
	EditForm(ctx context.Context, id string) (*workflow.Session, error)
	Restart(ctx context.Context, id string) (*workflow.Session, error)
}

// Handler handles session workflow endpoints.
type Handler struct {
	logger   *slog.Logger
	workflow Service
	metrics  *metrics.Metrics
}

// New creates a new workflow Handler.
func New(workflow Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		workflow: workflow,
		metrics:  metrics,
	}
}

// Register registers the session routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	sessionRouter := chi.NewRouter()
	sessionRouter.Use(middleware.Recovery(h.logger))
	sessionRouter.Use(middleware.RequestID)
	sessionRouter.Use(middleware.Logger(h.logger))
	sessionRouter.Use(middleware.Timeout(60 * time.Second))
	sessionRouter.Use(middleware.ContentTypeJSON)
	sessionRouter.Use(middleware.Latency(h.metrics))

	sessionRouter.Post("/", h.handleCreateSession)
	sessionRouter.Get("/{sessionID}", h.handleGetSession)
	sessionRouter.Post("/{sessionID}/terms", h.handleAcceptTerms)
	sessionRouter.Post("/{sessionID}/terms/back", h.handleBackToTerms)
	sessionRouter.Post("/{sessionID}/subject-type", h.handleSelectSubjectType)
	sessionRouter.Post("/{sessionID}/form", h.handleSubmitForm)
	sessionRouter.Post("/{sessionID}/verify", h.handleSubmitCode)
	sessionRouter.Post("/{sessionID}/edit", h.handleEditForm)
	sessionRouter.Post("/{sessionID}/restart", h.handleRestart)

	r.Mount("/sessions", sessionRouter)
}

// SessionResponse is the session view returned by every transition.
type SessionResponse struct {
	ID          string                   `json:"id"`
	State       workflow.State           `json:"state"`
	FieldErrors map[string]string        `json:"field_errors,omitempty"`
	Completed   *workflow.IssuedDocument `json:"completed,omitempty"`
}

// VerifyResponse extends the session view with issuance warnings.
type VerifyResponse struct {
	SessionResponse
	Warnings []string `json:"warnings,omitempty"`
}

func toSessionResponse(s *workflow.Session) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		State:       s.State,
		FieldErrors: s.FieldErrors,
		Completed:   s.Completed,
	}
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, err := h.workflow.CreateSession(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create session",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.workflow.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toSessionResponse(session))
}

func (h *Handler) handleAcceptTerms(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.workflow.AcceptTerms)
}

func (h *Handler) handleBackToTerms(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.workflow.BackToTerms)
}

func (h *Handler) handleEditForm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.workflow.EditForm)
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.workflow.Restart)
}

// transition runs a parameterless state transition and renders the result.
func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (*workflow.Session, error)) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "sessionID")

	session, err := fn(ctx, sessionID)
	if err != nil {
		h.warnOnReject(ctx, sessionID, err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toSessionResponse(session))
}

// SelectSubjectTypeRequest picks the form branch.
type SelectSubjectTypeRequest struct {
	Kind consent.SubjectKind `json:"kind"`
}

func (h *Handler) handleSelectSubjectType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "sessionID")

	var req SelectSubjectTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	session, err := h.workflow.SelectSubjectType(ctx, sessionID, req.Kind)
	if err != nil {
		h.warnOnReject(ctx, sessionID, err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toSessionResponse(session))
}

func (h *Handler) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "sessionID")

	// FormSubmission decodes directly: the signature travels base64-encoded
	// in signature_png.
	var sub workflow.FormSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	session, err := h.workflow.SubmitForm(ctx, sessionID, sub)
	if err != nil {
		h.warnOnReject(ctx, sessionID, err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toSessionResponse(session))
}

// SubmitCodeRequest carries the verification code exactly as typed.
type SubmitCodeRequest struct {
	Code string `json:"code"`
}

func (h *Handler) handleSubmitCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "sessionID")

	var req SubmitCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.workflow.SubmitCode(ctx, sessionID, req.Code)
	if err != nil {
		h.warnOnReject(ctx, sessionID, err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, VerifyResponse{
		SessionResponse: toSessionResponse(result.Session),
		Warnings:        result.Warnings,
	})
}

// warnOnReject logs rejected transitions at warn and real failures at error.
func (h *Handler) warnOnReject(ctx context.Context, sessionID string, err error) {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeInvalidState, dErrors.CodeBadRequest, dErrors.CodeNotFound:
		h.logger.WarnContext(ctx, "transition rejected",
			"request_id", middleware.GetRequestID(ctx),
			"session_id", sessionID,
			"error", err.Error(),
		)
	default:
		h.logger.ErrorContext(ctx, "transition failed",
			"request_id", middleware.GetRequestID(ctx),
			"session_id", sessionID,
			"error", err.Error(),
		)
	}
}
