// Package handler exposes the management surface: password login and the
// traceability listing.
package handler

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vincula/internal/admin"
	jwttoken "vincula/internal/jwt_token"
	"vincula/internal/platform/metrics"
	"vincula/internal/platform/middleware"
	"vincula/internal/trace"
	"vincula/internal/transport/http/shared"
	dErrors "vincula/pkg/domain-errors"
)

// TokenIssuer mints management tokens after password login.
type TokenIssuer interface {
	GenerateAdminToken(expiresIn time.Duration) (string, error)
}

const tokenTTL = 8 * time.Hour

// Handler handles the management endpoints.
type Handler struct {
	logger       *slog.Logger
	trace        trace.Log
	tokens       TokenIssuer
	password     string
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new admin Handler. password is the shared panel password; an
// empty password disables login entirely.
func New(
	traceLog trace.Log,
	tokens TokenIssuer,
	password string,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		trace:        traceLog,
		tokens:       tokens,
		password:     password,
		metrics:      metrics,
		jwtValidator: jwtValidator,
	}
}

// Register registers the management routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	adminRouter := chi.NewRouter()
	adminRouter.Use(middleware.Recovery(h.logger))
	adminRouter.Use(middleware.RequestID)
	adminRouter.Use(middleware.Logger(h.logger))
	adminRouter.Use(middleware.Timeout(30 * time.Second))
	adminRouter.Use(middleware.ContentTypeJSON)
	adminRouter.Use(middleware.Latency(h.metrics))

	adminRouter.Post("/login", h.handleLogin)
	adminRouter.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		protected.Get("/records", h.handleListRecords)
	})

	r.Mount("/admin", adminRouter)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req admin.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if h.password == "" || subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		h.logger.WarnContext(ctx, "admin login rejected", "request_id", requestID)
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "contraseña incorrecta"))
		return
	}

	token, err := h.tokens.GenerateAdminToken(tokenTTL)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to mint admin token",
			"request_id", requestID,
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "could not issue token"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, admin.LoginResponse{
		Token:     token,
		ExpiresIn: int(tokenTTL.Seconds()),
	})
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if role := middleware.GetRole(ctx); role != jwttoken.RoleAdmin {
		h.logger.WarnContext(ctx, "records access denied",
			"request_id", middleware.GetRequestID(ctx),
			"role", role,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "insufficient role"))
		return
	}

	records, err := h.trace.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list traceability records",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "traceability log unavailable"))
		return
	}

	resp := admin.RecordsListResponse{
		Records: make([]admin.RecordResponse, 0, len(records)),
		Total:   len(records),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, admin.RecordResponse{
			Timestamp:        rec.Timestamp,
			DocumentID:       rec.DocumentID,
			SubjectName:      rec.SubjectName,
			IdentityNumber:   rec.IdentityNumber,
			SignerName:       rec.SignerName,
			Email:            rec.Email,
			City:             rec.City,
			Phones:           rec.Phones,
			SubjectKind:      rec.SubjectKind,
			Status:           rec.Status,
			VerificationCode: rec.VerificationCode,
			BirthDate:        rec.BirthDate,
		})
	}
	shared.WriteJSON(w, http.StatusOK, resp)
}
