package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"vincula/internal/notify"
	dErrors "vincula/pkg/domain-errors"
)

var codeSpace = big.NewInt(1000000)

// GenerateCode returns a uniformly random 6-digit code. Values 000000 through
// 999999 are all equally likely; small values keep their leading zeros.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Manager issues verification challenges through the notification
// collaborator and validates submitted codes.
type Manager struct {
	sender notify.Sender
	logger *slog.Logger
	clock  func() time.Time
}

// NewManager builds a Manager. clock may be nil; time.Now is used.
func NewManager(sender notify.Sender, logger *slog.Logger, clock func() time.Time) *Manager {
	if clock == nil {
		clock = time.Now
	}
	return &Manager{sender: sender, logger: logger, clock: clock}
}

// Issue generates a fresh code and dispatches it to destination. The caller
// replaces any prior challenge with the returned one. When dispatch fails no
// challenge is returned: the workflow must stay in the form state rather than
// wait for a code the subject will never receive.
func (m *Manager) Issue(ctx context.Context, destination string) (*Challenge, error) {
	code, err := GenerateCode()
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not generate verification code", err)
	}

	msg := notify.Message{
		To:       destination,
		Subject:  "Su Código de Verificación - Ferreinox",
		HTMLBody: codeEmailBody(code),
	}
	if err := m.sender.Send(ctx, msg); err != nil {
		m.logger.ErrorContext(ctx, "verification code dispatch failed",
			"destination", destination,
			"error", err,
		)
		return nil, dErrors.Wrap(dErrors.CodeDelivery, "no fue posible enviar el código de verificación", err)
	}

	return &Challenge{
		Code:        code,
		Destination: destination,
		IssuedAt:    m.clock(),
	}, nil
}

// Verify compares the submitted code against the challenge with exact string
// equality. No trimming, no left-padding: "1234" never matches "001234".
func (m *Manager) Verify(challenge *Challenge, submitted string) bool {
	if challenge == nil {
		return false
	}
	return challenge.Code == submitted
}

func codeEmailBody(code string) string {
	return fmt.Sprintf(`<h3>Su Código de Verificación para Ferreinox</h3>
<p>Hola,</p>
<p>Use el siguiente código para verificar su firma y completar el proceso de vinculación:</p>
<h2 style='text-align:center; letter-spacing: 5px;'>%s</h2>
<p>Este código es válido por un tiempo limitado.</p>
<p>Si usted no solicitó este código, puede ignorar este mensaje.</p>
<br>
<p>Atentamente,</p>
<p><b>Ferreinox S.A.S. BIC</b></p>`, code)
}
