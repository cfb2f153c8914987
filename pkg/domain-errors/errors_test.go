package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCauseReachable(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(CodeDelivery, "el documento no pudo enviarse a su correo", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))

	// The summary stays clean; the cause only shows in the full chain.
	assert.Equal(t, "el documento no pudo enviarse a su correo", err.Message)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrapNilCause(t *testing.T) {
	err := Wrap(CodeStore, "no pudo archivarse", nil)
	assert.Nil(t, errors.Unwrap(err))
	assert.Equal(t, "store_failure: no pudo archivarse", err.Error())
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("finalize: %w", Wrap(CodeRender, "no fue posible generar el documento", errors.New("image too large")))

	assert.True(t, Is(err, CodeRender))
	assert.False(t, Is(err, CodeDelivery))
	assert.Equal(t, CodeRender, CodeOf(err))
}

func TestCodeOfUncodedError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}

func TestNewValidationCarriesFields(t *testing.T) {
	err := NewValidation("por favor complete los campos marcados", map[string]string{"email": "campo obligatorio"})
	require.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, "campo obligatorio", err.Fields["email"])
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:   http.StatusBadRequest,
		CodeBadRequest:   http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeNotFound:     http.StatusNotFound,
		CodeInvalidState: http.StatusConflict,
		CodeDelivery:     http.StatusBadGateway,
		CodeAppend:       http.StatusBadGateway,
		CodeStore:        http.StatusBadGateway,
		CodeRender:       http.StatusInternalServerError,
		CodeInternal:     http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), string(code))
	}
}
