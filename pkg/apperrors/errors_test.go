package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("record not found")
	appErr := Wrap(cause, CodeNotFound, "job", "Job not found", http.StatusNotFound)

	assert.True(t, Is(appErr, cause))
	assert.Contains(t, appErr.Error(), "Job not found")
	assert.Contains(t, appErr.Error(), "record not found")

	var target *AppError
	require.True(t, As(appErr, &target))
	assert.Equal(t, CodeNotFound, target.Code)
	assert.Equal(t, http.StatusNotFound, target.HTTPCode)
}

func TestInternalErrorWraps(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := InternalError(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.True(t, Is(appErr, cause))
}

func TestErrInvalidJobStatusMessage(t *testing.T) {
	appErr := ErrInvalidJobStatus("delivered", "in_progress")

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, "Job must be in 'delivered' status. Current status: in_progress", appErr.Message)
}

func TestMarshalJSONHidesInternals(t *testing.T) {
	cause := errors.New("secret db details")
	appErr := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret db details")
	assert.NotContains(t, string(raw), "500")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "system", decoded["domain"])
	assert.Equal(t, "Internal server error", decoded["message"])
}

func TestValidationErrorDetails(t *testing.T) {
	details := map[string]string{"email": "Must be a valid email address"}
	appErr := ValidationError(details)

	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}

func TestPredefinedErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrUserInactive.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrCannotModifySelf.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrAlreadyApplied.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrJobNotOpen.HTTPCode)
}
