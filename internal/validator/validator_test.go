package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	Role    string  `json:"role" validate:"omitempty,is-user-role"`
	Status  string  `json:"status" validate:"omitempty,is-job-status"`
	Urgency string  `json:"urgency" validate:"omitempty,is-urgency"`
	Rate    float64 `json:"rate" validate:"gte=0,lte=1"`
}

func TestValidateOK(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:   "user@example.com",
		Role:    "admin",
		Status:  "in_progress",
		Urgency: "high",
		Rate:    0.5,
	})
	assert.NoError(t, err)
}

func TestValidateEmptyOptionalFields(t *testing.T) {
	v := New()

	// omitempty: пустые значения кастомных правил не проверяются
	err := v.Validate(&sampleRequest{Email: "user@example.com"})
	assert.NoError(t, err)
}

func TestValidateCustomRules(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:   "user@example.com",
		Role:    "superuser",
		Status:  "paused",
		Urgency: "asap",
	})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "role")
	assert.Contains(t, verr.Errors, "status")
	assert.Contains(t, verr.Errors, "urgency")
	assert.Equal(t, "Must be a valid user role (freelancer, admin)", verr.Errors["role"])
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Rate: 2.0})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email")
	assert.Contains(t, verr.Errors, "rate")
	assert.NotContains(t, verr.Errors, "Email")
}
