package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatusIsTerminal(t *testing.T) {
	assert.True(t, JobStatusCompleted.IsTerminal())
	assert.True(t, JobStatusCancelled.IsTerminal())

	assert.False(t, JobStatusAvailable.IsTerminal())
	assert.False(t, JobStatusInProgress.IsTerminal())
	assert.False(t, JobStatusDelivered.IsTerminal())
}

func TestEffectiveCommissionRate(t *testing.T) {
	job := &Job{CommissionRate: 0.12}
	assert.Equal(t, 0.12, job.EffectiveCommissionRate())

	// Нулевая ставка заменяется платформенным дефолтом
	job = &Job{}
	assert.Equal(t, 0.08, job.EffectiveCommissionRate())
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: UserRoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: UserRoleFreelancer}).IsAdmin())
}
