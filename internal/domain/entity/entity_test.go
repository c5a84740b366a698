package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Jane@Example.com", want: "jane@example.com"},
		{raw: "  JANE@EXAMPLE.COM\t", want: "jane@example.com"},
		{raw: "jane@example.com", want: "jane@example.com"},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.raw), "raw=%q", tt.raw)
	}
}

func TestPendingRegistration_IsExpired(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	p := &PendingRegistration{CreatedAt: created, ExpiresAt: created.Add(5 * time.Minute)}

	assert.False(t, p.IsExpired(p.ExpiresAt.Add(-time.Millisecond)))
	assert.True(t, p.IsExpired(p.ExpiresAt))
	assert.True(t, p.IsExpired(p.ExpiresAt.Add(time.Second)))
}

func TestPendingRegistration_ToAccount(t *testing.T) {
	p := &PendingRegistration{
		Email:        "jane@example.com",
		FullName:     "Jane Doe",
		Username:     "jdoe",
		PasswordHash: "hash",
		Code:         "123456",
	}

	account := p.ToAccount()
	assert.Equal(t, uuid.Nil, account.ID)
	assert.Equal(t, "jane@example.com", account.Email)
	assert.Equal(t, "Jane Doe", account.FullName)
	assert.Equal(t, "jdoe", account.Username)
	assert.Equal(t, "hash", account.PasswordHash)
}

func TestAccount_Public(t *testing.T) {
	account := &Account{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hash"}

	public := account.Public()
	assert.Empty(t, public.PasswordHash)
	assert.Equal(t, account.ID, public.ID)
	assert.Equal(t, "hash", account.PasswordHash)

	var nilAccount *Account
	assert.Nil(t, nilAccount.Public())
}

func TestLoginAttempt_IsLocked(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&LoginAttempt{Failures: 3}).IsLocked(now))
	assert.True(t, (&LoginAttempt{LockedUntil: now.Add(time.Minute)}).IsLocked(now))
	assert.False(t, (&LoginAttempt{LockedUntil: now}).IsLocked(now))
}
