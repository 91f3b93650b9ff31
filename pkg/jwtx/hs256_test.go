package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "gymd-test"

func newTestHS256(t *testing.T) *HS256 {
	t.Helper()
	h, err := NewHS256("test-secret-please-rotate", testIssuer)
	require.NoError(t, err)
	return h
}

func TestNewHS256RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256("", testIssuer)
	require.Error(t, err)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	now := time.Now()
	claims := NewAccessClaims("u1", "alice", "client", "c1", 15*time.Minute, testIssuer, now)

	token, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u1", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "client", got.Role)
	require.Equal(t, "c1", got.CompanyID)
	require.Equal(t, testIssuer, got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	claims := NewAccessClaims("u1", "alice", "client", "c1", 15*time.Minute, testIssuer, time.Now())
	token, err := h.Sign(claims)
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = h.Verify(tampered)
	require.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	other, err := NewHS256("a-different-secret", testIssuer)
	require.NoError(t, err)

	token, err := other.Sign(NewAccessClaims("u1", "alice", "client", "c1", time.Minute, testIssuer, time.Now()))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	issued := time.Now().Add(-time.Hour)
	token, err := h.Sign(NewAccessClaims("u1", "alice", "client", "c1", time.Minute, testIssuer, issued))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	token, err := h.Sign(NewAccessClaims("u1", "alice", "client", "c1", time.Minute, "someone-else", time.Now()))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	_, err := h.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrMalformed)

	_, err = h.Verify("")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeSkipsSignatureAndExpiry(t *testing.T) {
	t.Parallel()
	h := newTestHS256(t)

	// Expired token signed with a different secret: Decode still reads it.
	other, err := NewHS256("unrelated-secret", testIssuer)
	require.NoError(t, err)

	issued := time.Now().Add(-time.Hour)
	token, err := other.Sign(NewAccessClaims("u9", "bob", "staff", "c2", time.Minute, testIssuer, issued))
	require.NoError(t, err)

	got, err := Decode(token)
	require.NoError(t, err)
	require.Equal(t, "u9", got.Subject)
	require.Equal(t, "bob", got.Username)
	require.Equal(t, "staff", got.Role)
	require.Equal(t, "c2", got.CompanyID)

	// But the verifying path still rejects it.
	_, err = h.Verify(token)
	require.Error(t, err)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Decode("garbage")
	require.ErrorIs(t, err, ErrMalformed)
}
