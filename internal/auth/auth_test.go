package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalSummit/internal/config"
)

func testConfig() config.Admin {
	return config.Admin{
		Email:       "admin@dentalsummit.example",
		Password:    "demo-password",
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
	}
}

func TestLoginAndVerify(t *testing.T) {
	t.Parallel()

	m := New(testConfig())

	token, err := m.Login("admin@dentalsummit.example", "demo-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@dentalsummit.example", subject)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	m := New(testConfig())

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{"Wrong password", "admin@dentalsummit.example", "guess"},
		{"Wrong email", "intruder@example.com", "demo-password"},
		{"Both wrong", "intruder@example.com", "guess"},
		{"Empty", "", ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			token, err := m.Login(tc.email, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	m := New(testConfig())

	token, err := m.Login("admin@dentalsummit.example", "demo-password")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	t.Parallel()

	issuer := New(testConfig())

	otherCfg := testConfig()
	otherCfg.TokenSecret = "different-secret"
	verifier := New(otherCfg)

	token, err := issuer.Login("admin@dentalsummit.example", "demo-password")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.TokenTTL = -time.Minute
	m := New(cfg)

	token, err := m.Login("admin@dentalsummit.example", "demo-password")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	m := New(testConfig())

	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
