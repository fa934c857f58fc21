package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilesh507/medium/internal/auth"
)

const testSecret = "test-secret"

func gateWithSpy(t *testing.T) (http.Handler, *bool, *string) {
	t.Helper()

	called := false
	identity := ""
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		identity, _ = IdentityFrom(r)
	})

	return Auth(testSecret)(next), &called, &identity
}

func TestAuth_MissingHeaderIs401(t *testing.T) {
	gate, called, _ := gateWithSpy(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	gate.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, *called)
}

func TestAuth_MalformedHeaderIs403(t *testing.T) {
	for _, header := range []string{
		"BearerNoSpace",
		"Basic dXNlcjpwYXNz",
		"Bearer ",
	} {
		gate, called, _ := gateWithSpy(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rr := httptest.NewRecorder()
		gate.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "header %q", header)
		assert.False(t, *called, "header %q", header)
	}
}

func TestAuth_BadSignatureIs403(t *testing.T) {
	token, err := auth.GenerateToken("u1", "", "some-other-secret", time.Hour)
	require.NoError(t, err)

	gate, called, _ := gateWithSpy(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	gate.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, *called)
}

func TestAuth_ValidTokenThreadsIdentity(t *testing.T) {
	token, err := auth.GenerateToken("u1", "a@b.com", testSecret, time.Hour)
	require.NoError(t, err)

	gate, called, identity := gateWithSpy(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	gate.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, *called)
	assert.Equal(t, "u1", *identity)
}

func TestIdentityFrom_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := IdentityFrom(req)
	assert.False(t, ok)
}
