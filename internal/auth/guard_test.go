package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// fakeVerifier implements SessionVerifier for guard tests.
type fakeVerifier struct {
	claims  *Claims
	renewed string
	renews  int
}

func (f *fakeVerifier) VerifySession(ctx context.Context, token string) (*Claims, error) {
	if f.claims == nil {
		return nil, errors.New("invalid session")
	}
	return f.claims, nil
}

func (f *fakeVerifier) RenewSession(ctx context.Context, claims *Claims) (string, error) {
	f.renews++
	if f.renewed == "" {
		return "", errors.New("renew failed")
	}
	return f.renewed, nil
}

func claimsExpiringIn(d time.Duration) *Claims {
	return &Claims{
		UserID: 1,
		Email:  "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "sess-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(d)),
		},
	}
}

func runGuard(t *testing.T, path string, cookie string, verifier SessionVerifier) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cfg := DefaultGuardConfig([]string{"/dashboard"}, time.Hour, false)
	handler := Guard(cfg, verifier)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return rec, handler(c)
}

func TestGuard_ProtectedWithoutSession(t *testing.T) {
	rec, err := runGuard(t, "/dashboard", "", &fakeVerifier{})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/sign-in?callbackUrl=%2Fdashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestGuard_ProtectedWithInvalidCookie(t *testing.T) {
	// Malformed or expired cookie is plain unauthenticated, never an error.
	rec, err := runGuard(t, "/dashboard/reports", "garbage", &fakeVerifier{})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/sign-in?callbackUrl=%2Fdashboard%2Freports", rec.Header().Get(echo.HeaderLocation))
}

func TestGuard_PublicWithoutSession(t *testing.T) {
	rec, err := runGuard(t, "/sign-in", "", &fakeVerifier{})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuard_AuthenticatedOnAuthPage(t *testing.T) {
	verifier := &fakeVerifier{claims: claimsExpiringIn(time.Hour)}
	rec, err := runGuard(t, "/sign-in", "valid-token", verifier)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestGuard_AuthenticatedOnProtectedPage(t *testing.T) {
	verifier := &fakeVerifier{claims: claimsExpiringIn(time.Hour)}
	rec, err := runGuard(t, "/dashboard", "valid-token", verifier)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, verifier.renews)
}

func TestGuard_SlidingRenewal(t *testing.T) {
	// Less than half the TTL remains: the guard reissues the cookie.
	verifier := &fakeVerifier{claims: claimsExpiringIn(10 * time.Minute), renewed: "fresh-token"}
	rec, err := runGuard(t, "/dashboard", "valid-token", verifier)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, verifier.renews)

	cookies := rec.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == SessionCookieName {
			found = true
			assert.Equal(t, "fresh-token", cookie.Value)
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, found, "expected a reissued session cookie")
}

func TestGuard_RenewalFailureKeepsRequestAlive(t *testing.T) {
	verifier := &fakeVerifier{claims: claimsExpiringIn(10 * time.Minute)}
	rec, err := runGuard(t, "/dashboard", "valid-token", verifier)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
