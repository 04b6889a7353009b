package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie the guard and the sign-in flow share.
const SessionCookieName = "payhive_session"

// ContextKeyClaims is the echo context key under which the guard stores
// verified session claims.
const ContextKeyClaims = "session_claims"

// SessionVerifier is the slice of the auth service the guard needs:
// verify a token, and mint a replacement for sliding renewal.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*Claims, error)
	RenewSession(ctx context.Context, claims *Claims) (string, error)
}

// GuardConfig controls the path guard middleware.
type GuardConfig struct {
	// ProtectedPrefixes lists URL prefixes requiring an authenticated session.
	ProtectedPrefixes []string
	// AuthPages are paths an authenticated user is redirected away from.
	AuthPages []string
	// SignInPath receives unauthenticated requests for protected paths.
	SignInPath string
	// LandingPath receives authenticated requests for auth pages.
	LandingPath string
	// SessionTTL drives the sliding-renewal threshold (renew when less
	// than half the TTL remains).
	SessionTTL time.Duration
	// SecureCookies marks reissued cookies Secure.
	SecureCookies bool
}

// DefaultGuardConfig returns the guard configuration used by the portal.
func DefaultGuardConfig(protected []string, ttl time.Duration, secure bool) GuardConfig {
	if len(protected) == 0 {
		protected = []string{"/dashboard"}
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return GuardConfig{
		ProtectedPrefixes: protected,
		AuthPages:         []string{"/sign-in", "/sign-up"},
		SignInPath:        "/sign-in",
		LandingPath:       "/dashboard",
		SessionTTL:        ttl,
		SecureCookies:     secure,
	}
}

// Guard returns middleware gating protected path prefixes behind a valid
// session cookie. Unauthenticated access to a protected path redirects to
// the sign-in page with a callbackUrl parameter; authenticated access to
// the sign-in/sign-up pages redirects to the landing page. An expired or
// malformed cookie is treated as unauthenticated, never as an error.
func Guard(cfg GuardConfig, verifier SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			claims := verifiedClaims(c, verifier)

			if claims == nil {
				if hasPrefix(path, cfg.ProtectedPrefixes) {
					target := cfg.SignInPath + "?callbackUrl=" + url.QueryEscape(path)
					return c.Redirect(http.StatusFound, target)
				}
				return next(c)
			}

			if isAuthPage(path, cfg.AuthPages) {
				return c.Redirect(http.StatusFound, cfg.LandingPath)
			}

			if time.Until(claims.ExpiresAt.Time) < cfg.SessionTTL/2 {
				if token, err := verifier.RenewSession(c.Request().Context(), claims); err == nil {
					SetSessionCookie(c, token, cfg.SessionTTL, cfg.SecureCookies)
				}
			}

			c.Set(ContextKeyClaims, claims)
			return next(c)
		}
	}
}

// SetSessionCookie writes the session cookie on the response.
func SetSessionCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClaimsFromContext returns the guard-verified claims, or nil when the
// request carried no valid session.
func ClaimsFromContext(c echo.Context) *Claims {
	claims, _ := c.Get(ContextKeyClaims).(*Claims)
	return claims
}

func verifiedClaims(c echo.Context, verifier SessionVerifier) *Claims {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := verifier.VerifySession(c.Request().Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}

func hasPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isAuthPage(path string, pages []string) bool {
	for _, page := range pages {
		if path == page {
			return true
		}
	}
	return false
}
