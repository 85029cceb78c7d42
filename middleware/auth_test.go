package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"BE-Hotel-Booking/app/usecases"
)

const testSecret = "testsecret"

type stubRevocationStore struct {
	revoked map[string]bool
}

func (s *stubRevocationStore) Revoke(_ context.Context, token string, _ time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]bool)
	}
	s.revoked[token] = true
	return nil
}

func (s *stubRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	return s.revoked[token], nil
}

func signTestToken(t *testing.T, email, role string, ttl time.Duration) string {
	t.Helper()
	claims := &usecases.Claims{
		Username: "tester",
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, authHeader string, store usecases.RevocationStore) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var passed echo.Context
	handler := JWTAuth(testSecret, store)(func(c echo.Context) error {
		passed = c
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, passed
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	token := signTestToken(t, "guest@example.com", "user", time.Minute)

	rec, passed := runAuth(t, "Bearer "+token, &stubRevocationStore{})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if got := EmailFromContext(passed); got != "guest@example.com" {
		t.Errorf("email from context: got %q", got)
	}
	if got := RoleFromContext(passed); got != "user" {
		t.Errorf("role from context: got %q", got)
	}
	if got := TokenFromContext(passed); got != token {
		t.Errorf("token from context: got %q", got)
	}
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec, _ := runAuth(t, "", &stubRevocationStore{})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	token := signTestToken(t, "guest@example.com", "user", -time.Minute)

	rec, _ := runAuth(t, "Bearer "+token, &stubRevocationStore{})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestJWTAuthRejectsRevokedToken(t *testing.T) {
	token := signTestToken(t, "guest@example.com", "user", time.Minute)
	store := &stubRevocationStore{}
	if err := store.Revoke(context.Background(), token, time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	rec, _ := runAuth(t, "Bearer "+token, store)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	e := echo.New()

	run := func(role string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(contextKeyRole, role)

		handler := RequireRoles("admin")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("middleware returned error: %v", err)
		}
		return rec.Code
	}

	if got := run("admin"); got != http.StatusOK {
		t.Errorf("admin: got %d, want 200", got)
	}
	if got := run("user"); got != http.StatusForbidden {
		t.Errorf("user: got %d, want 403", got)
	}
}
