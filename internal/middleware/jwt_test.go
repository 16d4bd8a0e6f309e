package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/moodsnap/moodsnap/internal/utils"
)

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotEmail string
	e := echo.New()
	h := JWTAuth("secret")(func(c echo.Context) error {
		gotEmail, _ = c.Get(EmailKey).(string)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec, gotEmail
}

func TestJWTAuth_ValidToken(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken("secret", "a@b.com", 15)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	rec, email := runJWT(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if email != "a@b.com" {
		t.Fatalf("context email = %q, want a@b.com", email)
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	rec, _ := runJWT(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	t.Parallel()

	rec, _ := runJWT(t, "Bearer not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken("other-secret", "a@b.com", 15)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	rec, _ := runJWT(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
