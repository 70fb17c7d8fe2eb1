package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func identityEngine() (*gin.Engine, *struct {
	id   int64
	ok   bool
	role string
}) {
	gin.SetMode(gin.TestMode)
	captured := &struct {
		id   int64
		ok   bool
		role string
	}{}

	r := gin.New()
	r.Use(UserIdentity(testSecret))
	r.GET("/probe", func(c *gin.Context) {
		captured.id, captured.ok = CurrentUserID(c)
		captured.role = CurrentRole(c)
		c.Status(http.StatusOK)
	})
	return r, captured
}

func TestUserIdentityFromBearerToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 5,
		"role":    "USER",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	r, captured := identityEngine()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !captured.ok || captured.id != 5 {
		t.Fatalf("identity = (%d, %v), want (5, true)", captured.id, captured.ok)
	}
	if captured.role != "USER" {
		t.Fatalf("role = %q, want USER", captured.role)
	}
}

func TestUserIdentityFallsBackToHeader(t *testing.T) {
	r, captured := identityEngine()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-User-Id", "42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !captured.ok || captured.id != 42 {
		t.Fatalf("identity = (%d, %v), want (42, true)", captured.id, captured.ok)
	}
}

func TestUserIdentityIgnoresForgedToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 5,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	r, captured := identityEngine()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if captured.ok {
		t.Fatalf("forged token accepted as user %d", captured.id)
	}
}

func TestUserIdentityIgnoresBadHeader(t *testing.T) {
	r, captured := identityEngine()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-User-Id", "not-a-number")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if captured.ok {
		t.Fatal("non-numeric header produced an identity")
	}
}
