package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")

	token, err := SignJWT(Claims{Sub: "google:123", Email: "jane@example.com", Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three segments, got %q", token)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Sub != "google:123" || claims.Email != "jane@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Iss != "resume-parser" {
		t.Fatalf("issuer not filled in: %q", claims.Iss)
	}
	if claims.Exp <= claims.Iat {
		t.Fatalf("exp %d should be after iat %d", claims.Exp, claims.Iat)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")

	token, err := SignJWT(Claims{Sub: "google:123"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := VerifyJWT(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")

	past := time.Now().UTC().Add(-time.Hour).Unix()
	token, err := SignJWT(Claims{Sub: "google:123", Iat: past - 3600, Exp: past})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if _, err := VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")

	for _, token := range []string{"", "abc", "a.b", "a.b.c.d"} {
		if _, err := VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestSignRequiresSub(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")

	if _, err := SignJWT(Claims{}); err == nil {
		t.Fatal("expected error for missing sub")
	}
}

func TestSignRequiresSecretInProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "production")

	if _, err := SignJWT(Claims{Sub: "google:123"}); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset in production")
	}
}
