package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestAuthenticator() *JWTAuthenticator {
	return NewJWTAuthenticator(
		"access-secret", "refresh-secret",
		"loocator", "loocator",
		time.Hour, 24*time.Hour,
	)
}

func TestGenerateAndValidateTokens(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens(42, "user")
	if err != nil {
		t.Fatal(err)
	}

	token, err := a.ValidateAccessToken(access)
	if err != nil {
		t.Fatal(err)
	}
	if !token.Valid {
		t.Fatal("access token not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if sub, _ := claims["sub"].(float64); int64(sub) != 42 {
		t.Fatalf("got sub %v, want 42", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "user" {
		t.Fatalf("got role %v, want user", claims["role"])
	}

	if _, err := a.ValidateRefreshToken(refresh); err != nil {
		t.Fatalf("refresh token rejected: %v", err)
	}
}

func TestTokensSignedWithDistinctSecrets(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens(1, "user")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.ValidateAccessToken(refresh); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
	if _, err := a.ValidateRefreshToken(access); err == nil {
		t.Fatal("access token accepted as refresh token")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	a := newTestAuthenticator()

	if _, err := a.ValidateAccessToken("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
