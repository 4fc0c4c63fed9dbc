package helpers

import (
	"testing"
	"time"
)

func testJWT() *JWTManager {
	return NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	m := testJWT()

	access, exp, err := m.GenerateAccessToken("u1", "sid-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Error("access token expiry should be in the future")
	}

	claims, err := m.ParseAccessToken(access)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != "u1" || claims.SessionID != "sid-1" {
		t.Errorf("claims = %q/%q, want u1/sid-1", claims.UserID, claims.SessionID)
	}

	refresh, _, err := m.GenerateRefreshToken("u1", "sid-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	rc, err := m.ParseRefreshToken(refresh)
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if rc.SessionID != "sid-1" {
		t.Errorf("refresh SessionID = %q, want sid-1", rc.SessionID)
	}
}

func TestTokensUseSeparateSecrets(t *testing.T) {
	m := testJWT()

	access, _, err := m.GenerateAccessToken("u1", "sid-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := m.ParseRefreshToken(access); err == nil {
		t.Error("access token must not parse as a refresh token")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := testJWT()
	access, _, err := m.GenerateAccessToken("u1", "sid-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewJWTManager("different-secret", "refresh-secret", time.Minute, time.Minute)
	if _, err := other.ParseAccessToken(access); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	access, _, err := m.GenerateAccessToken("u1", "sid-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := m.ParseAccessToken(access); err == nil {
		t.Error("expired token must not validate")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := testJWT()
	if _, err := m.ParseAccessToken("not.a.token"); err == nil {
		t.Error("malformed token must not validate")
	}
}
