package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New().String()

	token, err := m.Generate(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != userID {
		t.Fatalf("subject = %q, want %q", claims.Subject, userID)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Generate(uuid.New().String())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewJWTManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatalf("token signed with another secret must not verify")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.Generate(uuid.New().String())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Fatalf("expired token must not verify")
	}
}

func TestExpiry(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate(uuid.New().String())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	exp, err := m.Expiry(token)
	if err != nil {
		t.Fatalf("expiry: %v", err)
	}
	if until := time.Until(exp); until < 59*time.Minute || until > time.Hour {
		t.Fatalf("expiry %v away, want about an hour", until)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)

	if _, err := ExtractTokenFromHeader(req); err == nil {
		t.Fatalf("missing header must be an error")
	}

	req.Header.Set("Authorization", "Basic abc")
	if _, err := ExtractTokenFromHeader(req); err == nil {
		t.Fatalf("non-bearer header must be an error")
	}

	req.Header.Set("Authorization", "Bearer sometoken")
	token, err := ExtractTokenFromHeader(req)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if token != "sometoken" {
		t.Fatalf("token = %q", token)
	}
}
