package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-stego-channel/models"
)

var testKey = strings.Repeat("s", 32)

func TestGenerateSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken("test-issuer", "session-1", time.Hour, testKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.String() != token.SignedString {
		t.Error("String must return the signed form")
	}
	if token.Token == nil {
		t.Fatal("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(jwt.RegisteredClaims)
	if !ok {
		t.Fatalf("could not cast claims to RegisteredClaims, got %T", token.Token.Claims)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.ID != "session-1" {
		t.Errorf("expected jti session-1, got %s", claims.ID)
	}
	if token.SessionID != "session-1" {
		t.Errorf("expected cached session id, got %s", token.SessionID)
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		sessionID string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "id", time.Hour, "key"},
		{"empty session", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "id", 0, "key"},
		{"empty key", "iss", "id", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.sessionID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateSessionToken_Success(t *testing.T) {
	genToken, err := GenerateSessionToken("test-issuer", "session-42", 5*time.Minute, testKey)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ValidateSessionToken(genToken.SignedString, testKey, "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.SessionID != "session-42" {
		t.Errorf("expected session-42, got %s", parsed.SessionID)
	}
	id, err := parsed.GetSessionID()
	if err != nil || id != "session-42" {
		t.Errorf("GetSessionID = %q, %v", id, err)
	}
}

func TestValidateSessionToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateSessionToken("test-issuer", "s", time.Hour, testKey)

	_, err := ValidateSessionToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateSessionToken_Expired(t *testing.T) {
	genToken, _ := GenerateSessionToken("test-issuer", "s", -time.Second, testKey)

	_, err := ValidateSessionToken(genToken.SignedString, testKey, "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateSessionToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateSessionToken("real-issuer", "s", time.Hour, testKey)

	_, err := ValidateSessionToken(genToken.SignedString, testKey, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateSessionToken_MissingSession(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatal(err)
	}

	_, err = ValidateSessionToken(signed, testKey, "iss")
	if !errors.Is(err, models.ErrTokenWithoutSession) {
		t.Errorf("expected ErrTokenWithoutSession, got %v", err)
	}
}

func TestValidateSessionToken_NoneAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		ID:        "s",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	if _, err = ValidateSessionToken(unsigned, testKey, "iss"); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

func TestValidateSessionToken_Malformed(t *testing.T) {
	if _, err := ValidateSessionToken("not.a.token", testKey, "iss"); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"  bearer token  ", "token", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
