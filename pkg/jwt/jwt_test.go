package jwt

import (
	"testing"
	"time"

	"kist-clinic-backend/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
		ResetExpiry:   time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "+9370000001", true)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if tokenID == "" {
		t.Fatal("empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Phone != "+9370000001" {
		t.Errorf("Phone = %s", claims.Phone)
	}
	if !claims.IsStaff {
		t.Error("IsStaff = false, want true")
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %s, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %s, want %s", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "+9370000001", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %s, want refresh", claims.TokenType)
	}
}

func TestResetTokenCarriesPasswordStamp(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, err := svc.GenerateResetToken(userID, "stamp-abc")
	if err != nil {
		t.Fatalf("GenerateResetToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.TokenType != ResetToken {
		t.Errorf("TokenType = %s, want reset", claims.TokenType)
	}
	if claims.PasswordStamp != "stamp-abc" {
		t.Errorf("PasswordStamp = %s", claims.PasswordStamp)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := testService()
	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "+9370000001", false)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() with wrong secret = nil, want error")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := testService()
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken(garbage) = nil, want error")
	}
}
