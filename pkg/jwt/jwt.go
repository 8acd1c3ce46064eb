package jwt

import (
	"errors"
	"time"

	"kist-clinic-backend/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
	ResetToken   TokenType = "reset"
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Phone     string    `json:"phone"`
	IsStaff   bool      `json:"is_staff"`
	TokenType TokenType `json:"token_type"`
	TokenID   string    `json:"token_id"`
	// PasswordStamp ties reset tokens to the credential state they were
	// issued against, so changing the password invalidates them.
	PasswordStamp string `json:"pwd,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

func (s *JWTService) GenerateAccessToken(userID uuid.UUID, phone string, isStaff bool) (string, string, error) {
	return s.generate(userID, phone, isStaff, AccessToken, "", s.config.AccessExpiry)
}

func (s *JWTService) GenerateRefreshToken(userID uuid.UUID, phone string, isStaff bool) (string, string, error) {
	return s.generate(userID, phone, isStaff, RefreshToken, "", s.config.RefreshExpiry)
}

// GenerateResetToken issues a short-lived password-reset token bound to the
// current password hash via passwordStamp.
func (s *JWTService) GenerateResetToken(userID uuid.UUID, passwordStamp string) (string, error) {
	token, _, err := s.generate(userID, "", false, ResetToken, passwordStamp, s.config.ResetExpiry)
	return token, err
}

func (s *JWTService) generate(userID uuid.UUID, phone string, isStaff bool, tokenType TokenType, stamp string, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		UserID:        userID,
		Phone:         phone,
		IsStaff:       isStaff,
		TokenType:     tokenType,
		TokenID:       tokenID,
		PasswordStamp: stamp,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry() time.Duration {
	return s.config.RefreshExpiry
}
