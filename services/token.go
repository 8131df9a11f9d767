package services

import (
	"fmt"
	"time"

	"stayrooted/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserID string `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// TokenManager ký và kiểm tra access token HS256
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *TokenManager) GenerateToken(userInfo UserInfo) (string, error) {
	now := m.now()
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken kiểm tra chữ ký, hạn dùng và trả về thông tin user trong token
func (m *TokenManager) ParseToken(tokenString string) (*UserInfo, error) {
	if tokenString == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingToken, "Please log in to continue", nil)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid or expired token", err)
	}

	if claims.UserInfo.UserID == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token has no user", nil)
	}
	return &claims.UserInfo, nil
}
