package services

import (
	"errors"
	"fmt"
	"gin-fooddelivery/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("token secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// Identity はトークンから取り出した利用者情報。
type Identity struct {
	SubjectID string      `json:"id"`
	Role      models.Role `json:"role"`
}

// Claims はトークンのペイロード。{id, role} と iat、設定時のみ exp を持つ。
type Claims struct {
	SubjectID string `json:"id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type ITokenService interface {
	Issue(subjectID string, role models.Role) (string, error)
	Verify(tokenString string) (*Identity, error)
}

type TokenOption func(*TokenService)

// WithExpiry はトークンに有効期限を付ける。
func WithExpiry(d time.Duration) TokenOption {
	return func(s *TokenService) {
		s.expiry = d
	}
}

// NoExpiry は有効期限なしのトークンを発行する（従来の挙動）。
func NoExpiry() TokenOption {
	return func(s *TokenService) {
		s.expiry = 0
	}
}

type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenService はシークレットが空の場合にエラーを返す。起動時に致命的エラーとして扱うこと。
func NewTokenService(secret string, opts ...TokenOption) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	s := &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *TokenService) Expiry() time.Duration {
	return s.expiry
}

func (s *TokenService) Issue(subjectID string, role models.Role) (string, error) {
	now := s.now()
	claims := Claims{
		SubjectID: subjectID,
		Role:      string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.expiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// Verify は署名・形式・有効期限を検証する。利用者が存在するかどうかは確認しない。
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.SubjectID == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{
		SubjectID: claims.SubjectID,
		Role:      models.Role(claims.Role),
	}, nil
}
