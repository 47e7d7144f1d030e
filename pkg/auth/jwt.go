package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

const tokenTTL = 24 * time.Hour

type JWTServiceInterface interface {
	GenerateClientToken(userID int64) (string, error)
	GenerateAdminToken(adminID int64) (string, error)
	ValidateClientToken(tokenString string) (*Claims, error)
	ValidateAdminToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// JWTService issues and validates HS256 tokens. Client and admin tokens are
// signed with separate secrets, so one can never pass for the other.
type JWTService struct {
	clientSecret []byte
	adminSecret  []byte
}

func NewJWTService(clientSecret, adminSecret string) *JWTService {
	return &JWTService{
		clientSecret: []byte(clientSecret),
		adminSecret:  []byte(adminSecret),
	}
}

func (s *JWTService) generate(id int64, role string, secret []byte) (string, error) {
	claims := Claims{
		UserID: id,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
			Issuer:    "checkdesk",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *JWTService) validate(tokenString, role string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Role != role || claims.Issuer != "checkdesk" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

func (s *JWTService) GenerateClientToken(userID int64) (string, error) {
	return s.generate(userID, RoleClient, s.clientSecret)
}

func (s *JWTService) GenerateAdminToken(adminID int64) (string, error) {
	return s.generate(adminID, RoleAdmin, s.adminSecret)
}

func (s *JWTService) ValidateClientToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, RoleClient, s.clientSecret)
}

func (s *JWTService) ValidateAdminToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, RoleAdmin, s.adminSecret)
}
