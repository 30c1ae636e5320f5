package usecase

import (
	authdto "github.com/DanielValenz21/LifeStyleIABACK/internal/auth/dto"
)

// Claims is the caller identity extracted from a verified token.
type Claims struct {
	UserID string
	Email  string
}

// AuthUsecase defines registration, login and token verification.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.RegisterResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}
