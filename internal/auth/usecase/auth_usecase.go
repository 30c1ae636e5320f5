package usecase

import (
	"errors"
	"time"

	authdomain "github.com/DanielValenz21/LifeStyleIABACK/internal/auth/domain"
	authdto "github.com/DanielValenz21/LifeStyleIABACK/internal/auth/dto"
	"github.com/DanielValenz21/LifeStyleIABACK/internal/auth/repository"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmailTaken is returned on duplicate registration.
var ErrEmailTaken = errors.New("email ya registrado")

// ErrInvalidCredentials covers both unknown email and wrong password so a
// login probe cannot tell which one failed.
var ErrInvalidCredentials = errors.New("credenciales inválidas")

// ErrInvalidToken is returned when a token fails signature or expiry checks.
var ErrInvalidToken = errors.New("token inválido o expirado")

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.RegisterResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return &authdto.RegisterResponse{ID: user.ID, Email: user.Email}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{Token: token}, nil
}

func (u *authUsecase) generateToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

// ValidateToken checks signature and expiry and extracts the caller identity.
// No database round-trip: the token is the source of truth for the request.
func (u *authUsecase) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &Claims{UserID: userID, Email: email}, nil
}
