package service

import (
	"errors"

	"go-stock-tracker/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService authenticates the single configured operator. Aplikasi ini
// single-user: tidak ada tabel user, kredensial datang dari konfigurasi.
type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authService struct {
	email        string
	name         string
	passwordHash []byte
	jwtSecret    []byte
}

// NewAuthService hashes the configured password once at boot.
func NewAuthService(email, name, password string, jwtSecret []byte) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &authService{
		email:        email,
		name:         name,
		passwordHash: hash,
		jwtSecret:    jwtSecret,
	}, nil
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	if email != s.email {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(s.email, s.name, s.jwtSecret)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		Name:  s.name,
		Email: s.email,
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return jwt.ValidateToken(tokenString, s.jwtSecret)
}
