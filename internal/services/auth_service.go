package services

import (
	"errors"

	"artesania/internal/domain"
	"artesania/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("correo o contraseña incorrectos")

type AuthService struct {
	Sellers *repos.SellerRepo
}

func (s *AuthService) Login(sid, email, password string) (*domain.Seller, error) {
	u, err := s.Sellers.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Sellers.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Sellers.UnbindSession(sid)
}

func (s *AuthService) CurrentSeller(sid string) (*domain.Seller, error) {
	return s.Sellers.SessionSeller(sid)
}
