package services

import (
	"errors"

	"bizhub/internal/domain"
	"bizhub/internal/repos"
	"bizhub/internal/validate"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds         = errors.New("current password is incorrect")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password must be 8-64 chars with upper, lower, digit and symbol")
)

// AccountService manages the single owner account.
type AccountService struct {
	Users   *repos.UserRepo
	OwnerID string
}

func NewAccountService(users *repos.UserRepo, ownerID string) *AccountService {
	return &AccountService{Users: users, OwnerID: ownerID}
}

func (s *AccountService) owner() (*domain.User, error) {
	u, err := s.Users.ByID(s.OwnerID)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (s *AccountService) ChangePassword(current, next, confirm string) error {
	if next != confirm {
		return ErrPasswordMismatch
	}
	if !validate.Password(next) {
		return ErrWeakPassword
	}
	u, err := s.owner()
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(current)) != nil {
		return ErrBadCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.SetPasswordHash(u.ID, string(hash))
}

// DeleteAccount removes the owner and their addresses. The password is
// required again.
func (s *AccountService) DeleteAccount(password string) error {
	u, err := s.owner()
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return ErrBadCreds
	}
	return notFound(s.Users.Delete(u.ID))
}
