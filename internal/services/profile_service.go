package services

import (
	"strings"

	"bizhub/internal/domain"
	"bizhub/internal/repos"
	"bizhub/internal/validate"
)

type ProfileService struct {
	Users   *repos.UserRepo
	OwnerID string
}

func NewProfileService(users *repos.UserRepo, ownerID string) *ProfileService {
	return &ProfileService{Users: users, OwnerID: ownerID}
}

func (s *ProfileService) Get() (domain.Profile, error) {
	u, err := s.Users.ByID(s.OwnerID)
	if err != nil {
		return domain.Profile{}, notFound(err)
	}
	addrs, err := s.Users.Addresses(u.ID)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{Name: u.Name, Email: u.Email, Phone: u.Phone, Avatar: u.Avatar, Addresses: addrs}, nil
}

type ContactInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

func (s *ProfileService) Update(in ContactInput) (domain.Profile, error) {
	name, ok := validate.Name(in.Name)
	if !ok {
		return domain.Profile{}, invalid("name is required")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return domain.Profile{}, invalid("email address is not valid")
	}
	phone, ok := validate.Phone(in.Phone)
	if !ok {
		return domain.Profile{}, invalid("phone number is not valid")
	}
	if err := s.Users.UpdateContact(s.OwnerID, name, email, phone, strings.TrimSpace(in.Avatar)); err != nil {
		return domain.Profile{}, notFound(err)
	}
	return s.Get()
}

func address(a domain.Address) (domain.Address, error) {
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	if a.Street == "" || a.City == "" {
		return a, invalid("street and city are required")
	}
	zip, ok := validate.Zip(a.ZipCode)
	if !ok {
		return a, invalid("zip code is not valid")
	}
	a.ZipCode = zip
	return a, nil
}

func (s *ProfileService) AddAddress(a domain.Address) (domain.Address, error) {
	a, err := address(a)
	if err != nil {
		return a, err
	}
	return s.Users.AddAddress(s.OwnerID, a)
}

func (s *ProfileService) UpdateAddress(id int64, a domain.Address) (domain.Address, error) {
	a, err := address(a)
	if err != nil {
		return a, err
	}
	a.ID = id
	return a, notFound(s.Users.UpdateAddress(s.OwnerID, a))
}

func (s *ProfileService) RemoveAddress(id int64) error {
	return notFound(s.Users.RemoveAddress(s.OwnerID, id))
}
