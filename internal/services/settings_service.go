package services

import (
	"slices"
	"strings"
	"sync"

	"bizhub/internal/domain"
	"bizhub/internal/repos"
)

// SettingsService owns the live shell settings. Every change is saved
// before it becomes visible.
type SettingsService struct {
	Repo *repos.SettingsRepo

	mu  sync.RWMutex
	cur domain.Settings
}

func NewSettingsService(repo *repos.SettingsRepo) (*SettingsService, error) {
	s := &SettingsService{Repo: repo}
	cur, err := repo.Load()
	if err != nil {
		return nil, err
	}
	s.cur = cur
	return s, nil
}

func (s *SettingsService) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.cur
	out.Navigation = slices.Clone(s.cur.Navigation)
	return out
}

type SettingsInput struct {
	AppName  string `json:"appName"`
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
	Color    string `json:"color"`
}

func (s *SettingsService) Update(in SettingsInput) (domain.Settings, error) {
	name := strings.TrimSpace(in.AppName)
	if name == "" || len(name) > 60 {
		return domain.Settings{}, invalid("app name must be 1 to 60 characters")
	}
	cur := strings.TrimSpace(in.Currency)
	if cur == "" || len(cur) > 5 {
		return domain.Settings{}, invalid("currency symbol must be 1 to 5 characters")
	}
	switch in.Theme {
	case domain.ThemeLight, domain.ThemeDark, domain.ThemeSystem:
	default:
		return domain.Settings{}, invalid("theme must be light, dark or system")
	}
	if !slices.Contains(domain.Colors, in.Color) {
		return domain.Settings{}, invalid("unknown color")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cur
	next.Navigation = slices.Clone(s.cur.Navigation)
	next.AppName, next.Currency, next.Theme, next.Color = name, cur, in.Theme, in.Color
	if err := s.Repo.Save(next); err != nil {
		return domain.Settings{}, err
	}
	s.cur = next
	return next, nil
}

// SetNavEnabled shows or hides one module in the navigation.
func (s *SettingsService) SetNavEnabled(id string, enabled bool) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.cur.Navigation, func(n domain.NavItem) bool { return n.ID == id })
	if i < 0 {
		return domain.Settings{}, ErrNotFound
	}
	if err := s.Repo.SetNavEnabled(id, enabled); err != nil {
		return domain.Settings{}, notFound(err)
	}
	s.cur.Navigation[i].Enabled = enabled
	out := s.cur
	out.Navigation = slices.Clone(s.cur.Navigation)
	return out, nil
}
