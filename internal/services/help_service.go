package services

import (
	"bizhub/internal/domain"
	"bizhub/internal/pos"
	"bizhub/internal/repos"
)

type HelpService struct{ Repo *repos.HelpRepo }

func NewHelpService(repo *repos.HelpRepo) *HelpService { return &HelpService{Repo: repo} }

// FAQs returns the questions whose question or answer contains term.
func (s *HelpService) FAQs(term string) ([]domain.FAQ, error) {
	all, err := s.Repo.FAQs()
	if err != nil {
		return nil, err
	}
	return pos.FilterSubstring(all, term, func(f domain.FAQ) []string { return []string{f.Question, f.Answer} }), nil
}
