package service

import (
	"aptitude_portal_backend/internal/model"
	"aptitude_portal_backend/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// AccessCodeService manages the single active gate code. The database
// seeds a default on first boot; Current re-seeds if someone deleted every
// row by hand, so the gate is never left codeless.
type AccessCodeService struct {
	Codes AccessCodeStore
}

func NewAccessCodeService(codes AccessCodeStore) *AccessCodeService {
	return &AccessCodeService{Codes: codes}
}

func (s *AccessCodeService) Current() (*model.AccessCode, error) {
	code, err := s.Codes.Active()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.Codes.Replace(util.DefaultAccessCode)
		}
		return nil, err
	}
	return code, nil
}

// Update replaces the active code in place. Only one admin actor is
// expected, so last write wins.
func (s *AccessCodeService) Update(code string) (*model.AccessCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("access code must not be empty")
	}
	return s.Codes.Replace(code)
}
