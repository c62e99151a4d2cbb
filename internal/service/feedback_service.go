package service

import (
	"aptitude_portal_backend/internal/model"
	"aptitude_portal_backend/internal/repository"
	"errors"
	"strings"
)

type FeedbackService struct {
	Repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

type FeedbackReq struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Message string `json:"message" binding:"required"`
	Rating  int    `json:"rating"`
}

func (s *FeedbackService) Submit(req FeedbackReq) (*model.Feedback, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, errors.New("feedback message must not be empty")
	}
	f := &model.Feedback{
		Email:   strings.TrimSpace(req.Email),
		Name:    strings.TrimSpace(req.Name),
		Message: req.Message,
		Rating:  req.Rating,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FeedbackService) List(page, limit int) ([]model.Feedback, int64, error) {
	return s.Repo.List(page, limit)
}
