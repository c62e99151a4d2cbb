package service

import (
	"aptitude_portal_backend/internal/model"
	"aptitude_portal_backend/internal/repository"
	"aptitude_portal_backend/internal/util"
	"encoding/json"
)

// QuestionService covers bank authoring and the department preview of a
// composed paper. Raw question CRUD is plumbing; the validation here only
// protects the shape invariants the composer relies on.
type QuestionService struct {
	Repo     *repository.QuestionRepository
	Composer *ComposeService
}

func NewQuestionService(repo *repository.QuestionRepository, composer *ComposeService) *QuestionService {
	return &QuestionService{Repo: repo, Composer: composer}
}

type QuestionReq struct {
	Category      string   `json:"category" binding:"required"`
	SubCategory   string   `json:"subCategory"`
	Prompt        string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer *int     `json:"correctAnswer" binding:"required"`
}

func (s *QuestionService) AddQuestion(req QuestionReq) (*model.Question, error) {
	if !util.IsValidCategory(req.Category) {
		return nil, util.ErrInvalidCategory
	}
	if len(req.Options) != util.QuestionOptionCount || req.CorrectAnswer == nil ||
		*req.CorrectAnswer < 0 || *req.CorrectAnswer >= util.QuestionOptionCount {
		return nil, util.ErrInvalidQuestion
	}

	q := &model.Question{
		Category:      req.Category,
		SubCategory:   req.SubCategory,
		Prompt:        req.Prompt,
		Options:       req.Options,
		CorrectAnswer: *req.CorrectAnswer,
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

type SubQuestionReq struct {
	Prompt        string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer *int     `json:"correctAnswer" binding:"required"`
}

type PassageReq struct {
	Passage      string           `json:"passage" binding:"required"`
	SubQuestions []SubQuestionReq `json:"subQuestions" binding:"required"`
}

func (s *QuestionService) AddPassage(req PassageReq) (*model.ComprehensionPassage, error) {
	if len(req.SubQuestions) != util.ComprehensionSubQuestions {
		return nil, util.ErrInvalidPassage
	}
	subs := make([]model.SubQuestion, 0, len(req.SubQuestions))
	for _, sq := range req.SubQuestions {
		if len(sq.Options) != util.QuestionOptionCount || sq.CorrectAnswer == nil ||
			*sq.CorrectAnswer < 0 || *sq.CorrectAnswer >= util.QuestionOptionCount {
			return nil, util.ErrInvalidQuestion
		}
		subs = append(subs, model.SubQuestion{
			Prompt:        sq.Prompt,
			Options:       sq.Options,
			CorrectAnswer: *sq.CorrectAnswer,
		})
	}

	raw, err := json.Marshal(subs)
	if err != nil {
		return nil, err
	}
	p := &model.ComprehensionPassage{Passage: req.Passage, SubQuestions: raw}
	if err := s.Repo.CreatePassage(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *QuestionService) ListQuestions(category string, page, limit int) ([]model.Question, int64, error) {
	return s.Repo.ListByCategory(category, page, limit)
}

func (s *QuestionService) ListAll() ([]model.Question, error) {
	return s.Repo.ListAll()
}

func (s *QuestionService) ListPassages() ([]model.ComprehensionPassage, error) {
	return s.Repo.ListPassages()
}

func (s *QuestionService) DeleteQuestion(id uint) error {
	return s.Repo.Delete(id)
}

// DepartmentPreview composes a throwaway paper for a department so an
// administrator can inspect composition and spot thin pools; the answer
// key is withheld just like the candidate path.
type DepartmentPreview struct {
	Questions      []QuestionView           `json:"questions"`
	TotalQuestions int                      `json:"totalQuestions"`
	Ranges         map[string]CategoryRange `json:"ranges"`
	Fill           map[string]CategoryFill  `json:"fill"`
}

func (s *QuestionService) DepartmentPreview(department string) (*DepartmentPreview, error) {
	set, err := s.Composer.Compose(department)
	if err != nil {
		return nil, err
	}
	return &DepartmentPreview{
		Questions:      set.Questions,
		TotalQuestions: len(set.Questions),
		Ranges:         set.Ranges,
		Fill:           set.Fill,
	}, nil
}
