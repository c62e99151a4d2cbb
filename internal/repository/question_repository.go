package repository

import (
	"aptitude_portal_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) CreateBatch(qs []model.Question) error {
	if len(qs) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(qs, 100).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

func (r *QuestionRepository) ListByCategory(category string, page, limit int) ([]model.Question, int64, error) {
	var qs []model.Question
	var total int64
	query := r.DB.Model(&model.Question{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *QuestionRepository) ListAll() ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Order("category asc, created_at asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) CountByCategory(category string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("category = ?", category).Count(&count).Error
	return count, err
}

// SampleByCategory draws up to limit questions of a category in random
// order. subCategory narrows the draw to one department and is only ever
// passed for the core pool. A thin pool returns fewer rows, never an error.
func (r *QuestionRepository) SampleByCategory(category, subCategory string, limit int) ([]model.Question, error) {
	var qs []model.Question
	query := r.DB.Where("category = ?", category)
	if subCategory != "" {
		query = query.Where("sub_category = ?", subCategory)
	}
	err := query.Order("RAND()").Limit(limit).Find(&qs).Error
	return qs, err
}

// Passage pool

func (r *QuestionRepository) CreatePassage(p *model.ComprehensionPassage) error {
	return r.DB.Create(p).Error
}

func (r *QuestionRepository) ListPassages() ([]model.ComprehensionPassage, error) {
	var ps []model.ComprehensionPassage
	err := r.DB.Order("created_at asc").Find(&ps).Error
	return ps, err
}

func (r *QuestionRepository) DeletePassage(id uint) error {
	return r.DB.Delete(&model.ComprehensionPassage{}, id).Error
}
