package repository

import (
	"aptitude_portal_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

// Save archives a completed attempt. A pre-existing row for the same email
// is overwritten in place: after an admin reset raced a late submission the
// most recent completion wins.
func (r *ResultRepository) Save(res *model.TestResult) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"reg_no", "department", "score", "total_questions", "completed_at", "updated_at"}),
	}).Create(res).Error
}

func (r *ResultRepository) FindByEmail(email string) (*model.TestResult, error) {
	var res model.TestResult
	err := r.DB.Where("email = ?", email).First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResultRepository) DeleteByEmail(email string) (int64, error) {
	result := r.DB.Unscoped().Where("email = ?", email).Delete(&model.TestResult{})
	return result.RowsAffected, result.Error
}

func (r *ResultRepository) List(page, limit int) ([]model.TestResult, int64, error) {
	var rs []model.TestResult
	var total int64
	query := r.DB.Model(&model.TestResult{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("completed_at desc").Offset(offset).Limit(limit).Find(&rs).Error
	return rs, total, err
}
