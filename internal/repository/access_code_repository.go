package repository

import (
	"aptitude_portal_backend/internal/model"

	"gorm.io/gorm"
)

type AccessCodeRepository struct {
	DB *gorm.DB
}

func NewAccessCodeRepository(db *gorm.DB) *AccessCodeRepository {
	return &AccessCodeRepository{DB: db}
}

func (r *AccessCodeRepository) Active() (*model.AccessCode, error) {
	var code model.AccessCode
	err := r.DB.Where("is_active = ?", true).Order("created_at desc").First(&code).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// Replace deactivates every current code and inserts the new one as
// active, in one transaction so there is never a window with zero or two
// active codes.
func (r *AccessCodeRepository) Replace(code string) (*model.AccessCode, error) {
	newCode := &model.AccessCode{Code: code, IsActive: true}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.AccessCode{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(newCode).Error
	})
	if err != nil {
		return nil, err
	}
	return newCode, nil
}
