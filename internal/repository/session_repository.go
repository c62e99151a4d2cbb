package repository

import (
	"aptitude_portal_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Create inserts the live session row. The unique index on email surfaces
// a concurrent double-start as gorm.ErrDuplicatedKey (TranslateError is on
// for the connection), which the service maps to a conflict.
func (r *SessionRepository) Create(s *model.ExamSession) error {
	return r.DB.Create(s).Error
}

func (r *SessionRepository) FindByEmail(email string) (*model.ExamSession, error) {
	var s model.ExamSession
	err := r.DB.Where("email = ?", email).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteByEmail removes any session row for the email, live or expired.
// Deleting a missing row is not an error; the count lets callers tell the
// two apart when they care.
func (r *SessionRepository) DeleteByEmail(email string) (int64, error) {
	result := r.DB.Unscoped().Where("email = ?", email).Delete(&model.ExamSession{})
	return result.RowsAffected, result.Error
}
